package dto_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sucrim/servicekit/pkg/api/dto"
	"github.com/sucrim/servicekit/pkg/apperrors"
)

func TestNewPagination(t *testing.T) {
	t.Run("keeps fields", func(t *testing.T) {
		for _, tc := range []struct{ page, size int }{{0, 1}, {0, 10}, {3, 20}, {99, 100}} {
			p, err := dto.NewPagination(tc.page, tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.page, p.Page())
			assert.Equal(t, tc.size, p.Size())

			_, known := p.TotalElements()
			assert.False(t, known)
			_, known = p.TotalPages()
			assert.False(t, known)
		}
	})

	t.Run("rejects negative page", func(t *testing.T) {
		_, err := dto.NewPagination(-1, 10)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("rejects zero size", func(t *testing.T) {
		_, err := dto.NewPagination(0, 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("rejects negative size", func(t *testing.T) {
		_, err := dto.NewPagination(0, -5)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("rejects offset overflow", func(t *testing.T) {
		_, err := dto.NewPagination(1_000_000_000_000_000_000, 10)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

		_, err = dto.NewPagination(math.MaxInt, 2)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("largest page keeps a positive offset", func(t *testing.T) {
		p, err := dto.NewPagination(math.MaxInt/10, 10)
		require.NoError(t, err)
		assert.Positive(t, p.Offset())
	})
}

func TestNewPaginationWithTotal(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		total     int64
		wantPages int
	}{
		{"empty", 10, 0, 0},
		{"partial last page", 10, 95, 10},
		{"exact multiple", 10, 100, 10},
		{"single element", 10, 1, 1},
		{"size one", 1, 7, 7},
		{"smaller than page", 50, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := dto.NewPaginationWithTotal(0, tt.size, tt.total)
			require.NoError(t, err)

			total, ok := p.TotalElements()
			assert.True(t, ok)
			assert.Equal(t, tt.total, total)

			pages, ok := p.TotalPages()
			assert.True(t, ok)
			assert.Equal(t, tt.wantPages, pages)
		})
	}

	t.Run("rejects negative total", func(t *testing.T) {
		_, err := dto.NewPaginationWithTotal(0, 10, -1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("propagates window errors", func(t *testing.T) {
		_, err := dto.NewPaginationWithTotal(-1, 10, 5)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}

func TestPaginationIsValue(t *testing.T) {
	a, err := dto.NewPaginationWithTotal(2, 10, 95)
	require.NoError(t, err)
	b, err := dto.NewPaginationWithTotal(2, 10, 95)
	require.NoError(t, err)
	assert.True(t, a == b)

	c, err := a.WithTotal(200)
	require.NoError(t, err)
	assert.False(t, a == c)

	total, _ := a.TotalElements()
	assert.Equal(t, int64(95), total, "WithTotal must not change the receiver")
}

func TestDefaultPagination(t *testing.T) {
	p := dto.DefaultPagination()
	assert.Equal(t, 0, p.Page())
	assert.Equal(t, dto.DefaultPageSize, p.Size())
	assert.False(t, p.IsZero())
	assert.True(t, dto.Pagination{}.IsZero())
}

func TestPaginationOffsetLimit(t *testing.T) {
	p, err := dto.NewPagination(3, 25)
	require.NoError(t, err)
	assert.Equal(t, 75, p.Offset())
	assert.Equal(t, 25, p.Limit())
}

func TestPaginationJSON(t *testing.T) {
	t.Run("unknown totals are null", func(t *testing.T) {
		p, err := dto.NewPagination(1, 20)
		require.NoError(t, err)

		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"page":1,"size":20,"totalElements":null,"totalPages":null}`, string(b))
	})

	t.Run("known totals", func(t *testing.T) {
		p, err := dto.NewPaginationWithTotal(0, 10, 95)
		require.NoError(t, err)

		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"page":0,"size":10,"totalElements":95,"totalPages":10}`, string(b))
	})

	t.Run("decode recomputes total pages", func(t *testing.T) {
		var p dto.Pagination
		err := json.Unmarshal([]byte(`{"page":0,"size":10,"totalElements":95,"totalPages":3}`), &p)
		require.NoError(t, err)

		pages, ok := p.TotalPages()
		assert.True(t, ok)
		assert.Equal(t, 10, pages)
	})

	t.Run("decode rejects invalid window", func(t *testing.T) {
		var p dto.Pagination
		err := json.Unmarshal([]byte(`{"page":0,"size":0}`), &p)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}

func TestPageRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r := dto.NewPageRequest(0)
		assert.Equal(t, dto.DefaultPageSize, r.Size)
		assert.Equal(t, 0, r.Page)
	})

	t.Run("converts", func(t *testing.T) {
		p, err := dto.PageRequest{Page: 2, Size: 5}.ToPagination()
		require.NoError(t, err)
		assert.Equal(t, 10, p.Offset())
	})

	t.Run("rejects invalid", func(t *testing.T) {
		_, err := dto.PageRequest{Page: -1, Size: 5}.ToPagination()
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}
