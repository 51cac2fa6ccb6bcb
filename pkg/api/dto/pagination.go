package dto

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/sucrim/servicekit/pkg/apperrors"
)

const (
	// DefaultPageSize is used by DefaultPagination and when a request omits size
	DefaultPageSize = 10

	// MaxPageSize bounds request sizes when no other maximum is configured
	MaxPageSize = 100
)

// Pagination describes a zero-based page window and, when the total element
// count is known, the derived number of pages.
//
// Values are immutable and comparable with ==. The zero value is not a valid
// window; build one with NewPagination, NewPaginationWithTotal or DefaultPagination.
type Pagination struct {
	page          int
	size          int
	hasTotal      bool
	totalElements int64
	totalPages    int
}

// NewPagination creates a page window without total information
func NewPagination(page, size int) (Pagination, error) {
	if page < 0 {
		return Pagination{}, fmt.Errorf("%w: page must be >= 0, got %d", apperrors.ErrInvalidArgument, page)
	}
	if size <= 0 {
		return Pagination{}, fmt.Errorf("%w: size must be > 0, got %d", apperrors.ErrInvalidArgument, size)
	}
	if page > math.MaxInt/size {
		return Pagination{}, fmt.Errorf("%w: page %d with size %d overflows the offset", apperrors.ErrInvalidArgument, page, size)
	}

	return Pagination{page: page, size: size}, nil
}

// NewPaginationWithTotal creates a page window whose total pages are derived from totalElements
func NewPaginationWithTotal(page, size int, totalElements int64) (Pagination, error) {
	p, err := NewPagination(page, size)
	if err != nil {
		return Pagination{}, err
	}
	return p.WithTotal(totalElements)
}

// DefaultPagination returns the first page with DefaultPageSize
func DefaultPagination() Pagination {
	return Pagination{page: 0, size: DefaultPageSize}
}

// WithTotal returns a copy carrying totalElements and the matching page count
func (p Pagination) WithTotal(totalElements int64) (Pagination, error) {
	if totalElements < 0 {
		return Pagination{}, fmt.Errorf("%w: totalElements must be >= 0, got %d", apperrors.ErrInvalidArgument, totalElements)
	}

	p.hasTotal = true
	p.totalElements = totalElements
	p.totalPages = calculateTotalPages(totalElements, p.size)
	return p, nil
}

// calculateTotalPages rounds up; a non-positive size yields zero pages
func calculateTotalPages(totalElements int64, size int) int {
	if size <= 0 || totalElements <= 0 {
		return 0
	}
	s := int64(size)
	return int((totalElements + s - 1) / s)
}

// Page returns the zero-based page index
func (p Pagination) Page() int { return p.page }

// Size returns the number of items per page
func (p Pagination) Size() int { return p.size }

// TotalElements returns the total element count and whether it is known
func (p Pagination) TotalElements() (int64, bool) { return p.totalElements, p.hasTotal }

// TotalPages returns the derived page count and whether it is known
func (p Pagination) TotalPages() (int, bool) { return p.totalPages, p.hasTotal }

// Offset returns the index of the first item on the page
func (p Pagination) Offset() int { return p.page * p.size }

// Limit returns the maximum number of items on the page
func (p Pagination) Limit() int { return p.size }

// IsZero reports whether p is the zero value
func (p Pagination) IsZero() bool { return p == Pagination{} }

func (p Pagination) String() string {
	if !p.hasTotal {
		return fmt.Sprintf("page=%d size=%d", p.page, p.size)
	}
	return fmt.Sprintf("page=%d size=%d totalElements=%d totalPages=%d", p.page, p.size, p.totalElements, p.totalPages)
}

type paginationJSON struct {
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements *int64 `json:"totalElements"`
	TotalPages    *int   `json:"totalPages"`
}

func (p Pagination) MarshalJSON() ([]byte, error) {
	out := paginationJSON{Page: p.page, Size: p.size}
	if p.hasTotal {
		total, pages := p.totalElements, p.totalPages
		out.TotalElements = &total
		out.TotalPages = &pages
	}
	return json.Marshal(out)
}

// UnmarshalJSON validates the decoded fields. A totalPages value in the input
// is ignored and recomputed from totalElements.
func (p *Pagination) UnmarshalJSON(data []byte) error {
	var in paginationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var (
		decoded Pagination
		err     error
	)
	if in.TotalElements != nil {
		decoded, err = NewPaginationWithTotal(in.Page, in.Size, *in.TotalElements)
	} else {
		decoded, err = NewPagination(in.Page, in.Size)
	}
	if err != nil {
		return err
	}

	*p = decoded
	return nil
}

// PageRequest holds page parameters parsed from a request query.
// The upper size bound is applied by the caller, see middleware.BindPagination.
type PageRequest struct {
	Page int `form:"page" json:"page" validate:"min=0"`
	Size int `form:"size" json:"size" validate:"min=1"`
}

// NewPageRequest returns a request pre-filled with the first page and the given size
func NewPageRequest(defaultSize int) PageRequest {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	return PageRequest{Page: 0, Size: defaultSize}
}

// ToPagination converts the request into a Pagination
func (r PageRequest) ToPagination() (Pagination, error) {
	return NewPagination(r.Page, r.Size)
}
