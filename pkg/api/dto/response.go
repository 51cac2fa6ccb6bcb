package dto

import (
	"encoding/json"
	"reflect"
	"time"
)

// DefaultSuccessMessage is the message carried by Ok-family responses that do not set one
const DefaultSuccessMessage = "Request completed successfully"

// ApiResponse is the uniform envelope returned by services.
//
// Build it with one of the factories (Ok, OkWithMessage, OkWithPagination,
// OkFromPage, Error, ErrorWithData). The envelope is immutable; WithTimestamp
// returns a stamped copy.
type ApiResponse[T any] struct {
	success    bool
	message    string
	data       T
	hasData    bool
	pagination *Pagination
	timestamp  *time.Time
}

// Ok creates a success envelope carrying data
func Ok[T any](data T) ApiResponse[T] {
	return OkWithMessage(data, DefaultSuccessMessage)
}

// OkWithMessage creates a success envelope with a custom message.
// An empty message falls back to DefaultSuccessMessage.
func OkWithMessage[T any](data T, message string) ApiResponse[T] {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return ApiResponse[T]{
		success: true,
		message: message,
		data:    emptyIfNil(data),
		hasData: true,
	}
}

// emptyIfNil replaces a nil slice or map with an empty one so success
// envelopes never serialize data as null.
func emptyIfNil[T any](data T) T {
	v := reflect.ValueOf(&data).Elem()
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			v.Set(reflect.MakeSlice(v.Type(), 0, 0))
		}
	case reflect.Map:
		if v.IsNil() {
			v.Set(reflect.MakeMap(v.Type()))
		}
	}
	return data
}

// OkWithPagination creates a success envelope for one page of a list.
// A nil slice is carried as an empty list.
func OkWithPagination[T any](data []T, pagination Pagination) ApiResponse[[]T] {
	if data == nil {
		data = []T{}
	}
	resp := Ok(data)
	resp.pagination = &pagination
	return resp
}

// OkFromPage creates a paginated success envelope whose pagination is rebuilt
// from the window of the given pagination and totalElements, so total pages
// always agree with the total count. Validation errors from the rebuild are
// returned unchanged.
func OkFromPage[T any](data []T, pagination Pagination, totalElements int64) (ApiResponse[[]T], error) {
	p, err := NewPaginationWithTotal(pagination.Page(), pagination.Size(), totalElements)
	if err != nil {
		return ApiResponse[[]T]{}, err
	}
	return OkWithPagination(data, p), nil
}

// Error creates a failure envelope without data
func Error[T any](message string) ApiResponse[T] {
	return ApiResponse[T]{message: message}
}

// ErrorWithData creates a failure envelope carrying data
func ErrorWithData[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		message: message,
		data:    data,
		hasData: true,
	}
}

// WithTimestamp returns a copy of r stamped with ts
func (r ApiResponse[T]) WithTimestamp(ts time.Time) ApiResponse[T] {
	r.timestamp = &ts
	return r
}

// Success reports whether the envelope describes a successful outcome
func (r ApiResponse[T]) Success() bool { return r.success }

// Message returns the human-readable message
func (r ApiResponse[T]) Message() string { return r.message }

// Data returns the payload and whether one is present
func (r ApiResponse[T]) Data() (T, bool) { return r.data, r.hasData }

// Pagination returns the page metadata and whether it is present
func (r ApiResponse[T]) Pagination() (Pagination, bool) {
	if r.pagination == nil {
		return Pagination{}, false
	}
	return *r.pagination, true
}

// Timestamp returns the stamp set by WithTimestamp and whether it is present
func (r ApiResponse[T]) Timestamp() (time.Time, bool) {
	if r.timestamp == nil {
		return time.Time{}, false
	}
	return *r.timestamp, true
}

type apiResponseJSON[T any] struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       *T          `json:"data"`
	Pagination *Pagination `json:"pagination"`
	Timestamp  *time.Time  `json:"timestamp,omitempty"`
}

func (r ApiResponse[T]) MarshalJSON() ([]byte, error) {
	out := apiResponseJSON[T]{
		Success:    r.success,
		Message:    r.message,
		Pagination: r.pagination,
		Timestamp:  r.timestamp,
	}
	if r.hasData {
		data := r.data
		out.Data = &data
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an envelope produced by MarshalJSON, for clients of
// services that return it.
func (r *ApiResponse[T]) UnmarshalJSON(b []byte) error {
	var in apiResponseJSON[T]
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	decoded := ApiResponse[T]{
		success:    in.Success,
		message:    in.Message,
		pagination: in.Pagination,
		timestamp:  in.Timestamp,
	}
	if in.Data != nil {
		decoded.data = *in.Data
		decoded.hasData = true
	}

	*r = decoded
	return nil
}
