package domain

import (
	"fmt"
	"math"

	"estate-hub/errors"
)

// ApiResponse wraps a single payload for the transport layer.
// Data is only carried on success and Error only on failure.
type ApiResponse[T Entity] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data,omitempty" validate:"-"`
	Error   *string `json:"error,omitempty"`
	Message *string `json:"message,omitempty"`
}

func OK[T Entity](data T) ApiResponse[T] {
	return ApiResponse[T]{Success: true, Data: &data}
}

func Fail[T Entity](err error) ApiResponse[T] {
	msg := err.Error()
	return ApiResponse[T]{Success: false, Error: &msg}
}

// WithMessage attaches a human readable note to the envelope.
func (r ApiResponse[T]) WithMessage(message string) ApiResponse[T] {
	r.Message = &message
	return r
}

func (r ApiResponse[T]) Validate() error {
	if r.Success && r.Error != nil {
		return errors.NewValidationError("error", "must be absent when success is true")
	}
	if !r.Success && r.Data != nil {
		return errors.NewValidationError("data", "must be absent when success is false")
	}
	if r.Data != nil {
		if err := (*r.Data).Validate(); err != nil {
			return within(err, "data")
		}
	}
	return nil
}

// precheck applies the success/data/error exclusivity on the raw document,
// so a payload that should not be there is not reported as incomplete.
func (ApiResponse[T]) precheck(raw map[string]any) error {
	success, ok := raw["success"].(bool)
	if !ok {
		return nil
	}
	if success && raw["error"] != nil {
		return errors.NewValidationError("error", "must be absent when success is true")
	}
	if !success && raw["data"] != nil {
		return errors.NewValidationError("data", "must be absent when success is false")
	}
	return nil
}

func (ApiResponse[T]) wireFields() []field {
	var data T
	return []field{req("success"), opt("data", data.wireFields()...), opt("error"), opt("message")}
}

// PaginatedResponse carries one page of a listing.
type PaginatedResponse[T Entity] struct {
	Data         []T `json:"data" validate:"-"`
	TotalCount   int `json:"totalCount" validate:"gte=0"`
	CurrentPage  int `json:"currentPage" validate:"gte=1"`
	ItemsPerPage int `json:"itemsPerPage" validate:"gt=0"`
	TotalPages   int `json:"totalPages" validate:"gte=0"`
}

// TotalPages is ceil(totalCount / itemsPerPage).
func TotalPages(totalCount, itemsPerPage int) int {
	if itemsPerPage <= 0 || totalCount <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(itemsPerPage)))
}

// NewPaginatedResponse builds a page and derives TotalPages.
func NewPaginatedResponse[T Entity](items []T, totalCount, currentPage, itemsPerPage int) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{
		Data:         items,
		TotalCount:   totalCount,
		CurrentPage:  currentPage,
		ItemsPerPage: itemsPerPage,
		TotalPages:   TotalPages(totalCount, itemsPerPage),
	}
}

func (p PaginatedResponse[T]) Validate() error {
	if p.Data == nil {
		return errors.NewValidationError("data", "is required")
	}
	if err := checkStruct(p); err != nil {
		return err
	}
	if want := TotalPages(p.TotalCount, p.ItemsPerPage); p.TotalPages != want {
		return errors.NewValidationError("totalPages", fmt.Sprintf("must equal %d", want))
	}
	// An empty listing still has a first page.
	if last := max(p.TotalPages, 1); p.CurrentPage > last {
		return errors.NewValidationError("currentPage", fmt.Sprintf("must be between 1 and %d", last))
	}
	if len(p.Data) > p.ItemsPerPage {
		return errors.NewValidationError("data", fmt.Sprintf("must contain at most %d items", p.ItemsPerPage))
	}
	for i, item := range p.Data {
		if err := item.Validate(); err != nil {
			return within(err, fmt.Sprintf("data[%d]", i))
		}
	}
	return nil
}

func (PaginatedResponse[T]) wireFields() []field {
	var item T
	return []field{
		each("data", item.wireFields()...),
		req("totalCount"), req("currentPage"), req("itemsPerPage"), req("totalPages"),
	}
}
