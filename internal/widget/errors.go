package widget

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation sentinels. Compare with errors.Is.
var (
	// ErrTypeMismatch indicates that at least one input is not an integer.
	ErrTypeMismatch = constError("all parameters must be integers")

	// ErrTotalPagesOutOfRange indicates totalPages outside [1, 2^63].
	ErrTotalPagesOutOfRange = constError("total pages out of range [1, 2^63]")

	// ErrBoundarySizeOutOfRange indicates boundarySize outside [0, totalPages].
	ErrBoundarySizeOutOfRange = constError("boundary size out of range [0, total pages]")

	// ErrAroundSizeOutOfRange indicates aroundSize outside [0, totalPages].
	ErrAroundSizeOutOfRange = constError("around size out of range [0, total pages]")

	// ErrCurrentPageOutOfRange indicates currentPage outside [1, totalPages].
	ErrCurrentPageOutOfRange = constError("current page out of range [1, total pages]")
)

// ErrTooManyTokens indicates a widget too large to build as a slice or string.
// The widget itself is valid and can still be streamed.
var ErrTooManyTokens = constError("widget has too many tokens to materialize")

func tooManyTokens(n uint64) error {
	return fmt.Errorf("%w: %d tokens, limit %d", ErrTooManyTokens, n, MaxTokens)
}

// Input field names reported by ValidationError.
const (
	FieldCurrentPage  = "current_page"
	FieldTotalPages   = "total_pages"
	FieldBoundarySize = "boundary_size"
	FieldAroundSize   = "around_size"
)

// ValidationError reports the first input that failed validation.
type ValidationError struct {
	// Kind is one of the Err* sentinels.
	Kind error

	// Field names the offending input.
	Field string

	// Value is the offending input as received.
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s: %v", e.Field, e.Value, e.Kind)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func newValidationError(kind error, field string, value any) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: fmt.Sprintf("%v", value)}
}
