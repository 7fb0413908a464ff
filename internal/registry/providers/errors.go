package providers

import (
	"errors"
	"fmt"
)

// Category is the normalized failure taxonomy for provider attempts.
type Category string

const (
	// CategoryTimeout indicates the provider exceeded its attempt budget.
	CategoryTimeout Category = "timeout"

	// CategoryTransport indicates a network or HTTP-level failure.
	CategoryTransport Category = "transport_error"

	// CategoryRateLimited indicates the provider is throttling us.
	CategoryRateLimited Category = "rate_limited"

	// CategoryNotFound is a definitive "no data", not a fault.
	CategoryNotFound Category = "not_found"

	// CategoryParse indicates the provider returned malformed data.
	CategoryParse Category = "parse_error"
)

// Retryable reports whether another source may still succeed where this
// category failed. Not-found is definitive; parse errors mean the source is
// answering but broken, so the chain should still move on without retrying
// the same source.
func (c Category) Retryable() bool {
	switch c {
	case CategoryTimeout, CategoryTransport, CategoryRateLimited:
		return true
	}
	return false
}

// Error wraps a provider failure with its normalized category.
type Error struct {
	Category   Category
	Provider   string
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("provider %s [%s]: %s: %v", e.Provider, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("provider %s [%s]: %s", e.Provider, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewError builds a categorized provider error.
func NewError(category Category, provider, message string, underlying error) *Error {
	return &Error{Category: category, Provider: provider, Message: message, Underlying: underlying}
}

// CategoryOf extracts the category from an error chain. Uncategorized errors
// count as transport failures for fallback purposes.
func CategoryOf(err error) Category {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Category
	}
	return CategoryTransport
}

// IsNotFound reports whether err is a definitive negative result.
func IsNotFound(err error) bool {
	return CategoryOf(err) == CategoryNotFound
}
