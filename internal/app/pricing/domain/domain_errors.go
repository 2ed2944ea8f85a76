package domain

import "errors"

// Invalid-input errors. These must surface before any arithmetic runs;
// the calculator never clamps bad input silently.
var (
	// ErrNegativePrice indicates a net component price below zero.
	ErrNegativePrice = errors.New("net price cannot be negative")

	// ErrInvalidPriceFormat indicates a price string that does not parse
	// as a finite decimal.
	ErrInvalidPriceFormat = errors.New("invalid price format")

	// ErrMissingCheckInDate indicates the check-in date was absent, so
	// advance-booking days cannot be derived.
	ErrMissingCheckInDate = errors.New("check-in date is required")
)

// Read-side errors.
var (
	// ErrBreakdownNotFound indicates no price components are stored for
	// the requested itinerary.
	ErrBreakdownNotFound = errors.New("price breakdown not found")
)

// IsInvalidInput reports whether err belongs to the invalid-input family.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrNegativePrice) ||
		errors.Is(err, ErrInvalidPriceFormat) ||
		errors.Is(err, ErrMissingCheckInDate)
}
