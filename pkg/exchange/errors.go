package exchange

import "errors"

var (
	// ErrRateNotFound indicates that the corridor has no entry in the rate table
	ErrRateNotFound = errors.New("exchange rate not found")

	// ErrInvalidRate indicates that a non-positive rate was supplied
	ErrInvalidRate = errors.New("invalid exchange rate")
)
