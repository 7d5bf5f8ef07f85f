package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMarketNotFound is returned when a location has no market profile.
	ErrMarketNotFound = errors.New("market not found")

	// ErrInvalidInput is returned when a request field is out of range or unrecognized.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCondition is returned when a recognized condition is missing from a
	// market's condition table. This is a data problem in the profile, not in the request.
	ErrInvalidCondition = errors.New("invalid condition")
)

// MarketNotFoundError carries the requested location and every market that does exist
type MarketNotFoundError struct {
	Location  string
	Available []string // sorted
}

func (e *MarketNotFoundError) Error() string {
	return fmt.Sprintf("no market profile for '%s'. Available markets: %s",
		e.Location, strings.Join(e.Available, ", "))
}

func (e *MarketNotFoundError) Unwrap() error {
	return ErrMarketNotFound
}

// InvalidInputError names the first request field that failed validation
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// InvalidConditionError reports a condition the market profile has no adjustment for
type InvalidConditionError struct {
	Market    string
	Condition Condition
}

func (e *InvalidConditionError) Error() string {
	return fmt.Sprintf("unsupported condition '%s' for market '%s'", e.Condition, e.Market)
}

func (e *InvalidConditionError) Unwrap() error {
	return ErrInvalidCondition
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "config error [" + e.Field + "]: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ErrorKind returns a short label for the estimation error kinds, "other" for anything else
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMarketNotFound):
		return "market_not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrInvalidCondition):
		return "invalid_condition"
	default:
		return "other"
	}
}
