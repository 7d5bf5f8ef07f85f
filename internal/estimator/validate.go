package estimator

import (
	"math"
	"strings"

	"wholesale_go/internal/domain"
)

// Validate checks req and returns the first problem found as an *domain.InvalidInputError.
// Checks run in a fixed order: square feet, beds, baths, condition, property type.
func Validate(req domain.PropertyRequest) error {
	if err := positive("square_feet", "square footage", req.SquareFeet); err != nil {
		return err
	}
	if err := positive("beds", "bedroom count", req.Beds); err != nil {
		return err
	}
	if err := positive("baths", "bathroom count", req.Baths); err != nil {
		return err
	}
	if !req.Condition.Valid() {
		return &domain.InvalidInputError{
			Field:  "condition",
			Reason: "must be one of: " + joinConditions(domain.Conditions()),
		}
	}
	if !req.PropertyType.Valid() {
		return &domain.InvalidInputError{
			Field:  "property_type",
			Reason: "must be one of: " + joinPropertyTypes(domain.PropertyTypes()),
		}
	}
	return nil
}

func positive(field, label string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return &domain.InvalidInputError{Field: field, Reason: label + " must be positive"}
	}
	return nil
}

func joinConditions(cs []domain.Condition) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func joinPropertyTypes(ts []domain.PropertyType) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
