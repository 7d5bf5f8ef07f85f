package domain

import (
	"encoding/json"
	"fmt"
)

// Condition describes the current state of a property
type Condition string

const (
	ConditionTurnkey    Condition = "turnkey"
	ConditionRentReady  Condition = "rent_ready"
	ConditionLightRehab Condition = "light_rehab"
	ConditionHeavyRehab Condition = "heavy_rehab"
	ConditionTearDown   Condition = "tear_down"

	DefaultCondition = ConditionLightRehab
)

// Conditions returns every recognized condition, best to worst.
func Conditions() []Condition {
	return []Condition{
		ConditionTurnkey,
		ConditionRentReady,
		ConditionLightRehab,
		ConditionHeavyRehab,
		ConditionTearDown,
	}
}

// Valid reports whether c is one of the recognized conditions
func (c Condition) Valid() bool {
	switch c {
	case ConditionTurnkey, ConditionRentReady, ConditionLightRehab, ConditionHeavyRehab, ConditionTearDown:
		return true
	default:
		return false
	}
}

// IsMoveIn returns true for properties that need no rehab before resale
func (c Condition) IsMoveIn() bool {
	return c == ConditionTurnkey || c == ConditionRentReady
}

// IsRehab returns true for light rehab, heavy rehab and tear down
func (c Condition) IsRehab() bool {
	return c == ConditionLightRehab || c == ConditionHeavyRehab || c == ConditionTearDown
}

// PropertyType is the structure type of a property
type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "single_family"
	PropertyTypeMultiFamily  PropertyType = "multi_family"
	PropertyTypeCondo        PropertyType = "condo"
	PropertyTypeTownhome     PropertyType = "townhome"

	DefaultPropertyType = PropertyTypeSingleFamily
)

// PropertyTypes returns every recognized property type
func PropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeSingleFamily,
		PropertyTypeMultiFamily,
		PropertyTypeCondo,
		PropertyTypeTownhome,
	}
}

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeSingleFamily, PropertyTypeMultiFamily, PropertyTypeCondo, PropertyTypeTownhome:
		return true
	default:
		return false
	}
}

// PropertyRequest describes the subject property.
// Optional fields are nil when unknown.
type PropertyRequest struct {
	Location     string       `json:"location"`
	SquareFeet   float64      `json:"square_feet"`
	Beds         float64      `json:"beds"`
	Baths        float64      `json:"baths"`
	Condition    Condition    `json:"condition"`
	PropertyType PropertyType `json:"property_type"`

	YearBuilt           *int     `json:"year_built,omitempty"`
	LotSquareFeet       *float64 `json:"lot_square_feet,omitempty"`
	TargetAssignmentFee *float64 `json:"target_assignment_fee,omitempty"`
}

// NewPropertyRequest creates a request with the default condition and property type
func NewPropertyRequest(location string, squareFeet, beds, baths float64) PropertyRequest {
	return PropertyRequest{
		Location:     location,
		SquareFeet:   squareFeet,
		Beds:         beds,
		Baths:        baths,
		Condition:    DefaultCondition,
		PropertyType: DefaultPropertyType,
	}
}

// WithDefaults returns a copy of r where an empty condition or property type
// is replaced by its default.
func (r PropertyRequest) WithDefaults() PropertyRequest {
	if r.Condition == "" {
		r.Condition = DefaultCondition
	}
	if r.PropertyType == "" {
		r.PropertyType = DefaultPropertyType
	}
	return r
}

// ComparableRange brackets recent comparable sales
type ComparableRange struct {
	Low  float64
	High float64
}

// MarshalJSON encodes the range as [low, high]
func (r ComparableRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.Low, r.High})
}

// UnmarshalJSON accepts the [low, high] form produced by MarshalJSON
func (r *ComparableRange) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("comparable range: want 2 values, got %d", len(pair))
	}
	r.Low, r.High = pair[0], pair[1]
	return nil
}

// PropertyEstimate is the result of a wholesale estimate.
// Money is rounded to cents, confidence to three places.
type PropertyEstimate struct {
	ARV                   float64         `json:"arv"`
	AsIsValue             float64         `json:"as_is_value"`
	RepairCost            float64         `json:"repair_cost"`
	ClosingCost           float64         `json:"closing_cost"`
	HoldingCost           float64         `json:"holding_cost"`
	AssignmentFee         float64         `json:"assignment_fee"`
	MaximumAllowableOffer float64         `json:"maximum_allowable_offer"`
	RecommendedOffer      float64         `json:"recommended_offer"`
	ProjectedProfit       float64         `json:"projected_profit"`
	ComparableRange       ComparableRange `json:"comparable_range"`
	Confidence            float64         `json:"confidence"`
}
