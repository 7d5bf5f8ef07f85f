package domain

import "maps"

// MarketProfile holds the localized pricing assumptions for one market.
// Profiles are treated as immutable once loaded; use Clone before handing one out.
type MarketProfile struct {
	Name                   string                   `json:"name" yaml:"-"`
	PricePerSqFtTurnkey    float64                  `json:"price_per_sqft_turnkey" yaml:"price_per_sqft_turnkey"`
	ConditionAdjustment    map[Condition]float64    `json:"condition_adjustment" yaml:"condition_adjustment"`
	PropertyTypeAdjustment map[PropertyType]float64 `json:"property_type_adjustment" yaml:"property_type_adjustment"`
	RenovationCostPerSqFt  map[Condition]float64    `json:"renovation_cost_per_sqft" yaml:"renovation_cost_per_sqft"`
	ClosingCostRate        float64                  `json:"closing_cost_rate" yaml:"closing_cost_rate"`
	HoldingCostRate        float64                  `json:"holding_cost_rate" yaml:"holding_cost_rate"`
	WholesaleFeeRate       float64                  `json:"wholesale_fee_rate" yaml:"wholesale_fee_rate"`
	HoldingMonths          float64                  `json:"holding_months" yaml:"holding_months"`
	DemandIndex            float64                  `json:"demand_index" yaml:"demand_index"`
}

// Clone returns a deep copy of the profile
func (m MarketProfile) Clone() MarketProfile {
	m.ConditionAdjustment = maps.Clone(m.ConditionAdjustment)
	m.PropertyTypeAdjustment = maps.Clone(m.PropertyTypeAdjustment)
	m.RenovationCostPerSqFt = maps.Clone(m.RenovationCostPerSqFt)
	return m
}

// ConditionFactor returns the as-is multiplier for c.
// ok is false when the market has no entry for c.
func (m MarketProfile) ConditionFactor(c Condition) (factor float64, ok bool) {
	factor, ok = m.ConditionAdjustment[c]
	return factor, ok
}

// PropertyTypeFactor returns the price multiplier for t, 1.0 when absent
func (m MarketProfile) PropertyTypeFactor(t PropertyType) float64 {
	if f, ok := m.PropertyTypeAdjustment[t]; ok {
		return f
	}
	return 1.0
}

// RenovationCost returns the repair cost per square foot for c, 0 when absent
func (m MarketProfile) RenovationCost(c Condition) float64 {
	return m.RenovationCostPerSqFt[c]
}
