package estimator

import (
	"math"

	"wholesale_go/internal/domain"
)

// Repair scope modifiers. Age modifiers stack: a 1940 house gets both.
const (
	preModernModifier  = 0.08 // built before 1975
	preWarModifier     = 0.05 // built before 1950
	largeLotModifier   = 0.03 // lot more than twice the living area
	preModernYear      = 1975
	preWarYear         = 1950
	largeLotMultiplier = 2.0
)

// Confidence bounds and weights
const (
	confidenceBase    = 0.55
	confidenceMin     = 0.3
	confidenceMax     = 0.92
	demandBaseline    = 0.95
	demandBonusCap    = 0.1
	feeRateBonusCap   = 0.05
	smallHomeSqFt     = 900
	midHomeSqFt       = 1800
	smallHomeBonus    = 0.02
	midHomeBonus      = 0.05
	largeHomeBonus    = 0.03
	moveInBonus       = 0.08
	lightRehabBonus   = 0.05
	singleFamilyBonus = 0.04
	multiFamilyBonus  = 0.02
)

// repairModifier scales the repair budget for older homes and large lots.
// A zero year or lot size counts as unknown.
func repairModifier(req domain.PropertyRequest) float64 {
	modifier := 1.0
	if req.YearBuilt != nil && *req.YearBuilt != 0 {
		if *req.YearBuilt < preModernYear {
			modifier += preModernModifier
		}
		if *req.YearBuilt < preWarYear {
			modifier += preWarModifier
		}
	}
	if req.LotSquareFeet != nil && *req.LotSquareFeet != 0 && *req.LotSquareFeet > req.SquareFeet*largeLotMultiplier {
		modifier += largeLotModifier
	}
	return modifier
}

func repairCost(m domain.MarketProfile, req domain.PropertyRequest) float64 {
	return m.RenovationCost(req.Condition) * req.SquareFeet * repairModifier(req)
}

// confidenceScore is an additive heuristic clamped to [confidenceMin, confidenceMax].
// The demand term can be negative in soft markets.
func confidenceScore(m domain.MarketProfile, req domain.PropertyRequest) float64 {
	score := confidenceBase
	score += math.Min(demandBonusCap, m.DemandIndex-demandBaseline)
	score += math.Min(feeRateBonusCap, m.WholesaleFeeRate)

	switch {
	case req.SquareFeet <= smallHomeSqFt:
		score += smallHomeBonus
	case req.SquareFeet <= midHomeSqFt:
		score += midHomeBonus
	default:
		score += largeHomeBonus
	}

	switch {
	case req.Condition.IsMoveIn():
		score += moveInBonus
	case req.Condition == domain.ConditionLightRehab:
		score += lightRehabBonus
	}

	switch req.PropertyType {
	case domain.PropertyTypeSingleFamily:
		score += singleFamilyBonus
	case domain.PropertyTypeMultiFamily:
		score += multiFamilyBonus
	}

	// NaN from a malformed profile falls to the floor
	if math.IsNaN(score) {
		return confidenceMin
	}
	return math.Max(confidenceMin, math.Min(score, confidenceMax))
}
