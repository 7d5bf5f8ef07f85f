// Package estimator turns a property description and a market profile into wholesale offer figures.
//
// The pipeline is deterministic and keeps no state between calls, so one Estimator
// may be shared by any number of goroutines.
package estimator

import (
	"math"

	"wholesale_go/internal/catalog"
	"wholesale_go/internal/domain"
)

const (
	minAssignmentFee = 4500.0

	rehabDiscount  = 0.72
	moveInDiscount = 0.78

	offerToAsIsCap = 0.98

	compLowFactor  = 0.92
	compHighFactor = 1.05

	moneyPlaces      = 2
	confidencePlaces = 3
)

// MarketResolver looks up market profiles by name. *catalog.Catalog implements it.
type MarketResolver interface {
	Resolve(location string) (domain.MarketProfile, error)
	AvailableMarkets() []string
}

// Estimator computes wholesale estimates against a set of markets
type Estimator struct {
	markets MarketResolver
}

// New creates an Estimator backed by markets
func New(markets MarketResolver) *Estimator {
	return &Estimator{markets: markets}
}

// NewDefault creates an Estimator over the bundled market data
func NewDefault() (*Estimator, error) {
	c, err := catalog.NewBundled()
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

// AvailableMarkets returns the market names in alphabetical order
func (e *Estimator) AvailableMarkets() []string {
	return e.markets.AvailableMarkets()
}

// Estimate prices req against its market.
// The market is resolved before the request is validated, so an unknown market is
// reported even when other fields are bad too.
func (e *Estimator) Estimate(req domain.PropertyRequest) (domain.PropertyEstimate, error) {
	req = req.WithDefaults()

	market, err := e.markets.Resolve(req.Location)
	if err != nil {
		return domain.PropertyEstimate{}, err
	}
	if err := Validate(req); err != nil {
		return domain.PropertyEstimate{}, err
	}
	return Compute(market, req)
}

// Compute runs the valuation pipeline for an already validated request.
// Intermediate values keep full precision; rounding happens once, on the result.
func Compute(m domain.MarketProfile, req domain.PropertyRequest) (domain.PropertyEstimate, error) {
	basePrice := m.PricePerSqFtTurnkey * m.DemandIndex * m.PropertyTypeFactor(req.PropertyType)
	arv := basePrice * req.SquareFeet

	conditionFactor, ok := m.ConditionFactor(req.Condition)
	if !ok {
		return domain.PropertyEstimate{}, &domain.InvalidConditionError{Market: m.Name, Condition: req.Condition}
	}
	asIsValue := arv * conditionFactor

	repair := repairCost(m, req)
	closing := m.ClosingCostRate * arv
	holding := m.HoldingCostRate * asIsValue * m.HoldingMonths
	fee := assignmentFee(m, req, arv)

	mao := math.Max(0, arv*allowableDiscount(req.Condition)-repair-closing-holding-fee)
	offer := math.Min(mao, asIsValue*offerToAsIsCap)
	profit := math.Max(0, arv-(offer+repair+closing+holding+fee))

	return domain.PropertyEstimate{
		ARV:                   round(arv, moneyPlaces),
		AsIsValue:             round(asIsValue, moneyPlaces),
		RepairCost:            round(repair, moneyPlaces),
		ClosingCost:           round(closing, moneyPlaces),
		HoldingCost:           round(holding, moneyPlaces),
		AssignmentFee:         round(fee, moneyPlaces),
		MaximumAllowableOffer: round(mao, moneyPlaces),
		RecommendedOffer:      round(offer, moneyPlaces),
		ProjectedProfit:       round(profit, moneyPlaces),
		ComparableRange: domain.ComparableRange{
			Low:  round(asIsValue*compLowFactor, moneyPlaces),
			High: round(arv*compHighFactor, moneyPlaces),
		},
		Confidence: round(confidenceScore(m, req), confidencePlaces),
	}, nil
}

// assignmentFee uses the caller's target fee verbatim when given, otherwise the
// market rate with a floor.
func assignmentFee(m domain.MarketProfile, req domain.PropertyRequest, arv float64) float64 {
	if req.TargetAssignmentFee != nil {
		return *req.TargetAssignmentFee
	}
	return math.Max(minAssignmentFee, arv*m.WholesaleFeeRate)
}

func allowableDiscount(c domain.Condition) float64 {
	if c.IsRehab() {
		return rehabDiscount
	}
	return moveInDiscount
}

func round(v float64, places int32) float64 {
	return domain.Round(v, places)
}
