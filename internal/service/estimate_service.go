package service

import (
	"context"
	"log/slog"
	"time"

	"wholesale_go/internal/domain"
	"wholesale_go/internal/estimator"
	"wholesale_go/internal/infra"

	"github.com/google/uuid"
)

// EstimateService wraps the estimator with logging and metrics.
// It keeps no per-estimate state and is safe for concurrent use.
type EstimateService struct {
	estimator *estimator.Estimator
	metrics   *infra.Metrics
	logger    *slog.Logger
}

// NewEstimateService creates a service. A nil metrics uses infra.GlobalMetrics;
// a nil logger uses slog.Default().
func NewEstimateService(est *estimator.Estimator, metrics *infra.Metrics, logger *slog.Logger) *EstimateService {
	if metrics == nil {
		metrics = infra.GlobalMetrics
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EstimateService{
		estimator: est,
		metrics:   metrics,
		logger:    logger,
	}
}

// Estimate prices req and records the outcome.
// Errors from the estimator are returned unchanged.
func (s *EstimateService) Estimate(ctx context.Context, req domain.PropertyRequest) (domain.PropertyEstimate, error) {
	id := uuid.NewString()
	logger := s.logger.With(slog.String("estimate_id", id), slog.String("location", req.Location))
	logger.DebugContext(ctx, "estimate requested",
		slog.Float64("square_feet", req.SquareFeet),
		slog.String("condition", string(req.Condition)),
		slog.String("property_type", string(req.PropertyType)),
	)

	start := time.Now()
	est, err := s.estimator.Estimate(req)
	elapsed := time.Since(start).Nanoseconds()

	if err != nil {
		kind := domain.ErrorKind(err)
		s.metrics.RecordError(kind, elapsed)
		logger.InfoContext(ctx, "estimate rejected", slog.String("kind", kind), slog.Any("error", err))
		return domain.PropertyEstimate{}, err
	}

	s.metrics.RecordEstimate(elapsed)
	logger.InfoContext(ctx, "estimate ready",
		slog.Float64("arv", est.ARV),
		slog.Float64("recommended_offer", est.RecommendedOffer),
		slog.Float64("confidence", est.Confidence),
	)
	return est, nil
}

// Markets returns the available market names, sorted
func (s *EstimateService) Markets() []string {
	return s.estimator.AvailableMarkets()
}
