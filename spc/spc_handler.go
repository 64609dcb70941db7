package spc

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/uyouii/spc-engine/model"
	"github.com/uyouii/spc-engine/utils"
)

// MetricEntryStore returns a metric dimension's entries ordered by period.
type MetricEntryStore interface {
	ListEntries(ctx context.Context, metricKey string, labels map[string]string) (*model.MetricSeries, error)
}

// MetricDefinitionLookup supplies the metric's display metadata and the
// non-negative flag that controls lower-limit clamping.
type MetricDefinitionLookup interface {
	GetDefinition(ctx context.Context, metricKey string) (*model.MetricDefinition, error)
}

// SpcHandler glues the checker to its collaborators for dashboard and
// report callers: fetch the definition and the rows, evaluate, then map
// each flagged point to a good/bad display class from the metric's desired
// direction. The math itself never sees the direction.
type SpcHandler struct {
	store  MetricEntryStore
	lookup MetricDefinitionLookup
}

func NewSpcHandler(store MetricEntryStore, lookup MetricDefinitionLookup) *SpcHandler {
	return &SpcHandler{
		store:  store,
		lookup: lookup,
	}
}

func (h *SpcHandler) EvaluateMetric(ctx context.Context, metricKey string,
	labels map[string]string, baseline *model.BaselineWindow) (*model.Result, []model.CauseClass, error) {
	logger := utils.GetLogger(ctx)

	definition, err := h.lookup.GetDefinition(ctx, metricKey)
	if err != nil {
		logger.Error("GetDefinition failed", zap.String("metricKey", metricKey), zap.Error(err))
		return nil, nil, fmt.Errorf("get definition for %v: %w", metricKey, err)
	}

	series, err := h.store.ListEntries(ctx, metricKey, labels)
	if err != nil {
		logger.Error("ListEntries failed", zap.String("metricKey", metricKey), zap.Error(err))
		return nil, nil, fmt.Errorf("list entries for %v: %w", metricKey, err)
	}

	if series.IsEmpty() {
		logger.Info("metric series is empty", zap.String("metricKey", metricKey))
		checker := NewSpcChecker(series, CheckerOptions{})
		return checker.Evaluate(ctx), nil, nil
	}

	if err := series.Validate(); err != nil {
		logger.Error("invalid metric series", zap.String("metricKey", metricKey),
			zap.String("series", series.DebugString()), zap.Error(err))
		return nil, nil, fmt.Errorf("validate series for %v: %w", metricKey, err)
	}

	checker := NewSpcChecker(series, CheckerOptions{
		Baseline:    baseline,
		NonNegative: definition.NonNegative,
	})
	res := checker.Evaluate(ctx)
	classes := ClassifyCauses(res, definition.DesiredDirection)

	logger.Info("evaluated metric series",
		zap.String("metricKey", metricKey),
		zap.Int("pointCount", len(res.Points)),
		zap.Int("specialCauseCount", len(res.SpecialCausePoints())),
		zap.Bool("baselineApplied", res.BaselineApplied),
		zap.Float64("centerLine", res.CenterLine))

	return res, classes, nil
}

// ClassifyCauses maps each point to its display class. Unflagged points are
// neutral. A flagged point above the center line is good when an increase
// is desired and bad when a decrease is, and symmetrically below; a flagged
// point sitting exactly on the center line stays neutral.
func ClassifyCauses(res *model.Result, direction model.DesiredDirection) []model.CauseClass {
	if res == nil {
		return nil
	}

	classes := make([]model.CauseClass, len(res.Points))
	for i, p := range res.Points {
		if !p.SpecialCause || direction == model.NeutralDesired {
			continue
		}

		above := p.Value > p.CenterLine
		below := p.Value < p.CenterLine
		switch {
		case above && direction == model.IncreaseDesired,
			below && direction == model.DecreaseDesired:
			classes[i] = model.GoodCause
		case above && direction == model.DecreaseDesired,
			below && direction == model.IncreaseDesired:
			classes[i] = model.BadCause
		}
	}
	return classes
}
