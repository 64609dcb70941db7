package spc

import (
	"context"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/uyouii/spc-engine/model"
)

type CheckerOptions struct {
	// Baseline freezes limits from a sub-range of the series; nil or
	// invalid windows (start after end, fewer than MinBaselinePoints
	// inside) silently fall back to whole-series limits.
	Baseline *model.BaselineWindow

	// NonNegative floors the lower control limit at 0 for metrics that
	// cannot go below it (counts, rates, durations).
	NonNegative bool

	// PeriodGap overrides the inferred series cadence used for
	// missing-period detection. Zero means infer.
	PeriodGap time.Duration
}

// SpcChecker annotates one metric series with individuals-chart limits and
// special-cause flags. It holds no mutable state across calls: Evaluate is a
// pure function of the series and options, and the checker is safe to use
// from concurrent requests.
type SpcChecker struct {
	series *model.MetricSeries
	opts   CheckerOptions
}

func NewSpcChecker(series *model.MetricSeries, opts CheckerOptions) *SpcChecker {
	return &SpcChecker{
		series: series,
		opts:   opts,
	}
}

func (c *SpcChecker) Evaluate(ctx context.Context) *model.Result {
	if c.series.IsEmpty() {
		return &model.Result{
			Limits: model.ControlLimits{Degenerate: true},
			Points: []model.SPCPoint{},
		}
	}

	values := c.series.Floats()
	gaps := DetectGaps(c.series, c.opts.PeriodGap)

	baselineValues, baselineApplied := c.baselineValues()

	var limits model.ControlLimits
	if baselineApplied {
		limits = CalculateLimits(baselineValues, c.opts.NonNegative)
	} else {
		limits = CalculateLimits(values, c.opts.NonNegative)
	}

	flags := DetectSpecialCauses(values, gaps, limits)

	res := &model.Result{
		CenterLine:      limits.CenterLine,
		Limits:          limits,
		Points:          c.buildPoints(limits, flags),
		BaselineApplied: baselineApplied,
	}

	if baselineApplied {
		res.FixedPoints = c.buildPoints(limits, DetectBeyondLimits(values, limits))
	}

	return res
}

func (c *SpcChecker) buildPoints(limits model.ControlLimits, flags []bool) []model.SPCPoint {
	points := make([]model.SPCPoint, 0, len(c.series.Values))
	for i, tv := range c.series.Values {
		points = append(points, model.SPCPoint{
			TimeValue:    tv,
			CenterLine:   limits.CenterLine,
			Ucl:          limits.Ucl,
			Lcl:          limits.Lcl,
			SpecialCause: flags[i],
		})
	}
	return points
}

// baselineValues selects the values inside the baseline window. The window
// counts only when it is well formed and holds at least MinBaselinePoints
// of the series.
func (c *SpcChecker) baselineValues() ([]float64, bool) {
	window := c.opts.Baseline
	if !window.Valid() {
		return nil, false
	}

	res := []float64{}
	for _, tv := range c.series.Values {
		if window.Contains(tv.Time) {
			res = append(res, tv.Value)
		}
	}
	if len(res) < MinBaselinePoints {
		return nil, false
	}
	return res, true
}

// MaxValue and MinValue are axis-scaling summaries for chart renderers.

func (c *SpcChecker) MaxValue() (float64, bool) {
	if c.series.IsEmpty() {
		return 0, false
	}
	return floats.Max(c.series.Floats()), true
}

func (c *SpcChecker) MinValue() (float64, bool) {
	if c.series.IsEmpty() {
		return 0, false
	}
	return floats.Min(c.series.Floats()), true
}
