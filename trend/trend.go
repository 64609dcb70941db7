package trend

import (
	"math"

	"github.com/uyouii/spc-engine/model"
	"github.com/uyouii/spc-engine/utils"
)

// Summary is the compact KPI-card trend: percent change between the two
// most recent values, rounded to one decimal for display. It carries no
// special-cause semantics, that belongs to the spc package.
type Summary struct {
	Previous      float64              `json:"previous"`
	Current       float64              `json:"current"`
	PercentChange float64              `json:"percent_change"`
	Direction     model.TrendDirection `json:"direction"`
}

// Summarize computes ((current - previous) / |previous|) * 100. A zero
// previous means there is no baseline to compare against, so the change is
// 0 rather than infinite or NaN.
func Summarize(previous, current float64) Summary {
	res := Summary{
		Previous: previous,
		Current:  current,
	}

	if previous == 0 {
		return res
	}

	res.PercentChange = utils.FormatFloat((current-previous)/math.Abs(previous)*100, 1)
	switch {
	case res.PercentChange > 0:
		res.Direction = model.TrendUp
	case res.PercentChange < 0:
		res.Direction = model.TrendDown
	}
	return res
}

// SummarizeSeries applies Summarize to the two most recent values. Fewer
// than 2 points yields the zero summary.
func SummarizeSeries(series *model.MetricSeries) Summary {
	if series == nil || len(series.Values) < 2 {
		return Summary{}
	}
	n := len(series.Values)
	return Summarize(series.Values[n-2].Value, series.Values[n-1].Value)
}
