package spc

import (
	"gonum.org/v1/gonum/stat"

	"github.com/uyouii/spc-engine/model"
)

// CalculateLimits derives individuals-chart control limits from values using
// the mean and average-moving-range method. It is a pure function: identical
// input yields bit-identical output.
//
// Fewer than 2 points cannot produce a moving range, so the result is
// degenerate: sigma 0 and Ucl == Lcl == CenterLine. With nonNegative set the
// lower limit is floored at 0 (counts, rates, durations).
func CalculateLimits(values []float64, nonNegative bool) model.ControlLimits {
	if len(values) == 0 {
		return model.ControlLimits{Degenerate: true}
	}

	centerLine := stat.Mean(values, nil)

	if len(values) < 2 {
		return model.ControlLimits{
			CenterLine: centerLine,
			Ucl:        centerLine,
			Lcl:        centerLine,
			Sigma:      0,
			Degenerate: true,
		}
	}

	sigma := AverageMovingRange(values) / MovingRangeD2

	ucl := centerLine + SigmaMultiplier*sigma
	lcl := centerLine - SigmaMultiplier*sigma
	if nonNegative && lcl < 0 {
		lcl = 0
	}

	return model.ControlLimits{
		CenterLine: centerLine,
		Ucl:        ucl,
		Lcl:        lcl,
		Sigma:      sigma,
	}
}
