package spc

import (
	"time"

	"github.com/uyouii/spc-engine/model"
)

func MovingRanges(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	res := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		diff := values[i] - values[i-1]
		if diff < 0 {
			diff = -diff
		}
		res = append(res, diff)
	}
	return res
}

func AverageMovingRange(values []float64) float64 {
	ranges := MovingRanges(values)
	if len(ranges) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range ranges {
		sum += r
	}
	return sum / float64(len(ranges))
}

// InferPeriodGap guesses the series cadence as the minimum observed gap
// between consecutive periods. Calendar months vary between 28 and 31 days,
// so the minimum paired with GapToleranceFactor tolerates that jitter while
// a skipped month still reads as a gap.
func InferPeriodGap(series *model.MetricSeries) time.Duration {
	if series == nil || len(series.Values) < 2 {
		return 0
	}
	minGap := time.Duration(0)
	for i := 1; i < len(series.Values); i++ {
		gap := series.Values[i].Time.Sub(series.Values[i-1].Time)
		if minGap == 0 || gap < minGap {
			minGap = gap
		}
	}
	return minGap
}

// DetectGaps marks points preceded by missing periods. gaps[0] is always
// false, the first point has nothing before it.
func DetectGaps(series *model.MetricSeries, expectedGap time.Duration) []bool {
	if series == nil {
		return nil
	}
	gaps := make([]bool, len(series.Values))
	if expectedGap <= 0 {
		expectedGap = InferPeriodGap(series)
	}
	if expectedGap <= 0 {
		return gaps
	}
	tolerated := time.Duration(float64(expectedGap) * GapToleranceFactor)
	for i := 1; i < len(series.Values); i++ {
		if series.Values[i].Time.Sub(series.Values[i-1].Time) > tolerated {
			gaps[i] = true
		}
	}
	return gaps
}
