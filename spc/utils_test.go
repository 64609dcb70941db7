package spc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uyouii/spc-engine/model"
)

func monthlySeries(values ...float64) *model.MetricSeries {
	series := &model.MetricSeries{Labels: map[string]string{"department": "ops"}}
	for i, v := range values {
		series.Values = append(series.Values, model.TimeValue{
			Time:  time.Date(2025, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			Value: v,
		})
	}
	return series
}

func TestMovingRanges(t *testing.T) {
	require.Equal(t, []float64{2, 1, 2, 1}, MovingRanges([]float64{10, 12, 11, 13, 12}))
	require.Nil(t, MovingRanges([]float64{10}))
	require.Nil(t, MovingRanges(nil))
}

func TestAverageMovingRange(t *testing.T) {
	require.Equal(t, 1.5, AverageMovingRange([]float64{10, 12, 11, 13, 12}))
	require.Equal(t, 0.0, AverageMovingRange([]float64{10}))
}

func TestInferPeriodGap(t *testing.T) {
	series := monthlySeries(1, 2, 3)

	// Jan-Feb is 31 days, Feb-Mar is 28: the minimum wins
	require.Equal(t, 28*24*time.Hour, InferPeriodGap(series))

	require.Equal(t, time.Duration(0), InferPeriodGap(nil))
	require.Equal(t, time.Duration(0), InferPeriodGap(monthlySeries(1)))
}

func TestDetectGapsSkippedMonth(t *testing.T) {
	series := &model.MetricSeries{Values: []model.TimeValue{
		{Time: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), Value: 1},
		{Time: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), Value: 2},
		{Time: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), Value: 3},
		// April is missing
		{Time: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), Value: 4},
		{Time: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), Value: 5},
	}}

	gaps := DetectGaps(series, 0)

	require.Equal(t, []bool{false, false, false, true, false}, gaps)
}

func TestDetectGapsUniformMonthsTolerated(t *testing.T) {
	// month lengths vary 28-31 days, none of which is a gap
	series := monthlySeries(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)

	gaps := DetectGaps(series, 0)

	for i, gap := range gaps {
		require.False(t, gap, "point %v", i)
	}
}

func TestDetectGapsExplicitCadence(t *testing.T) {
	series := &model.MetricSeries{Values: []model.TimeValue{
		{Time: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC), Value: 1},
		{Time: time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC), Value: 2},
		{Time: time.Date(2025, time.January, 27, 0, 0, 0, 0, time.UTC), Value: 3},
	}}

	gaps := DetectGaps(series, 7*24*time.Hour)

	require.Equal(t, []bool{false, false, true}, gaps)
}
