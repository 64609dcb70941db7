package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uyouii/spc-engine/common"
)

func seriesAt(values ...float64) *MetricSeries {
	series := &MetricSeries{}
	for i, v := range values {
		series.Values = append(series.Values, TimeValue{
			Time:  time.Date(2025, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			Value: v,
		})
	}
	return series
}

func TestSeriesValidate(t *testing.T) {
	require.NoError(t, seriesAt(1, 2, 3).Validate())
	require.ErrorIs(t, (&MetricSeries{}).Validate(), common.ErrorEmptySeries)
	require.ErrorIs(t, seriesAt(1, math.NaN()).Validate(), common.ErrorInvalidValue)
	require.ErrorIs(t, seriesAt(1, math.Inf(1)).Validate(), common.ErrorInvalidValue)
}

func TestSeriesValidateRejectsUnorderedPeriods(t *testing.T) {
	series := seriesAt(1, 2)
	series.Values[1].Time = series.Values[0].Time

	require.ErrorIs(t, series.Validate(), common.ErrorInvalidValue)
}

func TestSeriesIsEmpty(t *testing.T) {
	var series *MetricSeries
	require.True(t, series.IsEmpty())
	require.True(t, (&MetricSeries{}).IsEmpty())
	require.False(t, seriesAt(1).IsEmpty())
}

func TestSeriesFloats(t *testing.T) {
	require.Equal(t, []float64{1, 2, 3}, seriesAt(1, 2, 3).Floats())

	var series *MetricSeries
	require.Nil(t, series.Floats())
}

func TestBaselineWindowValid(t *testing.T) {
	jan := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	aug := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	require.True(t, (&BaselineWindow{Start: jan, End: aug}).Valid())
	require.True(t, (&BaselineWindow{Start: jan, End: jan}).Valid())
	require.False(t, (&BaselineWindow{Start: aug, End: jan}).Valid())

	var window *BaselineWindow
	require.False(t, window.Valid())
}

func TestBaselineWindowContains(t *testing.T) {
	window := &BaselineWindow{
		Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
	}

	require.True(t, window.Contains(window.Start))
	require.True(t, window.Contains(window.End))
	require.True(t, window.Contains(time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)))
	require.False(t, window.Contains(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResultSpecialCausePoints(t *testing.T) {
	res := &Result{Points: []SPCPoint{
		{SpecialCause: false},
		{SpecialCause: true},
		{SpecialCause: true},
	}}

	require.Len(t, res.SpecialCausePoints(), 2)

	var empty *Result
	require.Nil(t, empty.SpecialCausePoints())
	require.True(t, empty.IsEmpty())
}
