package model

import (
	"fmt"
	"math"
	"time"

	"github.com/uyouii/spc-engine/common"
)

type DesiredDirection int

const (
	IncreaseDesired DesiredDirection = 1
	DecreaseDesired DesiredDirection = 2
	NeutralDesired  DesiredDirection = 3
)

// CauseClass is the display classification of a special-cause point,
// derived from the metric's desired direction. The detection math never
// looks at it.
type CauseClass int

const (
	NeutralCause CauseClass = 0
	GoodCause    CauseClass = 1
	BadCause     CauseClass = 2
)

type TrendDirection int

const (
	TrendFlat TrendDirection = 0
	TrendUp   TrendDirection = 1
	TrendDown TrendDirection = 2
)

type TimeValue struct {
	Time  time.Time
	Value float64
}

func (v *TimeValue) Before(timeValue TimeValue) bool {
	return v.Time.Before(timeValue.Time)
}

// MetricSeries is one metric dimension's ordered periodic values.
// Periods are strictly increasing with no duplicates; missing periods are
// simply absent, never zero-filled.
type MetricSeries struct {
	// Labels contains label key -> label value, like "department": "ops-east"
	Labels map[string]string
	Values []TimeValue
}

func (s *MetricSeries) DebugString() string {
	res := fmt.Sprintf("labels: %+v, valueCount: %+v", s.Labels, len(s.Values))
	return res
}

func (s *MetricSeries) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Values) == 0
}

func (s *MetricSeries) Floats() []float64 {
	if s == nil {
		return nil
	}
	res := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		res = append(res, v.Value)
	}
	return res
}

// Validate is the defensive check callers run before handing the series to
// the checker: finite values, strictly increasing periods.
func (s *MetricSeries) Validate() error {
	if s.IsEmpty() {
		return common.ErrorEmptySeries
	}
	for i, v := range s.Values {
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			return common.ErrorInvalidValue
		}
		if i > 0 && !s.Values[i-1].Before(v) {
			return common.ErrorInvalidValue
		}
	}
	return nil
}

// MetricDefinition is the metric-definition lookup row: display metadata
// plus the flag deciding whether the lower control limit is floored at 0.
type MetricDefinition struct {
	Key              string           `json:"key,omitempty"`
	Unit             string           `json:"unit,omitempty"`
	DesiredDirection DesiredDirection `json:"desired_direction,omitempty"`
	NonNegative      bool             `json:"non_negative,omitempty"`
}
