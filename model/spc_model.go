package model

import "time"

// BaselineWindow is a contiguous sub-range of a series used to freeze the
// center line and control limits instead of recomputing from the whole
// series. A QI team locks limits after an intervention so later points are
// judged against pre-intervention performance.
type BaselineWindow struct {
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

func (w *BaselineWindow) Valid() bool {
	if w == nil {
		return false
	}
	return !w.Start.After(w.End)
}

func (w *BaselineWindow) Contains(t time.Time) bool {
	if w == nil {
		return false
	}
	return !t.Before(w.Start) && !t.After(w.End)
}

// ControlLimits are derived once per series (or once per baseline window).
// Lcl <= CenterLine <= Ucl always holds. Degenerate means the series had
// fewer than 2 points, so no moving range exists and Ucl == Lcl ==
// CenterLine; callers typically suppress chart rendering for those.
type ControlLimits struct {
	CenterLine float64 `json:"center_line"`
	Ucl        float64 `json:"ucl"`
	Lcl        float64 `json:"lcl"`
	Sigma      float64 `json:"sigma"`
	Degenerate bool    `json:"degenerate,omitempty"`
}

// SPCPoint is one rendered chart point. Computed fresh on every request,
// never persisted.
type SPCPoint struct {
	TimeValue
	CenterLine   float64 `json:"center_line"`
	Ucl          float64 `json:"ucl"`
	Lcl          float64 `json:"lcl"`
	SpecialCause bool    `json:"special_cause"`
}

// Result is the annotated series handed back to the chart renderer.
// FixedPoints is non-nil only when a valid baseline window was applied: the
// same points against the frozen limits with only the beyond-limits rule
// evaluated, for compact/mini chart renderers that want the simplified view.
type Result struct {
	CenterLine      float64       `json:"center_line"`
	Limits          ControlLimits `json:"limits"`
	Points          []SPCPoint    `json:"points"`
	FixedPoints     []SPCPoint    `json:"fixed_points,omitempty"`
	BaselineApplied bool          `json:"baseline_applied,omitempty"`
}

func (r *Result) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.Points) == 0
}

func (r *Result) SpecialCausePoints() []SPCPoint {
	if r == nil {
		return nil
	}
	res := []SPCPoint{}
	for _, p := range r.Points {
		if p.SpecialCause {
			res = append(res, p)
		}
	}
	return res
}
