package spc

import "github.com/uyouii/spc-engine/model"

// DetectSpecialCauses evaluates the run rules per point, flagging a point
// when any rule holds for the window ending at it:
//
//  1. value strictly beyond Ucl or Lcl
//  2. run of ShiftRunLength consecutive points all strictly above or all
//     strictly below the center line
//  3. TrendRunLength consecutive points each strictly increasing or each
//     strictly decreasing
//
// Points exactly on a limit or the center line satisfy no strict
// inequality: on-limit points are not rule-1 flags, and on-center points
// reset both rule-2 counters. Plateaus reset the rule-3 counters.
//
// gaps[i] true means periods are missing just before point i; the run and
// trend counters restart there, rule 1 still applies. Rule 1 is skipped for
// degenerate limits (no sigma to be beyond), rules 2 and 3 are not.
func DetectSpecialCauses(values []float64, gaps []bool, limits model.ControlLimits) []bool {
	flags := make([]bool, len(values))

	aboveRun, belowRun := 0, 0
	upRun, downRun := 1, 1

	for i, v := range values {
		gapBefore := i < len(gaps) && gaps[i]
		if gapBefore {
			aboveRun, belowRun = 0, 0
			upRun, downRun = 1, 1
		}

		if !limits.Degenerate && (v > limits.Ucl || v < limits.Lcl) {
			flags[i] = true
		}

		switch {
		case v > limits.CenterLine:
			aboveRun++
			belowRun = 0
		case v < limits.CenterLine:
			belowRun++
			aboveRun = 0
		default:
			aboveRun, belowRun = 0, 0
		}
		if aboveRun >= ShiftRunLength || belowRun >= ShiftRunLength {
			flags[i] = true
		}

		if i > 0 && !gapBefore {
			switch prev := values[i-1]; {
			case v > prev:
				upRun++
				downRun = 1
			case v < prev:
				downRun++
				upRun = 1
			default:
				upRun, downRun = 1, 1
			}
		}
		if upRun >= TrendRunLength || downRun >= TrendRunLength {
			flags[i] = true
		}
	}

	return flags
}

// DetectBeyondLimits is the simplified rule-1-only pass used for the fixed
// mini-chart view.
func DetectBeyondLimits(values []float64, limits model.ControlLimits) []bool {
	flags := make([]bool, len(values))
	if limits.Degenerate {
		return flags
	}
	for i, v := range values {
		if v > limits.Ucl || v < limits.Lcl {
			flags[i] = true
		}
	}
	return flags
}
