package spc

const (
	// d2 bias constant for a 2-point moving range, standard Shewhart
	// I-chart convention: sigma = averageMovingRange / 1.128
	MovingRangeD2 = 1.128

	SigmaMultiplier = 3.0

	// run-rule thresholds
	ShiftRunLength = 8
	TrendRunLength = 6

	// a baseline window with fewer points is not statistically meaningful,
	// fall back to whole-series limits
	MinBaselinePoints = 8

	// a gap above this multiple of the expected period spacing means
	// periods are missing, which breaks run/trend continuity
	GapToleranceFactor = 1.5
)
