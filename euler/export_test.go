package euler

// Test bridge for the unexported fallbacks.
var (
	FirstVisits = firstVisits
	LongTour    = longTour
	Repair      = repair
	Reselect    = reselect
	Rotate      = rotate
)
