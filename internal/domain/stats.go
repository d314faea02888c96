package domain

import "time"

// Named goal milestones (miles).
const (
	HalfMarathonMiles = 13.1
	MarathonMiles     = 26.2
)

// RunStats aggregates the runs of one date window. It is derived on every
// query and never stored; an empty window yields the zero value.
type RunStats struct {
	TotalRuns  int
	TotalMiles float64
	AvgMiles   float64
	// HighestDayMiles is the longest single run in the window.
	HighestDayMiles float64
}

// WindowStats pairs a RunStats with the label and bounds it was computed for.
type WindowStats struct {
	Label string
	From  time.Time
	To    time.Time
	Stats RunStats
}

// WeeklyGoalBreakdown spreads the remaining weekly target over the runs left.
type WeeklyGoalBreakdown struct {
	WeeklyGoalMiles        float64
	MilesCompletedThisWeek float64
	MilesRemaining         float64
	RunsRemaining          int
	MilesPerRun            float64
}
