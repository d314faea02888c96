package service

import (
	"alcyxob/run-tracker/internal/domain"
	"math"
	"time"
)

// Goal staircase thresholds (miles).
const (
	halfMarathonThreshold = 10.0
	marathonThreshold     = 23.0
	lowWeeklyThreshold    = 25.0
)

func (s *runService) WeekStart() time.Time {
	return startOfWeek(s.today())
}

// WeekEnd returns the Saturday on or after today.
func (s *runService) WeekEnd() time.Time {
	return s.WeekStart().AddDate(0, 0, 6)
}

// RemainingDaysInWeek counts the days after today up to and including
// Saturday: 6 on a Sunday, 0 on a Saturday.
func (s *runService) RemainingDaysInWeek() int {
	days := int(s.WeekEnd().Sub(s.today()).Hours() / 24)
	return max(0, days)
}

// NextRunGoalMiles steps the most recently dated run's distance up the goal
// staircase. With no runs logged the last distance counts as 0.
func (s *runService) NextRunGoalMiles() float64 {
	return nextRunGoal(s.lastRunMiles())
}

func (s *runService) lastRunMiles() float64 {
	if len(s.runs) == 0 {
		return 0
	}
	last := s.runs[0]
	for _, r := range s.runs[1:] {
		if !r.Date().Before(last.Date()) {
			last = r
		}
	}
	return last.DistanceMiles()
}

func nextRunGoal(last float64) float64 {
	if last >= marathonThreshold {
		return domain.MarathonMiles
	}
	if last >= halfMarathonThreshold {
		return domain.HalfMarathonMiles
	}

	goal := last + runIncrement(last)

	if goal >= halfMarathonThreshold && last < halfMarathonThreshold {
		return domain.HalfMarathonMiles
	}
	if goal >= marathonThreshold && last < marathonThreshold {
		return domain.MarathonMiles
	}
	return round2(goal)
}

func runIncrement(last float64) float64 {
	switch {
	case last < 1.5:
		return 0.25
	case last < 3.0:
		return 0.50
	case last < halfMarathonThreshold:
		return 1.00
	default:
		return 2.00
	}
}

// NextWeeklyGoalMiles builds on last calendar week's (Sun-Sat) total.
func (s *runService) NextWeeklyGoalMiles() float64 {
	weekStart := s.WeekStart()
	lastWeek := s.StatsFor(weekStart.AddDate(0, 0, -7), weekStart.AddDate(0, 0, -1))

	increment := 5.0
	if lastWeek.TotalMiles < lowWeeklyThreshold {
		increment = 3.0
	}
	return round2(lastWeek.TotalMiles + increment)
}

// WeeklyGoalBreakdown spreads what is left of this week's goal over the
// planned runs. plannedRunsRemaining <= 0 means one run per remaining day,
// and at least one run.
func (s *runService) WeeklyGoalBreakdown(plannedRunsRemaining int) domain.WeeklyGoalBreakdown {
	weeklyGoal := s.NextWeeklyGoalMiles()
	milesThisWeek := s.ThisCalendarWeek().TotalMiles
	milesRemaining := math.Max(0, weeklyGoal-milesThisWeek)

	runs := plannedRunsRemaining
	if runs <= 0 {
		runs = max(1, s.RemainingDaysInWeek())
	}

	return domain.WeeklyGoalBreakdown{
		WeeklyGoalMiles:        weeklyGoal,
		MilesCompletedThisWeek: milesThisWeek,
		MilesRemaining:         milesRemaining,
		RunsRemaining:          runs,
		MilesPerRun:            round2(milesRemaining / float64(runs)),
	}
}

func (s *runService) PaceMinutesPerMile(run domain.Run) float64 {
	return run.PaceMinutesPerMile()
}

func (s *runService) StandardOutdoorTrackLengthFeet() float64 {
	return domain.StandardOutdoorTrackFeet
}

// IsMilestone reports whether goal is one of the race distances.
func IsMilestone(goal float64) bool {
	return goal == domain.HalfMarathonMiles || goal == domain.MarathonMiles
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
