package service

import (
	"alcyxob/run-tracker/internal/domain"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRunGoalStaircase(t *testing.T) {
	tests := []struct {
		last float64
		want float64
	}{
		{0, 0.25},
		{1.0, 1.25},
		{1.49, 1.74},
		{1.5, 2.0},
		{2.9, 3.4},
		{3.0, 4.0},
		{8.5, 9.5},
		{8.99, 9.99},
		{9.0, domain.HalfMarathonMiles},
		{9.5, domain.HalfMarathonMiles},
		{10.0, domain.HalfMarathonMiles},
		{22.99, domain.HalfMarathonMiles},
		{23.0, domain.MarathonMiles},
		{31.0, domain.MarathonMiles},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("last=%.2f", tt.last), func(t *testing.T) {
			assert.InDelta(t, tt.want, nextRunGoal(tt.last), 1e-9)
		})
	}
}

func TestNextRunGoalIsNonDecreasing(t *testing.T) {
	prev := nextRunGoal(0)
	for i := 1; i <= 3000; i++ {
		last := float64(i) / 100
		goal := nextRunGoal(last)
		assert.GreaterOrEqual(t, goal, prev, "last=%.2f", last)
		prev = goal
	}
}

func TestNextRunGoalMilesUsesMostRecentDate(t *testing.T) {
	svc, _ := newLoadedService(t, "2025-01-15")
	assert.Equal(t, 0.25, svc.NextRunGoalMiles())

	svc, _ = newLoadedService(t, "2025-01-15",
		miles("2025-01-14", 2), miles("2025-01-01", 8))
	assert.InDelta(t, 2.5, svc.NextRunGoalMiles(), 1e-9)

	svc, _ = newLoadedService(t, "2025-01-15", miles("2025-01-14", 10))
	assert.Equal(t, domain.HalfMarathonMiles, svc.NextRunGoalMiles())
	assert.True(t, IsMilestone(svc.NextRunGoalMiles()))
}

func TestNextRunGoalMilesSameDateUsesLastLogged(t *testing.T) {
	svc, _ := newLoadedService(t, "2025-01-15",
		miles("2025-01-14", 2), miles("2025-01-14", 5))
	assert.InDelta(t, 6.0, svc.NextRunGoalMiles(), 1e-9)
}

func TestWeekBoundaries(t *testing.T) {
	tests := []struct {
		today     string
		start     string
		end       string
		remaining int
	}{
		{"2025-01-12", "2025-01-12", "2025-01-18", 6}, // Sunday
		{"2025-01-15", "2025-01-12", "2025-01-18", 3}, // Wednesday
		{"2025-01-18", "2025-01-12", "2025-01-18", 0}, // Saturday
		{"2025-03-01", "2025-02-23", "2025-03-01", 0}, // Saturday across a month end
	}
	for _, tt := range tests {
		t.Run(tt.today, func(t *testing.T) {
			svc, _ := newLoadedService(t, tt.today)
			assert.True(t, svc.WeekStart().Equal(date(tt.start)), "start %s", svc.WeekStart())
			assert.True(t, svc.WeekEnd().Equal(date(tt.end)), "end %s", svc.WeekEnd())
			assert.Equal(t, tt.remaining, svc.RemainingDaysInWeek())
		})
	}
}

func TestNextWeeklyGoalMiles(t *testing.T) {
	// Last week for 2025-01-15 is Sun 01-05 through Sat 01-11.
	svc, _ := newLoadedService(t, "2025-01-15",
		miles("2025-01-04", 20), // before last week
		miles("2025-01-05", 4),
		miles("2025-01-11", 5),
		miles("2025-01-12", 20), // this week
	)
	assert.InDelta(t, 12.0, svc.NextWeeklyGoalMiles(), 1e-9)

	svc, _ = newLoadedService(t, "2025-01-15", miles("2025-01-06", 12.5), miles("2025-01-09", 12.5))
	assert.InDelta(t, 30.0, svc.NextWeeklyGoalMiles(), 1e-9)

	svc, _ = newLoadedService(t, "2025-01-15")
	assert.InDelta(t, 3.0, svc.NextWeeklyGoalMiles(), 1e-9)
}

func TestWeeklyGoalBreakdown(t *testing.T) {
	svc := windowFixture(t) // last week 9 mi, this week 5 mi, today Wednesday

	got := svc.WeeklyGoalBreakdown(0)
	assert.InDelta(t, 12.0, got.WeeklyGoalMiles, 1e-9)
	assert.InDelta(t, 5.0, got.MilesCompletedThisWeek, 1e-9)
	assert.InDelta(t, 7.0, got.MilesRemaining, 1e-9)
	assert.Equal(t, 3, got.RunsRemaining)
	assert.InDelta(t, 2.33, got.MilesPerRun, 1e-9)

	got = svc.WeeklyGoalBreakdown(2)
	assert.Equal(t, 2, got.RunsRemaining)
	assert.InDelta(t, 3.5, got.MilesPerRun, 1e-9)
}

func TestWeeklyGoalBreakdownOnSaturdayUsesOneRun(t *testing.T) {
	svc, _ := newLoadedService(t, "2025-01-18", miles("2025-01-07", 4))

	got := svc.WeeklyGoalBreakdown(0)
	assert.Equal(t, 1, got.RunsRemaining)
	assert.InDelta(t, 7.0, got.MilesPerRun, 1e-9)
}

func TestWeeklyGoalBreakdownGoalAlreadyMet(t *testing.T) {
	svc, _ := newLoadedService(t, "2025-01-15", miles("2025-01-13", 10))

	got := svc.WeeklyGoalBreakdown(0)
	assert.Equal(t, 0.0, got.MilesRemaining)
	assert.Equal(t, 0.0, got.MilesPerRun)
	assert.Equal(t, 3, got.RunsRemaining)
}
