package service

import (
	"alcyxob/run-tracker/internal/domain"
	"time"
)

// Window labels used by Snapshot.
const (
	LabelThisWeek     = "This Week (Sun-Sat)"
	LabelLast7Days    = "Last 7 Days"
	LabelLast30Days   = "Last 30 Days"
	LabelLast365Days  = "Last 365 Days"
	LabelCalendarYear = "Calendar Year"
	LabelAllTime      = "All Time"
)

// StatsFor aggregates runs dated within [from, to], both ends inclusive.
func (s *runService) StatsFor(from, to time.Time) domain.RunStats {
	return statsFor(s.runs, domain.DateOf(from), domain.DateOf(to))
}

func statsFor(runs []domain.Run, from, to time.Time) domain.RunStats {
	var stats domain.RunStats
	for _, r := range runs {
		if !domain.InRange(r.Date(), from, to) {
			continue
		}
		stats.TotalRuns++
		stats.TotalMiles += r.DistanceMiles()
		if r.DistanceMiles() > stats.HighestDayMiles {
			stats.HighestDayMiles = r.DistanceMiles()
		}
	}
	if stats.TotalRuns > 0 {
		stats.AvgMiles = stats.TotalMiles / float64(stats.TotalRuns)
	}
	return stats
}

func (s *runService) ThisCalendarWeek() domain.RunStats {
	return s.StatsFor(s.WeekStart(), s.WeekEnd())
}

func (s *runService) Last7Days() domain.RunStats { return s.lastDays(7) }
func (s *runService) Last30Days() domain.RunStats { return s.lastDays(30) }
func (s *runService) Last365Days() domain.RunStats { return s.lastDays(365) }

// lastDays covers [today - n days, today].
func (s *runService) lastDays(n int) domain.RunStats {
	today := s.today()
	return s.StatsFor(today.AddDate(0, 0, -n), today)
}

func (s *runService) CalendarYear() domain.RunStats {
	today := s.today()
	return s.StatsFor(janFirst(today), today)
}

// AllTime covers the earliest logged date through today.
func (s *runService) AllTime() domain.RunStats {
	earliest, ok := s.earliestDate()
	if !ok {
		return domain.RunStats{}
	}
	return s.StatsFor(earliest, s.today())
}

// Snapshot computes all six named windows against the same "today".
func (s *runService) Snapshot() []domain.WindowStats {
	today := s.today()
	weekStart := startOfWeek(today)
	windows := []domain.WindowStats{
		{Label: LabelThisWeek, From: weekStart, To: weekStart.AddDate(0, 0, 6)},
		{Label: LabelLast7Days, From: today.AddDate(0, 0, -7), To: today},
		{Label: LabelLast30Days, From: today.AddDate(0, 0, -30), To: today},
		{Label: LabelLast365Days, From: today.AddDate(0, 0, -365), To: today},
		{Label: LabelCalendarYear, From: janFirst(today), To: today},
	}
	for i := range windows {
		windows[i].Stats = statsFor(s.runs, windows[i].From, windows[i].To)
	}

	allTime := domain.WindowStats{Label: LabelAllTime, To: today}
	if earliest, ok := s.earliestDate(); ok {
		allTime.From = earliest
		allTime.Stats = statsFor(s.runs, earliest, today)
	}
	return append(windows, allTime)
}

func (s *runService) earliestDate() (time.Time, bool) {
	if len(s.runs) == 0 {
		return time.Time{}, false
	}
	earliest := s.runs[0].Date()
	for _, r := range s.runs[1:] {
		if r.Date().Before(earliest) {
			earliest = r.Date()
		}
	}
	return earliest, true
}

func janFirst(d time.Time) time.Time {
	return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Sunday on or before d.
func startOfWeek(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}
