package service

import (
	"alcyxob/run-tracker/internal/domain"
	"alcyxob/run-tracker/internal/repository"
	"context"
	"fmt"
	"log"
	"sort"
	"time"
)

// --- Service Interface ---

type RunService interface {
	// Collection
	Load(ctx context.Context) error
	AddRun(ctx context.Context, run domain.Run) error
	AllRuns() []domain.Run
	RecentRuns(limit int) []domain.Run

	// Stats
	StatsFor(from, to time.Time) domain.RunStats
	ThisCalendarWeek() domain.RunStats
	Last7Days() domain.RunStats
	Last30Days() domain.RunStats
	Last365Days() domain.RunStats
	CalendarYear() domain.RunStats
	AllTime() domain.RunStats
	Snapshot() []domain.WindowStats

	// Goals
	WeekStart() time.Time
	WeekEnd() time.Time
	RemainingDaysInWeek() int
	NextRunGoalMiles() float64
	NextWeeklyGoalMiles() float64
	WeeklyGoalBreakdown(plannedRunsRemaining int) domain.WeeklyGoalBreakdown
	PaceMinutesPerMile(run domain.Run) float64
	StandardOutdoorTrackLengthFeet() float64
}

// --- Service Implementation ---

// runService owns the in-memory run collection for the process lifetime.
// It is not safe for concurrent use; one interactive session drives it.
type runService struct {
	runRepo repository.RunRepository
	runs    []domain.Run
	now     func() time.Time
}

// Option configures a RunService.
type Option func(*runService)

// WithClock sets the source of "today" for all rolling windows and goals.
func WithClock(now func() time.Time) Option {
	return func(s *runService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRunService creates a new instance of runService with an empty collection.
// Call Load to read the stored history.
func NewRunService(runRepo repository.RunRepository, opts ...Option) RunService {
	s := &runService{
		runRepo: runRepo,
		runs:    []domain.Run{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the stored one. Whatever could
// be read is kept even when an error is returned.
func (s *runService) Load(ctx context.Context) error {
	runs, err := s.runRepo.Load(ctx)
	if runs != nil {
		s.runs = runs
	}
	if err != nil {
		return fmt.Errorf("load runs: %w", err)
	}
	log.Printf("INFO: Loaded %d runs", len(s.runs))
	return nil
}

// AddRun appends run and rewrites the store. If the save fails the run stays
// in memory for this session and the error is returned so the caller can warn.
func (s *runService) AddRun(ctx context.Context, run domain.Run) error {
	s.runs = append(s.runs, run)
	if err := s.runRepo.Save(ctx, s.runs); err != nil {
		return fmt.Errorf("save runs: %w", err)
	}
	return nil
}

// AllRuns returns a copy of the collection in insertion (file) order.
func (s *runService) AllRuns() []domain.Run {
	out := make([]domain.Run, len(s.runs))
	copy(out, s.runs)
	return out
}

// RecentRuns returns up to limit runs, most recent date first. Runs on the
// same date keep their insertion order. limit <= 0 means no limit.
func (s *runService) RecentRuns(limit int) []domain.Run {
	out := s.AllRuns()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date().After(out[j].Date())
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *runService) today() time.Time {
	return domain.DateOf(s.now())
}
