package importer

import (
	"alcyxob/run-tracker/internal/domain"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tormoder/fit"
)

func runningSession(start time.Time, centimeters, milliseconds uint32) *fit.SessionMsg {
	s := fit.NewSessionMsg()
	s.Sport = fit.SportRunning
	s.StartTime = start
	s.TotalDistance = centimeters
	s.TotalTimerTime = milliseconds
	return s
}

func TestRunFromSessionConvertsUnits(t *testing.T) {
	imp := NewFITImporter(time.UTC)
	start := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)

	// 10 km in 50:00.4
	runs, err := imp.runsFromSessions([]*fit.SessionMsg{runningSession(start, 1_000_000, 3_000_400)})
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.True(t, run.Date().Equal(time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)))
	assert.InDelta(t, 6.21371, run.DistanceMiles(), 1e-9)
	assert.Equal(t, int64(3000), run.DurationSeconds())
	assert.Equal(t, domain.InputKm, run.InputType())
}

func TestRunFromSessionUsesLocationForDate(t *testing.T) {
	imp := NewFITImporter(time.FixedZone("PDT", -7*3600))
	start := time.Date(2025, 4, 21, 2, 0, 0, 0, time.UTC) // evening of the 20th in PDT

	runs, err := imp.runsFromSessions([]*fit.SessionMsg{runningSession(start, 500_000, 0)})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Date().Equal(time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, runs[0].HasDuration())
}

func TestRunsFromSessionsSkipsOtherSportsAndInvalidDistance(t *testing.T) {
	imp := NewFITImporter(time.UTC)
	start := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)

	ride := runningSession(start, 2_000_000, 3_600_000)
	ride.Sport = fit.SportCycling
	noDistance := fit.NewSessionMsg()
	noDistance.Sport = fit.SportRunning
	noDistance.StartTime = start

	_, err := imp.runsFromSessions([]*fit.SessionMsg{ride, noDistance, nil})
	require.ErrorIs(t, err, ErrNoRunningSession)

	runs, err := imp.runsFromSessions([]*fit.SessionMsg{ride, noDistance, runningSession(start, 160_934, 600_000)})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.InDelta(t, 1.0, runs[0].DistanceMiles(), 1e-4)
}

func TestImportRejectsNonFITData(t *testing.T) {
	imp := NewFITImporter(time.UTC)
	_, err := imp.Import(context.Background(), strings.NewReader("date,distance\n"))
	require.Error(t, err)
}
