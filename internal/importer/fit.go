// internal/importer/fit.go
package importer

import (
	"alcyxob/run-tracker/internal/domain"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/tormoder/fit"
)

var (
	ErrNoRunningSession = errors.New("no running session found in FIT file")
	ErrInvalidSession   = errors.New("FIT session has no usable distance")
)

// FITImporter turns the running sessions of FIT activity files into runs.
type FITImporter struct {
	// Location decides which calendar day a session start time falls on.
	Location *time.Location
}

func NewFITImporter(loc *time.Location) *FITImporter {
	if loc == nil {
		loc = time.Local
	}
	return &FITImporter{Location: loc}
}

// ImportFile decodes the FIT file at path.
func (i *FITImporter) ImportFile(ctx context.Context, path string) ([]domain.Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	runs, err := i.Import(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return runs, nil
}

// Import decodes a FIT activity and returns one run per running session.
// Sessions without a valid distance are skipped.
func (i *FITImporter) Import(ctx context.Context, r io.Reader) ([]domain.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fitFile, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file: %w", err)
	}
	activity, err := fitFile.Activity()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity from FIT: %w", err)
	}
	return i.runsFromSessions(activity.Sessions)
}

func (i *FITImporter) runsFromSessions(sessions []*fit.SessionMsg) ([]domain.Run, error) {
	var runs []domain.Run
	for idx, session := range sessions {
		if session == nil || session.Sport != fit.SportRunning {
			continue
		}
		run, err := i.runFromSession(session)
		if err != nil {
			log.Printf("WARN: Skipping FIT session %d: %v", idx, err)
			continue
		}
		runs = append(runs, run)
	}
	if len(runs) == 0 {
		return nil, ErrNoRunningSession
	}
	return runs, nil
}

func (i *FITImporter) runFromSession(session *fit.SessionMsg) (domain.Run, error) {
	meters := session.GetTotalDistanceScaled()
	if math.IsNaN(meters) || meters <= 0 {
		return domain.Run{}, ErrInvalidSession
	}

	var seconds int64
	if timer := session.GetTotalTimerTimeScaled(); !math.IsNaN(timer) && timer > 0 {
		seconds = int64(math.Round(timer))
	}

	date := domain.DateOf(session.StartTime.In(i.Location))
	return domain.FromKilometers(date, meters/1000, seconds), nil
}
