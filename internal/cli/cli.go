// internal/cli/cli.go
package cli

import (
	"alcyxob/run-tracker/internal/domain"
	"alcyxob/run-tracker/internal/importer"
	"alcyxob/run-tracker/internal/service"
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// App drives one interactive session against a RunService.
type App struct {
	runService   service.RunService
	fitImporter  *importer.FITImporter
	in           *bufio.Scanner
	out          io.Writer
	historyLimit int
	now          func() time.Time
}

// NewApp wires the menu loop to its collaborators. now supplies "today" for
// the date prompt and should match the service clock.
func NewApp(runService service.RunService, fitImporter *importer.FITImporter, in io.Reader, out io.Writer, historyLimit int, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}
	return &App{
		runService:   runService,
		fitImporter:  fitImporter,
		in:           bufio.NewScanner(in),
		out:          out,
		historyLimit: historyLimit,
		now:          now,
	}
}

// Run shows the menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.println("Welcome to RunTracker!")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.printMenu()
		choice, err := a.readLine()
		if err != nil {
			return endOfInput(err)
		}
		a.println()

		switch choice {
		case "1":
			err = a.logRun(ctx)
		case "2":
			err = a.showStats()
		case "3":
			a.showHistory()
		case "4":
			err = a.importFIT(ctx)
		case "5":
			a.println("Stay consistent. See you next run!")
			return nil
		default:
			a.println("Invalid option, try again.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput treats a closed input stream as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *App) printMenu() {
	a.println(`
==============================
       ** RUN TRACKER **
==============================
  1. Log a run
  2. Stats & goals
  3. Run history
  4. Import FIT file
  5. Exit
==============================`)
	a.printf("  Choice: ")
}

func (a *App) logRun(ctx context.Context) error {
	a.println(" Log a Run")
	date, err := a.promptDate()
	if err != nil {
		return err
	}

	a.printf("Duration [hh:mm:ss or mm:ss, or Enter to skip]: ")
	raw, err := a.readLine()
	if err != nil {
		return err
	}
	seconds, ok := parseDuration(raw)
	if !ok {
		a.println(" Could not parse duration, skipping.")
	}

	measurement, err := a.promptMeasurement()
	if err != nil {
		return err
	}

	run := domain.NewRun(date, measurement, seconds)
	if err := a.runService.AddRun(ctx, run); err != nil {
		a.printf("WARNING: run kept for this session but not saved: %v\n", err)
	} else {
		a.println("Run saved!")
	}
	a.printRunSummary(run)
	return a.showGoals()
}

func (a *App) promptMeasurement() (domain.Measurement, error) {
	for {
		a.println("How did you measure your run?")
		a.println("  1. Miles")
		a.println("  2. Kilometers")
		a.println("  3. Laps")
		a.printf("  Choice: ")
		choice, err := a.readLine()
		if err != nil {
			return nil, err
		}

		switch choice {
		case "1":
			mi, err := a.promptPositiveFloat("Distance (miles): ")
			if err != nil {
				return nil, err
			}
			return domain.Miles(mi), nil
		case "2":
			km, err := a.promptPositiveFloat("Distance (km): ")
			if err != nil {
				return nil, err
			}
			return domain.Kilometers(km), nil
		case "3":
			return a.promptLaps()
		default:
			a.println("  Please enter 1, 2, or 3.")
		}
	}
}

func (a *App) promptLaps() (domain.Measurement, error) {
	laps, err := a.promptPositiveInt("Number of laps: ")
	if err != nil {
		return nil, err
	}

	a.println("Track size:")
	a.printf("  1. Standard outdoor track (%.0f ft / 0.25 mi)\n", a.runService.StandardOutdoorTrackLengthFeet())
	a.printf("  2. Standard indoor track  (200 m / ~%.0f ft)\n", domain.IndoorTrackFeet)
	a.println("  3. Enter custom track size in feet")
	a.println("  4. Enter custom track size in meters")
	a.printf("  Choice: ")
	choice, err := a.readLine()
	if err != nil {
		return nil, err
	}

	var trackFeet float64
	switch choice {
	case "1":
		trackFeet = a.runService.StandardOutdoorTrackLengthFeet()
	case "2":
		trackFeet = domain.IndoorTrackFeet
	case "3":
		if trackFeet, err = a.promptPositiveFloat("Track length (feet): "); err != nil {
			return nil, err
		}
	case "4":
		meters, err := a.promptPositiveFloat("Track length (meters): ")
		if err != nil {
			return nil, err
		}
		trackFeet = meters * domain.FeetPerMeter
	default:
		a.println("  Invalid, using standard outdoor track.")
		trackFeet = a.runService.StandardOutdoorTrackLengthFeet()
	}

	m := domain.Laps{Count: laps, TrackFeet: trackFeet}
	a.printf("  -> %.1f laps = 1 mile on this track\n", domain.FeetPerMile/trackFeet)
	a.printf("  -> Your %d laps = %.2f miles\n", laps, m.Miles())
	return m, nil
}

func (a *App) showStats() error {
	div := strings.Repeat("=", 46)
	a.println(div)
	a.println("               ** YOUR STATS **")
	a.println(div)
	for _, w := range a.runService.Snapshot() {
		a.printStatBlock(w)
	}
	a.println(div)
	return a.showGoals()
}

func (a *App) showGoals() error {
	nextRun := a.runService.NextRunGoalMiles()
	a.printf("\n Next run goal:  %.2f mi", nextRun)
	switch nextRun {
	case domain.HalfMarathonMiles:
		a.printf("   Half Marathon!")
	case domain.MarathonMiles:
		a.printf("   Full Marathon!")
	}
	a.println()

	a.printf("Runs left this week? [Enter for default (1 per remaining day)]: ")
	input, err := a.readLine()
	if err != nil {
		return err
	}
	runsLeft := 0
	if input != "" {
		n, ok := parseNonNegativeInt(input)
		if !ok {
			a.println("  Invalid, using default.")
		}
		runsLeft = n
	}

	a.printBreakdown(a.runService.WeeklyGoalBreakdown(runsLeft))
	return nil
}

func (a *App) showHistory() {
	runs := a.runService.AllRuns()
	if len(runs) == 0 {
		a.println("No runs logged yet.")
		return
	}
	a.printHistory(a.runService.RecentRuns(a.historyLimit), len(runs))
}

func (a *App) importFIT(ctx context.Context) error {
	if a.fitImporter == nil {
		a.println("FIT import is not available.")
		return nil
	}
	a.printf("FIT file path: ")
	path, err := a.readLine()
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	runs, err := a.fitImporter.ImportFile(ctx, path)
	if err != nil {
		a.printf("Could not import %s: %v\n", path, err)
		return nil
	}
	for _, run := range runs {
		if err := a.runService.AddRun(ctx, run); err != nil {
			a.printf("WARNING: run kept for this session but not saved: %v\n", err)
		}
		a.printRunSummary(run)
	}
	a.printf("Imported %d run(s).\n", len(runs))
	return nil
}
