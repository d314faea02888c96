package cli

import (
	"alcyxob/run-tracker/internal/domain"
	"fmt"
	"strings"
)

const unknown = "─"

func (a *App) printStatBlock(w domain.WindowStats) {
	s := w.Stats
	a.printf("  [ %s ]\n", w.Label)
	a.printf("    Runs: %-5d  Total: %-6.2f mi  Avg: %-5.2f mi\n", s.TotalRuns, s.TotalMiles, s.AvgMiles)
	a.printf("    Best single day: %.2f mi\n", s.HighestDayMiles)
	a.println(strings.Repeat("-", 46))
}

func (a *App) printBreakdown(wb domain.WeeklyGoalBreakdown) {
	a.println()
	a.println(" Weekly Goal Breakdown")
	a.println(strings.Repeat("─", 42))
	a.printf("  Week target:      %.2f mi\n", wb.WeeklyGoalMiles)
	a.printf("  Already run:      %.2f mi\n", wb.MilesCompletedThisWeek)
	a.printf("  Miles remaining:  %.2f mi\n", wb.MilesRemaining)
	a.printf("  Runs planned:     %d\n", wb.RunsRemaining)
	a.printf("  Miles per run:    %.2f mi\n", wb.MilesPerRun)
	a.println(strings.Repeat("─", 42))
}

func (a *App) printHistory(recent []domain.Run, total int) {
	a.println("\n Run History (most recent first)")
	a.println(strings.Repeat("─", 58))
	a.printf("%-12s  %-10s  %-10s  %-10s  %-6s\n", "Date", "Miles", "Duration", "Pace/mi", "Type")
	a.println(strings.Repeat("─", 58))

	for _, r := range recent {
		dur, pace := unknown, unknown
		if r.HasDuration() {
			dur = formatDuration(r.DurationSeconds())
			pace = fmt.Sprintf("%.1f min", a.runService.PaceMinutesPerMile(r))
		}
		a.printf("%-12s  %-10.2f  %-10s  %-10s  %-6s\n",
			domain.FormatDate(r.Date()), r.DistanceMiles(), dur, pace, r.InputType())
	}

	if total > len(recent) {
		a.printf("  ... and %d more in file.\n", total-len(recent))
	}
	a.println(strings.Repeat("─", 58))
}

func (a *App) printRunSummary(r domain.Run) {
	a.println("\n--- Run Summary -------------------")
	a.printf("  Date:       %s\n", domain.FormatDate(r.Date()))
	a.printf("  Distance:   %.2f mi\n", r.DistanceMiles())
	if r.HasDuration() {
		a.printf("  Duration:   %s\n", formatDuration(r.DurationSeconds()))
		a.printf("  Pace:       %.2f min/mi\n", a.runService.PaceMinutesPerMile(r))
	}
	a.printf("  Entered as: %s\n", r.InputType())
	a.println("-----------------------------------")
}
