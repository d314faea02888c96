package cli

import (
	"alcyxob/run-tracker/internal/domain"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// readLine returns the next trimmed input line, or io.EOF once input ends.
func (a *App) readLine() (string, error) {
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}

func (a *App) promptDate() (time.Time, error) {
	for {
		a.printf("Date [today / yyyy-MM-dd]: ")
		input, err := a.readLine()
		if err != nil {
			return time.Time{}, err
		}
		if input == "" || strings.EqualFold(input, "today") {
			today := domain.DateOf(a.now())
			a.println("  -> " + domain.FormatDate(today))
			return today, nil
		}
		d, err := domain.ParseDate(input)
		if err == nil {
			return d, nil
		}
		a.println("Use 'today' or yyyy-MM-dd (e.g. 2025-04-20).")
	}
}

func (a *App) promptPositiveFloat(prompt string) (float64, error) {
	for {
		a.printf("%s", prompt)
		input, err := a.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(input, 64)
		switch {
		case err != nil:
			a.println("Enter a number (e.g. 3.1).")
		case math.IsNaN(v) || math.IsInf(v, 0):
			a.println("Enter a finite number (e.g. 3.1).")
		case v <= 0:
			a.println("Must be greater than 0.")
		default:
			return v, nil
		}
	}
}

func (a *App) promptPositiveInt(prompt string) (int, error) {
	for {
		a.printf("%s", prompt)
		input, err := a.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(input)
		switch {
		case err != nil:
			a.println("Enter a whole number.")
		case v <= 0:
			a.println("Must be greater than 0.")
		default:
			return v, nil
		}
	}
}

func parseNonNegativeInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// parseDuration accepts mm:ss or hh:mm:ss. Empty input is "not recorded"
// and parses as 0; anything else unparsable also yields 0 with ok=false.
func parseDuration(s string) (seconds int64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return 0, false
		}
		seconds = seconds*60 + n
	}
	return seconds, true
}

func formatDuration(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
