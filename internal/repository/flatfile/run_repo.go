// internal/repository/flatfile/run_repo.go
package flatfile

import (
	"alcyxob/run-tracker/internal/domain"
	"alcyxob/run-tracker/internal/repository"
	"alcyxob/run-tracker/internal/storage"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
)

// Header is written as the first line of every store file.
const Header = "# date,distanceMiles,durationSeconds,inputType"

const minFields = 4

// LineError describes a store line that was skipped during Load.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

var errShortLine = errors.New("expected at least 4 comma-separated fields")

// flatFileRunRepository implements repository.RunRepository on a delimited text file.
type flatFileRunRepository struct {
	path    string
	storage storage.FileStorage
	logger  *log.Logger
}

// Option configures the flat file repository.
type Option func(*flatFileRunRepository)

// WithLogger routes per-line diagnostics to logger instead of the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *flatFileRunRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewFlatFileRunRepository creates a repository backed by the file at path.
func NewFlatFileRunRepository(path string, fileStorage storage.FileStorage, opts ...Option) repository.RunRepository {
	r := &flatFileRunRepository{
		path:    path,
		storage: fileStorage,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads the store. Every malformed line (too few fields, bad date,
// number or tag) is skipped with a warning and loading continues.
func (r *flatFileRunRepository) Load(ctx context.Context) ([]domain.Run, error) {
	runs := []domain.Run{}

	rc, err := r.storage.Open(ctx, r.path)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return runs, nil
	}
	if err != nil {
		r.logger.Printf("ERROR: Failed to open run store '%s': %v", r.path, err)
		return runs, fmt.Errorf("%w: %w", repository.ErrStoreRead, err)
	}
	defer rc.Close()

	// Lines have no length limit; an oversized line is just another malformed record.
	reader := bufio.NewReader(rc)
	lineNum := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if raw != "" {
			lineNum++
			if run, ok := r.parseRecord(lineNum, raw); ok {
				runs = append(runs, run)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			r.logger.Printf("ERROR: Failed reading run store '%s' after %d runs: %v", r.path, len(runs), readErr)
			return runs, fmt.Errorf("%w: %w", repository.ErrStoreRead, readErr)
		}
	}

	return runs, nil
}

func (r *flatFileRunRepository) parseRecord(lineNum int, raw string) (domain.Run, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return domain.Run{}, false
	}
	run, err := parseLine(line)
	if err != nil {
		lineErr := &LineError{Line: lineNum, Err: err}
		r.logger.Printf("WARN: Skipping malformed line in '%s': %v", r.path, truncate(lineErr.Error(), 200))
		return domain.Run{}, false
	}
	return run, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Save rewrites the whole store: header line, then one line per run.
func (r *flatFileRunRepository) Save(ctx context.Context, runs []domain.Run) error {
	err := r.storage.Replace(ctx, r.path, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
		for _, run := range runs {
			if _, err := fmt.Fprintln(w, formatLine(run)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Printf("ERROR: Failed to save %d runs to '%s': %v", len(runs), r.path, err)
		return fmt.Errorf("%w: %w", repository.ErrStoreWrite, err)
	}
	return nil
}

func formatLine(run domain.Run) string {
	return fmt.Sprintf("%s,%.4f,%d,%s",
		domain.FormatDate(run.Date()),
		run.DistanceMiles(),
		run.DurationSeconds(),
		run.InputType(),
	)
}

func parseLine(line string) (domain.Run, error) {
	parts := strings.Split(line, ",")
	if len(parts) < minFields {
		return domain.Run{}, errShortLine
	}

	date, err := domain.ParseDate(parts[0])
	if err != nil {
		return domain.Run{}, fmt.Errorf("bad date %q: %w", parts[0], err)
	}
	miles, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Run{}, fmt.Errorf("bad distance %q: %w", parts[1], err)
	}
	if miles < 0 || math.IsNaN(miles) || math.IsInf(miles, 0) {
		return domain.Run{}, fmt.Errorf("invalid distance %q", parts[1])
	}
	seconds, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return domain.Run{}, fmt.Errorf("bad duration %q: %w", parts[2], err)
	}
	if seconds < 0 {
		return domain.Run{}, fmt.Errorf("negative duration %q", parts[2])
	}
	tag, err := domain.ParseInputType(parts[3])
	if err != nil {
		return domain.Run{}, err
	}

	return domain.FromStored(date, miles, seconds, tag), nil
}
