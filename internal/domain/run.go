// internal/domain/run.go
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InputType records how the distance of a run was originally entered.
// It is display metadata only; the canonical distance is always miles.
type InputType string

const (
	InputMiles InputType = "MILES"
	InputKm    InputType = "KM"
	InputLaps  InputType = "LAPS"
)

// Conversion constants
const (
	MilesPerKilometer        = 0.621371
	FeetPerMile              = 5280.0
	FeetPerMeter             = 3.28084
	StandardOutdoorTrackFeet = 1320.0              // 1/4 mile outdoor track
	IndoorTrackFeet          = 200 * FeetPerMeter // 200 m indoor track
)

var ErrUnknownInputType = errors.New("unknown input type")

// ParseInputType maps a persisted tag (MILES, KM, LAPS) back to an InputType.
func ParseInputType(s string) (InputType, error) {
	switch t := InputType(strings.TrimSpace(s)); t {
	case InputMiles, InputKm, InputLaps:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInputType, s)
	}
}

// Measurement is how a distance was entered. Implementations are Miles,
// Kilometers and Laps.
type Measurement interface {
	Miles() float64
	InputType() InputType
}

// Miles is a distance entered directly in miles.
type Miles float64

func (m Miles) Miles() float64 { return float64(m) }
func (Miles) InputType() InputType { return InputMiles }

// Kilometers is a distance entered in kilometers.
type Kilometers float64

func (k Kilometers) Miles() float64 { return float64(k) * MilesPerKilometer }
func (Kilometers) InputType() InputType { return InputKm }

// Laps is a distance entered as a lap count on a track of the given length.
type Laps struct {
	Count     int
	TrackFeet float64
}

func (l Laps) Miles() float64 { return float64(l.Count) * l.TrackFeet / FeetPerMile }
func (Laps) InputType() InputType { return InputLaps }

// Run is a single logged running session. Values are immutable once built;
// only the mile distance is stored, everything else is derived.
type Run struct {
	date            time.Time
	distanceMiles   float64
	durationSeconds int64
	inputType       InputType
}

// NewRun normalizes a measurement to miles. Inputs are not validated here;
// callers are expected to pass non-negative values.
func NewRun(date time.Time, m Measurement, durationSeconds int64) Run {
	return Run{
		date:            DateOf(date),
		distanceMiles:   m.Miles(),
		durationSeconds: durationSeconds,
		inputType:       m.InputType(),
	}
}

func FromMiles(date time.Time, miles float64, durationSeconds int64) Run {
	return NewRun(date, Miles(miles), durationSeconds)
}

func FromKilometers(date time.Time, km float64, durationSeconds int64) Run {
	return NewRun(date, Kilometers(km), durationSeconds)
}

func FromLaps(date time.Time, laps int, trackFeet float64, durationSeconds int64) Run {
	return NewRun(date, Laps{Count: laps, TrackFeet: trackFeet}, durationSeconds)
}

// FromStored rebuilds a persisted run: the stored mile distance is taken as is
// and the original tag is kept as metadata.
func FromStored(date time.Time, miles float64, durationSeconds int64, tag InputType) Run {
	r := FromMiles(date, miles, durationSeconds)
	r.inputType = tag
	return r
}

func (r Run) Date() time.Time { return r.date }
func (r Run) DistanceMiles() float64 { return r.distanceMiles }
func (r Run) DistanceKm() float64 { return r.distanceMiles / MilesPerKilometer }
func (r Run) DurationSeconds() int64 { return r.durationSeconds }
func (r Run) InputType() InputType { return r.inputType }
func (r Run) HasDuration() bool { return r.durationSeconds > 0 }
func (r Run) Duration() time.Duration { return time.Duration(r.durationSeconds) * time.Second }

// PaceMinutesPerMile returns 0 when either duration or distance was not recorded.
func (r Run) PaceMinutesPerMile() float64 {
	if r.durationSeconds == 0 || r.distanceMiles == 0 {
		return 0
	}
	return (float64(r.durationSeconds) / 60.0) / r.distanceMiles
}

func (r Run) String() string {
	return fmt.Sprintf("%s | %.2f mi | %d sec | entered as: %s",
		FormatDate(r.date), r.distanceMiles, r.durationSeconds, r.inputType)
}
