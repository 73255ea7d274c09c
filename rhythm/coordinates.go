package rhythm

import (
	"fmt"
	"math"

	"github.com/gruntwork-io/go-commons/errors"
)

// Coordinates locate a tick on the bar/beat grid of a time signature. Bars and beats are counted from zero.
type Coordinates struct {
	// Bar is the number of complete bars before the tick.
	Bar uint64

	// Beat is the beat within the bar, in [0, numerator).
	Beat uint64

	// NoteOffset is the position of the tick within its beat, in [0, 1).
	NoteOffset float64
}

// ToCoordinates converts an absolute tick into coordinates on a grid of pulsesPerBeat ticks per beat and numerator
// beats per bar.
func ToCoordinates(ticks uint64, pulsesPerBeat uint64, numerator uint64) (Coordinates, error) {
	if pulsesPerBeat == 0 || numerator == 0 {
		return Coordinates{}, errors.WithStackTrace(InvalidTimeSignature{
			Numerator: numerator,
			Reason:    fmt.Sprintf("cannot divide %d pulses per beat into %d beats per bar", pulsesPerBeat, numerator),
		})
	}

	beats := ticks / pulsesPerBeat
	bar := beats / numerator
	beat := beats % numerator

	barStart := bar * numerator * pulsesPerBeat
	remainder := ticks - (barStart + beat*pulsesPerBeat)

	return Coordinates{
		Bar:        bar,
		Beat:       beat,
		NoteOffset: float64(remainder) / float64(pulsesPerBeat),
	}, nil
}

// CoordinatesAt resolves the beat resolution of m and converts ticks into coordinates.
func CoordinatesAt(ticks uint64, m Meter) (Coordinates, error) {
	pulses, err := ValidateMeter(m)
	if err != nil {
		return Coordinates{}, err
	}

	return ToCoordinates(ticks, pulses, m.GetTimeSignatureNumerator())
}

// ToTicks maps coordinates back onto the timeline. The note offset is rounded to the nearest tick.
func ToTicks(c Coordinates, pulsesPerBeat uint64, numerator uint64) (uint64, error) {
	if pulsesPerBeat == 0 || numerator == 0 {
		return 0, errors.WithStackTrace(InvalidTimeSignature{
			Numerator: numerator,
			Reason:    fmt.Sprintf("cannot divide %d pulses per beat into %d beats per bar", pulsesPerBeat, numerator),
		})
	}
	if c.Beat >= numerator {
		return 0, errors.WithStackTrace(InvalidCoordinates{Coordinates: c, Reason: fmt.Sprintf("beat must be less than %d", numerator)})
	}
	if c.NoteOffset < 0 || c.NoteOffset >= 1 || math.IsNaN(c.NoteOffset) {
		return 0, errors.WithStackTrace(InvalidCoordinates{Coordinates: c, Reason: "note offset must be in [0, 1)"})
	}

	offset := uint64(math.Round(c.NoteOffset * float64(pulsesPerBeat)))
	return c.Bar*numerator*pulsesPerBeat + c.Beat*pulsesPerBeat + offset, nil
}

// IsDownBeat checks whether the coordinates fall exactly on the first beat of a bar.
func (c Coordinates) IsDownBeat() bool {
	return c.Beat == 0 && c.NoteOffset == 0
}

// Marker returns the coordinates as a 1-indexed "bar.beat.offset" label, with the offset in thousandths of a beat,
// e.g. "1.2.250".
func (c Coordinates) Marker() string {
	return fmt.Sprintf("%d.%d.%03d", c.Bar+1, c.Beat+1, int(math.Floor(c.NoteOffset*1000)))
}

func (c Coordinates) String() string {
	return fmt.Sprintf("bar=%d beat=%d offset=%.3f", c.Bar, c.Beat, c.NoteOffset)
}
