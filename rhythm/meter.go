package rhythm

import (
	"github.com/gruntwork-io/go-commons/errors"
)

// quarterNote is the note value that the timeline resolution is expressed in.
const quarterNote = 4

// Meter is the part of a song's configuration that is needed to place ticks on a bar/beat grid.
type Meter interface {
	// GetPulsesPerQuarter gets the resolution of the timeline in ticks per quarter note.
	GetPulsesPerQuarter() uint64

	// GetTimeSignatureNumerator gets the number of beats in a bar.
	GetTimeSignatureNumerator() uint64

	// GetTimeSignatureDenominator gets the note value that receives one beat.
	GetTimeSignatureDenominator() uint64
}

// PulsesPerBeat resolves the number of ticks in a single beat for the given resolution and time signature
// denominator. The denominator must be 1 or an even number.
//
// For denominators up to a quarter note the resolution is divided by the whole number of beats that fit in a quarter
// note, truncating at both steps. Anything smaller than a quarter note would truncate that divisor to zero, so the
// resolution is scaled up by denominator/4 instead.
func PulsesPerBeat(ppq uint64, denominator uint64) (uint64, error) {
	if denominator == 0 || (denominator != 1 && denominator%2 != 0) {
		return 0, errors.WithStackTrace(InvalidTimeSignature{
			PulsesPerQuarter: ppq,
			Denominator:      denominator,
			Reason:           "denominator must be 1 or an even number",
		})
	}

	var pulses uint64
	if denominator <= quarterNote {
		divisor := quarterNote / denominator
		pulses = ppq / divisor
	} else {
		pulses = ppq * denominator / quarterNote
	}

	if pulses == 0 {
		return 0, errors.WithStackTrace(InvalidTimeSignature{
			PulsesPerQuarter: ppq,
			Denominator:      denominator,
			Reason:           "resolution is too low to hold a single beat",
		})
	}

	return pulses, nil
}

// ValidateMeter checks that m describes a usable time signature and returns its resolved pulses per beat.
func ValidateMeter(m Meter) (uint64, error) {
	invalid := InvalidTimeSignature{
		PulsesPerQuarter: m.GetPulsesPerQuarter(),
		Numerator:        m.GetTimeSignatureNumerator(),
		Denominator:      m.GetTimeSignatureDenominator(),
	}

	if invalid.PulsesPerQuarter == 0 {
		invalid.Reason = "pulses per quarter note must be positive"
		return 0, errors.WithStackTrace(invalid)
	}
	if invalid.Numerator == 0 {
		invalid.Reason = "numerator must be positive"
		return 0, errors.WithStackTrace(invalid)
	}

	pulses, err := PulsesPerBeat(invalid.PulsesPerQuarter, invalid.Denominator)
	if err != nil {
		// keep the numerator in the reported error
		if ts, ok := errors.Unwrap(err).(InvalidTimeSignature); ok {
			ts.Numerator = invalid.Numerator
			return 0, errors.WithStackTrace(ts)
		}
		return 0, err
	}

	return pulses, nil
}

// BarLength returns the number of ticks in one bar of m.
func BarLength(m Meter) (uint64, error) {
	pulses, err := ValidateMeter(m)
	if err != nil {
		return 0, err
	}

	return pulses * m.GetTimeSignatureNumerator(), nil
}
