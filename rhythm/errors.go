package rhythm

import "fmt"

// InvalidTimeSignature is returned when a meter cannot be used to convert ticks, either because the time signature
// itself is malformed or because it resolves to a zero-length beat.
type InvalidTimeSignature struct {
	PulsesPerQuarter uint64
	Numerator        uint64
	Denominator      uint64
	Reason           string
}

func (err InvalidTimeSignature) Error() string {
	return fmt.Sprintf("invalid time signature %d/%d at %d ppq: %s", err.Numerator, err.Denominator, err.PulsesPerQuarter, err.Reason)
}

// InvalidSpan is returned when a position's off tick comes before its on tick.
type InvalidSpan struct {
	On  uint64
	Off uint64
}

func (err InvalidSpan) Error() string {
	return fmt.Sprintf("invalid span: off tick %d is before on tick %d", err.Off, err.On)
}

// InvalidCoordinates is returned when coordinates cannot be mapped back onto the timeline.
type InvalidCoordinates struct {
	Coordinates Coordinates
	Reason      string
}

func (err InvalidCoordinates) Error() string {
	return fmt.Sprintf("invalid coordinates %s: %s", err.Coordinates, err.Reason)
}
