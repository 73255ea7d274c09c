package rhythm

import (
	"github.com/gruntwork-io/go-commons/errors"
)

// Position stores a place on the timeline in ticks. A position is either a single instant or a span with an off
// tick. Positions are immutable; build a new one to move an event.
type Position struct {
	ticksOn  uint64
	ticksOff uint64
	hasOff   bool
}

// NewPosition creates an instant at ticks.
func NewPosition(ticks uint64) Position {
	return Position{ticksOn: ticks}
}

// NewSpan creates a position that starts at on and ends at off. The span is not validated until its duration is
// requested.
func NewSpan(on uint64, off uint64) Position {
	return Position{ticksOn: on, ticksOff: off, hasOff: true}
}

// TicksOn returns the start tick.
func (p Position) TicksOn() uint64 {
	return p.ticksOn
}

// TicksOff returns the end tick, if there is one.
func (p Position) TicksOff() (uint64, bool) {
	return p.ticksOff, p.hasOff
}

// IsSpan reports whether the position has an off tick.
func (p Position) IsSpan() bool {
	return p.hasOff
}

// Duration returns the length of the span in ticks, or 0 for an instant.
func (p Position) Duration() (uint64, error) {
	if !p.hasOff {
		return 0, nil
	}
	if p.ticksOff < p.ticksOn {
		return 0, errors.WithStackTrace(InvalidSpan{On: p.ticksOn, Off: p.ticksOff})
	}

	return p.ticksOff - p.ticksOn, nil
}

// CoordinatesOn converts the start tick into coordinates for m.
func (p Position) CoordinatesOn(m Meter) (Coordinates, error) {
	return CoordinatesAt(p.ticksOn, m)
}

// CoordinatesOff converts the end tick into coordinates for m. It returns nil when the position is an instant.
func (p Position) CoordinatesOff(m Meter) (*Coordinates, error) {
	if !p.hasOff {
		return nil, nil
	}

	c, err := CoordinatesAt(p.ticksOff, m)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Contains reports whether tick falls inside the position. Spans cover [on, off), instants only cover their own tick.
func (p Position) Contains(tick uint64) bool {
	if !p.hasOff {
		return tick == p.ticksOn
	}
	return tick >= p.ticksOn && tick < p.ticksOff
}

// Less orders positions by start tick. Instants sort before spans at the same tick and shorter spans before longer
// ones.
func (p Position) Less(other Position) bool {
	if p.ticksOn != other.ticksOn {
		return p.ticksOn < other.ticksOn
	}
	if p.hasOff != other.hasOff {
		return !p.hasOff
	}
	return p.ticksOff < other.ticksOff
}
