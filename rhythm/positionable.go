package rhythm

import (
	"golang.org/x/exp/slices"
)

// Positionable is implemented by anything that sits on the timeline, such as a chord. Timeline code only talks to
// this interface so it can handle every kind of event the same way.
type Positionable interface {
	GetPosition() Position
}

// SortByTick sorts events by their position, keeping the original order of events at the same position.
func SortByTick[T Positionable](events []T) {
	slices.SortStableFunc(events, func(a, b T) bool {
		return a.GetPosition().Less(b.GetPosition())
	})
}

// Label returns the bar/beat marker of the start of an event.
func Label(p Positionable, m Meter) (string, error) {
	c, err := p.GetPosition().CoordinatesOn(m)
	if err != nil {
		return "", err
	}

	return c.Marker(), nil
}
