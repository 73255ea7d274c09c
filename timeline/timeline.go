package timeline

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/cadence/logger"
	"github.com/robmorgan/cadence/rhythm"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Entry is an event on the timeline together with the ID it was added under.
type Entry struct {
	ID    uuid.UUID
	Event rhythm.Positionable
}

// Timeline holds events of any kind in tick order and answers bar/beat questions about them using a single meter.
type Timeline struct {
	meter   rhythm.Meter
	entries []Entry
	lock    sync.RWMutex
}

// New creates an empty timeline. The meter is validated up front so lookups can't fail on it later.
func New(meter rhythm.Meter) (*Timeline, error) {
	if _, err := rhythm.ValidateMeter(meter); err != nil {
		return nil, err
	}

	return &Timeline{
		meter:   meter,
		entries: make([]Entry, 0),
	}, nil
}

// GetMeter returns the meter the timeline converts positions with.
func (tl *Timeline) GetMeter() rhythm.Meter {
	return tl.meter
}

// Add inserts an event and returns the ID it can be looked up by.
func (tl *Timeline) Add(event rhythm.Positionable) uuid.UUID {
	tl.lock.Lock()
	defer tl.lock.Unlock()

	id := uuid.New()
	tl.insert(Entry{ID: id, Event: event})

	logger.GetProjectLogger().
		WithFields(logrus.Fields{"event_id": id, "ticks_on": event.GetPosition().TicksOn()}).
		Debug("event added to timeline")

	return id
}

// insert keeps entries sorted. Events at an equal position keep the order they were added in.
func (tl *Timeline) insert(e Entry) {
	pos := e.Event.GetPosition()
	i := len(tl.entries)
	for i > 0 && pos.Less(tl.entries[i-1].Event.GetPosition()) {
		i--
	}
	tl.entries = slices.Insert(tl.entries, i, e)
}

func (tl *Timeline) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(tl.entries, func(e Entry) bool {
		return e.ID == id
	})
}

// Get looks up an event by ID.
func (tl *Timeline) Get(id uuid.UUID) (rhythm.Positionable, error) {
	tl.lock.RLock()
	defer tl.lock.RUnlock()

	if i := tl.indexOf(id); i >= 0 {
		return tl.entries[i].Event, nil
	}
	return nil, errors.WithStackTrace(EventNotFound{ID: id})
}

// Remove deletes an event by ID.
func (tl *Timeline) Remove(id uuid.UUID) error {
	tl.lock.Lock()
	defer tl.lock.Unlock()

	i := tl.indexOf(id)
	if i < 0 {
		return errors.WithStackTrace(EventNotFound{ID: id})
	}
	tl.entries = slices.Delete(tl.entries, i, i+1)

	logger.GetProjectLogger().WithField("event_id", id).Debug("event removed from timeline")
	return nil
}

// HasEvents returns true if there are events on the timeline
func (tl *Timeline) HasEvents() bool {
	return tl.Count() > 0
}

// Count returns the number of events on the timeline
func (tl *Timeline) Count() int {
	tl.lock.RLock()
	defer tl.lock.RUnlock()
	return len(tl.entries)
}

// Entries returns a copy of every entry in tick order.
func (tl *Timeline) Entries() []Entry {
	tl.lock.RLock()
	defer tl.lock.RUnlock()
	return slices.Clone(tl.entries)
}

// ActiveAt returns the event sounding at tick. A span is active from its on tick up to its off tick; an instant is
// held until a later instant starts. When several events qualify the one that started last wins.
func (tl *Timeline) ActiveAt(tick uint64) (Entry, bool) {
	tl.lock.RLock()
	defer tl.lock.RUnlock()

	for i := len(tl.entries) - 1; i >= 0; i-- {
		pos := tl.entries[i].Event.GetPosition()
		if pos.TicksOn() > tick {
			continue
		}
		if !pos.IsSpan() || pos.Contains(tick) {
			return tl.entries[i], true
		}
	}

	return Entry{}, false
}

// Locate returns the coordinates of the start of an event.
func (tl *Timeline) Locate(id uuid.UUID) (rhythm.Coordinates, error) {
	event, err := tl.Get(id)
	if err != nil {
		return rhythm.Coordinates{}, err
	}

	return event.GetPosition().CoordinatesOn(tl.meter)
}

// Merge adds the entries of the other timelines to this one, keeping their IDs. An entry whose ID already exists is
// replaced.
func (tl *Timeline) Merge(others ...*Timeline) *Timeline {
	for _, other := range others {
		for _, e := range other.Entries() {
			tl.lock.Lock()
			if i := tl.indexOf(e.ID); i >= 0 {
				tl.entries = slices.Delete(tl.entries, i, i+1)
			}
			tl.insert(e)
			tl.lock.Unlock()
		}
	}

	return tl
}

// EventNotFound is returned when a timeline has no event with the given ID.
type EventNotFound struct {
	ID uuid.UUID
}

func (err EventNotFound) Error() string {
	return fmt.Sprintf("the timeline does not contain an event with the id: %s", err.ID)
}
