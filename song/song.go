package song

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/robmorgan/cadence/chord"
	"github.com/robmorgan/cadence/config"
	"github.com/robmorgan/cadence/timeline"
)

// Song ties together a song's metadata, its settings and the chords placed on its timeline.
type Song struct {
	Meta Meta

	settings config.SongSettings
	chords   *timeline.Timeline
}

// New creates an empty song. It fails if the settings don't describe a usable time signature.
func New(settings config.SongSettings) (*Song, error) {
	chords, err := timeline.New(settings)
	if err != nil {
		return nil, err
	}

	return &Song{
		settings: settings,
		chords:   chords,
	}, nil
}

func (s *Song) GetSettings() config.SongSettings {
	return s.settings
}

// AddChord places a chord on the song's timeline.
func (s *Song) AddChord(c chord.SongChord) uuid.UUID {
	return s.chords.Add(c)
}

// RemoveChord takes a chord off the song's timeline.
func (s *Song) RemoveChord(id uuid.UUID) error {
	return s.chords.Remove(id)
}

// Chords returns the song's chords in tick order.
func (s *Song) Chords() []chord.SongChord {
	entries := s.chords.Entries()
	out := make([]chord.SongChord, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Event.(chord.SongChord))
	}
	return out
}

// ChordAt returns the chord sounding at tick.
func (s *Song) ChordAt(tick uint64) (chord.SongChord, bool) {
	e, ok := s.chords.ActiveAt(tick)
	if !ok {
		return chord.SongChord{}, false
	}
	return e.Event.(chord.SongChord), true
}

func (s *Song) String() string {
	return fmt.Sprintf("%s\n%s", s.Meta, s.settings)
}
