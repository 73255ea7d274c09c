package chord

import (
	"fmt"

	"github.com/robmorgan/cadence/rhythm"
)

// SongChord is a chord placed on the song's timeline.
type SongChord struct {
	pos   rhythm.Position
	chord Chord
}

// NewSongChord places chord at tick. The chord is held until the next chord starts.
func NewSongChord(tick uint64, chord Chord) SongChord {
	return SongChord{
		pos:   rhythm.NewPosition(tick),
		chord: chord,
	}
}

// NewSongChordSpan places chord between the on and off ticks.
func NewSongChordSpan(on uint64, off uint64, chord Chord) SongChord {
	return SongChord{
		pos:   rhythm.NewSpan(on, off),
		chord: chord,
	}
}

func (sc SongChord) GetPosition() rhythm.Position {
	return sc.pos
}

func (sc SongChord) GetChord() Chord {
	return sc.chord
}

func (sc SongChord) String() string {
	return fmt.Sprintf("%s@%d", sc.chord, sc.pos.TicksOn())
}
