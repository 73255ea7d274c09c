package timeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/cadence/chord"
	"github.com/robmorgan/cadence/config"
	"github.com/robmorgan/cadence/rhythm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lyric struct {
	text string
	pos  rhythm.Position
}

func (l lyric) GetPosition() rhythm.Position {
	return l.pos
}

func newTimeline(t *testing.T) *Timeline {
	tl, err := New(config.NewSongSettings())
	require.NoError(t, err)
	return tl
}

func TestNewRejectsInvalidMeter(t *testing.T) {
	t.Parallel()

	_, err := New(config.NewSongSettings().WithTimeSignature(4, 3))
	require.Error(t, err)
	assert.IsType(t, rhythm.InvalidTimeSignature{}, errors.Unwrap(err))
}

func TestAddKeepsTickOrder(t *testing.T) {
	t.Parallel()

	tl := newTimeline(t)
	require.False(t, tl.HasEvents())

	tl.Add(chord.NewSongChord(3840, chord.Chord{Root: chord.Note(chord.F, chord.Natural)}))
	tl.Add(lyric{"hello", rhythm.NewSpan(0, 960)})
	tl.Add(chord.NewSongChord(0, chord.Chord{Root: chord.Note(chord.C, chord.Natural)}))
	tl.Add(lyric{"world", rhythm.NewPosition(1920)})

	require.True(t, tl.HasEvents())
	require.Equal(t, 4, tl.Count())

	ticks := make([]uint64, 0)
	for _, e := range tl.Entries() {
		ticks = append(ticks, e.Event.GetPosition().TicksOn())
	}
	assert.Equal(t, []uint64{0, 0, 1920, 3840}, ticks)

	// the instant sorts before the span at the same tick
	_, isChord := tl.Entries()[0].Event.(chord.SongChord)
	assert.True(t, isChord)
}

func TestGetAndRemove(t *testing.T) {
	t.Parallel()

	tl := newTimeline(t)
	id := tl.Add(lyric{"la", rhythm.NewPosition(480)})

	event, err := tl.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "la", event.(lyric).text)

	require.NoError(t, tl.Remove(id))
	require.False(t, tl.HasEvents())

	_, err = tl.Get(id)
	require.Error(t, err)
	assert.IsType(t, EventNotFound{}, errors.Unwrap(err))

	err = tl.Remove(uuid.New())
	require.Error(t, err)
}

func TestActiveAt(t *testing.T) {
	t.Parallel()

	tl := newTimeline(t)
	c := tl.Add(chord.NewSongChord(0, chord.Chord{Root: chord.Note(chord.C, chord.Natural)}))
	am := tl.Add(chord.NewSongChord(3840, chord.Chord{Root: chord.Note(chord.A, chord.Natural), Quality: chord.Minor}))
	fill := tl.Add(lyric{"oh", rhythm.NewSpan(1920, 2400)})

	e, ok := tl.ActiveAt(0)
	require.True(t, ok)
	assert.Equal(t, c, e.ID)

	e, ok = tl.ActiveAt(2000)
	require.True(t, ok)
	assert.Equal(t, fill, e.ID)

	// the span has ended so the first chord is still held
	e, ok = tl.ActiveAt(2400)
	require.True(t, ok)
	assert.Equal(t, c, e.ID)

	e, ok = tl.ActiveAt(100000)
	require.True(t, ok)
	assert.Equal(t, am, e.ID)
}

func TestActiveAtBeforeFirstEvent(t *testing.T) {
	t.Parallel()

	tl := newTimeline(t)
	tl.Add(lyric{"late", rhythm.NewPosition(960)})

	_, ok := tl.ActiveAt(959)
	require.False(t, ok)
}

func TestLocate(t *testing.T) {
	t.Parallel()

	tl, err := New(config.NewSongSettings().WithTimeSignature(3, 4))
	require.NoError(t, err)
	id := tl.Add(lyric{"two", rhythm.NewPosition(2880)})

	c, err := tl.Locate(id)
	require.NoError(t, err)
	assert.Equal(t, rhythm.Coordinates{Bar: 1, Beat: 0, NoteOffset: 0}, c)

	_, err = tl.Locate(uuid.New())
	require.Error(t, err)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	tl1 := newTimeline(t)
	tl2 := newTimeline(t)
	tl3 := newTimeline(t)

	id1 := tl1.Add(lyric{"one", rhythm.NewPosition(960)})
	id2 := tl2.Add(lyric{"two", rhythm.NewPosition(0)})
	tl3.Add(lyric{"three", rhythm.NewPosition(480)})

	// an ID collision replaces the original entry
	tl3.entries = append(tl3.entries, Entry{ID: id1, Event: lyric{"uno", rhythm.NewPosition(1920)}})

	tl := tl1.Merge(tl2, tl3)
	require.Equal(t, 3, tl.Count())

	event, err := tl.Get(id1)
	require.NoError(t, err)
	assert.Equal(t, "uno", event.(lyric).text)

	entries := tl.Entries()
	assert.Equal(t, id2, entries[0].ID)
	assert.Equal(t, id1, entries[2].ID)
}
