package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marker struct {
	name string
	pos  Position
}

func (m marker) GetPosition() Position {
	return m.pos
}

func TestSortByTick(t *testing.T) {
	t.Parallel()

	events := []marker{
		{"chorus", NewPosition(3840)},
		{"pickup", NewSpan(0, 960)},
		{"verse", NewPosition(960)},
		{"intro", NewPosition(0)},
		{"fill", NewPosition(960)},
	}

	SortByTick(events)

	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.name)
	}
	assert.Equal(t, []string{"intro", "pickup", "verse", "fill", "chorus"}, names)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	label, err := Label(marker{"verse", NewPosition(3600)}, fourFour)
	require.NoError(t, err)
	assert.Equal(t, "1.4.750", label)

	_, err = Label(marker{"verse", NewPosition(3600)}, testMeter{ppq: 960, numerator: 4, denominator: 5})
	require.Error(t, err)
}
