package rhythm

import (
	"testing"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fourFour = testMeter{ppq: 960, numerator: 4, denominator: 4}

func TestDuration(t *testing.T) {
	t.Parallel()

	duration, err := NewPosition(960).Duration()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), duration)

	duration, err = NewSpan(960, 1000).Duration()
	require.NoError(t, err)
	assert.Equal(t, uint64(40), duration)

	duration, err = NewSpan(960, 960).Duration()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), duration)
}

func TestDurationRejectsBackwardsSpan(t *testing.T) {
	t.Parallel()

	_, err := NewSpan(960, 959).Duration()
	require.Error(t, err)

	span, ok := errors.Unwrap(err).(InvalidSpan)
	require.True(t, ok)
	assert.Equal(t, uint64(960), span.On)
	assert.Equal(t, uint64(959), span.Off)
}

func TestSpanCoordinates(t *testing.T) {
	t.Parallel()

	pos := NewSpan(960, 1200)

	on, err := pos.CoordinatesOn(fourFour)
	require.NoError(t, err)
	assert.Equal(t, Coordinates{0, 1, 0.0}, on)

	off, err := pos.CoordinatesOff(fourFour)
	require.NoError(t, err)
	require.NotNil(t, off)
	assert.Equal(t, Coordinates{0, 1, 0.25}, *off)

	duration, err := pos.Duration()
	require.NoError(t, err)
	assert.Equal(t, uint64(240), duration)
}

func TestInstantHasNoOffCoordinates(t *testing.T) {
	t.Parallel()

	pos := NewPosition(480)
	off, err := pos.CoordinatesOff(fourFour)
	require.NoError(t, err)
	assert.Nil(t, off)

	_, ok := pos.TicksOff()
	assert.False(t, ok)
	assert.False(t, pos.IsSpan())
}

func TestCoordinatesOffPropagatesMeterErrors(t *testing.T) {
	t.Parallel()

	_, err := NewSpan(0, 960).CoordinatesOff(testMeter{ppq: 960, numerator: 4, denominator: 3})
	require.Error(t, err)
	assert.IsType(t, InvalidTimeSignature{}, errors.Unwrap(err))
}

func TestContains(t *testing.T) {
	t.Parallel()

	span := NewSpan(960, 1920)
	assert.False(t, span.Contains(959))
	assert.True(t, span.Contains(960))
	assert.True(t, span.Contains(1919))
	assert.False(t, span.Contains(1920))

	instant := NewPosition(480)
	assert.True(t, instant.Contains(480))
	assert.False(t, instant.Contains(481))
}

func TestLess(t *testing.T) {
	t.Parallel()

	assert.True(t, NewPosition(0).Less(NewPosition(1)))
	assert.False(t, NewPosition(1).Less(NewPosition(0)))
	assert.True(t, NewPosition(10).Less(NewSpan(10, 20)))
	assert.False(t, NewSpan(10, 20).Less(NewPosition(10)))
	assert.True(t, NewSpan(10, 20).Less(NewSpan(10, 30)))
}
