package config

import (
	"fmt"

	"github.com/robmorgan/cadence/rhythm"
)

// SongSettings represents the options that describe how a song is laid out in time. Settings are values: the With*
// methods return a modified copy and never change the receiver, so a SongSettings can be shared by concurrent
// readers.
type SongSettings struct {
	// Pulses per quarter note
	ppq uint64

	sampleRate int64
	frameType  int64
	tempo      float64

	timeSignatureNumerator   uint64
	timeSignatureDenominator uint64

	keySignature string
	trackCount   int32
	length       float64
	bitDepth     int64
	timeFormat   int64
}

// NewSongSettings creates a new SongSettings object with reasonable defaults: 960 ppq, 4/4 at 120 bpm.
func NewSongSettings() SongSettings {
	return SongSettings{
		ppq:                      960,
		sampleRate:               44100,
		tempo:                    120.0,
		timeSignatureNumerator:   4,
		timeSignatureDenominator: 4,
		keySignature:             "C Major",
		bitDepth:                 64,
	}
}

// Validate checks that the settings describe a usable time signature.
func (s SongSettings) Validate() error {
	_, err := rhythm.ValidateMeter(s)
	return err
}

// GetPulsesPerBeat returns the number of ticks in a single beat of the configured time signature.
func (s SongSettings) GetPulsesPerBeat() (uint64, error) {
	return rhythm.ValidateMeter(s)
}

func (s SongSettings) String() string {
	return fmt.Sprintf(
		"Sample Rate: %d Frame Type: %d Tempo: %v Time Signature: %d/%d Key: %s Tracks: %d Length: %v Bit Depth: %d Time Format: %d",
		s.sampleRate,
		s.frameType,
		s.tempo,
		s.timeSignatureNumerator,
		s.timeSignatureDenominator,
		s.keySignature,
		s.trackCount,
		s.length,
		s.bitDepth,
		s.timeFormat,
	)
}

func (s SongSettings) GetPulsesPerQuarter() uint64 {
	return s.ppq
}

func (s SongSettings) GetSampleRate() int64 {
	return s.sampleRate
}

func (s SongSettings) GetFrameType() int64 {
	return s.frameType
}

func (s SongSettings) GetTempo() float64 {
	return s.tempo
}

func (s SongSettings) GetTimeSignatureNumerator() uint64 {
	return s.timeSignatureNumerator
}

func (s SongSettings) GetTimeSignatureDenominator() uint64 {
	return s.timeSignatureDenominator
}

func (s SongSettings) GetKeySignature() string {
	return s.keySignature
}

func (s SongSettings) GetTrackCount() int32 {
	return s.trackCount
}

func (s SongSettings) GetLength() float64 {
	return s.length
}

func (s SongSettings) GetBitDepth() int64 {
	return s.bitDepth
}

func (s SongSettings) GetTimeFormat() int64 {
	return s.timeFormat
}

func (s SongSettings) WithPulsesPerQuarter(value uint64) SongSettings {
	s.ppq = value
	return s
}

func (s SongSettings) WithSampleRate(value int64) SongSettings {
	s.sampleRate = value
	return s
}

func (s SongSettings) WithFrameType(value int64) SongSettings {
	s.frameType = value
	return s
}

func (s SongSettings) WithTempo(value float64) SongSettings {
	s.tempo = value
	return s
}

// WithTimeSignature returns a copy of the settings with a new time signature. It is not validated here; call
// Validate or convert a position to find out whether it is usable.
func (s SongSettings) WithTimeSignature(numerator uint64, denominator uint64) SongSettings {
	s.timeSignatureNumerator = numerator
	s.timeSignatureDenominator = denominator
	return s
}

func (s SongSettings) WithKeySignature(value string) SongSettings {
	s.keySignature = value
	return s
}

func (s SongSettings) WithTrackCount(value int32) SongSettings {
	s.trackCount = value
	return s
}

func (s SongSettings) WithLength(value float64) SongSettings {
	s.length = value
	return s
}

func (s SongSettings) WithBitDepth(value int64) SongSettings {
	s.bitDepth = value
	return s
}

func (s SongSettings) WithTimeFormat(value int64) SongSettings {
	s.timeFormat = value
	return s
}
