package chord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
)

// MaxExtensions is the number of intervals a chord can carry on top of its triad.
const MaxExtensions = 6

// QualityKind is the basic colour of a chord's triad.
type QualityKind uint8

const (
	KindMajor QualityKind = iota
	KindMinor
	KindDiminished
	KindSuspended
)

// Quality describes the triad of a chord. Suspended chords also record the degree that replaces the third.
type Quality struct {
	Kind   QualityKind
	Degree uint64
}

var (
	Major      = Quality{Kind: KindMajor}
	Minor      = Quality{Kind: KindMinor}
	Diminished = Quality{Kind: KindDiminished}
)

// Sus returns a suspended quality, e.g. Sus(4) for a sus4 chord.
func Sus(degree uint64) Quality {
	return Quality{Kind: KindSuspended, Degree: degree}
}

func (q Quality) String() string {
	switch q.Kind {
	case KindMinor:
		return "m"
	case KindDiminished:
		return "dim"
	case KindSuspended:
		return "sus" + strconv.FormatUint(q.Degree, 10)
	default:
		return ""
	}
}

// Degree is the scale degree of an interval above the root.
type Degree uint8

const (
	Root       Degree = 1
	Second     Degree = 2
	Fourth     Degree = 4
	Fifth      Degree = 5
	Sixth      Degree = 6
	Seventh    Degree = 7
	Ninth      Degree = 9
	Eleventh   Degree = 11
	Thirteenth Degree = 13
)

// Function is an interval added to a chord, optionally altered by a flat or sharp.
type Function struct {
	Degree Degree
	Mod    NoteMod
}

// Altered intervals are wrapped in brackets so "C7(b9)" can't be read as a Cb chord.
func (f Function) String() string {
	if f.Mod == Natural {
		return strconv.Itoa(int(f.Degree))
	}
	return fmt.Sprintf("(%s%d)", f.Mod, f.Degree)
}

// Chord is a symbolic chord: a root, a triad quality, optional extensions and an optional bass note.
type Chord struct {
	Root       NoteName
	Quality    Quality
	Bass       *NoteName
	Extensions []Function
}

// NewChord creates a chord, rejecting more than MaxExtensions extensions.
func NewChord(root NoteName, quality Quality, extensions ...Function) (Chord, error) {
	c := Chord{Root: root, Quality: quality, Extensions: extensions}
	if len(extensions) > MaxExtensions {
		return Chord{}, errors.WithStackTrace(InvalidSymbol{
			Symbol: c.String(),
			Reason: fmt.Sprintf("a chord can have at most %d extensions", MaxExtensions),
		})
	}

	return c, nil
}

// WithBass returns a copy of the chord played over bass.
func (c Chord) WithBass(bass NoteName) Chord {
	c.Bass = &bass
	return c
}

func (c Chord) String() string {
	var sb strings.Builder
	sb.WriteString(c.Root.String())
	sb.WriteString(c.Quality.String())
	for _, ext := range c.Extensions {
		sb.WriteString(ext.String())
	}
	if c.Bass != nil {
		sb.WriteString("/")
		sb.WriteString(c.Bass.String())
	}
	return sb.String()
}

// InvalidSymbol is returned when a chord symbol can't be understood.
type InvalidSymbol struct {
	Symbol string
	Reason string
}

func (err InvalidSymbol) Error() string {
	return fmt.Sprintf("invalid chord symbol %q: %s", err.Symbol, err.Reason)
}
