package chord

// Letter is the natural note a NoteName is built on.
type Letter uint8

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

const letters = "CDEFGAB"

func (l Letter) String() string {
	if int(l) >= len(letters) {
		return "?"
	}
	return letters[l : l+1]
}

// NoteMod raises or lowers a note by a semitone.
type NoteMod uint8

const (
	Natural NoteMod = iota
	Flat
	Sharp
)

func (m NoteMod) String() string {
	switch m {
	case Flat:
		return "b"
	case Sharp:
		return "#"
	default:
		return ""
	}
}

// NoteName is a spelled note such as C, Eb or F#. The zero value is C natural.
type NoteName struct {
	Letter Letter
	Mod    NoteMod
}

// Note is shorthand for building a NoteName.
func Note(l Letter, m NoteMod) NoteName {
	return NoteName{Letter: l, Mod: m}
}

func (n NoteName) String() string {
	return n.Letter.String() + n.Mod.String()
}
