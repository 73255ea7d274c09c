package chord

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
)

const degreePattern = `13|11|9|7|6|5|4|2|1`

var (
	symbolRe    = regexp.MustCompile(`^([A-G])([b#]?)(m|dim|sus[0-9])?((?:\([b#](?:` + degreePattern + `)\)|` + degreePattern + `)*)(?:/([A-G])([b#]?))?$`)
	extensionRe = regexp.MustCompile(`\(([b#])(` + degreePattern + `)\)|(` + degreePattern + `)`)
)

// Parse reads a chord symbol in the same form String writes it, e.g. "C", "F#m7", "Bbsus4", "G7(b9)/B".
func Parse(symbol string) (Chord, error) {
	m := symbolRe.FindStringSubmatch(strings.TrimSpace(symbol))
	if m == nil {
		return Chord{}, errors.WithStackTrace(InvalidSymbol{Symbol: symbol, Reason: "unrecognised format"})
	}

	root := Note(parseLetter(m[1]), parseMod(m[2]))

	quality := Major
	switch {
	case m[3] == "m":
		quality = Minor
	case m[3] == "dim":
		quality = Diminished
	case strings.HasPrefix(m[3], "sus"):
		degree, err := strconv.ParseUint(strings.TrimPrefix(m[3], "sus"), 10, 64)
		if err != nil {
			return Chord{}, errors.WithStackTrace(InvalidSymbol{Symbol: symbol, Reason: err.Error()})
		}
		quality = Sus(degree)
	}

	var extensions []Function
	for _, ext := range extensionRe.FindAllStringSubmatch(m[4], -1) {
		if ext[3] != "" {
			extensions = append(extensions, Function{Degree: parseDegree(ext[3])})
		} else {
			extensions = append(extensions, Function{Degree: parseDegree(ext[2]), Mod: parseMod(ext[1])})
		}
	}

	c, err := NewChord(root, quality, extensions...)
	if err != nil {
		return Chord{}, err
	}

	if m[5] != "" {
		c = c.WithBass(Note(parseLetter(m[5]), parseMod(m[6])))
	}

	return c, nil
}

func parseLetter(s string) Letter {
	return Letter(strings.Index(letters, s))
}

func parseMod(s string) NoteMod {
	switch s {
	case "b":
		return Flat
	case "#":
		return Sharp
	default:
		return Natural
	}
}

// degrees are already constrained by the pattern
func parseDegree(s string) Degree {
	n, _ := strconv.Atoi(s)
	return Degree(n)
}
