package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/cadence/chord"
	"github.com/robmorgan/cadence/rhythm"
	"github.com/robmorgan/cadence/song"
	"github.com/spf13/cobra"
)

func newChordsCmd(mf *meterFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chords <tick>=<symbol>...",
		Short: "Lays out a chord chart",
		Long:  `Places chords at tick positions, e.g. "0=Gm7 3840=C7", and prints them in order with their bar/beat markers.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := mf.settings()
			if err != nil {
				return err
			}

			s, err := song.New(settings)
			if err != nil {
				return err
			}

			for _, arg := range args {
				sc, err := parseSongChord(arg)
				if err != nil {
					return err
				}
				s.AddChord(sc)
			}

			for _, sc := range s.Chords() {
				label, err := rhythm.Label(sc, settings)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", label, sc.GetChord())
			}
			return nil
		},
	}
}

func parseSongChord(arg string) (chord.SongChord, error) {
	tickStr, symbol, found := strings.Cut(arg, "=")
	if !found {
		return chord.SongChord{}, errors.WithStackTrace(fmt.Errorf("expected <tick>=<symbol>, got %q", arg))
	}

	ticks, err := strconv.ParseUint(tickStr, 10, 64)
	if err != nil {
		return chord.SongChord{}, errors.WithStackTrace(err)
	}

	c, err := chord.Parse(symbol)
	if err != nil {
		return chord.SongChord{}, err
	}

	return chord.NewSongChord(ticks, c), nil
}
