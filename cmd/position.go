package cmd

import (
	"fmt"
	"strconv"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/cadence/rhythm"
	"github.com/spf13/cobra"
)

func newPositionCmd(mf *meterFlags) *cobra.Command {
	var off uint64

	positionCmd := &cobra.Command{
		Use:   "position <ticks>...",
		Short: "Prints the bar/beat coordinates of tick positions",
		Long: `Prints the bar/beat coordinates of tick positions. With --off a single tick is
treated as the start of a span and its end and duration are printed too.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := mf.settings()
			if err != nil {
				return err
			}

			hasOff := cmd.Flags().Changed("off")
			if hasOff && len(args) != 1 {
				return errors.WithStackTrace(fmt.Errorf("--off needs exactly one start tick, got %d", len(args)))
			}

			for _, arg := range args {
				ticks, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return errors.WithStackTrace(err)
				}

				pos := rhythm.NewPosition(ticks)
				if hasOff {
					pos = rhythm.NewSpan(ticks, off)
				}

				if err := printPosition(cmd, pos, settings); err != nil {
					return err
				}
			}
			return nil
		},
	}

	positionCmd.Flags().Uint64Var(&off, "off", 0, "off tick of a span")
	return positionCmd
}

func printPosition(cmd *cobra.Command, pos rhythm.Position, m rhythm.Meter) error {
	on, err := pos.CoordinatesOn(m)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", pos.TicksOn(), on.Marker(), on)

	if !pos.IsSpan() {
		return nil
	}

	duration, err := pos.Duration()
	if err != nil {
		return err
	}
	offCoords, err := pos.CoordinatesOff(m)
	if err != nil {
		return err
	}
	offTicks, _ := pos.TicksOff()
	fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", offTicks, offCoords.Marker(), offCoords)
	fmt.Fprintf(cmd.OutOrStdout(), "duration\t%d\n", duration)
	return nil
}
