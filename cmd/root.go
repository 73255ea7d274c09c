package cmd

import (
	"github.com/robmorgan/cadence/config"
	"github.com/robmorgan/cadence/logger"
	"github.com/spf13/cobra"
)

// meterFlags are the global flags that describe the song's time signature.
type meterFlags struct {
	ppq         uint64
	numerator   uint64
	denominator uint64
	logLevel    string
}

func newRootCmd() *cobra.Command {
	mf := &meterFlags{}

	rootCmd := &cobra.Command{
		Use:   "cadence",
		Short: "Convert timeline ticks into bars and beats",
		Long:  `cadence places tick positions on the bar/beat grid of a time signature.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.SetLevel(mf.logLevel)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.Uint64Var(&mf.ppq, "ppq", 960, "pulses per quarter note")
	flags.Uint64Var(&mf.numerator, "numerator", 4, "beats per bar")
	flags.Uint64Var(&mf.denominator, "denominator", 4, "note value that receives one beat (1 or even)")
	flags.StringVar(&mf.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newPositionCmd(mf))
	rootCmd.AddCommand(newChordsCmd(mf))

	return rootCmd
}

// settings builds song settings from the global flags.
func (mf *meterFlags) settings() (config.SongSettings, error) {
	settings := config.NewSongSettings().
		WithPulsesPerQuarter(mf.ppq).
		WithTimeSignature(mf.numerator, mf.denominator)

	if err := settings.Validate(); err != nil {
		return config.SongSettings{}, err
	}

	logger.GetProjectLogger().Debugf("Using settings: %s", settings)
	return settings, nil
}

func Execute() {
	cobra.CheckErr(newRootCmd().Execute())
}
