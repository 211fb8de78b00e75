// Package cmd is for command line interactions with the igenvar
// clustering engine.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "igenvar",
	Short: `Detect structural variants from split-read junctions.
Junctions extracted from chimeric alignments are grouped into clusters,
one per candidate variant`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("igenvar failed")
	}
}

func init() {
	viper.SetConfigName("igenvar")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("read settings file")
	}
}
