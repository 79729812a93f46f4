// Package cmd is for command line interactions with the stitch application
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jjtimmons/stitch/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "stitch",
	Short: `Reassemble a sequence from its overlapping fragments.
Fragments are ordered by their exact end-to-end overlaps and merged`,
	Version:      "0.1.0",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1) // cobra has already printed the error
	}
}

// set flags
func init() {
	cobra.OnInitialize(initConfig)

	// settings is an optional settings file that overrides the defaults
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file (default $HOME/.stitch.yaml)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log debug output to stderr")
	RootCmd.PersistentFlags().IntP("workers", "w", 0, "goroutines for comparing fragments (default one per CPU)")
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads the settings file and STITCH_* environment variables
func initConfig() {
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(config.SettingsName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "failed to read settings: %v\n", err)
			os.Exit(1)
		}
	}
}
