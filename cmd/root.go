/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var optDebug bool
var optQuiet bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catwalk",
	Short: "Synthesize dense GPS activity recordings from sparse routes",
	Long: `catwalk walks a cat along a route it never walked.

Give it a sparse waypoint route (a GPX file, or a round trip invented by a
directions service) and it produces a second-by-second synthetic activity
recording: interpolated positions plus plausible heart rate and cadence,
written as a Garmin-flavored GPX track that fitness importers accept.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.catwalk.yaml)")
	rootCmd.PersistentFlags().BoolVar(&optDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&optQuiet, "quiet", false, "Log warnings and errors only")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".catwalk")
	}

	viper.SetEnvPrefix("CATWALK")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("Using config file", "file", viper.ConfigFileUsed())
	}
}

func setDefaultSlog(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if optQuiet {
		level = slog.LevelWarn
	}
	if optDebug {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)
}
