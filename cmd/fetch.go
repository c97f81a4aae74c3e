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
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rotblauer/catwalk/ors"
	"github.com/rotblauer/catwalk/params"
)

var optFetchLat float64
var optFetchLon float64
var optFetchLength int
var optFetchPoints int
var optFetchProfile string
var optFetchOutput string
var optFetchNoCache bool

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a round-trip route GPX from the directions service",
	Long: `Asks the directions service to invent a round trip from a start
coordinate and writes the route GPX to a file. Responses are cached on disk,
so repeating a request does not spend API quota.

The API key comes from --api-key, the ors.api-key config entry, or the
ORS_API_KEY environment variable.
`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		cfg := params.DefaultORSConfig()
		if v := viper.GetString("ors.api-key"); v != "" {
			cfg.APIKey = v
		}
		if v := viper.GetString("ors.base-url"); v != "" {
			cfg.BaseURL = v
		}
		if !optFetchNoCache {
			if err := os.MkdirAll(params.DatadirRoot, 0755); err != nil {
				log.Fatalln(err)
			}
			cfg.CachePath = filepath.Join(params.DatadirRoot, params.RouteCacheDBName)
		}

		client, err := ors.NewClient(cfg)
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()

		data, err := client.RoundTripGPX(context.Background(), ors.RoundTripParams{
			Start:   orb.Point{optFetchLon, optFetchLat},
			Length:  optFetchLength,
			Points:  optFetchPoints,
			Profile: optFetchProfile,
		})
		if err != nil {
			log.Fatalln(err)
		}

		if err := os.WriteFile(optFetchOutput, data, 0644); err != nil {
			log.Fatalln(err)
		}
		slog.Info("Wrote route GPX", "file", optFetchOutput, "size", humanize.Bytes(uint64(len(data))))
	},
}

var orsFlags = pflag.NewFlagSet("ors", pflag.ContinueOnError)

func init() {
	rootCmd.AddCommand(fetchCmd)

	defaults := params.DefaultORSConfig()

	pFlags := fetchCmd.PersistentFlags()
	pFlags.Float64Var(&optFetchLat, "lat", 0, "Start latitude")
	pFlags.Float64Var(&optFetchLon, "lon", 0, "Start longitude")
	pFlags.IntVar(&optFetchLength, "length", 8000, "Desired route length in meters")
	pFlags.IntVar(&optFetchPoints, "points", defaults.RoundTripPoints, "Number of via points for the round trip")
	pFlags.StringVar(&optFetchProfile, "profile", params.RouteProfileFootWalking, "Route profile (foot-walking, cycling-road)")
	pFlags.StringVarP(&optFetchOutput, "output", "o", params.RouteGPXFileName, "Route GPX file to write")
	pFlags.BoolVar(&optFetchNoCache, "no-cache", false, "Skip the on-disk route cache")

	// This flagset is shared with other commands,
	// and writes to the same configuration entries.
	orsFlags.String("api-key", "", "Directions service API key")
	orsFlags.String("ors-url", defaults.BaseURL, "Directions service endpoint root")
	_ = viper.BindPFlag("ors.api-key", orsFlags.Lookup("api-key"))
	_ = viper.BindPFlag("ors.base-url", orsFlags.Lookup("ors-url"))

	fetchCmd.Flags().AddFlagSet(orsFlags)
	webdCmd.Flags().AddFlagSet(orsFlags)

	_ = fetchCmd.MarkPersistentFlagRequired("lat")
	_ = fetchCmd.MarkPersistentFlagRequired("lon")
}
