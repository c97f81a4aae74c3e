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
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rotblauer/catwalk/daemon/webd"
	"github.com/rotblauer/catwalk/ors"
	"github.com/rotblauer/catwalk/params"
)

var optHTTPAddr string

// webdCmd represents the serve command
var webdCmd = &cobra.Command{
	Use:   "webd",
	Short: "Start the webserver",
	Long:  `Serves synthetic activity generation on the internet`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		slog.Info("webd.Run")

		config := params.DefaultWebDaemonConfig()
		config.ListenerConfig = params.ListenerConfig{
			Network: "tcp",
			Address: optHTTPAddr,
		}
		if v := viper.GetString("ors.api-key"); v != "" {
			config.ORSConfig.APIKey = v
		}
		if v := viper.GetString("ors.base-url"); v != "" {
			config.ORSConfig.BaseURL = v
		}
		if err := os.MkdirAll(config.DataDir, 0755); err != nil {
			log.Fatalln(err)
		}
		config.ORSConfig.CachePath = filepath.Join(config.DataDir, params.RouteCacheDBName)

		routes, err := ors.NewClient(config.ORSConfig)
		if err != nil {
			log.Fatalln(err)
		}
		defer routes.Close()

		server, err := webd.NewWebDaemon(config, routes)
		if err != nil {
			log.Fatalln(err)
		}
		if err := server.Run(); err != nil {
			log.Fatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(webdCmd)

	defaults := params.DefaultWebDaemonConfig()

	pFlags := webdCmd.PersistentFlags()
	pFlags.StringVar(&optHTTPAddr, "address", defaults.Address, "HTTP address to listen on")
}
