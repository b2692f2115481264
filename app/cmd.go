// =================================================================================
//
//			hawk - sensor telemetry demo console
//
//		 Hawk is a CLI dashboard for acoustic pipeline sensor telemetry with a
//	  live demo mode that fabricates plausible sensor data from a real sample
//
//			Copyright (c) 2025 the hawk authors
//
//			Licensed under the Apache License, Version 2.0 (the "License");
//			you may not use this file except in compliance with the License.
//			You may obtain a copy of the License at
//
//			     http://www.apache.org/licenses/LICENSE-2.0
//
//			Unless required by applicable law or agreed to in writing, software
//			distributed under the License is distributed on an "AS IS" BASIS,
//			WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//			See the License for the specific language governing permissions and
//			limitations under the License.
//
// =================================================================================
package app

import (
	"os"

	"hawk-telemetry/model"
	"hawk-telemetry/util"

	"github.com/spf13/cobra"
)

var (
	// arguments
	argSimulate        bool
	argDurationMinutes int
	argIntervalSeconds float64
	argSeed            uint64
	argFreezeSpectrum  bool

	argDataDirectory string
	argConfigFile    string
	argOutputType    string

	rootCmd = &cobra.Command{
		Use:   "hawk",
		Short: "Show live pipeline sensor telemetry",

		Run: func(cmd *cobra.Command, args []string) {
			cliArgs := &model.CommandLineArgs{
				Simulate:        argSimulate,
				DurationMinutes: argDurationMinutes,
				IntervalSeconds: argIntervalSeconds,
				Seed:            argSeed,
				SeedSet:         cmd.Flags().Changed("seed"),
				FreezeSpectrum:  argFreezeSpectrum,

				DataDirectory: argDataDirectory,
				ConfigFile:    argConfigFile,
				OutputType:    argOutputType,
			}

			config := util.ReadConfig(cliArgs)

			runEngine(config)
		},
	}
)

func init() {
	// demo session commands
	rootCmd.Flags().BoolVar(&argSimulate, "simulate", false, "Start a fabricated demo session immediately instead of waiting for the start key")
	rootCmd.Flags().IntVar(&argDurationMinutes, "duration-minutes", 0, "Length of the demo session in minutes (0 = config default)")
	rootCmd.Flags().Float64Var(&argIntervalSeconds, "interval-seconds", 0, "Seconds between fabricated points (0 = config default)")
	rootCmd.Flags().Uint64Var(&argSeed, "seed", 0, "Seed the fabrication rng for a reproducible session")
	rootCmd.Flags().BoolVar(&argFreezeSpectrum, "freeze-spectrum", false, "Freeze the spectrum meters after the first fabricated point")

	rootCmd.Flags().StringVarP(&argDataDirectory, "data-dir", "d", "", "Directory holding the historical sensor csv exports")
	rootCmd.Flags().StringVarP(&argConfigFile, "config", "c", "", "Path to the yaml config file")
	rootCmd.Flags().StringVarP(&argOutputType, "output", "o", "tui", "Output mode to use: tui or json")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
