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
package util

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"hawk-telemetry/model"
)

// demo session bounds exposed on the control surface
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 30
	MinIntervalSeconds = 0.5
	MaxIntervalSeconds = 5.0
)

// ReadConfig assembles the runtime configuration: built-in defaults,
// overridden by the yaml config file if one is found, overridden by
// whatever was given on the command line. Unusable values are rejected
// here, before any session state exists.
func ReadConfig(args *model.CommandLineArgs) *model.Config {
	outputTypes := make([]string, len(model.OutputTypeMap))

	i := 0
	for key := range model.OutputTypeMap {
		outputTypes[i] = strings.ToLower(key)
		i++
	}

	if !slices.Contains(outputTypes, strings.ToLower(args.OutputType)) {
		slog.Error("Invalid output type specified: " + args.OutputType + ". Valid options: " + strings.Join(outputTypes, ", "))
		os.Exit(1)
	}

	config := &model.Config{
		DataDirectory: "data",
		AcousticFile:  "AC01-1400057.csv",
		PressureFile:  "pressures.csv",
		LogLevel:      int(slog.LevelInfo),
		OutputType:    model.OutputTUI,
		SimulationOptions: &model.SimulationOptions{
			EnableSimulation: false,
			DurationMinutes:  10,
			IntervalSeconds:  1.0,
			FreezeSpectrum:   false,
		},
	}

	if args.ConfigFile != "" {
		if err := ReadYamlFile(config, args.ConfigFile); err != nil {
			slog.Warn("Could not read config file, using defaults: " + err.Error())
		}
	}

	requestedOutputType := model.OutputTypeMap[strings.ToLower(args.OutputType)]
	if requestedOutputType != config.OutputType {
		config.OutputType = requestedOutputType
	}

	if args.DataDirectory != "" {
		config.DataDirectory = args.DataDirectory
	}

	if !DirectoryExists(config.DataDirectory) {
		slog.Error("Data directory does not exist: " + config.DataDirectory)
		os.Exit(1)
	}

	simulation := config.SimulationOptions

	if args.Simulate != simulation.EnableSimulation {
		simulation.EnableSimulation = args.Simulate
	}

	if args.DurationMinutes != 0 {
		simulation.DurationMinutes = args.DurationMinutes
	}

	if args.IntervalSeconds != 0 {
		simulation.IntervalSeconds = args.IntervalSeconds
	}

	if args.SeedSet {
		seed := args.Seed
		simulation.Seed = &seed
	}

	if args.FreezeSpectrum != simulation.FreezeSpectrum {
		simulation.FreezeSpectrum = args.FreezeSpectrum
	}

	if simulation.DurationMinutes < MinDurationMinutes || simulation.DurationMinutes > MaxDurationMinutes {
		slog.Error(fmt.Sprintf("Invalid demo duration %d, must be %d..%d minutes",
			simulation.DurationMinutes, MinDurationMinutes, MaxDurationMinutes))
		os.Exit(1)
	}

	if simulation.IntervalSeconds < MinIntervalSeconds || simulation.IntervalSeconds > MaxIntervalSeconds {
		slog.Error(fmt.Sprintf("Invalid demo interval %g, must be %g..%g seconds",
			simulation.IntervalSeconds, MinIntervalSeconds, MaxIntervalSeconds))
		os.Exit(1)
	}

	return config
}
