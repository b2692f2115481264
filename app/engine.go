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
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"hawk-telemetry/display"
	"hawk-telemetry/model"
	"hawk-telemetry/reaper"
	"hawk-telemetry/shared"
	"hawk-telemetry/sim"
	"hawk-telemetry/telemetry"
)

// longest the process waits for registered goroutines after a
// shutdown has been requested
const shutdownJoinTimeout = 10 * time.Second

type displayObj struct {
	ui display.UI
}

var (
	displayHandle displayObj
	controller    *sim.Controller
	dataset       *telemetry.Dataset
	baseRecord    *telemetry.BaseRecord
)

func ConfigureTextLogger(level slog.Level) {
	// text logger; the handler grabs the real stderr before the hijack
	// below reroutes the process-level streams
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	shared.HijackLogging()
	shared.EnableStderrLogging()
}

func ConfigureUiLogger(level slog.Level) {
	handler := shared.NewUiLogHandler(displayHandle.ui, level, func(message string) {
		displayHandle.ui.IncrementErrorCount()
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	shared.HijackLogging()
	shared.EnableSlogLogging()
}

func runEngine(config *model.Config) {
	if config.OutputType == model.OutputJSON {
		displayHandle.ui = display.NewJsonUI(os.Stdout)
	} else {
		displayHandle.ui = display.NewTui()
	}

	displayHandle.ui.Initalize()
	displayHandle.ui.SetPlaybackStatus(display.StatusStarting)
	displayHandle.ui.Start()
	reaper.Callback("ui", displayHandle.ui.Shutdown)

	if config.OutputType == model.OutputTUI {
		ConfigureUiLogger(slog.Level(config.LogLevel))
	} else {
		ConfigureTextLogger(slog.Level(config.LogLevel))
	}

	shared.CatchSigint(func() {
		slog.Info("Caught sigint, calling reaper")
		reaper.Reap()

		// a goroutine that never reports Done would otherwise hang the
		// process on Ctrl-C forever
		if !reaper.WaitTimeout(shutdownJoinTimeout) {
			slog.Error("Shutdown timed out waiting for goroutines to finish, exiting anyway")
			os.Exit(1)
		}
	})

	var err error
	dataset, err = telemetry.Load(config)

	if err != nil {
		slog.Error("Could not load historical dataset: " + err.Error())
		reaper.Reap()
		reaper.WaitTimeout(shutdownJoinTimeout)
		return
	}

	baseRecord = dataset.BaseRecord()
	controller = sim.NewController(dataset)

	options := config.SimulationOptions

	displayHandle.ui.SetDatasetName(dataset.Name)
	displayHandle.ui.SetDirectory(config.DataDirectory)
	displayHandle.ui.SetBands(dataset.BandFrequencies)
	displayHandle.ui.SetChannelFamilies(channelFamilies())
	displayHandle.ui.SetCadence(fmt.Sprintf("%gs / point", options.IntervalSeconds))

	if options.Seed != nil {
		displayHandle.ui.SetSeed(strconv.FormatUint(*options.Seed, 10))
	}

	displayHandle.ui.SetPlaybackStatus(display.StatusIdle)
	displayHandle.ui.SetControlHandler(func() {
		toggleSession(options)
	})

	statsShutdownChan := initStatistics(options)
	reaper.Callback("stats", func() { statsShutdownChan <- true })

	reaper.Callback("stop session", stopSession)
	reaper.Callback("shutdown status", func() {
		displayHandle.ui.SetPlaybackStatus(display.StatusShuttingDown)
	})

	if options.EnableSimulation {
		startSession(options)
	}

	reaper.Wait()
}

func channelFamilies() []model.UiChannelFamily {
	return []model.UiChannelFamily{
		{Name: "Contact", Channels: []string{"level_contact"}, Unit: "dB"},
		{Name: "Ambient", Channels: []string{"level_ambient"}, Unit: "dB"},
		{Name: "Total", Channels: []string{"total_upstream", "total_downstream"}, Unit: "psi"},
		{Name: "Static", Channels: []string{"static_upstream", "static_downstream"}, Unit: "psi"},
	}
}
