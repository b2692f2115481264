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
	"math"

	"hawk-telemetry/display"
	"hawk-telemetry/model"
	"hawk-telemetry/sim"
)

func toggleSession(options *model.SimulationOptions) {
	if controller.Status().Running {
		stopSession()
	} else {
		startSession(options)
	}
}

func startSession(options *model.SimulationOptions) {
	displayHandle.ui.SetPlaybackStatus(display.StatusSynthesizing)

	durationSeconds := options.DurationMinutes * 60

	if err := controller.Start(durationSeconds, options.IntervalSeconds, options.Seed); err != nil {
		slog.Error("Could not start demo session: " + err.Error())
		displayHandle.ui.SetPlaybackStatus(display.StatusFailed)
		return
	}

	slog.Info(fmt.Sprintf("Demo session started: %d minute(s) at %gs cadence", options.DurationMinutes, options.IntervalSeconds))

	displayHandle.ui.SetCadence(fmt.Sprintf("%gs / point", options.IntervalSeconds))
	displayHandle.ui.SetBandsActive(true)
	displayHandle.ui.SetPlaybackStatus(display.StatusPlaying)
}

func stopSession() {
	message := controller.Stop()
	slog.Info(message)

	if displayHandle.ui.IsShutdown() {
		return
	}

	displayHandle.ui.SetBandsActive(false)
	displayHandle.ui.SetPlaybackStatus(display.StatusIdle)
}

// updateSpectrum converts the latest fabricated point into per band
// meter levels, expressed as rounded dB deltas against the base record.
func updateSpectrum(point *sim.Point) {
	levels := make([]model.BandLevel, len(point.Frequency))

	for band := range point.Frequency {
		if band >= len(baseRecord.Bands) {
			break
		}

		delta := point.Frequency[band] - baseRecord.Bands[band]
		levels[band] = model.BandLevel{Instant: int(math.Round(delta))}
	}

	displayHandle.ui.UpdateSpectrum(levels)
}

// updateFamilies pushes the latest reading of each channel family, one
// representative channel per family row.
func updateFamilies(point *sim.Point) {
	values := make([]float64, 0, 4)

	if len(point.Level) >= 2 {
		values = append(values, point.Level[0], point.Level[1])
	}

	if len(point.Pressure) >= 4 {
		values = append(values, point.Pressure[0], point.Pressure[2])
	}

	displayHandle.ui.UpdateFamilyValues(values)
}

// sessionSize estimates the in-memory size of the emitted portion of
// the session, every column held as a float64.
func sessionSize(points int) uint64 {
	if dataset == nil {
		return 0
	}

	columns := dataset.Bands() + 2 + 4 + 1

	return uint64(points) * uint64(columns) * 8
}
