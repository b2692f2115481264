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
	"math"
	"time"

	"hawk-telemetry/display"
	"hawk-telemetry/model"
	"hawk-telemetry/reaper"
	"hawk-telemetry/util"
)

const refreshIntervalMs = 100

var (
	stats statistics
)

type statistics struct {
	refreshElapsedChan chan int64

	shutdownChan   chan bool
	spectrumFrozen bool
}

func initStatistics(options *model.SimulationOptions) chan bool {
	stats = statistics{
		refreshElapsedChan: make(chan int64, 5),

		shutdownChan:   make(chan bool, 5),
		spectrumFrozen: false,
	}

	// session status, spectrum and family refresh
	processOnInterval("ui refresh", stats.shutdownChan, refreshIntervalMs, func() {
		refreshStart := time.Now().UnixMicro()

		status := controller.Status()
		point := controller.PointAt(-1)

		displayHandle.ui.SetPosition(status.Elapsed.Seconds())
		displayHandle.ui.SetPointCounts(status.PointsEmitted, status.TotalPoints)
		displayHandle.ui.SetProgress(int(math.Round(status.ProgressPercent)))
		displayHandle.ui.SetSessionSize(sessionSize(status.PointsEmitted))

		if status.Running && status.PointsEmitted >= status.TotalPoints {
			displayHandle.ui.SetPlaybackStatus(display.StatusEnded)
		}

		if point != nil {
			updateFamilies(point)

			if point.Simulated && !stats.spectrumFrozen {
				updateSpectrum(point)

				if options.FreezeSpectrum {
					stats.spectrumFrozen = true
				}
			}
		}

		elapsed := time.Now().UnixMicro() - refreshStart

		if len(stats.refreshElapsedChan) < cap(stats.refreshElapsedChan) {
			stats.refreshElapsedChan <- elapsed
		}
	})

	// refresh loop load
	processOnInterval("refresh load stats", stats.shutdownChan, 1000, func() {
		refreshTimeAvg := util.GetChanAverage(stats.refreshElapsedChan)
		refreshLoad := refreshTimeAvg / (refreshIntervalMs * 1000.0)

		if !math.IsNaN(refreshLoad) {
			displayHandle.ui.SetRefreshLoad(int(math.Round(refreshLoad * 100.0)))
			util.TraceLog(fmt.Sprintf("refresh time: %0.0f us, load %0.3f%%", refreshTimeAvg, refreshLoad*100.0))
		}
	})

	return stats.shutdownChan
}

func processOnInterval(name string, shutdownChan chan bool, milliseconds int, process func()) {
	reaper.Register(name)

	go func() {
		process()

		t := time.NewTicker(time.Duration(milliseconds) * time.Millisecond)

		for range t.C {
			if len(shutdownChan) > 0 {
				break
			}

			process()
		}

		reaper.Done(name)
	}()
}
