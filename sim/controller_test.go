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
package sim

import (
	"errors"
	"strings"
	"testing"
	"time"

	"hawk-telemetry/telemetry"
)

func testDataset() *telemetry.Dataset {
	start := time.Date(2023, 5, 11, 9, 15, 0, 0, time.UTC)

	return &telemetry.Dataset{
		Name:            "test-dataset",
		Timestamps:      []time.Time{start, start.Add(time.Second), start.Add(2 * time.Second)},
		BandFrequencies: []float64{25, 50, 100},
		Frequency: [][]float64{
			{42.1, 47.3, 43.2},
			{42.3, 47.1, 43.5},
			{41.9, 47.6, 42.8},
		},
		Level: [][]float64{
			{61.5, 38.2},
			{62.1, 38.6},
			{60.9, 37.8},
		},
		PressureTimestamps: []time.Time{start, start.Add(5 * time.Second)},
		Pressure: [][]float64{
			{1.02, 0.97, 0.26, 0.08},
			{1.05, 0.99, 0.27, 0.08},
		},
	}
}

func TestStartRejectsInvalidConfiguration(t *testing.T) {
	controller := NewController(testDataset())

	if err := controller.Start(0, 1.0, nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Start(0, 1) = %v, want ErrInvalidConfiguration", err)
	}

	if status := controller.Status(); status.Running {
		t.Error("controller is running after a rejected Start")
	}
}

func TestStartWhileRunning(t *testing.T) {
	controller := NewController(testDataset())
	defer controller.Stop()

	if err := controller.Start(60, 1.0, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	before := controller.Status()

	if err := controller.Start(30, 1.0, nil); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second Start = %v, want ErrAlreadyRunning", err)
	}

	after := controller.Status()

	if !after.Running {
		t.Error("session no longer running after rejected Start")
	}

	if after.TotalPoints != before.TotalPoints {
		t.Errorf("rejected Start replaced the series: %d points, was %d", after.TotalPoints, before.TotalPoints)
	}

	if after.PointsEmitted < before.PointsEmitted {
		t.Errorf("cursor moved backwards: %d -> %d", before.PointsEmitted, after.PointsEmitted)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	controller := NewController(testDataset())

	if err := controller.Start(60, 1.0, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	first := controller.Stop()
	if !strings.Contains(first, "stopped") {
		t.Errorf("first Stop = %q, want a stop confirmation", first)
	}

	second := controller.Stop()
	if second != "simulation is not running" {
		t.Errorf("second Stop = %q, want the not-running message", second)
	}
}

func TestStopHaltsAdvancement(t *testing.T) {
	controller := NewController(testDataset())

	// 0.1s cadence so the clock actually ticks during the test
	if err := controller.Start(60, 0.1, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(250 * time.Millisecond)
	controller.Stop()

	if status := controller.Status(); status.Running {
		t.Fatal("session still running after Stop")
	}

	// no cursor mutation may happen once Stop has returned
	window := controller.WindowUpTo(-1)
	rows := window.Rows()

	time.Sleep(250 * time.Millisecond)

	if got := controller.WindowUpTo(-1).Rows(); got != rows {
		t.Errorf("window grew after Stop: %d -> %d rows", rows, got)
	}

	if window.Simulated {
		t.Error("window after Stop still serves simulation rows instead of the historical fallback")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	controller := NewController(testDataset())
	defer controller.Stop()

	// 3 rows at the minimum tick, the clock exhausts the series quickly
	if err := controller.Start(1, 0.3, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		status := controller.Status()

		if status.PointsEmitted < 1 || status.PointsEmitted > status.TotalPoints {
			t.Fatalf("points emitted %d outside [1, %d]", status.PointsEmitted, status.TotalPoints)
		}

		if window := controller.WindowUpTo(-1); window.Simulated && window.Rows() > status.PointsEmitted+1 {
			t.Fatalf("window has %d rows with only %d points emitted", window.Rows(), status.PointsEmitted)
		}

		time.Sleep(20 * time.Millisecond)
	}
}

func TestPlaybackReachingEndKeepsRunning(t *testing.T) {
	controller := NewController(testDataset())
	defer controller.Stop()

	// floor(1 / 0.5) = 2 rows, finished after one 500ms tick
	if err := controller.Start(1, 0.5, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(1200 * time.Millisecond)

	status := controller.Status()

	if !status.Running {
		t.Error("status flipped to idle at end of playback without Stop")
	}

	if status.PointsEmitted != status.TotalPoints {
		t.Errorf("points emitted = %d, want all %d at end of playback", status.PointsEmitted, status.TotalPoints)
	}

	if status.ProgressPercent != 100.0 {
		t.Errorf("progress = %v, want 100", status.ProgressPercent)
	}
}

func TestPlaybackCadenceScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("multi-second cadence scenario")
	}

	controller := NewController(testDataset())
	defer controller.Stop()

	// one minute of data at 1s cadence
	if err := controller.Start(60, 1.0, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	status := controller.Status()
	if status.TotalPoints != 60 {
		t.Fatalf("TotalPoints = %d, want 60", status.TotalPoints)
	}

	time.Sleep(5500 * time.Millisecond)

	status = controller.Status()

	// 6 points after 5.5s, give or take one tick of scheduling jitter
	if status.PointsEmitted < 5 || status.PointsEmitted > 7 {
		t.Errorf("PointsEmitted = %d after 5.5s, want 6 +/- 1", status.PointsEmitted)
	}

	window := controller.WindowUpTo(-1)
	if window.Rows() != status.PointsEmitted && window.Rows() != status.PointsEmitted+1 {
		t.Errorf("window rows = %d, want points emitted (%d)", window.Rows(), status.PointsEmitted)
	}
}

func TestSeededStartIsReproducible(t *testing.T) {
	seed := uint64(1234)

	first := NewController(testDataset())
	if err := first.Start(30, 1.0, &seed); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	firstPoint := first.PointAt(0)
	first.Stop()

	second := NewController(testDataset())
	if err := second.Start(30, 1.0, &seed); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	secondPoint := second.PointAt(0)
	second.Stop()

	for i := range firstPoint.Frequency {
		if firstPoint.Frequency[i] != secondPoint.Frequency[i] {
			t.Fatalf("band %d differs across identically seeded sessions: %v != %v",
				i, firstPoint.Frequency[i], secondPoint.Frequency[i])
		}
	}
}
