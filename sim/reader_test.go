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
	"testing"
	"time"
)

func TestIdleWindowServesHistoricalData(t *testing.T) {
	dataset := testDataset()
	controller := NewController(dataset)

	window := controller.WindowUpTo(-1)

	if window.Simulated {
		t.Error("idle window flagged as simulated")
	}

	if window.Rows() != dataset.Rows() {
		t.Errorf("idle window has %d rows, want the full dataset (%d)", window.Rows(), dataset.Rows())
	}

	if window.Frequency[0][0] != dataset.Frequency[0][0] {
		t.Error("idle window does not serve the historical readings")
	}

	// the pressure log is shorter than the acoustic log, rows past its
	// end repeat the last reading
	last := window.Pressure[window.Rows()-1]
	if last[0] != 1.05 {
		t.Errorf("padded pressure row = %v, want the last recorded reading", last)
	}
}

func TestIdleWindowHonorsIndex(t *testing.T) {
	controller := NewController(testDataset())

	window := controller.WindowUpTo(1)

	if window.Rows() != 2 {
		t.Errorf("WindowUpTo(1) = %d rows, want 2", window.Rows())
	}
}

func TestIdlePointClamping(t *testing.T) {
	dataset := testDataset()
	controller := NewController(dataset)

	point := controller.PointAt(9999)

	if point.Simulated {
		t.Error("idle point flagged as simulated")
	}

	if point.Index != dataset.Rows()-1 {
		t.Errorf("PointAt(9999).Index = %d, want clamp to %d", point.Index, dataset.Rows()-1)
	}

	if latest := controller.PointAt(-1); latest.Index != dataset.Rows()-1 {
		t.Errorf("PointAt(-1).Index = %d, want %d", latest.Index, dataset.Rows()-1)
	}
}

func TestRunningWindowNeverOutrunsCursor(t *testing.T) {
	controller := NewController(testDataset())
	defer controller.Stop()

	// 1s cadence: the cursor stays at 0 for the duration of this test
	if err := controller.Start(60, 1.0, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	window := controller.WindowUpTo(50)

	if !window.Simulated {
		t.Fatal("running window not flagged as simulated")
	}

	if window.Rows() != 1 {
		t.Errorf("WindowUpTo(50) with cursor 0 = %d rows, want 1", window.Rows())
	}
}

func TestRunningPointClamping(t *testing.T) {
	controller := NewController(testDataset())
	defer controller.Stop()

	if err := controller.Start(60, 1.0, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	point := controller.PointAt(42)

	if point.Index != 0 {
		t.Errorf("PointAt(42) with cursor 0 = index %d, want 0", point.Index)
	}

	if len(point.Frequency) != 3 || len(point.Level) != 2 || len(point.Pressure) != 4 {
		t.Errorf("point row widths = %d/%d/%d, want 3/2/4",
			len(point.Frequency), len(point.Level), len(point.Pressure))
	}
}

func TestWindowRowsMatchEmittedPoints(t *testing.T) {
	controller := NewController(testDataset())
	defer controller.Stop()

	if err := controller.Start(60, 0.1, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(550 * time.Millisecond)

	status := controller.Status()
	window := controller.WindowUpTo(-1)

	// one tick of slack between the two reads
	if window.Rows() < status.PointsEmitted || window.Rows() > status.PointsEmitted+1 {
		t.Errorf("window rows = %d, points emitted = %d", window.Rows(), status.PointsEmitted)
	}

	for i := 1; i < window.Rows(); i++ {
		if !window.Timestamps[i].After(window.Timestamps[i-1]) {
			t.Fatalf("timestamps not monotonically increasing at row %d", i)
		}
	}
}
