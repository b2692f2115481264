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

import "time"

// Window is a read-only view over rows 0..k of either the simulated
// series or, when no session is active, the historical dataset. The
// outer slices are fresh; the rows themselves are immutable.
type Window struct {
	Timestamps []time.Time
	Frequency  [][]float64
	Level      [][]float64
	Pressure   [][]float64
	Simulated  bool
}

func (w *Window) Rows() int {
	return len(w.Timestamps)
}

// Point is a single telemetry row.
type Point struct {
	Index     int
	Timestamp time.Time
	Frequency []float64
	Level     []float64
	Pressure  []float64
	Simulated bool
}

// snapshot grabs the currently installed series and committed cursor
// under the lock. Everything built from the pair afterwards is safe
// lock-free: the series is immutable and rows 0..cursor are final.
func (c *Controller) snapshot() (*Series, int, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.state != stateRunning || c.series == nil {
		return nil, 0, false
	}

	return c.series, c.cursor, true
}

// WindowUpTo returns rows 0..min(index, cursor). A negative index
// means "everything emitted so far". With no active session the full
// historical dataset is returned instead, so the rendering layer
// always has something to draw.
func (c *Controller) WindowUpTo(index int) *Window {
	series, cursor, running := c.snapshot()

	if !running {
		return c.fallbackWindow(index)
	}

	limit := cursor
	if index >= 0 && index < limit {
		limit = index
	}

	return &Window{
		Timestamps: series.Timestamps[:limit+1],
		Frequency:  series.Frequency[:limit+1],
		Level:      series.Level[:limit+1],
		Pressure:   series.Pressure[:limit+1],
		Simulated:  true,
	}
}

// PointAt returns the row at the given index, clamped into the emitted
// range so rendering code never has to bounds-check. A negative index
// means "the latest emitted row". Falls back to the historical dataset
// when no session is active.
func (c *Controller) PointAt(index int) *Point {
	series, cursor, running := c.snapshot()

	if !running {
		return c.fallbackPoint(index)
	}

	if index < 0 || index > cursor {
		index = cursor
	}

	return &Point{
		Index:     index,
		Timestamp: series.Timestamps[index],
		Frequency: series.Frequency[index],
		Level:     series.Level[index],
		Pressure:  series.Pressure[index],
		Simulated: true,
	}
}

func (c *Controller) fallbackWindow(index int) *Window {
	rows := c.fallback.Rows()

	limit := rows - 1
	if index >= 0 && index < limit {
		limit = index
	}

	window := &Window{
		Timestamps: c.fallback.Timestamps[:limit+1],
		Frequency:  c.fallback.Frequency[:limit+1],
		Level:      c.fallback.Level[:limit+1],
		Pressure:   make([][]float64, limit+1),
	}

	// pressure rows are clamped to the shorter pressure log
	for i := 0; i <= limit; i++ {
		window.Pressure[i] = c.fallback.PressureRow(i)
	}

	return window
}

func (c *Controller) fallbackPoint(index int) *Point {
	last := c.fallback.Rows() - 1

	if index < 0 || index > last {
		index = last
	}

	return &Point{
		Index:     index,
		Timestamp: c.fallback.Timestamps[index],
		Frequency: c.fallback.Frequency[index],
		Level:     c.fallback.Level[index],
		Pressure:  c.fallback.PressureRow(index),
	}
}
