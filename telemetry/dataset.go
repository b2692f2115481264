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
package telemetry

import "time"

// BaseRecord is the single historical sample used to seed synthetic
// data: one amplitude per frequency band, the two level readings and a
// pressure baseline on the same scale as the recorded totals.
type BaseRecord struct {
	BandFrequencies  []float64
	Bands            []float64
	LevelContact     float64
	LevelAmbient     float64
	PressureBaseline float64
}

// Dataset is the historical (non-simulated) sensor recording. It backs
// the dashboard whenever no simulation session is active and provides
// the base record that seeds synthesis. Immutable once loaded.
type Dataset struct {
	Name string

	Timestamps      []time.Time
	BandFrequencies []float64
	Frequency       [][]float64 // rows x bands
	Level           [][]float64 // rows x 2 (contact, ambient)

	// the pressure log has its own clock and row count
	PressureTimestamps []time.Time
	Pressure           [][]float64 // rows x 4 (total up/down, static up/down)
}

func (d *Dataset) Rows() int {
	return len(d.Timestamps)
}

func (d *Dataset) Bands() int {
	return len(d.BandFrequencies)
}

// PressureRow returns the pressure reading aligned with acoustic row i.
// The pressure log is typically shorter than the acoustic log, so the
// index is clamped to the last recorded row.
func (d *Dataset) PressureRow(i int) []float64 {
	if len(d.Pressure) == 0 {
		return []float64{0, 0, 0, 0}
	}

	if i >= len(d.Pressure) {
		i = len(d.Pressure) - 1
	}
	if i < 0 {
		i = 0
	}

	return d.Pressure[i]
}

// BaseRecord derives the synthesis seed record from the first acoustic
// row and the first recorded total upstream pressure.
func (d *Dataset) BaseRecord() *BaseRecord {
	record := &BaseRecord{
		BandFrequencies:  d.BandFrequencies,
		Bands:            make([]float64, d.Bands()),
		PressureBaseline: 1.0,
	}

	if d.Rows() > 0 {
		copy(record.Bands, d.Frequency[0])
		record.LevelContact = d.Level[0][0]
		record.LevelAmbient = d.Level[0][1]
	}

	if len(d.Pressure) > 0 {
		record.PressureBaseline = d.Pressure[0][0]
	}

	return record
}
