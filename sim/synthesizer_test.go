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
	"math/rand/v2"
	"reflect"
	"testing"
	"time"

	"hawk-telemetry/telemetry"
)

func testBaseRecord() *telemetry.BaseRecord {
	return &telemetry.BaseRecord{
		BandFrequencies:  []float64{25, 50, 100},
		Bands:            []float64{42.1, 47.3, 43.2},
		LevelContact:     61.5,
		LevelAmbient:     38.2,
		PressureBaseline: 1.02,
	}
}

func TestSynthesizeRowCount(t *testing.T) {
	tests := []struct {
		durationSeconds int
		intervalSeconds float64
		wantRows        int
	}{
		{60, 1.0, 60},
		{10, 0.5, 20},
		{1, 1.0, 1},
		{5, 2.0, 2},
		{600, 1.0, 600},
		// below the interval floor, clamped to 0.1s
		{6, 0.05, 60},
	}

	start := time.Date(2023, 5, 11, 9, 0, 0, 0, time.UTC)

	for _, test := range tests {
		series, err := Synthesize(testBaseRecord(), test.durationSeconds, test.intervalSeconds, start, nil)
		if err != nil {
			t.Fatalf("Synthesize(%d, %g) failed: %v", test.durationSeconds, test.intervalSeconds, err)
		}

		if series.Rows() != test.wantRows {
			t.Errorf("Synthesize(%d, %g) = %d rows, want %d",
				test.durationSeconds, test.intervalSeconds, series.Rows(), test.wantRows)
		}

		if len(series.Frequency) != test.wantRows || len(series.Level) != test.wantRows || len(series.Pressure) != test.wantRows {
			t.Errorf("Synthesize(%d, %g): matrix lengths disagree with timestamp count",
				test.durationSeconds, test.intervalSeconds)
		}
	}
}

func TestSynthesizeTimestampSpacing(t *testing.T) {
	start := time.Date(2023, 5, 11, 9, 0, 0, 0, time.UTC)

	series, err := Synthesize(testBaseRecord(), 30, 0.5, start, nil)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if !series.Timestamps[0].Equal(start) {
		t.Errorf("Timestamps[0] = %v, want session start %v", series.Timestamps[0], start)
	}

	for i := 1; i < series.Rows(); i++ {
		gap := series.Timestamps[i].Sub(series.Timestamps[i-1])
		if gap != 500*time.Millisecond {
			t.Fatalf("gap between rows %d and %d = %v, want 500ms", i-1, i, gap)
		}
	}
}

func TestSynthesizeInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		durationSeconds int
		intervalSeconds float64
	}{
		{"zero duration", 0, 1.0},
		{"negative duration", -5, 1.0},
		{"zero interval", 10, 0},
		{"negative interval", 10, -1.0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Synthesize(testBaseRecord(), test.durationSeconds, test.intervalSeconds, time.Now(), nil)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("got %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestSynthesizeDeterminism(t *testing.T) {
	start := time.Date(2023, 5, 11, 9, 0, 0, 0, time.UTC)

	first, err := Synthesize(testBaseRecord(), 120, 1.0, start, rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	second, err := Synthesize(testBaseRecord(), 120, 1.0, start, rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identically seeded synthesis produced different series")
	}

	third, err := Synthesize(testBaseRecord(), 120, 1.0, start, rand.New(rand.NewPCG(43, 0)))
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if reflect.DeepEqual(first.Frequency, third.Frequency) {
		t.Error("differently seeded synthesis produced identical noise")
	}
}

func TestSynthesizePressureRowShape(t *testing.T) {
	series, err := Synthesize(testBaseRecord(), 10, 1.0, time.Now(), rand.New(rand.NewPCG(7, 0)))
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	for i, row := range series.Pressure {
		if len(row) != 4 {
			t.Fatalf("Pressure[%d] has %d values, want 4", i, len(row))
		}

		if row[1] != 0.95*row[0] {
			t.Errorf("Pressure[%d]: downstream = %v, want 0.95 * %v", i, row[1], row[0])
		}

		if row[2] != 0.26 || row[3] != 0.08 {
			t.Errorf("Pressure[%d]: static placeholders = %v/%v, want 0.26/0.08", i, row[2], row[3])
		}
	}
}

func TestSynthesizeLeavesBaseUntouched(t *testing.T) {
	base := testBaseRecord()
	want := append([]float64(nil), base.Bands...)

	if _, err := Synthesize(base, 30, 1.0, time.Now(), nil); err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if !reflect.DeepEqual(base.Bands, want) {
		t.Error("Synthesize mutated the base record")
	}
}
