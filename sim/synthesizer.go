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
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"hawk-telemetry/telemetry"
)

var ErrInvalidConfiguration = errors.New("invalid simulation configuration")

// intervals below this are clamped rather than rejected, prevents a
// divide-by-zero cadence and runaway allocation from tiny intervals
const minIntervalSeconds = 0.1

const (
	frequencyNoiseSigma = 0.5
	frequencyTrendAmp   = 2.0
	frequencyPeriodSec  = 600

	levelNoiseSigma = 10.0
	levelTrendAmp   = 20.0
	levelPeriodSec  = 300

	pressureNoiseSigma = 0.1
	pressureTrendAmp   = 0.3
	pressurePeriodSec  = 180
)

// static pressure placeholders on the same scale as the historical log
var staticPressures = [2]float64{0.26, 0.08}

// Series is one fully materialized simulation dataset. It is built
// once per session and never mutated afterwards, which is what lets
// readers copy rows without holding the controller lock.
type Series struct {
	Timestamps []time.Time
	Frequency  [][]float64 // rows x bands
	Level      [][]float64 // rows x 2
	Pressure   [][]float64 // rows x 4
}

func (s *Series) Rows() int {
	return len(s.Timestamps)
}

// Synthesize expands the base record into floor(duration/interval)
// rows of plausible sensor readings: per-channel gaussian noise on top
// of the base values plus a slow sine trend per channel family.
//
// The output is fully determined by the inputs: the same base record,
// timing and an identically seeded rng produce an identical series.
// A nil rng draws from a freshly seeded source instead.
func Synthesize(base *telemetry.BaseRecord, durationSeconds int, intervalSeconds float64, start time.Time, rng *rand.Rand) (*Series, error) {
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %ds", ErrInvalidConfiguration, durationSeconds)
	}

	if intervalSeconds <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %gs", ErrInvalidConfiguration, intervalSeconds)
	}

	if intervalSeconds < minIntervalSeconds {
		intervalSeconds = minIntervalSeconds
	}

	rows := int(math.Floor(float64(durationSeconds) / intervalSeconds))
	if rows < 1 {
		return nil, fmt.Errorf("%w: %ds at %gs intervals yields no rows", ErrInvalidConfiguration, durationSeconds, intervalSeconds)
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	bands := len(base.Bands)
	interval := time.Duration(intervalSeconds * float64(time.Second))

	series := &Series{
		Timestamps: make([]time.Time, rows),
		Frequency:  make([][]float64, rows),
		Level:      make([][]float64, rows),
		Pressure:   make([][]float64, rows),
	}

	// trend periods expressed in row units so the wall-clock cycle
	// length is independent of the chosen cadence
	frequencyPeriod := frequencyPeriodSec / intervalSeconds
	levelPeriod := levelPeriodSec / intervalSeconds
	pressurePeriod := pressurePeriodSec / intervalSeconds

	for i := 0; i < rows; i++ {
		series.Timestamps[i] = start.Add(time.Duration(i) * interval)

		frequencyTrend := frequencyTrendAmp * math.Sin(2*math.Pi*float64(i)/frequencyPeriod)
		frequencyRow := make([]float64, bands)
		for b := 0; b < bands; b++ {
			frequencyRow[b] = base.Bands[b] + rng.NormFloat64()*frequencyNoiseSigma + frequencyTrend
		}
		series.Frequency[i] = frequencyRow

		levelTrend := levelTrendAmp * math.Sin(2*math.Pi*float64(i)/levelPeriod)
		series.Level[i] = []float64{
			base.LevelContact + rng.NormFloat64()*levelNoiseSigma + levelTrend,
			base.LevelAmbient + rng.NormFloat64()*levelNoiseSigma + levelTrend,
		}

		pressureTrend := pressureTrendAmp * math.Sin(2*math.Pi*float64(i)/pressurePeriod)
		p := base.PressureBaseline + rng.NormFloat64()*pressureNoiseSigma + pressureTrend
		series.Pressure[i] = []float64{p, 0.95 * p, staticPressures[0], staticPressures[1]}
	}

	return series, nil
}
