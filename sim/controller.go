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
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"hawk-telemetry/telemetry"
)

var ErrAlreadyRunning = errors.New("a simulation session is already running")

// how long Stop waits for the cadence clock to confirm exit
const clockJoinTimeout = 1 * time.Second

// the cadence clock never ticks faster than this, regardless of the
// configured interval
const minTick = 100 * time.Millisecond

type sessionState int

const (
	stateIdle sessionState = iota
	stateRunning
)

// Controller owns the lifecycle of the single demo playback session:
// it synthesizes the series on Start, advances the shared cursor from
// one background cadence clock, and tears the session down on Stop.
// All methods are safe for concurrent use; the clock goroutine is the
// only writer of the cursor.
type Controller struct {
	mutex sync.Mutex

	fallback *telemetry.Dataset

	state     sessionState
	series    *Series
	cursor    int
	startedAt time.Time
	lastErr   error

	stopChan  chan struct{}
	clockDone chan struct{}
}

// SessionStatus is a consistent point-in-time view of the session,
// taken under a single lock acquisition.
type SessionStatus struct {
	Running         bool
	Elapsed         time.Duration
	ProgressPercent float64
	PointsEmitted   int
	TotalPoints     int
	Err             error
}

func (s SessionStatus) String() string {
	if !s.Running {
		if s.Err != nil {
			return "simulation is not running (last session ended with: " + s.Err.Error() + ")"
		}
		return "simulation is not running"
	}

	return fmt.Sprintf("simulation running: %d/%d points emitted (%.1f%%), elapsed %s",
		s.PointsEmitted, s.TotalPoints, s.ProgressPercent, s.Elapsed.Round(time.Millisecond))
}

// NewController builds a controller serving the given historical
// dataset while no simulation session is active.
func NewController(fallback *telemetry.Dataset) *Controller {
	return &Controller{
		fallback: fallback,
	}
}

// Start validates the requested timing, synthesizes a fresh series
// seeded from the fallback dataset's base record and launches the
// cadence clock. Returns ErrAlreadyRunning without touching the active
// session if one exists; returns ErrInvalidConfiguration before any
// state is mutated if the timing is unusable.
func (c *Controller) Start(durationSeconds int, intervalSeconds float64, seed *uint64) error {
	c.mutex.Lock()
	if c.state == stateRunning {
		c.mutex.Unlock()
		return ErrAlreadyRunning
	}
	c.mutex.Unlock()

	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewPCG(*seed, 0))
	}

	start := time.Now()

	// synthesis can take a moment for long sessions, keep it outside
	// the lock so readers stay responsive
	series, err := Synthesize(c.fallback.BaseRecord(), durationSeconds, intervalSeconds, start, rng)
	if err != nil {
		return err
	}

	if intervalSeconds < minIntervalSeconds {
		intervalSeconds = minIntervalSeconds
	}
	tick := time.Duration(intervalSeconds * float64(time.Second))
	if tick < minTick {
		tick = minTick
	}

	c.mutex.Lock()
	if c.state == stateRunning {
		// lost the race against a concurrent Start
		c.mutex.Unlock()
		return ErrAlreadyRunning
	}

	c.state = stateRunning
	c.series = series
	c.cursor = 0
	c.startedAt = start
	c.lastErr = nil
	c.stopChan = make(chan struct{})
	c.clockDone = make(chan struct{})

	stop, done := c.stopChan, c.clockDone
	last := series.Rows() - 1
	c.mutex.Unlock()

	slog.Info(fmt.Sprintf("Starting simulation session: %d points at %gs cadence", series.Rows(), intervalSeconds))

	go c.runClock(stop, done, tick, last)

	return nil
}

// runClock is the cadence clock: the sole writer of the cursor. It
// advances one row per tick until stopped or the series is exhausted.
// Reaching the last row ends advancement but leaves the session
// Running until Stop is called.
func (c *Controller) runClock(stop chan struct{}, done chan struct{}, tick time.Duration, last int) {
	defer close(done)

	defer func() {
		if r := recover(); r != nil {
			c.mutex.Lock()
			c.state = stateIdle
			c.series = nil
			c.lastErr = fmt.Errorf("cadence clock terminated unexpectedly: %v", r)
			c.mutex.Unlock()

			slog.Error(fmt.Sprintf("Cadence clock terminated unexpectedly: %v", r))
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return

		case <-ticker.C:
			c.mutex.Lock()
			if c.state != stateRunning {
				c.mutex.Unlock()
				return
			}

			if c.cursor < last {
				c.cursor++
			}
			ended := c.cursor >= last
			c.mutex.Unlock()

			if ended {
				slog.Info("Simulation playback reached the end of the series")
				return
			}
		}
	}
}

// Stop tears the session down: the series is discarded and the cadence
// clock is joined with a bounded wait, so no cursor mutation can happen
// after Stop returns. Idempotent; stopping an idle controller is a
// no-op with a descriptive message.
func (c *Controller) Stop() string {
	c.mutex.Lock()
	if c.state != stateRunning {
		c.mutex.Unlock()
		return "simulation is not running"
	}

	c.state = stateIdle
	c.series = nil
	points := c.cursor + 1
	stop, done := c.stopChan, c.clockDone
	c.stopChan, c.clockDone = nil, nil
	c.mutex.Unlock()

	close(stop)

	select {
	case <-done:
	case <-time.After(clockJoinTimeout):
		err := errors.New("cadence clock did not confirm exit within " + clockJoinTimeout.String())

		c.mutex.Lock()
		c.lastErr = err
		c.mutex.Unlock()

		slog.Error(err.Error())
		return "simulation stopped, but " + err.Error()
	}

	slog.Info(fmt.Sprintf("Simulation stopped after emitting %d points", points))
	return fmt.Sprintf("simulation stopped after emitting %d points", points)
}

// Status reports the session state from one consistent locked read, so
// a caller never observes a torn cursor/series pair.
func (c *Controller) Status() SessionStatus {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	status := SessionStatus{Err: c.lastErr}

	if c.state != stateRunning || c.series == nil {
		return status
	}

	rows := c.series.Rows()

	status.Running = true
	status.Elapsed = time.Since(c.startedAt)
	status.PointsEmitted = c.cursor + 1
	status.TotalPoints = rows

	if rows > 1 {
		status.ProgressPercent = 100.0 * float64(c.cursor) / float64(rows-1)
	} else {
		status.ProgressPercent = 100.0
	}

	return status
}
