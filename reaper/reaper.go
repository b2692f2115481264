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
package reaper

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

var (
	mutex           sync.Mutex
	reapRequested   chan bool
	reaperCallbacks []callback
	registrations   []string
	waitgroup       sync.WaitGroup
)

type callback struct {
	name         string
	callbackFunc func()
}

func init() {
	reapRequested = make(chan bool, 1)
	reaperCallbacks = make([]callback, 0)
	registrations = make([]string, 0)
}

// Reaped reports whether process shutdown has been requested.
func Reaped() bool {
	return len(reapRequested) > 0
}

// Reap requests shutdown and runs the registered callbacks in reverse
// registration order. Only the first call has any effect.
func Reap() {
	mutex.Lock()
	if len(reapRequested) > 0 {
		mutex.Unlock()
		return
	}
	reapRequested <- true

	callbacksReversed := slices.Clone(reaperCallbacks)
	mutex.Unlock()

	slices.Reverse(callbacksReversed)

	for _, callback := range callbacksReversed {
		slog.Info("reaper: calling reap callback for '" + callback.name + "'")
		callback.callbackFunc()
	}
}

func Callback(name string, callbackFunc func()) {
	mutex.Lock()
	defer mutex.Unlock()

	reaperCallbacks = append(reaperCallbacks, callback{
		name:         name,
		callbackFunc: callbackFunc,
	})
}

func Register(name string) {
	mutex.Lock()
	defer mutex.Unlock()

	if slices.Contains(registrations, name) {
		slog.Warn("reaper: already registered '" + name + "'")
		return
	}

	registrations = append(registrations, name)
	waitgroup.Add(1)
	slog.Debug("reaper: registered '" + name + "'")
}

func Done(name string) {
	mutex.Lock()
	defer mutex.Unlock()

	if !slices.Contains(registrations, name) {
		slog.Warn("reaper: already done or doesn't exist: '" + name + "'")
		return
	}

	registrations = slices.DeleteFunc(registrations, func(test string) bool {
		return test == name
	})

	slog.Debug("reaper: done: '" + name + "'")
	waitgroup.Done()
}

func Wait() {
	waitgroup.Wait()
}

// WaitTimeout waits like Wait but gives up after the provided duration.
// Returns false if the wait timed out.
func WaitTimeout(timeout time.Duration) bool {
	finished := make(chan struct{})

	go func() {
		waitgroup.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return true
	case <-time.After(timeout):
		slog.Error("reaper: timed out waiting for routines to finish")
		return false
	}
}
