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
	"testing"
	"time"
)

func TestRegisterDoneWait(t *testing.T) {
	Register("worker-a")
	Register("worker-b")

	go func() {
		Done("worker-a")
		Done("worker-b")
	}()

	if !WaitTimeout(2 * time.Second) {
		t.Fatal("WaitTimeout expired with all registrations done")
	}
}

func TestDuplicateRegistrationIsIgnored(t *testing.T) {
	Register("worker-dup")
	Register("worker-dup")

	// a single Done must satisfy the wait, the duplicate Register
	// must not have incremented the group a second time
	go Done("worker-dup")

	if !WaitTimeout(2 * time.Second) {
		t.Fatal("WaitTimeout expired, duplicate Register was counted twice")
	}
}

func TestDoneWithoutRegisterIsIgnored(t *testing.T) {
	// must not panic the waitgroup
	Done("never-registered")

	if !WaitTimeout(time.Second) {
		t.Fatal("WaitTimeout expired with nothing registered")
	}
}

func TestWaitTimeoutExpires(t *testing.T) {
	Register("worker-stuck")

	if WaitTimeout(100 * time.Millisecond) {
		t.Error("WaitTimeout reported success with an outstanding registration")
	}

	Done("worker-stuck")
}

func TestReapRunsCallbacksInReverseOrder(t *testing.T) {
	order := make([]string, 0, 2)

	Callback("first", func() { order = append(order, "first") })
	Callback("second", func() { order = append(order, "second") })

	if Reaped() {
		t.Fatal("Reaped() true before Reap was called")
	}

	Reap()

	if !Reaped() {
		t.Error("Reaped() false after Reap")
	}

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("callbacks ran in order %v, want [second first]", order)
	}

	// a second reap must not run the callbacks again
	Reap()

	if len(order) != 2 {
		t.Errorf("second Reap ran callbacks again, order now %v", order)
	}
}
