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
package display

type Status int

const (
	StatusStarting Status = iota
	StatusIdle
	StatusSynthesizing
	StatusPlaying
	StatusEnded
	StatusShuttingDown
	StatusFailed
)

var statusNames = map[Status]string{
	StatusStarting:     "Starting",
	StatusIdle:         "Idle",
	StatusSynthesizing: "Synthesizing",
	StatusPlaying:      "Playing",
	StatusEnded:        "Ended",
	StatusShuttingDown: "Shutting Down",
	StatusFailed:       "Failed",
}
