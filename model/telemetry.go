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
package model

// BandLevel carries the meter value for one frequency band, expressed
// in whole dB relative to the base record amplitude for that band.
type BandLevel struct {
	Instant int
}

// UiChannelFamily describes one sensor channel family row shown in the
// side panel (frequency bands, level sensors, pressure sensors).
type UiChannelFamily struct {
	Name     string
	Channels []string
	Unit     string
	Latest   float64
}
