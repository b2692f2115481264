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

type JsonStatus struct {
	MessageType string `json:"message_type"`

	Status string `json:"status"`

	Position    float64 `json:"position"`
	Cadence     string  `json:"cadence"`
	Emitted     int     `json:"emitted"`
	Total       int     `json:"total"`
	SessionSize uint64  `json:"session_size"`
	ErrorCount  int     `json:"error_count"`
	DatasetName string  `json:"dataset_name"`
	Seed        string  `json:"seed"`
	Directory   string  `json:"directory"`

	ProgressPct    int `json:"progress_pct"`
	RefreshLoadPct int `json:"refresh_load_pct"`
}

type JsonLog struct {
	MessageType string `json:"message_type"`

	Date    string `json:"date"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

type JsonSpectrum struct {
	MessageType string `json:"message_type"`

	Bands []JsonSpectrumBand `json:"bands"`
}

type JsonSpectrumBand struct {
	Frequency float64 `json:"frequency"`
	Level     int     `json:"level"`
}

type JsonFamilies struct {
	MessageType string `json:"message_type"`

	Families []JsonFamily `json:"families"`
}

type JsonFamily struct {
	Name     string   `json:"name"`
	Channels []string `json:"channels"`
	Unit     string   `json:"unit"`
	Latest   float64  `json:"latest"`
}
