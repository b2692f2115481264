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

type OutputType int

const (
	OutputTUI OutputType = iota
	OutputJSON
)

var OutputTypeMap = map[string]OutputType{
	"tui":  OutputTUI,
	"json": OutputJSON,
}

type CommandLineArgs struct {
	Simulate        bool
	DurationMinutes int
	IntervalSeconds float64
	Seed            uint64
	SeedSet         bool
	FreezeSpectrum  bool

	DataDirectory string
	ConfigFile    string
	OutputType    string
}

type Config struct {
	DataDirectory string     `yaml:"data_directory,omitempty"`
	AcousticFile  string     `yaml:"acoustic_file,omitempty"`
	PressureFile  string     `yaml:"pressure_file,omitempty"`
	LogLevel      int        `yaml:"log_level,omitempty"`
	OutputType    OutputType `yaml:"output_type,omitempty"`

	SimulationOptions *SimulationOptions `yaml:"simulation_options"`
}

type SimulationOptions struct {
	EnableSimulation bool    `yaml:"enable,omitempty"`
	DurationMinutes  int     `yaml:"duration_minutes,omitempty"`
	IntervalSeconds  float64 `yaml:"interval_seconds,omitempty"`
	FreezeSpectrum   bool    `yaml:"freeze_spectrum,omitempty"`

	// nil means "unseeded, draw randomly"; zero is a legitimate seed
	// so presence can't be inferred from the value
	Seed *uint64 `yaml:"seed,omitempty"`
}
