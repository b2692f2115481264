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
package util

import (
	"os"
	"path"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00.000"},
		{5.5, "00:00:05.500"},
		{65, "00:01:05.000"},
		{3725.25, "01:02:05.250"},
	}

	for _, test := range tests {
		if got := FormatDuration(test.seconds); got != test.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", test.seconds, got, test.want)
		}
	}
}

func TestFormatHz(t *testing.T) {
	tests := []struct {
		frequency float64
		want      string
	}{
		{25, "25"},
		{31.5, "31.5"},
		{1000, "1k"},
		{2500, "2.5k"},
		{10000, "10k"},
	}

	for _, test := range tests {
		if got := FormatHz(test.frequency); got != test.want {
			t.Errorf("FormatHz(%v) = %q, want %q", test.frequency, got, test.want)
		}
	}
}

func TestReadYamlFile(t *testing.T) {
	dir := t.TempDir()
	filePath := path.Join(dir, "hawk.yaml")

	contents := "data_directory: /tmp/sensors\nsimulation_options:\n  enable: true\n  duration_minutes: 5\n"
	if err := os.WriteFile(filePath, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	var cfg struct {
		DataDirectory     string `yaml:"data_directory"`
		SimulationOptions struct {
			Enable          bool `yaml:"enable"`
			DurationMinutes int  `yaml:"duration_minutes"`
		} `yaml:"simulation_options"`
	}

	if err := ReadYamlFile(&cfg, filePath); err != nil {
		t.Fatalf("ReadYamlFile failed: %v", err)
	}

	if cfg.DataDirectory != "/tmp/sensors" {
		t.Errorf("DataDirectory = %q, want /tmp/sensors", cfg.DataDirectory)
	}

	if !cfg.SimulationOptions.Enable || cfg.SimulationOptions.DurationMinutes != 5 {
		t.Errorf("simulation options = %+v, want enabled with 5 minutes", cfg.SimulationOptions)
	}
}

func TestReadYamlFileMissing(t *testing.T) {
	if err := ReadYamlFile(&struct{}{}, "/nonexistent/hawk.yaml"); err == nil {
		t.Error("expected error for missing yaml file")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	if FileExists(dir) {
		t.Error("FileExists returned true for a directory")
	}

	filePath := path.Join(dir, "sample")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(filePath) {
		t.Error("FileExists returned false for an existing file")
	}
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	if !DirectoryExists(dir) {
		t.Error("DirectoryExists returned false for an existing directory")
	}

	if DirectoryExists(path.Join(dir, "missing")) {
		t.Error("DirectoryExists returned true for a missing path")
	}

	filePath := path.Join(dir, "sample")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if DirectoryExists(filePath) {
		t.Error("DirectoryExists returned true for a regular file")
	}
}
