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
package shared

import (
	"fmt"
	"os"
	"path"
	"strings"
	"testing"
	"time"
)

func TestHijackLoggingRoutesStdoutToSinks(t *testing.T) {
	realStdout := os.Stdout
	realStderr := os.Stderr

	defer func() {
		os.Stdout = realStdout
		os.Stderr = realStderr
	}()

	lines := make(chan string, 16)

	HijackLogging()
	AddLogSink(func(level LogLevel, message string) {
		select {
		case lines <- fmt.Sprintf("%s|%s", level.String(), message):
		default:
		}
	})

	fmt.Println("stray library output")

	select {
	case line := <-lines:
		if line != "Info|stray library output" {
			t.Fatalf("unexpected sink line: %s", line)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("hijacked stdout line never reached the log sink")
	}
}

func TestStderrLoggerWritesToStockStderr(t *testing.T) {
	realStockStderr := stockStderr

	defer func() {
		stockStderr = realStockStderr
	}()

	outPath := path.Join(t.TempDir(), "stderr.log")
	out, err := os.Create(outPath)
	if err != nil {
		t.Fatalf("failed to create capture file: %v", err)
	}

	stockStderr = out
	stderrLogger(WARN, "cadence clock lagging")
	out.Close()

	contents, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read capture file: %v", err)
	}

	line := string(contents)

	if !strings.Contains(line, "[Warning] cadence clock lagging") {
		t.Fatalf("unexpected log line: %s", line)
	}
}
