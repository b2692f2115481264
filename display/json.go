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

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"hawk-telemetry/model"
)

//
// types
//

type JsonUI struct {
	shutdownChannel chan bool

	output *os.File

	mutex sync.Mutex

	statusPlayback Status

	statusPosition    float64
	statusCadence     string
	statusEmitted     int
	statusTotal       int
	statusSessionSize uint64
	statusErrorCount  int
	statusDatasetName string
	statusSeed        string
	statusDirectory   string

	metricProgressPct    int
	metricRefreshLoadPct int

	bandFrequencies []float64
	bandLevels      []model.BandLevel
	families        []model.UiChannelFamily
}

//
// constructor
//

func NewJsonUI(output *os.File) *JsonUI {
	jsonUi := &JsonUI{
		shutdownChannel: make(chan bool, 1),

		output: output,

		statusPlayback: StatusStarting,

		statusPosition:    0.0,
		statusCadence:     "",
		statusEmitted:     0,
		statusTotal:       0,
		statusSessionSize: 0,
		statusErrorCount:  0,
		statusDatasetName: "",
		statusSeed:        "random",
		statusDirectory:   "",

		metricProgressPct:    0,
		metricRefreshLoadPct: 0,

		bandFrequencies: make([]float64, 0),
		bandLevels:      make([]model.BandLevel, 0),
		families:        make([]model.UiChannelFamily, 0),
	}

	return jsonUi
}

func (j *JsonUI) Initalize() {
	// nothing to do here
}

func (j *JsonUI) Start() {
	go j.excecuteLoop()
}

func (j *JsonUI) excecuteLoop() {
	slog.Debug("JSON loop started")

	for {
		if len(j.shutdownChannel) > 0 {
			slog.Info("JSON UI shutting down")
			break
		}

		j.printJson(j.getStatus())
		j.printJson(j.getSpectrum())
		j.printJson(j.getFamilies())

		time.Sleep(1 * time.Second)
	}
}

func (j *JsonUI) Shutdown() {
	slog.Debug("Shutting down JSON UI")
	j.shutdownChannel <- true
}

func (j *JsonUI) IsShutdown() bool {
	return len(j.shutdownChannel) > 0
}

func (j *JsonUI) WaitForShutdown() {
	<-j.shutdownChannel
}

func (j *JsonUI) SetPlaybackStatus(status Status) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.statusPlayback = status
}

func (j *JsonUI) SetPosition(seconds float64) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.statusPosition = seconds
}

func (j *JsonUI) SetCadence(value string) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.statusCadence = value
}

func (j *JsonUI) SetPointCounts(emitted int, total int) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.statusEmitted = emitted
	j.statusTotal = total
}

func (j *JsonUI) SetDatasetName(value string) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.statusDatasetName = value
}

func (j *JsonUI) SetSeed(value string) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.statusSeed = value
}

func (j *JsonUI) SetDirectory(value string) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.statusDirectory = value
}

func (j *JsonUI) SetSessionSize(size uint64) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.statusSessionSize = size
}

func (j *JsonUI) IncrementErrorCount() {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.statusErrorCount += 1
}

func (j *JsonUI) SetBands(frequencies []float64) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.bandFrequencies = make([]float64, len(frequencies))
	copy(j.bandFrequencies, frequencies)
	j.bandLevels = make([]model.BandLevel, len(frequencies))
}

func (j *JsonUI) SetBandsActive(active bool) {
	// nothing to do here
}

func (j *JsonUI) UpdateSpectrum(levels []model.BandLevel) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	copy(j.bandLevels, levels)
}

func (j *JsonUI) SetChannelFamilies(families []model.UiChannelFamily) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.families = make([]model.UiChannelFamily, len(families))
	copy(j.families, families)
}

func (j *JsonUI) UpdateFamilyValues(values []float64) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	for i, value := range values {
		if i >= len(j.families) {
			break
		}

		j.families[i].Latest = value
	}
}

func (j *JsonUI) SetProgress(percent int) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.metricProgressPct = percent
}

func (j *JsonUI) SetRefreshLoad(percent int) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.metricRefreshLoadPct = percent
}

func (j *JsonUI) SetControlHandler(fn func()) {
	// nothing to do here, json mode has no keyboard input
}

func (j *JsonUI) WriteLevelLog(level slog.Level, message string) {
	logObj := JsonLog{
		MessageType: "log",

		Date:    time.Now().Format(time.RFC3339),
		Level:   level.String(),
		Message: message,
	}

	j.printJson(logObj)
}

//
// private functions
//

func (j *JsonUI) printJson(v any) {
	jsonBytes, err := json.Marshal(v)

	if err != nil {
		slog.Error("Error marshalling to JSON: " + err.Error())
	}

	fmt.Fprintln(j.output, string(jsonBytes))
}

func (j *JsonUI) getStatus() *JsonStatus {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	jsonStatus := &JsonStatus{
		MessageType: "status",

		Status: statusNames[j.statusPlayback],

		Position:    j.statusPosition,
		Cadence:     j.statusCadence,
		Emitted:     j.statusEmitted,
		Total:       j.statusTotal,
		SessionSize: j.statusSessionSize,
		ErrorCount:  j.statusErrorCount,
		DatasetName: j.statusDatasetName,
		Seed:        j.statusSeed,
		Directory:   j.statusDirectory,

		ProgressPct:    j.metricProgressPct,
		RefreshLoadPct: j.metricRefreshLoadPct,
	}

	return jsonStatus
}

func (j *JsonUI) getSpectrum() *JsonSpectrum {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	jsonSpectrum := &JsonSpectrum{
		MessageType: "spectrum",

		Bands: make([]JsonSpectrumBand, len(j.bandLevels)),
	}

	for i, level := range j.bandLevels {
		if i < len(j.bandFrequencies) {
			jsonSpectrum.Bands[i].Frequency = j.bandFrequencies[i]
		}
		jsonSpectrum.Bands[i].Level = level.Instant
	}

	return jsonSpectrum
}

func (j *JsonUI) getFamilies() *JsonFamilies {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	jsonFamilies := &JsonFamilies{
		MessageType: "families",

		Families: make([]JsonFamily, len(j.families)),
	}

	for i, family := range j.families {
		jsonFamilies.Families[i].Name = family.Name
		jsonFamilies.Families[i].Channels = family.Channels
		jsonFamilies.Families[i].Unit = family.Unit
		jsonFamilies.Families[i].Latest = family.Latest
	}

	return jsonFamilies
}
