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
	"fmt"
	"log/slog"
	"time"

	"hawk-telemetry/display/custom"
	"hawk-telemetry/display/theme"
	"hawk-telemetry/model"
	"hawk-telemetry/reaper"
	"hawk-telemetry/util"

	"code.rocketnine.space/tslocum/cview"
	"github.com/gdamore/tcell/v2"
)

//
// constants
//

const (
	layoutMeterWidth            = 6
	layoutStatusItemHeaderWidth = 18
	layoutStatusColumnIndex     = 0
	layoutMeterColumnIndex      = 1
	layoutStatusGridLeftWidth   = 51
	layoutStatusGridRightWidth  = 55

	layoutFamilyColumnWidth = 45
	layoutFamilyNameWidth   = 10
	layoutFamilyValueWidth  = 12
)

//
// variables
//

var (
	meterSteps = []int{
		6, 5, 4, 3, 2, 1, 0,
		-1, -2, -3, -4, -5, -6}

	levelColors = map[int]tcell.Color{
		5:  theme.Red,
		3:  theme.Pink,
		1:  theme.Yellow,
		-3: theme.Green,
		-6: theme.SoftGreen,
	}
)

//
// types
//

type Tui struct {
	app             *cview.Application
	shutdownChannel chan bool

	errorCount     int
	controlHandler func()

	gridApp           *cview.Grid
	gridBandMeters    *cview.Grid
	gridFamilies      *cview.Grid
	elementBandMeters []*custom.BandMeter
	elementFamilies   []*custom.FamilyField

	tvLogs           *cview.TextView
	tvPlaybackStatus *custom.StatusText
	tvPosition       *custom.StatusText
	tvCadence        *custom.StatusText
	tvPoints         *custom.StatusText
	tvErrorCount     *custom.StatusText
	tvDatasetName    *custom.StatusText
	tvSeed           *custom.StatusText
	tvSessionSize    *custom.StatusText
	tvDirectory      *custom.StatusText

	statusMeterProgress    *custom.StatusMeter
	statusMeterRefreshLoad *custom.StatusMeter
}

//
// constructor
//

func NewTui() *Tui {
	tui := &Tui{
		shutdownChannel:   make(chan bool, 1),
		errorCount:        0,
		elementBandMeters: make([]*custom.BandMeter, 0),
		elementFamilies:   make([]*custom.FamilyField, 0),
	}

	return tui
}

//
// lifecycle managment
//

func (tui *Tui) Initalize() {
	tui.app = cview.NewApplication()
	defer tui.app.HandlePanic()

	meterRowHeight := len(meterSteps) + 2

	statusRowCount := 10
	statusRows := make([]int, statusRowCount)
	for i := range statusRowCount {
		statusRows[i] = 1
	}

	//
	// main application grid
	tui.gridApp = cview.NewGrid()
	tui.gridApp.SetPadding(0, 0, 0, 0)
	tui.gridApp.SetColumns(-1, layoutFamilyColumnWidth)
	tui.gridApp.SetBorders(true)
	tui.gridApp.SetBordersColor(theme.BorderColor)
	tui.gridApp.SetRows(statusRowCount, meterRowHeight, -1)
	tui.gridApp.SetBackgroundColor(cview.Styles.PrimitiveBackgroundColor)

	//
	// grid for the channel family list
	tui.gridFamilies = cview.NewGrid()
	tui.gridFamilies.SetPadding(0, 0, 0, 0)
	tui.gridFamilies.SetColumns(-1)
	tui.gridFamilies.SetRows(-1)
	tui.gridFamilies.SetBackgroundColor(cview.Styles.PrimitiveBackgroundColor)

	tui.gridApp.AddItem(tui.gridFamilies, 0, 1, 3, 1, 0, 0, false)

	//
	// grid for the status fields and meters
	gridStatus := cview.NewGrid()
	gridStatus.SetPadding(0, 0, 1, 1)
	gridStatus.SetColumns(layoutStatusGridLeftWidth, layoutStatusGridRightWidth, -1)
	gridStatus.SetRows(statusRows...)
	gridStatus.SetBackgroundColor(cview.Styles.PrimitiveBackgroundColor)

	// text status fields
	tui.tvPlaybackStatus = custom.NewStatusTextField(layoutStatusItemHeaderWidth, "Status", string(theme.RuneStop)+" Idle")
	tui.tvPlaybackStatus.SetColor(theme.SoftGreen)
	tui.tvPosition = custom.NewStatusTextField(layoutStatusItemHeaderWidth, "Position", "00:00:00.000")
	tui.tvCadence = custom.NewStatusTextField(layoutStatusItemHeaderWidth, "Cadence", "Unknown")
	tui.tvPoints = custom.NewStatusTextField(layoutStatusItemHeaderWidth, "Points", "0 / 0")
	tui.tvErrorCount = custom.NewStatusTextField(layoutStatusItemHeaderWidth, "Errors", "0")
	tui.tvDatasetName = custom.NewStatusTextField(layoutStatusItemHeaderWidth, "Dataset", "")
	tui.tvSeed = custom.NewStatusTextField(layoutStatusItemHeaderWidth, "Seed", "random")
	tui.tvSessionSize = custom.NewStatusTextField(layoutStatusItemHeaderWidth, "Session Size", "0 bytes")
	tui.tvDirectory = custom.NewStatusTextField(layoutStatusItemHeaderWidth, "Data Directory", "")

	gridStatus.AddItem(tui.tvPlaybackStatus.GetGrid(), 0, layoutStatusColumnIndex, 1, 1, 0, 0, false)
	gridStatus.AddItem(tui.tvPosition.GetGrid(), 1, layoutStatusColumnIndex, 1, 1, 0, 0, false)
	gridStatus.AddItem(tui.tvCadence.GetGrid(), 2, layoutStatusColumnIndex, 1, 1, 0, 0, false)
	gridStatus.AddItem(tui.tvPoints.GetGrid(), 3, layoutStatusColumnIndex, 1, 1, 0, 0, false)
	gridStatus.AddItem(tui.tvErrorCount.GetGrid(), 4, layoutStatusColumnIndex, 1, 1, 0, 0, false)
	gridStatus.AddItem(tui.tvDatasetName.GetGrid(), 5, layoutStatusColumnIndex, 1, 1, 0, 0, false)
	gridStatus.AddItem(tui.tvSeed.GetGrid(), 6, layoutStatusColumnIndex, 1, 1, 0, 0, false)
	gridStatus.AddItem(tui.tvSessionSize.GetGrid(), 7, layoutStatusColumnIndex, 1, 1, 0, 0, false)
	gridStatus.AddItem(tui.tvDirectory.GetGrid(), statusRowCount-1, layoutStatusColumnIndex, 1, 2, 0, 0, false)

	// progress bar status meters
	tui.statusMeterProgress = custom.NewStatusMeter(layoutStatusItemHeaderWidth, "Progress", 0, "%")
	tui.statusMeterRefreshLoad = custom.NewStatusMeter(layoutStatusItemHeaderWidth, "Refresh Load", 0, "%")

	gridStatus.AddItem(tui.statusMeterProgress.GetGrid(), 0, layoutMeterColumnIndex, 1, 1, 0, 0, false)
	gridStatus.AddItem(tui.statusMeterRefreshLoad.GetGrid(), 1, layoutMeterColumnIndex, 1, 1, 0, 0, false)

	tui.gridApp.AddItem(gridStatus, 0, 0, 1, 1, 0, 0, false)

	//
	// grid for the band meters
	tui.gridBandMeters = cview.NewGrid()
	tui.gridBandMeters.SetPadding(0, 0, 0, 0)
	tui.gridBandMeters.SetColumns(-1)

	tui.gridApp.AddItem(tui.gridBandMeters, 1, 0, 1, 1, 0, 0, false)

	//
	// grid for the log output view
	tui.tvLogs = cview.NewTextView()
	tui.tvLogs.SetPadding(0, 0, 0, 0)
	tui.tvLogs.SetDynamicColors(true)

	tui.gridApp.AddItem(tui.tvLogs, 2, 0, 1, 1, 0, 0, true)

	tui.app.SetRoot(tui.gridApp, true)
}

func (tui *Tui) Start() {
	reaper.Register("tui")

	go func() {
		defer tui.app.HandlePanic()

		// Capture user input
		tui.app.SetInputCapture(tui.eventHandler)

		if err := tui.app.Run(); err != nil {
			panic(err)
		}

		tui.shutdownChannel <- true
		reaper.Done("tui")
	}()

	go tui.excecuteLoop()
}

func (tui *Tui) Shutdown() {
	slog.Debug("Shutting down TUI")
	tui.app.Stop()

	slog.Debug("Waiting for TUI to shut down")
	tui.WaitForShutdown()
}

func (tui *Tui) IsShutdown() bool {
	return len(tui.shutdownChannel) > 0
}

func (tui *Tui) WaitForShutdown() {
	<-tui.shutdownChannel
}

//
// private functions
//

func (tui *Tui) eventHandler(event *tcell.EventKey) *tcell.EventKey {
	// Anything handled here will be executed on the main thread
	switch event.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		go reaper.Reap()
		return nil

	case tcell.KeyRune:
		if event.Rune() == 's' {
			if tui.controlHandler != nil {
				go tui.controlHandler()
			}
			return nil
		}
	}

	return event
}

func (tui *Tui) excecuteLoop() {
	defer tui.app.HandlePanic()

	slog.Debug("TUI loop started")

	for {
		if len(tui.shutdownChannel) > 0 {
			slog.Info("TUI shutting down")
			tui.app.QueueUpdateDraw(func() {})
			break
		}

		tui.app.QueueUpdateDraw(func() {})
		time.Sleep(50 * time.Millisecond)
	}
}

func (tui *Tui) updateMeter(meter *custom.StatusMeter, value, warnPct, cautionPct int) {
	color := tcell.ColorDefault

	if value <= warnPct {
		color = theme.Green
	} else if value <= cautionPct {
		color = theme.Yellow
	} else {
		color = theme.Red
	}

	meter.SetCurrentValue(value)
	meter.SetColor(color)
}

//
// status update functions
//

func (tui *Tui) SetPlaybackStatus(status Status) {
	if status < StatusStarting || status > StatusFailed {
		panic(fmt.Sprintf("invalid status value provided: %d", status))
	}

	var icon rune
	var color tcell.Color

	switch status {
	case StatusStarting:
		icon = theme.RuneClock
		color = theme.Yellow
	case StatusIdle:
		icon = theme.RuneStop
		color = theme.SoftGreen
	case StatusSynthesizing:
		icon = theme.RuneClock
		color = theme.Yellow
	case StatusPlaying:
		icon = theme.RunePlay
		color = theme.Green
	case StatusEnded:
		icon = theme.RuneSkipForward
		color = theme.Blue
	case StatusShuttingDown:
		icon = theme.RuneClock
		color = theme.Yellow
	case StatusFailed:
		icon = theme.RuneFailed
		color = theme.Red
	}

	tui.tvPlaybackStatus.SetCurrentValue(string(icon) + " " + statusNames[status])
	tui.tvPlaybackStatus.SetColor(color)
}

func (tui *Tui) SetPosition(seconds float64) {
	tui.tvPosition.SetCurrentValue(util.FormatDuration(seconds))
}

func (tui *Tui) SetCadence(value string) {
	tui.tvCadence.SetCurrentValue(value)
}

func (tui *Tui) SetPointCounts(emitted int, total int) {
	tui.tvPoints.SetCurrentValue(fmt.Sprintf("%d / %d", emitted, total))
}

func (tui *Tui) SetDatasetName(value string) {
	tui.tvDatasetName.SetCurrentValue(value)
}

func (tui *Tui) SetSeed(value string) {
	tui.tvSeed.SetCurrentValue(value)
}

func (tui *Tui) SetDirectory(value string) {
	tui.tvDirectory.SetCurrentValue(value)
}

func (tui *Tui) SetSessionSize(size uint64) {
	tui.tvSessionSize.SetCurrentValue(util.FormatSize(size))
}

func (tui *Tui) IncrementErrorCount() {
	tui.errorCount++
	tui.tvErrorCount.SetCurrentValue(fmt.Sprintf("%d", tui.errorCount))

	if tui.errorCount > 0 {
		tui.tvErrorCount.SetColor(theme.Red)
	}
}

func (tui *Tui) SetControlHandler(fn func()) {
	tui.controlHandler = fn
}

//
// spectrum band meters
//

func (tui *Tui) UpdateSpectrum(levels []model.BandLevel) {
	for i := range levels {
		level := levels[i]
		tui.elementBandMeters[i].SetLevel(level.Instant)
	}
}

func (tui *Tui) SetBandsActive(active bool) {
	for _, meter := range tui.elementBandMeters {
		meter.SetActive(active)
	}
}

func (tui *Tui) SetChannelFamilies(families []model.UiChannelFamily) {
	familyCount := len(families)
	tui.elementFamilies = make([]*custom.FamilyField, familyCount)

	familyRows := make([]int, familyCount+1)
	for i := range familyCount {
		familyRows[i] = 1
	}
	familyRows[familyCount] = -1

	tui.gridFamilies.SetRows(familyRows...)

	// loop through and create a new family ui item for each channel family
	for i, family := range families {
		familyField := custom.NewFamilyField(layoutFamilyNameWidth, layoutFamilyValueWidth, family)
		tui.elementFamilies[i] = familyField
		tui.gridFamilies.AddItem(familyField.GetGrid(), i, 0, 1, 1, 0, 0, false)
	}
}

func (tui *Tui) UpdateFamilyValues(values []float64) {
	for i, value := range values {
		if i >= len(tui.elementFamilies) {
			break
		}

		tui.elementFamilies[i].SetLatest(value)
	}
}

func (tui *Tui) SetBands(frequencies []float64) {
	bandCount := len(frequencies)
	tui.elementBandMeters = make([]*custom.BandMeter, bandCount)

	bandColumns := make([]int, bandCount+2)
	bandColumns[0] = 5
	for i := range bandCount {
		bandColumns[i+1] = layoutMeterWidth
	}
	bandColumns[bandCount+1] = -1

	tui.gridBandMeters.SetColumns(bandColumns...)

	meterStepLabel := cview.NewTextView()
	meterStepLabel.SetPadding(0, 0, 0, 0)

	meterStepLabel.Write([]byte(fmt.Sprintln()))
	for step := 0; step < len(meterSteps); step++ {
		meterStepLabel.Write([]byte(fmt.Sprintf("%3v\n", fmt.Sprintf("%+d", meterSteps[step]))))
	}
	tui.gridBandMeters.AddItem(meterStepLabel, 0, 0, 1, 1, 0, 0, false)

	for i := range bandCount {
		tui.elementBandMeters[i] = custom.NewBandMeter(meterSteps, levelColors)
		tui.elementBandMeters[i].SetBorder(false)
		tui.elementBandMeters[i].SetPadding(0, 0, 1, 1)
		tui.elementBandMeters[i].SetLevel(-6)
		tui.elementBandMeters[i].SetBandLabel(util.FormatHz(frequencies[i]))
		tui.elementBandMeters[i].SetActive(false)

		if i%2 == 1 {
			tui.elementBandMeters[i].SetBackgroundColor(theme.BandMeterAlternateBackgroundColor)
		}

		tui.gridBandMeters.AddItem(tui.elementBandMeters[i], 0, i+1, 1, 1, 0, 0, false)
	}
}

//
// logging
//

func (tui *Tui) WriteLevelLog(level slog.Level, message string) {
	color := "-"

	if level == slog.LevelWarn {
		color = "#" + theme.YellowRGB
	} else if level == slog.LevelError {
		color = "#" + theme.RedRGB + "::b"
	} else if level == slog.LevelDebug {
		color = "#" + theme.GrayRGB
	}

	tui.tvLogs.Write([]byte(fmt.Sprintf("[%s][%s[] [%s[] %s[-:-:-]\n", color, time.Now().Format("2006-01-02 15:04:05"), level.String(), message)))
}

//
// status meters
//

func (tui *Tui) SetProgress(percent int) {
	color := theme.Green
	if percent >= 100 {
		color = theme.Blue
	}

	tui.statusMeterProgress.SetCurrentValue(percent)
	tui.statusMeterProgress.SetColor(color)
}

func (tui *Tui) SetRefreshLoad(percent int) {
	tui.updateMeter(tui.statusMeterRefreshLoad, percent, 20, 50)
}
