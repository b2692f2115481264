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
package custom

import (
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"code.rocketnine.space/tslocum/cview"
	"github.com/gdamore/tcell/v2"
)

// BandMeter indicates the level of a single spectrum band relative to its
// reference level.
type BandMeter struct {
	*cview.Box

	// Rune to use when rendering the empty area of the meter.
	emptyRune rune

	// Rune to use when rendering the filled area of the meter.
	filledRune rune

	bandLabel  string
	bandActive bool

	// Current levels
	level            int
	peakLevel        int
	peakHoldTimeMs   int
	lastPeakTime     int64
	longTermMaxLevel int

	// Maximum level passable to the meter
	maxLevel int

	// Minimum level represented on the meter
	minLevel int

	// slice containing meter level steps
	meterSteps []int

	inactiveColor tcell.Color

	// meter level to foreground color map
	colorMap map[int]tcell.Color

	sync.RWMutex
}

// NewBandMeter returns a new spectrum band meter bar.
func NewBandMeter(meterSteps []int, colorMap map[int]tcell.Color) *BandMeter {
	p := &BandMeter{
		Box:              cview.NewBox(),
		emptyRune:        rune(9617),
		filledRune:       rune(9607),
		maxLevel:         slices.Max(meterSteps),
		minLevel:         slices.Min(meterSteps),
		peakHoldTimeMs:   750,
		peakLevel:        slices.Min(meterSteps),
		level:            slices.Min(meterSteps),
		longTermMaxLevel: slices.Min(meterSteps),
		inactiveColor:    tcell.Color237,
		bandLabel:        "",
		bandActive:       false,
		meterSteps:       meterSteps,
		colorMap:         colorMap,
	}
	p.SetBackgroundColor(cview.Styles.PrimitiveBackgroundColor)
	return p
}

func (p *BandMeter) SetBandLabel(label string) {
	p.Lock()
	defer p.Unlock()

	p.bandLabel = label
}

func (p *BandMeter) GetLongTermMaxLevel() int {
	p.RLock()
	defer p.RUnlock()

	return p.longTermMaxLevel
}

// SetLevel sets the current level.
func (p *BandMeter) SetLevel(level int) {
	p.Lock()
	defer p.Unlock()

	p.level = level

	if p.level < p.minLevel {
		p.level = p.minLevel
	} else if p.level > p.maxLevel {
		p.level = p.maxLevel
	}

	if p.level > p.longTermMaxLevel {
		p.longTermMaxLevel = p.level
	}

	if p.level > p.peakLevel || (time.Now().UnixMilli()-p.lastPeakTime) > int64(p.peakHoldTimeMs) {
		p.peakLevel = p.level
		p.lastPeakTime = time.Now().UnixMilli()
	}
}

// GetLevel gets the current level.
func (p *BandMeter) GetLevel() int {
	p.RLock()
	defer p.RUnlock()

	return p.level
}

func (p *BandMeter) SetActive(active bool) {
	p.Lock()
	defer p.Unlock()

	p.bandActive = active
}

func getLevelColor(colorMap map[int]tcell.Color, currentLevel int) tcell.Color {
	keys := make([]int, 0, len(colorMap))

	for k := range colorMap {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	for key := range keys {
		mapLevel := keys[key]
		mapColor := colorMap[mapLevel]
		if currentLevel >= mapLevel {
			return mapColor
		}
	}

	return tcell.ColorPurple
}

// Draw draws this primitive onto the screen.
func (p *BandMeter) Draw(screen tcell.Screen) {
	if !p.GetVisible() {
		return
	}

	p.Box.Draw(screen)

	p.Lock()
	defer p.Unlock()

	x, y, meterWidth, _ := p.GetInnerRect()
	foundPeak := false

	fmtString := fmt.Sprintf("%%%dv", meterWidth)
	runeArray := []rune(fmt.Sprintf(fmtString, p.bandLabel))
	for w := 0; w < meterWidth; w++ {
		screen.SetContent(x+w, y, runeArray[w], nil, tcell.StyleDefault.Bold(true).Background(p.GetBackgroundColor()))
	}

	y += 1

	for step := 0; step < len(p.meterSteps); step++ {
		stepLevel := p.meterSteps[step]
		doDraw := false
		foregroundColor := getLevelColor(p.colorMap, stepLevel)
		style := tcell.StyleDefault.Foreground(foregroundColor).Background(p.GetBackgroundColor())

		if !foundPeak && p.peakLevel >= stepLevel {
			foundPeak = true
			style = tcell.StyleDefault.Bold(true).Foreground(foregroundColor).Background(p.GetBackgroundColor())
			doDraw = true
		} else {
			if p.level >= stepLevel {
				doDraw = true
			}
		}

		if !p.bandActive {
			if doDraw {
				style = style.Foreground(p.inactiveColor)
			} else {
				style = style.Foreground(p.inactiveColor).Dim(true)
			}
		}

		if doDraw {
			for w := 0; w < meterWidth; w++ {
				screen.SetContent(x+w, y+(step), p.filledRune, nil, style.Dim(!p.bandActive))
			}
		} else {
			for w := 0; w < meterWidth; w++ {
				screen.SetContent(x+w, y+(step), p.emptyRune, nil, style.Dim(true))
			}
		}
	}

	y += len(p.meterSteps)

	// show signed long term max below the bar
	fmtString = fmt.Sprintf("%%%dv", meterWidth)
	runeArray = []rune(fmt.Sprintf(fmtString, fmt.Sprintf("%+d", p.longTermMaxLevel)))
	longTermMaxColor := getLevelColor(p.colorMap, p.longTermMaxLevel)
	for w := 0; w < meterWidth; w++ {
		screen.SetContent(x+w, y, runeArray[w], nil, tcell.StyleDefault.Bold(true).Foreground(longTermMaxColor).Background(p.GetBackgroundColor()))
	}
}
