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
	"strings"

	"hawk-telemetry/model"

	"code.rocketnine.space/tslocum/cview"
)

// FamilyField shows one sensor channel family with its most recent reading.
type FamilyField struct {
	unit         string
	grid         *cview.Grid
	nameView     *cview.TextView
	channelsView *cview.TextView
	valueView    *cview.TextView
}

func NewFamilyField(nameWidth int, valueWidth int, family model.UiChannelFamily) *FamilyField {
	field := FamilyField{
		grid: cview.NewGrid(),
		unit: family.Unit,
	}

	field.grid.SetPadding(0, 0, 0, 0)
	field.grid.SetColumns(nameWidth, -1, valueWidth)
	field.grid.SetRows(1)

	field.nameView = cview.NewTextView()
	field.nameView.SetTextAlign(cview.AlignRight)
	field.grid.AddItem(field.nameView, 0, 0, 1, 1, 0, 0, false)

	field.channelsView = cview.NewTextView()
	field.channelsView.SetPadding(0, 0, 2, 2)
	field.grid.AddItem(field.channelsView, 0, 1, 1, 1, 0, 0, false)

	field.valueView = cview.NewTextView()
	field.valueView.SetTextAlign(cview.AlignRight)
	field.grid.AddItem(field.valueView, 0, 2, 1, 1, 0, 0, false)

	field.SetName(family.Name)
	field.SetChannels(family.Channels)
	field.SetLatest(family.Latest)

	return &field
}

func (field *FamilyField) SetName(value string) {
	field.nameView.Clear()
	field.nameView.Write([]byte(value))
}

func (field *FamilyField) SetChannels(values []string) {
	field.channelsView.Clear()
	field.channelsView.Write([]byte(strings.Join(values, ", ")))
}

func (field *FamilyField) SetLatest(value float64) {
	field.valueView.Clear()
	field.valueView.Write([]byte(fmt.Sprintf("%.2f %s", value, field.unit)))
}

func (field *FamilyField) GetGrid() *cview.Grid {
	return field.grid
}
