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
package telemetry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"hawk-telemetry/model"
)

// only the head of the acoustic log is kept, same cap the historical
// dashboard used to stay responsive
const maxAcousticRows = 1000

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
}

// Load reads the acoustic and pressure CSV logs named by the config and
// assembles the historical dataset.
func Load(config *model.Config) (*Dataset, error) {
	acousticPath := path.Join(config.DataDirectory, config.AcousticFile)
	pressurePath := path.Join(config.DataDirectory, config.PressureFile)

	dataset, err := LoadAcoustic(acousticPath, maxAcousticRows)
	if err != nil {
		return nil, err
	}

	pressureTimes, pressure, err := LoadPressures(pressurePath)
	if err != nil {
		return nil, err
	}

	dataset.PressureTimestamps = pressureTimes
	dataset.Pressure = pressure

	slog.Info(fmt.Sprintf("Loaded dataset '%s': %d acoustic rows, %d bands, %d pressure rows",
		dataset.Name, dataset.Rows(), dataset.Bands(), len(dataset.Pressure)))

	return dataset, nil
}

// LoadAcoustic reads the acoustic sensor log. Band columns are named
// "f<frequency>" (f25, f31.5, ... f10000) and are reordered by
// ascending frequency regardless of file order. Rows that fail to
// parse are skipped, not fatal.
func LoadAcoustic(filePath string, maxRows int) (*Dataset, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.New("could not open acoustic log: " + err.Error())
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.New("could not read acoustic log header: " + err.Error())
	}

	type bandColumn struct {
		frequency float64
		index     int
	}

	timeIndex := -1
	contactIndex := -1
	ambientIndex := -1
	bandColumns := make([]bandColumn, 0, len(header))

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "receipt_time":
			timeIndex = i
			continue
		case "level_contact":
			contactIndex = i
			continue
		case "level_ambient":
			ambientIndex = i
			continue
		}

		if strings.HasPrefix(name, "f") {
			if frequency, err := strconv.ParseFloat(name[1:], 64); err == nil {
				bandColumns = append(bandColumns, bandColumn{frequency: frequency, index: i})
			}
		}
	}

	if timeIndex < 0 || contactIndex < 0 || ambientIndex < 0 || len(bandColumns) == 0 {
		return nil, errors.New("acoustic log is missing required columns: " + filePath)
	}

	sort.Slice(bandColumns, func(a, b int) bool {
		return bandColumns[a].frequency < bandColumns[b].frequency
	})

	dataset := &Dataset{
		Name:            strings.TrimSuffix(path.Base(filePath), path.Ext(filePath)),
		BandFrequencies: make([]float64, len(bandColumns)),
	}

	for i, column := range bandColumns {
		dataset.BandFrequencies[i] = column.frequency
	}

	for len(dataset.Timestamps) < maxRows {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("Skipping unreadable acoustic row: " + err.Error())
			continue
		}

		timestamp, err := parseTimestamp(row[timeIndex])
		if err != nil {
			slog.Warn("Skipping acoustic row with bad timestamp: " + row[timeIndex])
			continue
		}

		bands := make([]float64, len(bandColumns))
		ok := true
		for i, column := range bandColumns {
			if bands[i], err = strconv.ParseFloat(row[column.index], 64); err != nil {
				ok = false
				break
			}
		}

		contact, contactErr := strconv.ParseFloat(row[contactIndex], 64)
		ambient, ambientErr := strconv.ParseFloat(row[ambientIndex], 64)

		if !ok || contactErr != nil || ambientErr != nil {
			slog.Warn("Skipping acoustic row with non-numeric values")
			continue
		}

		dataset.Timestamps = append(dataset.Timestamps, timestamp)
		dataset.Frequency = append(dataset.Frequency, bands)
		dataset.Level = append(dataset.Level, []float64{contact, ambient})
	}

	if dataset.Rows() == 0 {
		return nil, errors.New("acoustic log contains no usable rows: " + filePath)
	}

	return dataset, nil
}

// LoadPressures reads the pressure sensor log: total and static psi
// readings, upstream and downstream of the sensing element.
func LoadPressures(filePath string) ([]time.Time, [][]float64, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, errors.New("could not open pressure log: " + err.Error())
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, errors.New("could not read pressure log header: " + err.Error())
	}

	wantedColumns := []string{
		"Total Pressure Upstream (psi)",
		"Total Pressure Downstream (psi)",
		"Static Pressure Upstream (psi)",
		"Static Pressure Downstream (psi)",
	}

	timeIndex := -1
	valueIndexes := make([]int, len(wantedColumns))
	for i := range valueIndexes {
		valueIndexes[i] = -1
	}

	for i, name := range header {
		name = strings.TrimSpace(name)

		if strings.EqualFold(name, "receipt_time") {
			timeIndex = i
			continue
		}

		for w, wanted := range wantedColumns {
			if strings.EqualFold(name, wanted) {
				valueIndexes[w] = i
			}
		}
	}

	if timeIndex < 0 {
		return nil, nil, errors.New("pressure log is missing the receipt_time column: " + filePath)
	}

	for w, index := range valueIndexes {
		if index < 0 {
			return nil, nil, errors.New("pressure log is missing column '" + wantedColumns[w] + "': " + filePath)
		}
	}

	timestamps := make([]time.Time, 0)
	rows := make([][]float64, 0)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("Skipping unreadable pressure row: " + err.Error())
			continue
		}

		timestamp, err := parseTimestamp(row[timeIndex])
		if err != nil {
			slog.Warn("Skipping pressure row with bad timestamp: " + row[timeIndex])
			continue
		}

		values := make([]float64, len(valueIndexes))
		ok := true
		for i, index := range valueIndexes {
			if values[i], err = strconv.ParseFloat(row[index], 64); err != nil {
				ok = false
				break
			}
		}

		if !ok {
			slog.Warn("Skipping pressure row with non-numeric values")
			continue
		}

		timestamps = append(timestamps, timestamp)
		rows = append(rows, values)
	}

	if len(rows) == 0 {
		return nil, nil, errors.New("pressure log contains no usable rows: " + filePath)
	}

	return timestamps, rows, nil
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range timestampLayouts {
		if timestamp, err := time.Parse(layout, value); err == nil {
			return timestamp, nil
		}
	}

	return time.Time{}, errors.New("unrecognized timestamp: " + value)
}
