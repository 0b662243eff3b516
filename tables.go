package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/banshee-data/core.report/internal/borehole"
	"github.com/banshee-data/core.report/internal/structure"
)

// columnIndex maps required column names to their positions in a header row.
func columnIndex(header []string, want []string) (map[string]int, error) {
	idx := make(map[string]int, len(want))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range want {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q (header was %v)", name, header)
		}
	}
	return idx, nil
}

func parseField(record []string, idx map[string]int, name string, row int) (float64, error) {
	v, err := strconv.ParseFloat(record[idx[name]], 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: invalid %s %q", row, name, record[idx[name]])
	}
	return v, nil
}

// readSurveyTable reads a depth,bearing,inclination CSV into survey stations.
func readSurveyTable(path string) ([]borehole.Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open survey table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read survey header: %w", err)
	}
	idx, err := columnIndex(header, []string{"depth", "bearing", "inclination"})
	if err != nil {
		return nil, fmt.Errorf("survey table: %w", err)
	}

	var stations []borehole.Station
	for row := 2; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("survey table row %d: %w", row, err)
		}

		var s borehole.Station
		if s.Depth, err = parseField(record, idx, "depth", row); err != nil {
			return nil, err
		}
		if s.Bearing, err = parseField(record, idx, "bearing", row); err != nil {
			return nil, err
		}
		if s.Inclination, err = parseField(record, idx, "inclination", row); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, nil
}

// readMeasurementTable reads a depth,alpha,beta CSV into raw measurements.
func readMeasurementTable(path string) ([]borehole.RawMeasurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open measurement table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read measurement header: %w", err)
	}
	idx, err := columnIndex(header, []string{"depth", "alpha", "beta"})
	if err != nil {
		return nil, fmt.Errorf("measurement table: %w", err)
	}

	var measurements []borehole.RawMeasurement
	for row := 2; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("measurement table row %d: %w", row, err)
		}

		var m borehole.RawMeasurement
		if m.Depth, err = parseField(record, idx, "depth", row); err != nil {
			return nil, err
		}
		if m.Alpha, err = parseField(record, idx, "alpha", row); err != nil {
			return nil, err
		}
		if m.Beta, err = parseField(record, idx, "beta", row); err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}
	return measurements, nil
}

// writePlaneTable writes the oriented-plane table, one row per measurement
// in input order.
func writePlaneTable(w io.Writer, planes []structure.Plane, precision int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"strike", "dip", "dip_direction", "pole.trend", "pole.plunge"}); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, p := range planes {
		record := []string{
			strconv.FormatFloat(p.Strike, 'f', precision, 64),
			strconv.FormatFloat(p.Dip, 'f', precision, 64),
			strconv.FormatFloat(p.DipDirection, 'f', precision, 64),
			strconv.FormatFloat(p.Pole.Trend, 'f', precision, 64),
			strconv.FormatFloat(p.Pole.Plunge, 'f', precision, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
