package borehole

import (
	"fmt"
	"sort"

	"github.com/banshee-data/core.report/internal/structure"
)

// RawMeasurement is one alpha/beta reading taken on the core at a depth down
// the hole.
type RawMeasurement struct {
	Depth float64 `json:"depth"`
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// Station is one hole-orientation survey record: the attitude of the hole at
// a given depth.
type Station struct {
	Depth       float64 `json:"depth"`
	Bearing     float64 `json:"bearing"`
	Inclination float64 `json:"inclination"`
}

// InvalidSurveyDataError reports a survey-station list that cannot anchor an
// interval partition: empty, not depth-ascending, or not starting at depth 0.
type InvalidSurveyDataError struct {
	Reason string
}

func (e *InvalidSurveyDataError) Error() string {
	return "invalid survey data: " + e.Reason
}

// DepthOutOfSurveyRangeError reports a measurement whose depth falls outside
// the depth range covered by the survey stations.
type DepthOutOfSurveyRangeError struct {
	Depth float64
}

func (e *DepthOutOfSurveyRangeError) Error() string {
	return fmt.Sprintf("measurement depth %v is outside the surveyed depth range", e.Depth)
}

// Borehole owns the survey stations of one hole and the planes produced from
// its raw measurements. It is immutable after New.
type Borehole struct {
	// OrientedMeasurements holds one plane per raw measurement, in
	// measurement input order.
	OrientedMeasurements []structure.Plane
	// OrientationLine is the reference-line convention the measurements
	// were logged against.
	OrientationLine OrientationLine
	// Stations is the depth-ascending hole orientation survey. The first
	// station must be at depth 0.
	Stations []Station
}

// New classifies every measurement to the survey station whose half-distance
// depth interval contains it, orients each against that station's attitude,
// and returns the finished borehole. Classification is all-or-nothing: the
// first measurement that fails to classify or orient aborts the build.
func New(line OrientationLine, measurements []RawMeasurement, stations []Station) (*Borehole, error) {
	oriented, err := mapMeasurementsToStations(measurements, stations, line)
	if err != nil {
		return nil, err
	}
	return &Borehole{
		OrientedMeasurements: oriented,
		OrientationLine:      line,
		Stations:             stations,
	}, nil
}

// depthInterval is the (Low, High] depth slice owned by one station.
type depthInterval struct {
	low  float64
	high float64
}

// stationIntervals builds the half-distance partition of the surveyed depth
// range: each station owns the depths closer to it than to its neighbours,
// with every shared boundary belonging to the shallower station, whose
// closed upper bound it is.
func stationIntervals(stations []Station) ([]depthInterval, error) {
	if len(stations) == 0 {
		return nil, &InvalidSurveyDataError{Reason: "no survey stations"}
	}
	if stations[0].Depth != 0.0 {
		return nil, &InvalidSurveyDataError{Reason: fmt.Sprintf("first station depth must be 0.0, got %v", stations[0].Depth)}
	}
	for i := 1; i < len(stations); i++ {
		if stations[i].Depth <= stations[i-1].Depth {
			return nil, &InvalidSurveyDataError{Reason: fmt.Sprintf("station depths must ascend, got %v after %v", stations[i].Depth, stations[i-1].Depth)}
		}
	}

	if len(stations) == 1 {
		return nil, &InvalidSurveyDataError{Reason: "at least two survey stations are required to form depth intervals"}
	}

	last := len(stations) - 1
	intervals := make([]depthInterval, len(stations))
	for i, s := range stations {
		switch {
		case i == 0:
			intervals[i] = depthInterval{
				low:  s.Depth,
				high: s.Depth + (stations[i+1].Depth-s.Depth)/2.0,
			}
		case i == last:
			intervals[i] = depthInterval{
				low:  s.Depth - (s.Depth-stations[i-1].Depth)/2.0,
				high: s.Depth,
			}
		default:
			intervals[i] = depthInterval{
				low:  s.Depth - (s.Depth-stations[i-1].Depth)/2.0,
				high: s.Depth + (stations[i+1].Depth-s.Depth)/2.0,
			}
		}
	}
	return intervals, nil
}

// classify returns the index of the interval containing depth. The intervals
// ascend and are contiguous, so the first interval whose upper bound reaches
// the depth is the only candidate.
func classify(depth float64, intervals []depthInterval) (int, error) {
	i := sort.Search(len(intervals), func(i int) bool {
		return depth <= intervals[i].high
	})
	if i == len(intervals) || depth <= intervals[i].low {
		return 0, &DepthOutOfSurveyRangeError{Depth: depth}
	}
	return i, nil
}

func mapMeasurementsToStations(measurements []RawMeasurement, stations []Station, line OrientationLine) ([]structure.Plane, error) {
	intervals, err := stationIntervals(stations)
	if err != nil {
		return nil, err
	}

	oriented := make([]structure.Plane, 0, len(measurements))
	for _, m := range measurements {
		i, err := classify(m.Depth, intervals)
		if err != nil {
			return nil, err
		}
		plane, err := AlphaBeta(stations[i].Bearing, stations[i].Inclination, m.Alpha, m.Beta, line)
		if err != nil {
			return nil, fmt.Errorf("measurement at depth %v: %w", m.Depth, err)
		}
		oriented = append(oriented, plane)
	}
	return oriented, nil
}
