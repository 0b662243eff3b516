package borehole

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func surveyFixture() []Station {
	return []Station{
		{Depth: 0.0, Bearing: 0.0, Inclination: -45.0},
		{Depth: 12.5, Bearing: 90.0, Inclination: -45.0},
		{Depth: 16.0, Bearing: 180.0, Inclination: -45.0},
		{Depth: 22.0, Bearing: 270.0, Inclination: -45.0},
		{Depth: 30.0, Bearing: 0.0, Inclination: -60.0},
	}
}

func TestStationIntervals(t *testing.T) {
	intervals, err := stationIntervals(surveyFixture())
	require.NoError(t, err)

	want := []depthInterval{
		{low: 0.0, high: 6.25},
		{low: 6.25, high: 14.25},
		{low: 14.25, high: 19.0},
		{low: 19.0, high: 26.0},
		{low: 26.0, high: 30.0},
	}
	require.Equal(t, want, intervals)

	// Contiguous partition: each boundary is shared exactly once.
	for i := 1; i < len(intervals); i++ {
		assert.Equal(t, intervals[i-1].high, intervals[i].low)
	}
}

func TestClassify(t *testing.T) {
	intervals, err := stationIntervals(surveyFixture())
	require.NoError(t, err)

	tests := []struct {
		name    string
		depth   float64
		want    int
		wantErr bool
	}{
		{"inside first interval", 1.0, 0, false},
		{"inside second interval", 10.0, 1, false},
		{"boundary midpoint closes the shallower interval", 6.25, 0, false},
		{"midpoint between 16 and 22", 19.0, 2, false},
		{"just past a midpoint", 19.000001, 3, false},
		{"station depth belongs to its own station", 16.0, 2, false},
		{"station depth 12.5", 12.5, 1, false},
		{"last station depth", 30.0, 4, false},
		{"zero depth is outside the open lower bound", 0.0, 0, true},
		{"beyond the last station", 30.5, 0, true},
		{"negative depth", -1.0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classify(tt.depth, intervals)
			if tt.wantErr {
				require.Error(t, err)
				var oor *DepthOutOfSurveyRangeError
				require.True(t, errors.As(err, &oor), "expected DepthOutOfSurveyRangeError, got %T", err)
				assert.Equal(t, tt.depth, oor.Depth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewBorehole(t *testing.T) {
	measurements := []RawMeasurement{
		{Depth: 1.0, Alpha: 90.0, Beta: 0.0},
		{Depth: 10.0, Alpha: 90.0, Beta: 0.0},
		{Depth: 20.0, Alpha: 90.0, Beta: 0.0},
		{Depth: 30.0, Alpha: 90.0, Beta: 0.0},
	}

	bh, err := New(Top, measurements, surveyFixture())
	require.NoError(t, err)
	require.Len(t, bh.OrientedMeasurements, len(measurements))

	// Perpendicular fractures: each pole trends along the bearing of the
	// station the measurement classified to, so the station assignment is
	// visible in the output. Output rows stay in measurement order.
	wantTrends := []float64{0.0, 90.0, 270.0, 0.0}
	for i, plane := range bh.OrientedMeasurements {
		trend := math.Round(plane.Pole.Trend)
		if trend == 360.0 {
			trend = 0.0
		}
		assert.Equal(t, wantTrends[i], trend, "measurement %d", i)
	}

	plunges := []float64{45.0, 45.0, 45.0, 60.0}
	for i, plane := range bh.OrientedMeasurements {
		assert.Equal(t, plunges[i], math.Round(plane.Pole.Plunge), "measurement %d", i)
	}
}

func TestNewBoreholeSurveyValidation(t *testing.T) {
	measurements := []RawMeasurement{{Depth: 1.0, Alpha: 90.0, Beta: 0.0}}

	tests := []struct {
		name     string
		stations []Station
	}{
		{"empty survey", nil},
		{"single station", []Station{{Depth: 0.0}}},
		{"first depth not zero", []Station{
			{Depth: 5.0, Bearing: 0.0, Inclination: -45.0},
			{Depth: 10.0, Bearing: 0.0, Inclination: -45.0},
		}},
		{"descending depths", []Station{
			{Depth: 0.0, Bearing: 0.0, Inclination: -45.0},
			{Depth: 10.0, Bearing: 0.0, Inclination: -45.0},
			{Depth: 8.0, Bearing: 0.0, Inclination: -45.0},
		}},
		{"duplicate depths", []Station{
			{Depth: 0.0, Bearing: 0.0, Inclination: -45.0},
			{Depth: 10.0, Bearing: 0.0, Inclination: -45.0},
			{Depth: 10.0, Bearing: 0.0, Inclination: -45.0},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Top, measurements, tt.stations)
			require.Error(t, err)
			var isd *InvalidSurveyDataError
			assert.True(t, errors.As(err, &isd), "expected InvalidSurveyDataError, got %T", err)
		})
	}
}

func TestNewBoreholeDepthOutOfRange(t *testing.T) {
	measurements := []RawMeasurement{
		{Depth: 1.0, Alpha: 90.0, Beta: 0.0},
		{Depth: 45.0, Alpha: 90.0, Beta: 0.0},
	}

	_, err := New(Top, measurements, surveyFixture())
	require.Error(t, err)

	var oor *DepthOutOfSurveyRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 45.0, oor.Depth)
}

func TestNewBoreholeInvalidMeasurementAngles(t *testing.T) {
	measurements := []RawMeasurement{
		{Depth: 1.0, Alpha: 95.0, Beta: 0.0},
	}

	_, err := New(Top, measurements, surveyFixture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth 1")
}
