package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
)

func dailySeries(amounts ...float64) []model.DailyCost {
	dates := []string{
		"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04",
		"2024-05-05", "2024-05-06", "2024-05-07", "2024-05-08",
	}
	series := make([]model.DailyCost, 0, len(amounts))
	for i, amount := range amounts {
		series = append(series, model.DailyCost{Date: dates[i], Amount: amount})
	}
	return series
}

func defaultOpts() AnomalyOptions {
	return AnomalyOptions{HistoryDays: DefaultAnomalyHistoryDays, StdDevThreshold: DefaultAnomalyStdDevThreshold}
}

func TestDetectCostAnomalySpike(t *testing.T) {
	series := dailySeries(10.0, 11.0, 9.0, 10.5, 50.0)

	report, err := DetectCostAnomaly(series, defaultOpts())
	require.NoError(t, err)

	assert.Equal(t, "2024-05-05", report.LatestDate)
	assert.Equal(t, 50.0, report.LatestCost)
	assert.Equal(t, 10.12, report.BaselineAverage)
	assert.Equal(t, 0.74, report.BaselineStdDev)
	assert.Equal(t, 11.97, report.Threshold)
	assert.True(t, report.IsAnomaly)
	assert.Equal(t, 4, report.BaselinePoints)
	assert.Equal(t, DefaultAnomalyHistoryDays, report.HistoryDays)
	assert.Equal(t, DefaultAnomalyStdDevThreshold, report.StdDevThreshold)
}

func TestDetectCostAnomalyWithinBaseline(t *testing.T) {
	series := dailySeries(10.0, 11.0, 9.0, 10.5, 11.5)

	report, err := DetectCostAnomaly(series, defaultOpts())
	require.NoError(t, err)

	assert.Equal(t, 10.12, report.BaselineAverage)
	assert.Equal(t, 0.74, report.BaselineStdDev)
	assert.Equal(t, 11.97, report.Threshold)
	assert.False(t, report.IsAnomaly)
}

func TestDetectCostAnomalyTooFewPoints(t *testing.T) {
	_, err := DetectCostAnomaly(dailySeries(10.0), defaultOpts())
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = DetectCostAnomaly(nil, defaultOpts())
	assert.ErrorIs(t, err, ErrInsufficientData)
}

// A flat baseline has zero variance; no deviation from it is flagged, however
// large.
func TestDetectCostAnomalyFlatBaseline(t *testing.T) {
	series := dailySeries(10.0, 10.0, 10.0, 10.0, 10000.0)

	report, err := DetectCostAnomaly(series, defaultOpts())
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.BaselineStdDev)
	assert.False(t, report.IsAnomaly)
}

// One baseline point is a defined edge case: the average is that point and
// the standard deviation is zero.
func TestDetectCostAnomalySingleBaselinePoint(t *testing.T) {
	series := dailySeries(10.0, 99.0)

	report, err := DetectCostAnomaly(series, defaultOpts())
	require.NoError(t, err)

	assert.Equal(t, 10.0, report.BaselineAverage)
	assert.Equal(t, 0.0, report.BaselineStdDev)
	assert.Equal(t, 1, report.BaselinePoints)
	assert.False(t, report.IsAnomaly)
}

// The anomaly comparison happens before presentation rounding.
func TestDetectCostAnomalyComparesAtFullPrecision(t *testing.T) {
	// Baseline mean 10, stddev ~0.8165, threshold ~12.0412. A latest value of
	// 12.04 sits below the true threshold even though both round to 12.04.
	series := []model.DailyCost{
		{Date: "2024-05-01", Amount: 9.0},
		{Date: "2024-05-02", Amount: 10.0},
		{Date: "2024-05-03", Amount: 11.0},
		{Date: "2024-05-04", Amount: 12.04},
	}

	report, err := DetectCostAnomaly(series, AnomalyOptions{HistoryDays: 60, StdDevThreshold: 2.5})
	require.NoError(t, err)

	assert.Equal(t, 12.04, report.Threshold)
	assert.False(t, report.IsAnomaly)
}

// Input order does not matter; dates define the order.
func TestDetectCostAnomalyIgnoresInputOrder(t *testing.T) {
	series := []model.DailyCost{
		{Date: "2024-05-05", Amount: 50.0},
		{Date: "2024-05-01", Amount: 10.0},
		{Date: "2024-05-03", Amount: 9.0},
		{Date: "2024-05-02", Amount: 11.0},
		{Date: "2024-05-04", Amount: 10.5},
	}

	report, err := DetectCostAnomaly(series, defaultOpts())
	require.NoError(t, err)

	assert.Equal(t, "2024-05-05", report.LatestDate)
	assert.True(t, report.IsAnomaly)
}
