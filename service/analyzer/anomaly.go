package analyzer

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
)

// ErrInsufficientData is returned when the daily cost series is too short to
// split into a baseline and a latest point.
var ErrInsufficientData = errors.New("need at least 2 days of cost history to detect anomalies")

// DetectCostAnomaly checks the latest day of the series against a baseline
// built from all earlier days. The baseline uses the population standard
// deviation (divide by N). The latest day is anomalous when it exceeds
// mean + StdDevThreshold*stddev AND the baseline has variance: a perfectly
// flat baseline never flags, since any deviation from it carries no
// statistical weight.
//
// The anomaly comparison runs on full-precision values; the reported figures
// are rounded to 2 decimals afterwards.
func DetectCostAnomaly(series []model.DailyCost, opts AnomalyOptions) (*model.CostAnomalyReport, error) {
	if len(series) < 2 {
		return nil, ErrInsufficientData
	}

	ordered := make([]model.DailyCost, len(series))
	copy(ordered, series)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	baseline := ordered[:len(ordered)-1]
	latest := ordered[len(ordered)-1]

	var sum float64
	for _, day := range baseline {
		sum += day.Amount
	}
	mean := sum / float64(len(baseline))

	// A single-point baseline has no computable variance; stddev stays 0.
	var variance float64
	if len(baseline) > 1 {
		for _, day := range baseline {
			diff := day.Amount - mean
			variance += diff * diff
		}
		variance /= float64(len(baseline))
	}
	stdDev := math.Sqrt(variance)

	threshold := mean + opts.StdDevThreshold*stdDev
	isAnomaly := latest.Amount > threshold && stdDev > 0

	return &model.CostAnomalyReport{
		LatestDate:      latest.Date,
		LatestCost:      round2(latest.Amount),
		BaselineAverage: round2(mean),
		BaselineStdDev:  round2(stdDev),
		Threshold:       round2(threshold),
		IsAnomaly:       isAnomaly,
		HistoryDays:     opts.HistoryDays,
		StdDevThreshold: opts.StdDevThreshold,
		BaselinePoints:  len(baseline),
	}, nil
}

func round2(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return rounded
}
