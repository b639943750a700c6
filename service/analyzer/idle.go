package analyzer

import (
	"fmt"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
)

// ClassifyIdleInstance decides whether an instance was idle over the sampled
// window: average of the per-sample averages below thresholds.AvgCPU AND the
// highest per-sample maximum below thresholds.MaxCPU. The second return value
// is false when the instance is not idle or the series is empty; an empty
// series is the caller's cue to record a skip instead of a verdict.
func ClassifyIdleInstance(instanceID, region string, samples []model.UtilizationSample, periodDays int, thresholds IdleThresholds) (model.IdleInstance, bool) {
	if len(samples) == 0 {
		return model.IdleInstance{}, false
	}

	var sum float64
	maxCPU := samples[0].Maximum
	for _, sample := range samples {
		sum += sample.Average
		if sample.Maximum > maxCPU {
			maxCPU = sample.Maximum
		}
	}
	avgCPU := sum / float64(len(samples))

	if avgCPU >= thresholds.AvgCPU || maxCPU >= thresholds.MaxCPU {
		return model.IdleInstance{}, false
	}

	return model.IdleInstance{
		InstanceID: instanceID,
		Region:     region,
		AvgCPU:     avgCPU,
		MaxCPU:     maxCPU,
		Reason: fmt.Sprintf("Avg CPU (%.2f%%) < %.1f%% and Max CPU (%.2f%%) < %.1f%% over last %d days",
			avgCPU, thresholds.AvgCPU, maxCPU, thresholds.MaxCPU, periodDays),
	}, true
}
