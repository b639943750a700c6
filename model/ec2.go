package model

import "time"

// Tag is a single resource tag. Keys are compared case-sensitively.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TaggedResource pairs a resource identifier with its attached tags
type TaggedResource struct {
	ResourceID string `json:"resource_id"`
	Tags       []Tag  `json:"tags"`
}

// UtilizationSample holds one measurement period of CPU utilization
type UtilizationSample struct {
	Timestamp time.Time `json:"timestamp"`
	Average   float64   `json:"average"`
	Maximum   float64   `json:"maximum"`
}

// IdleInstance is the verdict for an instance whose utilization stayed below
// both thresholds over the lookback window
type IdleInstance struct {
	InstanceID string  `json:"instance_id"`
	Region     string  `json:"region"`
	AvgCPU     float64 `json:"avg_cpu"`
	MaxCPU     float64 `json:"max_cpu"`
	Reason     string  `json:"reason"`
}

// SkippedInstance records an instance that could not be classified and why
type SkippedInstance struct {
	InstanceID string `json:"instance_id"`
	Reason     string `json:"reason"`
}

// IdleInstanceReport aggregates the idle check over one region
type IdleInstanceReport struct {
	Region        string            `json:"region"`
	PeriodDays    int               `json:"period_days"`
	IdleInstances []IdleInstance    `json:"idle_instances"`
	Skipped       []SkippedInstance `json:"skipped"`
}

// UntaggedResource is a resource missing one or more required tag keys
type UntaggedResource struct {
	ResourceID   string   `json:"resource_id"`
	ResourceType string   `json:"resource_type"`
	Region       string   `json:"region"`
	MissingTags  []string `json:"missing_tags"`
}

// UntaggedResourceReport buckets untagged resources by kind
type UntaggedResourceReport struct {
	Region       string             `json:"region"`
	RequiredTags []string           `json:"required_tags"`
	Instances    []UntaggedResource `json:"instances"`
	Volumes      []UntaggedResource `json:"volumes"`
}
