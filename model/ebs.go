package model

// VolumeInfo describes an EBS volume as fetched from the inventory
type VolumeInfo struct {
	VolumeID   string `json:"volume_id"`
	Region     string `json:"region"`
	SizeGiB    int32  `json:"size_gib"`
	State      string `json:"state"`
	VolumeType string `json:"volume_type"`
	Tags       []Tag  `json:"tags,omitempty"`
}

// EBSOptimizationReport buckets volumes by optimization category. The buckets
// are independent: a volume can appear in both.
type EBSOptimizationReport struct {
	Region            string       `json:"region"`
	UnattachedVolumes []VolumeInfo `json:"unattached_volumes"`
	LegacyTypeVolumes []VolumeInfo `json:"gp2_volumes"`
}
