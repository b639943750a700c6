package model

// AccountInfo represents the analyzed account's identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// LoadBalancerInfo describes a load balancer with no target groups pointing
// at it
type LoadBalancerInfo struct {
	Name   string `json:"name"`
	ARN    string `json:"arn"`
	Type   string `json:"type"`
	Region string `json:"region"`
}
