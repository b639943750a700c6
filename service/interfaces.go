package service

import (
	"context"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
)

// IdentityService provides account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// CostService provides billing data for the whole account
type CostService interface {
	GetCostByService(ctx context.Context, days int) (*model.CostByServiceReport, error)
	GetDailyCostHistory(ctx context.Context, days int) ([]model.DailyCost, error)
}

// ComputeService provides EC2 inventory listings for one region
type ComputeService interface {
	ListRunningInstanceIDs(ctx context.Context) ([]string, error)
	ListInstancesWithTags(ctx context.Context) ([]model.TaggedResource, error)
}

// MetricsService provides per-instance utilization series for one region
type MetricsService interface {
	GetCPUUtilization(ctx context.Context, instanceID string, days int) ([]model.UtilizationSample, error)
}

// StorageService provides EBS volume listings for one region
type StorageService interface {
	ListVolumes(ctx context.Context) ([]model.VolumeInfo, error)
}

// LoadBalancerService detects load balancers no target group points at
type LoadBalancerService interface {
	GetUnusedLoadBalancers(ctx context.Context) ([]model.LoadBalancerInfo, error)
}

// RegionalServices bundles the per-region provider clients
type RegionalServices struct {
	Compute       ComputeService
	Metrics       MetricsService
	Storage       StorageService
	LoadBalancers LoadBalancerService
}

// RegionalServiceFactory hands out the provider bundle for a region. A bundle
// is built at most once per region and is immutable afterwards.
type RegionalServiceFactory interface {
	ForRegion(ctx context.Context, region string) (*RegionalServices, error)
}
