package analyzer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
	svc "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service"
)

func NewService(cost svc.CostService, identity svc.IdentityService, regional svc.RegionalServiceFactory, logger *slog.Logger) *service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		cost:     cost,
		identity: identity,
		regional: regional,
		logger:   logger,
	}
}

// AnalyzeCostByService returns per-service spend over the day window.
func (s *service) AnalyzeCostByService(ctx context.Context, days int) (*model.CostByServiceReport, error) {
	if days <= 0 {
		days = DefaultCostWindowDays
	}

	report, err := s.cost.GetCostByService(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("fetching cost by service: %w", err)
	}

	s.logger.Info("cost analysis complete", "days", days, "services", len(report.Services))
	return report, nil
}

// AnalyzeIdleInstances classifies every running instance in the region
// against its CPU utilization over the lookback window. Instances whose
// metrics cannot be fetched, or that have no datapoints at all, end up in the
// report's Skipped list; a failure to list the inventory itself aborts the
// whole analysis.
func (s *service) AnalyzeIdleInstances(ctx context.Context, region string, periodDays int, thresholds IdleThresholds) (*model.IdleInstanceReport, error) {
	if periodDays <= 0 {
		periodDays = DefaultIdlePeriodDays
	}
	if thresholds.AvgCPU == 0 {
		thresholds.AvgCPU = DefaultIdleAvgThreshold
	}
	if thresholds.MaxCPU == 0 {
		thresholds.MaxCPU = DefaultIdleMaxThreshold
	}

	regional, err := s.regional.ForRegion(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("building clients for region %s: %w", region, err)
	}

	instanceIDs, err := regional.Compute.ListRunningInstanceIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing running instances in %s: %w", region, err)
	}

	report := &model.IdleInstanceReport{
		Region:        region,
		PeriodDays:    periodDays,
		IdleInstances: []model.IdleInstance{},
		Skipped:       []model.SkippedInstance{},
	}

	for _, instanceID := range instanceIDs {
		samples, err := regional.Metrics.GetCPUUtilization(ctx, instanceID, periodDays)
		if err != nil {
			reason := fmt.Sprintf("metrics fetch failed: %v", err)
			s.logger.Warn("skipping instance", "instance_id", instanceID, "reason", reason)
			report.Skipped = append(report.Skipped, model.SkippedInstance{InstanceID: instanceID, Reason: reason})
			continue
		}
		if len(samples) == 0 {
			reason := "no CPUUtilization data in the lookback window"
			s.logger.Warn("skipping instance", "instance_id", instanceID, "reason", reason)
			report.Skipped = append(report.Skipped, model.SkippedInstance{InstanceID: instanceID, Reason: reason})
			continue
		}

		if verdict, idle := ClassifyIdleInstance(instanceID, region, samples, periodDays, thresholds); idle {
			report.IdleInstances = append(report.IdleInstances, verdict)
		}
	}

	s.logger.Info("idle instance analysis complete",
		"region", region, "checked", len(instanceIDs),
		"idle", len(report.IdleInstances), "skipped", len(report.Skipped))
	return report, nil
}

// AnalyzeUntaggedResources finds instances and volumes missing required tag
// keys. A nil requiredTags uses the default pair; an explicitly empty list is
// satisfied by every resource. Either inventory listing failing aborts the
// whole analysis, so the report is never partially populated.
func (s *service) AnalyzeUntaggedResources(ctx context.Context, region string, requiredTags []string) (*model.UntaggedResourceReport, error) {
	if requiredTags == nil {
		requiredTags = DefaultRequiredTags()
	}

	report := &model.UntaggedResourceReport{
		Region:       region,
		RequiredTags: requiredTags,
		Instances:    []model.UntaggedResource{},
		Volumes:      []model.UntaggedResource{},
	}

	if len(requiredTags) == 0 {
		return report, nil
	}

	regional, err := s.regional.ForRegion(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("building clients for region %s: %w", region, err)
	}

	instances, err := regional.Compute.ListInstancesWithTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing instances for tag check in %s: %w", region, err)
	}

	volumes, err := regional.Storage.ListVolumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing volumes for tag check in %s: %w", region, err)
	}

	for _, instance := range instances {
		if missing := MissingTags(instance.Tags, requiredTags); len(missing) > 0 {
			report.Instances = append(report.Instances, model.UntaggedResource{
				ResourceID:   instance.ResourceID,
				ResourceType: "EC2 Instance",
				Region:       region,
				MissingTags:  missing,
			})
		}
	}

	for _, volume := range volumes {
		if missing := MissingTags(volume.Tags, requiredTags); len(missing) > 0 {
			report.Volumes = append(report.Volumes, model.UntaggedResource{
				ResourceID:   volume.VolumeID,
				ResourceType: "EBS Volume",
				Region:       region,
				MissingTags:  missing,
			})
		}
	}

	s.logger.Info("untagged resource analysis complete",
		"region", region, "instances", len(report.Instances), "volumes", len(report.Volumes))
	return report, nil
}

// AnalyzeEBSOptimization buckets the region's volumes into optimization
// categories. The buckets overlap when a volume qualifies for both.
func (s *service) AnalyzeEBSOptimization(ctx context.Context, region string) (*model.EBSOptimizationReport, error) {
	regional, err := s.regional.ForRegion(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("building clients for region %s: %w", region, err)
	}

	volumes, err := regional.Storage.ListVolumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing volumes in %s: %w", region, err)
	}

	report := &model.EBSOptimizationReport{
		Region:            region,
		UnattachedVolumes: []model.VolumeInfo{},
		LegacyTypeVolumes: []model.VolumeInfo{},
	}

	for _, volume := range volumes {
		if IsUnattached(volume.State) {
			report.UnattachedVolumes = append(report.UnattachedVolumes, volume)
		}
		if IsLegacyVolumeType(volume.VolumeType) {
			report.LegacyTypeVolumes = append(report.LegacyTypeVolumes, volume)
		}
	}

	s.logger.Info("ebs optimization analysis complete",
		"region", region, "unattached", len(report.UnattachedVolumes), "legacy_type", len(report.LegacyTypeVolumes))
	return report, nil
}

// AnalyzeCostAnomalies fetches the daily cost history and checks the latest
// day against the baseline of the earlier days.
func (s *service) AnalyzeCostAnomalies(ctx context.Context, opts AnomalyOptions) (*model.CostAnomalyReport, error) {
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = DefaultAnomalyHistoryDays
	}
	if opts.StdDevThreshold <= 0 {
		opts.StdDevThreshold = DefaultAnomalyStdDevThreshold
	}

	series, err := s.cost.GetDailyCostHistory(ctx, opts.HistoryDays)
	if err != nil {
		return nil, fmt.Errorf("fetching daily cost history: %w", err)
	}

	report, err := DetectCostAnomaly(series, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("cost anomaly analysis complete",
		"latest_date", report.LatestDate, "is_anomaly", report.IsAnomaly)
	return report, nil
}

// GetDailyCostHistory exposes the raw daily series the anomaly check runs
// over, for chart rendering.
func (s *service) GetDailyCostHistory(ctx context.Context, days int) ([]model.DailyCost, error) {
	if days <= 0 {
		days = DefaultAnomalyHistoryDays
	}
	return s.cost.GetDailyCostHistory(ctx, days)
}

// AnalyzeUnusedLoadBalancers lists ALBs/NLBs without target groups.
func (s *service) AnalyzeUnusedLoadBalancers(ctx context.Context, region string) ([]model.LoadBalancerInfo, error) {
	regional, err := s.regional.ForRegion(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("building clients for region %s: %w", region, err)
	}

	loadBalancers, err := regional.LoadBalancers.GetUnusedLoadBalancers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing unused load balancers in %s: %w", region, err)
	}

	if loadBalancers == nil {
		loadBalancers = []model.LoadBalancerInfo{}
	}
	return loadBalancers, nil
}

// GetAccountInfo returns the analyzed account's identity.
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	return s.identity.GetAccountInfo(ctx)
}
