package analyzer

import (
	"context"
	"log/slog"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
	svc "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service"
)

// Defaults for the analysis windows and thresholds.
const (
	DefaultCostWindowDays   = 30
	DefaultIdlePeriodDays   = 14
	DefaultIdleAvgThreshold = 5.0
	DefaultIdleMaxThreshold = 10.0

	DefaultAnomalyHistoryDays     = 60
	DefaultAnomalyStdDevThreshold = 2.5

	// Storage class considered a migration candidate.
	LegacyVolumeType = "gp2"
)

// DefaultRequiredTags returns the tag keys every resource must carry unless
// the caller overrides them.
func DefaultRequiredTags() []string {
	return []string{"Project", "Owner"}
}

// IdleThresholds are the cutoffs for the idle instance check, in CPU percent
type IdleThresholds struct {
	AvgCPU float64
	MaxCPU float64
}

// AnomalyOptions parameterize the daily-cost spike check
type AnomalyOptions struct {
	HistoryDays     int
	StdDevThreshold float64
}

type service struct {
	cost     svc.CostService
	identity svc.IdentityService
	regional svc.RegionalServiceFactory
	logger   *slog.Logger
}

// AnalyzerService is the facade the boundary layers consume. Every operation
// is read-only and recomputes from a fresh snapshot.
type AnalyzerService interface {
	AnalyzeCostByService(ctx context.Context, days int) (*model.CostByServiceReport, error)
	AnalyzeIdleInstances(ctx context.Context, region string, periodDays int, thresholds IdleThresholds) (*model.IdleInstanceReport, error)
	AnalyzeUntaggedResources(ctx context.Context, region string, requiredTags []string) (*model.UntaggedResourceReport, error)
	AnalyzeEBSOptimization(ctx context.Context, region string) (*model.EBSOptimizationReport, error)
	AnalyzeCostAnomalies(ctx context.Context, opts AnomalyOptions) (*model.CostAnomalyReport, error)
	GetDailyCostHistory(ctx context.Context, days int) ([]model.DailyCost, error)
	AnalyzeUnusedLoadBalancers(ctx context.Context, region string) ([]model.LoadBalancerInfo, error)
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}
