package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/analyzer"
	awsconfig "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/config"
	awscostexplorer "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/costexplorer"
	awsprovider "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/provider"
	awssts "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/sts"
)

// RegisterAnalysisTools registers one MCP tool per dashboard analysis
func RegisterAnalysisTools(s *server.MCPServer, region, profile string) {
	s.AddTool(
		mcp.NewTool("get_account_info",
			mcp.WithDescription("Get the analyzed AWS account's identity (account ID and ARN)"),
		),
		makeHandler(region, profile, func(ctx context.Context, a analyzer.AnalyzerService) (any, error) {
			return a.GetAccountInfo(ctx)
		}),
	)

	s.AddTool(
		mcp.NewTool("get_cost_by_service",
			mcp.WithDescription("Get AWS costs for the last 30 days, broken down by service and sorted by amount"),
		),
		makeHandler(region, profile, func(ctx context.Context, a analyzer.AnalyzerService) (any, error) {
			return a.AnalyzeCostByService(ctx, analyzer.DefaultCostWindowDays)
		}),
	)

	s.AddTool(
		mcp.NewTool("get_idle_instances",
			mcp.WithDescription("List running EC2 instances whose CPU stayed below the idle thresholds over the last 14 days"),
		),
		makeHandler(region, profile, func(ctx context.Context, a analyzer.AnalyzerService) (any, error) {
			return a.AnalyzeIdleInstances(ctx, region, analyzer.DefaultIdlePeriodDays, analyzer.IdleThresholds{
				AvgCPU: analyzer.DefaultIdleAvgThreshold,
				MaxCPU: analyzer.DefaultIdleMaxThreshold,
			})
		}),
	)

	s.AddTool(
		mcp.NewTool("get_untagged_resources",
			mcp.WithDescription("List EC2 instances and EBS volumes missing the required tag keys (Project, Owner)"),
		),
		makeHandler(region, profile, func(ctx context.Context, a analyzer.AnalyzerService) (any, error) {
			return a.AnalyzeUntaggedResources(ctx, region, nil)
		}),
	)

	s.AddTool(
		mcp.NewTool("get_ebs_optimization_candidates",
			mcp.WithDescription("List EBS volumes that are unattached or still on the gp2 storage class"),
		),
		makeHandler(region, profile, func(ctx context.Context, a analyzer.AnalyzerService) (any, error) {
			return a.AnalyzeEBSOptimization(ctx, region)
		}),
	)

	s.AddTool(
		mcp.NewTool("get_cost_anomalies",
			mcp.WithDescription("Check whether the latest day's spend is an anomaly against the last 60 days' baseline"),
		),
		makeHandler(region, profile, func(ctx context.Context, a analyzer.AnalyzerService) (any, error) {
			return a.AnalyzeCostAnomalies(ctx, analyzer.AnomalyOptions{
				HistoryDays:     analyzer.DefaultAnomalyHistoryDays,
				StdDevThreshold: analyzer.DefaultAnomalyStdDevThreshold,
			})
		}),
	)

	s.AddTool(
		mcp.NewTool("get_unused_load_balancers",
			mcp.WithDescription("List application and network load balancers no target group points at"),
		),
		makeHandler(region, profile, func(ctx context.Context, a analyzer.AnalyzerService) (any, error) {
			return a.AnalyzeUnusedLoadBalancers(ctx, region)
		}),
	)
}

func makeHandler(region, profile string, analyze func(context.Context, analyzer.AnalyzerService) (any, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfgService := awsconfig.NewService()
		awsCfg, err := cfgService.GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		analyzerService := analyzer.NewService(
			awscostexplorer.NewService(awsCfg),
			awssts.NewService(awsCfg),
			awsprovider.NewFactory(cfgService, profile),
			slog.Default(),
		)

		result, err := analyze(ctx, analyzerService)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Analysis failed: %v", err)), nil
		}

		data, _ := json.MarshalIndent(result, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
