package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/analyzer"
	awsconfig "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/config"
	awscostexplorer "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/costexplorer"
	awsprovider "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/provider"
	awssts "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/sts"
	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/flag"
	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/utils"
)

func main() {
	utils.DrawBanner()
	utils.StartSpinner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
	if err != nil {
		panic(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	analyzerService := analyzer.NewService(
		awscostexplorer.NewService(awsCfg),
		awssts.NewService(awsCfg),
		awsprovider.NewFactory(cfgService, flags.Profile),
		logger,
	)

	if err := runWorkflow(ctx, analyzerService, flags); err != nil {
		utils.StopSpinner()
		panic(err)
	}
}

func runWorkflow(ctx context.Context, analyzerService analyzer.AnalyzerService, flags model.Flags) error {
	if flags.Waste {
		return wasteWorkflow(ctx, analyzerService, flags)
	}

	if flags.Anomalies {
		return anomalyWorkflow(ctx, analyzerService, flags)
	}

	return costWorkflow(ctx, analyzerService, flags)
}

func costWorkflow(ctx context.Context, analyzerService analyzer.AnalyzerService, flags model.Flags) error {
	report, err := analyzerService.AnalyzeCostByService(ctx, flags.Days)
	if err != nil {
		return err
	}

	account, err := analyzerService.GetAccountInfo(ctx)
	if err != nil {
		return err
	}

	utils.StopSpinner()
	utils.DrawCostByServiceTable(account.AccountID, report)
	return nil
}

func wasteWorkflow(ctx context.Context, analyzerService analyzer.AnalyzerService, flags model.Flags) error {
	idleReport, err := analyzerService.AnalyzeIdleInstances(ctx, flags.Region, flags.Days, analyzer.IdleThresholds{})
	if err != nil {
		return err
	}

	untaggedReport, err := analyzerService.AnalyzeUntaggedResources(ctx, flags.Region, nil)
	if err != nil {
		return err
	}

	ebsReport, err := analyzerService.AnalyzeEBSOptimization(ctx, flags.Region)
	if err != nil {
		return err
	}

	loadBalancers, err := analyzerService.AnalyzeUnusedLoadBalancers(ctx, flags.Region)
	if err != nil {
		return err
	}

	utils.StopSpinner()
	utils.DrawIdleInstancesTable(idleReport)
	utils.DrawUntaggedResourcesTable(untaggedReport)
	utils.DrawEBSOptimizationTable(ebsReport)
	utils.DrawUnusedLoadBalancersTable(flags.Region, loadBalancers)
	return nil
}

func anomalyWorkflow(ctx context.Context, analyzerService analyzer.AnalyzerService, flags model.Flags) error {
	report, err := analyzerService.AnalyzeCostAnomalies(ctx, analyzer.AnomalyOptions{
		HistoryDays: flags.Days,
	})
	if err != nil {
		return err
	}

	dailyCosts, err := analyzerService.GetDailyCostHistory(ctx, report.HistoryDays)
	if err != nil {
		return err
	}

	account, err := analyzerService.GetAccountInfo(ctx)
	if err != nil {
		return err
	}

	utils.StopSpinner()
	utils.DrawDailyCostChart(account.AccountID, dailyCosts)
	utils.DrawAnomalySummary(report)
	return nil
}
