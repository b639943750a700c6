package utils

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
)

func DrawCostByServiceTable(accountID string, report *model.CostByServiceReport) {
	tw := table.Table{}
	tw.AppendHeader(table.Row{
		"Account ID",
		"Service",
		fmt.Sprintf("Cost\n(%s\n%s)", report.Start, report.End),
	})

	rows := make([]table.Row, 0, len(report.Services)+1)
	rows = append(rows, table.Row{
		"",
		text.FgHiGreen.Sprint("Total"),
		text.FgHiGreen.Sprintf("%.2f", report.Total),
	})

	for _, serviceCost := range report.Services {
		rows = append(rows, table.Row{
			"",
			text.FgGreen.Sprint(serviceCost.Service),
			text.FgYellow.Sprintf("%.2f %s", serviceCost.Amount, serviceCost.Unit),
		})
	}

	halfRow := len(rows) / 2
	rows[halfRow][0] = text.FgBlue.Sprint(accountID)
	tw.AppendRows(rows)
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, VAlignHeader: text.VAlignMiddle},
		{Number: 2, VAlignHeader: text.VAlignMiddle},
		{Number: 3, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

func DrawIdleInstancesTable(report *model.IdleInstanceReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" IDLE INSTANCES (%s, last %d days)", report.Region, report.PeriodDays))

	if len(report.IdleInstances) == 0 {
		fmt.Println(text.FgGreen.Sprint(" No idle instances found."))
	} else {
		tw := table.Table{}
		tw.AppendHeader(table.Row{"Instance ID", "Avg CPU", "Max CPU", "Reason"})
		for _, instance := range report.IdleInstances {
			tw.AppendRow(table.Row{
				instance.InstanceID,
				text.FgYellow.Sprintf("%.2f%%", instance.AvgCPU),
				text.FgYellow.Sprintf("%.2f%%", instance.MaxCPU),
				instance.Reason,
			})
		}
		tw.SetStyle(table.StyleRounded)
		fmt.Println(tw.Render())
	}

	for _, skipped := range report.Skipped {
		fmt.Println(text.FgHiBlack.Sprintf(" skipped %s: %s", skipped.InstanceID, skipped.Reason))
	}
}

func DrawUntaggedResourcesTable(report *model.UntaggedResourceReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" UNTAGGED RESOURCES (%s, required: %s)",
		report.Region, strings.Join(report.RequiredTags, ", ")))

	if len(report.Instances) == 0 && len(report.Volumes) == 0 {
		fmt.Println(text.FgGreen.Sprint(" All resources carry the required tags."))
		return
	}

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Resource ID", "Type", "Missing Tags"})
	for _, resource := range append(report.Instances, report.Volumes...) {
		tw.AppendRow(table.Row{
			resource.ResourceID,
			resource.ResourceType,
			text.FgRed.Sprint(strings.Join(resource.MissingTags, ", ")),
		})
	}
	tw.SetStyle(table.StyleRounded)
	fmt.Println(tw.Render())
}

func DrawEBSOptimizationTable(report *model.EBSOptimizationReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" EBS OPTIMIZATION CANDIDATES (%s)", report.Region))

	if len(report.UnattachedVolumes) == 0 && len(report.LegacyTypeVolumes) == 0 {
		fmt.Println(text.FgGreen.Sprint(" No optimization candidates found."))
		return
	}

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Volume ID", "Size (GiB)", "Type", "Category"})
	for _, volume := range report.UnattachedVolumes {
		tw.AppendRow(table.Row{volume.VolumeID, volume.SizeGiB, volume.VolumeType, text.FgRed.Sprint("unattached")})
	}
	for _, volume := range report.LegacyTypeVolumes {
		tw.AppendRow(table.Row{volume.VolumeID, volume.SizeGiB, volume.VolumeType, text.FgYellow.Sprint("legacy type")})
	}
	tw.SetStyle(table.StyleRounded)
	fmt.Println(tw.Render())
}

func DrawUnusedLoadBalancersTable(region string, loadBalancers []model.LoadBalancerInfo) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" UNUSED LOAD BALANCERS (%s)", region))

	if len(loadBalancers) == 0 {
		fmt.Println(text.FgGreen.Sprint(" No unused load balancers found."))
		return
	}

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Name", "Type", "ARN"})
	for _, lb := range loadBalancers {
		tw.AppendRow(table.Row{lb.Name, lb.Type, lb.ARN})
	}
	tw.SetStyle(table.StyleRounded)
	fmt.Println(tw.Render())
}

func DrawAnomalySummary(report *model.CostAnomalyReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" COST ANOMALY CHECK"))
	fmt.Printf(" Latest day: %s  spend: %.2f\n", report.LatestDate, report.LatestCost)
	fmt.Printf(" Baseline: avg %.2f, stddev %.2f over %d days (threshold %.2f at %.1f stddev)\n",
		report.BaselineAverage, report.BaselineStdDev, report.BaselinePoints,
		report.Threshold, report.StdDevThreshold)

	if report.IsAnomaly {
		fmt.Println(text.FgHiRed.Sprint(" ANOMALY: latest day's spend is above the baseline threshold"))
	} else {
		fmt.Println(text.FgHiGreen.Sprint(" No anomaly detected"))
	}
}
