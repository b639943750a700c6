package awscostexplorer

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
)

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetCostByService implements service.CostService. Costs are summed across
// the result periods, zero-cost services are dropped and the rest sorted by
// amount descending.
func (s *service) GetCostByService(ctx context.Context, days int) (*model.CostByServiceReport, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Metrics: []string{costsAggregation},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String("SERVICE"),
				Type: types.GroupDefinitionTypeDimension,
			},
		},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, err
	}

	amounts := make(map[string]float64)
	units := make(map[string]string)

	for _, timeResult := range output.ResultsByTime {
		for _, group := range timeResult.Groups {
			metric, ok := group.Metrics[costsAggregation]
			if !ok || metric.Amount == nil || len(group.Keys) == 0 {
				continue
			}
			amount, err := strconv.ParseFloat(*metric.Amount, 64)
			if err != nil || amount == 0 {
				continue
			}
			amounts[group.Keys[0]] += amount
			units[group.Keys[0]] = aws.ToString(metric.Unit)
		}
	}

	report := &model.CostByServiceReport{
		Start:    start.Format("2006-01-02"),
		End:      end.Format("2006-01-02"),
		Services: make([]model.ServiceCost, 0, len(amounts)),
	}

	for name, amount := range amounts {
		report.Total += amount
		report.Services = append(report.Services, model.ServiceCost{
			Service: name,
			Amount:  round2(amount),
			Unit:    units[name],
		})
	}
	report.Total = round2(report.Total)

	sort.Slice(report.Services, func(i, j int) bool {
		return report.Services[i].Amount > report.Services[j].Amount
	})

	return report, nil
}

// GetDailyCostHistory implements service.CostService. The result is ordered
// by date ascending, one entry per day in the window.
func (s *service) GetDailyCostHistory(ctx context.Context, days int) ([]model.DailyCost, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityDaily,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Metrics: []string{costsAggregation},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, err
	}

	dailyCosts := make([]model.DailyCost, 0, len(output.ResultsByTime))

	for _, timeResult := range output.ResultsByTime {
		total, ok := timeResult.Total[costsAggregation]
		if !ok || total.Amount == nil || timeResult.TimePeriod == nil {
			continue
		}
		amount, err := strconv.ParseFloat(*total.Amount, 64)
		if err != nil {
			continue
		}
		dailyCosts = append(dailyCosts, model.DailyCost{
			Date:   aws.ToString(timeResult.TimePeriod.Start),
			Amount: round2(amount),
		})
	}

	sort.Slice(dailyCosts, func(i, j int) bool {
		return dailyCosts[i].Date < dailyCosts[j].Date
	})

	return dailyCosts, nil
}

func round2(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return rounded
}
