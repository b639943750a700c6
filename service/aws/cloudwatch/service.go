package awscloudwatch

import (
	"context"
	"sort"
	"time"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

func NewService(awsconfig aws.Config) *service {
	client := cloudwatch.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetCPUUtilization implements service.MetricsService. Samples are returned
// ordered by timestamp; an instance with no datapoints yields an empty slice,
// not an error.
func (s *service) GetCPUUtilization(ctx context.Context, instanceID string, days int) ([]model.UtilizationSample, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	input := &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(metricNamespace),
		MetricName: aws.String(metricName),
		Dimensions: []types.Dimension{
			{
				Name:  aws.String("InstanceId"),
				Value: aws.String(instanceID),
			},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(samplePeriodSeconds),
		Statistics: []types.Statistic{types.StatisticAverage, types.StatisticMaximum},
		Unit:       types.StandardUnitPercent,
	}

	output, err := s.client.GetMetricStatistics(ctx, input)
	if err != nil {
		return nil, err
	}

	samples := make([]model.UtilizationSample, 0, len(output.Datapoints))
	for _, datapoint := range output.Datapoints {
		samples = append(samples, model.UtilizationSample{
			Timestamp: aws.ToTime(datapoint.Timestamp),
			Average:   aws.ToFloat64(datapoint.Average),
			Maximum:   aws.ToFloat64(datapoint.Maximum),
		})
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})

	return samples, nil
}
