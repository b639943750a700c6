package awscloudwatch

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
)

type service struct {
	client *cloudwatch.Client
}

const (
	metricNamespace = "AWS/EC2"
	metricName      = "CPUUtilization"
	// One sample per day keeps the series short and the API cheap.
	samplePeriodSeconds = 86400
)
