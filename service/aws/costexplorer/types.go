package awscostexplorer

import (
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
)

type service struct {
	client *costexplorer.Client
}

const costsAggregation = "UnblendedCost"
