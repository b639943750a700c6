package awssts

import (
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type service struct {
	client *sts.Client
}
