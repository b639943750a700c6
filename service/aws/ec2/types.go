package awsec2

import (
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

type service struct {
	client *ec2.Client
	region string
}

// Lifecycle states a resource can need tags in. Terminated instances are the
// only ones excluded.
var taggableInstanceStates = []string{"pending", "running", "shutting-down", "stopped", "stopping"}
