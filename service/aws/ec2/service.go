package awsec2

import (
	"context"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

func NewService(awsconfig aws.Config) *service {
	client := ec2.NewFromConfig(awsconfig)
	return &service{
		client: client,
		region: awsconfig.Region,
	}
}

// ListRunningInstanceIDs implements service.ComputeService
func (s *service) ListRunningInstanceIDs(ctx context.Context) ([]string, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: []string{"running"},
			},
		},
	}

	var instanceIDs []string

	paginator := ec2.NewDescribeInstancesPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				instanceIDs = append(instanceIDs, aws.ToString(instance.InstanceId))
			}
		}
	}

	return instanceIDs, nil
}

// ListInstancesWithTags implements service.ComputeService
func (s *service) ListInstancesWithTags(ctx context.Context) ([]model.TaggedResource, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: taggableInstanceStates,
			},
		},
	}

	var resources []model.TaggedResource

	paginator := ec2.NewDescribeInstancesPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				resources = append(resources, model.TaggedResource{
					ResourceID: aws.ToString(instance.InstanceId),
					Tags:       convertTags(instance.Tags),
				})
			}
		}
	}

	return resources, nil
}

// ListVolumes implements service.StorageService. All volume states are
// included so the callers can classify attachment themselves.
func (s *service) ListVolumes(ctx context.Context) ([]model.VolumeInfo, error) {
	var volumes []model.VolumeInfo

	paginator := ec2.NewDescribeVolumesPaginator(s.client, &ec2.DescribeVolumesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, volume := range page.Volumes {
			volumes = append(volumes, model.VolumeInfo{
				VolumeID:   aws.ToString(volume.VolumeId),
				Region:     s.region,
				SizeGiB:    aws.ToInt32(volume.Size),
				State:      string(volume.State),
				VolumeType: string(volume.VolumeType),
				Tags:       convertTags(volume.Tags),
			})
		}
	}

	return volumes, nil
}

func convertTags(tags []types.Tag) []model.Tag {
	converted := make([]model.Tag, 0, len(tags))
	for _, tag := range tags {
		converted = append(converted, model.Tag{
			Key:   aws.ToString(tag.Key),
			Value: aws.ToString(tag.Value),
		})
	}
	return converted
}
