package awsprovider

import (
	"context"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service"
	awscloudwatch "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/cloudwatch"
	awsconfig "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/config"
	awsec2 "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/ec2"
	awselb "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/elb"
)

func NewFactory(cfgService awsconfig.ConfigService, profile string) *factory {
	return &factory{
		cfgService: cfgService,
		profile:    profile,
		bundles:    make(map[string]*service.RegionalServices),
	}
}

// ForRegion implements service.RegionalServiceFactory. Bundles are cached per
// region; once built they are read-only.
func (f *factory) ForRegion(ctx context.Context, region string) (*service.RegionalServices, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if bundle, ok := f.bundles[region]; ok {
		return bundle, nil
	}

	cfg, err := f.cfgService.GetAWSCfg(ctx, region, f.profile)
	if err != nil {
		return nil, err
	}

	ec2Service := awsec2.NewService(cfg)

	bundle := &service.RegionalServices{
		Compute:       ec2Service,
		Metrics:       awscloudwatch.NewService(cfg),
		Storage:       ec2Service,
		LoadBalancers: awselb.NewService(cfg),
	}
	f.bundles[region] = bundle

	return bundle, nil
}
