package awsprovider

import (
	"sync"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service"
	awsconfig "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/config"
)

type factory struct {
	cfgService awsconfig.ConfigService
	profile    string

	mu      sync.Mutex
	bundles map[string]*service.RegionalServices
}
