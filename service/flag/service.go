package flag

import (
	"flag"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
)

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	region := flag.String("region", "us-east-1", "AWS region")
	profile := flag.String("profile", "", "AWS profile configuration")
	waste := flag.Bool("waste", false, "Display idle instances, untagged resources and EBS optimization candidates")
	anomalies := flag.Bool("anomalies", false, "Display the daily cost history and anomaly check")
	days := flag.Int("days", 0, "Day window override for the selected report")

	flag.Parse()

	return model.Flags{
		Region:    *region,
		Profile:   *profile,
		Waste:     *waste,
		Anomalies: *anomalies,
		Days:      *days,
	}, nil
}
