package model

type Flags struct {
	Region  string
	Profile string

	// Report selection
	Waste     bool
	Anomalies bool

	// Window overrides, zero means configured default
	Days int
}
