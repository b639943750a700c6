package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every tunable the analyses and the HTTP boundary use. All
// fields have defaults and can be overridden by a config file or COSTDASH_*
// environment variables.
type Config struct {
	ListenAddr     string   `mapstructure:"listen_addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	DefaultRegion string `mapstructure:"default_region"`
	Profile       string `mapstructure:"profile"`

	CostWindowDays int `mapstructure:"cost_window_days"`

	IdlePeriodDays      int     `mapstructure:"idle_period_days"`
	IdleAvgCPUThreshold float64 `mapstructure:"idle_avg_cpu_threshold"` // percent
	IdleMaxCPUThreshold float64 `mapstructure:"idle_max_cpu_threshold"` // percent

	AnomalyHistoryDays     int     `mapstructure:"anomaly_history_days"`
	AnomalyStdDevThreshold float64 `mapstructure:"anomaly_std_dev_threshold"`

	RequiredTags []string `mapstructure:"required_tags"`

	ShutdownTimeoutSec int `mapstructure:"shutdown_timeout_sec"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/costdash/")
	viper.AddConfigPath("$HOME/.costdash")
	viper.AddConfigPath(".")

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("allowed_origins", []string{"*"})
	viper.SetDefault("default_region", "us-east-1")
	viper.SetDefault("profile", "")
	viper.SetDefault("cost_window_days", 30)
	viper.SetDefault("idle_period_days", 14)
	viper.SetDefault("idle_avg_cpu_threshold", 5.0)
	viper.SetDefault("idle_max_cpu_threshold", 10.0)
	viper.SetDefault("anomaly_history_days", 60)
	viper.SetDefault("anomaly_std_dev_threshold", 2.5)
	viper.SetDefault("required_tags", []string{"Project", "Owner"})
	viper.SetDefault("shutdown_timeout_sec", 10)

	viper.SetEnvPrefix("COSTDASH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file; defaults and env vars apply.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
