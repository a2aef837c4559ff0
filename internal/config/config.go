package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/limaJavier/teambalance/pkg/model"
	"github.com/limaJavier/teambalance/pkg/rating"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Balancing
	MaxPartitions  int      `mapstructure:"MAX_PARTITIONS"`
	DeviationFloor float64  `mapstructure:"DEVIATION_FLOOR"`
	WarmModes      []string `mapstructure:"-"`
}

// LoadConfig reads the configuration from the environment and, if present, from a .env file in one of paths
// (the working directory and its parent by default)
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	if len(paths) == 0 {
		paths = []string{".", ".."}
	}
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("MAX_PARTITIONS", model.DefaultMaxPartitions)
	v.SetDefault("DEVIATION_FLOOR", rating.DeviationFloor)
	v.SetDefault("WARM_MODES", "") // Comma-separated modes whose superset is computed at startup, e.g. "4v4,3v3v3v3"

	// Read from environment
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse warm modes from comma-separated string
	config.WarmModes = lo.Compact(lo.Map(strings.Split(v.GetString("WARM_MODES"), ","), func(mode string, _ int) string {
		return strings.TrimSpace(mode)
	}))

	if config.MaxPartitions < 0 {
		return nil, fmt.Errorf("MAX_PARTITIONS must not be negative: %v", config.MaxPartitions)
	} else if config.DeviationFloor <= 0 {
		return nil, fmt.Errorf("DEVIATION_FLOOR must be positive: %v", config.DeviationFloor)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
