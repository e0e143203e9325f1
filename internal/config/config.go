package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "cv-job-matcher"
	envPrefix  = "CVMATCH"

	defaultServiceURL = "http://localhost:8081"
)

// Config holds application configuration. The API key is deliberately not
// here: it lives in the preferences-backed credential store.
type Config struct {
	// ServiceURL is the base URL of the remote evaluation service.
	ServiceURL string `mapstructure:"service-url"`
	// Timeout bounds one evaluation request. Zero means no client-side
	// timeout; the wait is bounded only by the transport.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from the given file, or from cv-job-matcher.yaml
// in the current directory when no file is specified. A missing config file
// is not an error; defaults and environment variables still apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("service-url", defaultServiceURL)
	v.SetDefault("timeout", time.Duration(0))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
