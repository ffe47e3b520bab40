// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package settings

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChainSafe/xcm-locator/logger"
)

type SettingsConfig struct {
	LogLevel    zerolog.Level
	Env         string
	CachePath   string
	RetryConfig RetryConfig
}

type RetryConfig struct {
	Attempts int
	Interval time.Duration
}

type RawSettingsConfig struct {
	LogLevel    string         `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	Env         string         `mapstructure:"Env" json:"env" default:"local"`
	CachePath   string         `mapstructure:"CachePath" json:"cachePath"`
	RetryConfig RawRetryConfig `mapstructure:"RetryConfig" json:"retryConfig"`
}

type RawRetryConfig struct {
	Attempts int    `mapstructure:"Attempts" json:"attempts" default:"3"`
	Interval string `mapstructure:"Interval" json:"interval" default:"1s"`
}

func (c *RawSettingsConfig) Validate() error {
	if c.RetryConfig.Attempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got %d", c.RetryConfig.Attempts)
	}
	return nil
}

// NewSettingsConfig parses RawSettingsConfig into SettingsConfig
func NewSettingsConfig(rawConfig RawSettingsConfig) (SettingsConfig, error) {
	config := SettingsConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := logger.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, err
	}
	config.LogLevel = logLevel
	config.Env = rawConfig.Env
	config.CachePath = rawConfig.CachePath

	interval, err := time.ParseDuration(rawConfig.RetryConfig.Interval)
	if err != nil {
		return SettingsConfig{}, fmt.Errorf("unable to parse retry interval: %w", err)
	}
	config.RetryConfig = RetryConfig{
		Attempts: rawConfig.RetryConfig.Attempts,
		Interval: interval,
	}

	return config, nil
}
