// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/ChainSafe/xcm-locator/config/settings"
)

var ErrNotConfigured = errors.New("not configured")

type Config struct {
	Settings  settings.SettingsConfig
	Chains    []ChainConfig
	Assets    []AssetConfig
	Transfers []TransferConfig
}

type RawConfig struct {
	Settings  settings.RawSettingsConfig `mapstructure:"settings" json:"settings"`
	Defaults  map[string]interface{}     `mapstructure:"defaults" json:"defaults"`
	Chains    []map[string]interface{}   `mapstructure:"chains" json:"chains"`
	Assets    []map[string]interface{}   `mapstructure:"assets" json:"assets"`
	Transfers []map[string]interface{}   `mapstructure:"transfers" json:"transfers"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Settings are expected to be defined as separate Env variables where the
// variable name reflects the property position, prefixed with XCM_SETTINGS.
// For example Config.Settings.RetryConfig.Attempts translates to
// XCM_SETTINGS_RETRYCONFIG_ATTEMPTS. Chains, assets and transfers are json
// documents in XCM_CHAIN_<n>, XCM_ASSET_<n> and XCM_TRANSFER_<n>, and
// XCM_DEFAULTS holds values shared by every chain.
func GetConfigFromENV() (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string) (*Config, error) {
	rawConfig := RawConfig{}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&rawConfig)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig)
}

func processRawConfig(rawConfig RawConfig) (*Config, error) {
	if err := defaults.Set(&rawConfig.Settings); err != nil {
		return nil, err
	}

	settingsConfig, err := settings.NewSettingsConfig(rawConfig.Settings)
	if err != nil {
		return nil, err
	}

	config := &Config{Settings: settingsConfig}
	chainIDs := mapset.NewSet[string]()
	chainDefaults := lowerKeys(rawConfig.Defaults)
	for _, rawChain := range rawConfig.Chains {
		chain := lowerKeys(rawChain)
		err := mergo.Merge(&chain, chainDefaults)
		if err != nil {
			return nil, err
		}

		chainConfig, err := NewChainConfig(chain)
		if err != nil {
			return nil, err
		}
		if !chainIDs.Add(chainConfig.Chain.ID) {
			return nil, fmt.Errorf("chain %s configured twice", chainConfig.Chain.ID)
		}
		config.Chains = append(config.Chains, *chainConfig)
	}

	assetIDs := mapset.NewSet[string]()
	for _, rawAsset := range rawConfig.Assets {
		assetConfig, err := NewAssetConfig(rawAsset)
		if err != nil {
			return nil, err
		}
		if !assetIDs.Add(assetConfig.ID) {
			return nil, fmt.Errorf("asset %s configured twice", assetConfig.ID)
		}
		config.Assets = append(config.Assets, *assetConfig)
	}

	transfers := mapset.NewSet[string]()
	for _, rawTransfer := range rawConfig.Transfers {
		transferConfig, err := NewTransferConfig(rawTransfer)
		if err != nil {
			return nil, err
		}
		key := strings.Join([]string{transferConfig.Origin, transferConfig.Destination, transferConfig.Asset}, "/")
		if !transfers.Add(key) {
			return nil, fmt.Errorf("transfer %s->%s of %s configured twice", transferConfig.Origin, transferConfig.Destination, transferConfig.Asset)
		}
		config.Transfers = append(config.Transfers, *transferConfig)
	}

	err = config.validateReferences()
	if err != nil {
		return nil, err
	}
	return config, nil
}

// validateReferences checks that every chain and asset id used by another entry exists.
func (c *Config) validateReferences() error {
	for _, chain := range c.Chains {
		if chain.NativeAsset == "" {
			continue
		}
		if _, err := c.Asset(chain.NativeAsset); err != nil {
			return fmt.Errorf("chain %s native asset: %w", chain.Chain.ID, err)
		}
	}

	for _, asset := range c.Assets {
		if _, err := c.Chain(asset.ReserveChain); err != nil {
			return fmt.Errorf("asset %s reserve chain: %w", asset.ID, err)
		}
	}

	for _, transfer := range c.Transfers {
		for _, id := range []string{transfer.Origin, transfer.Destination} {
			if _, err := c.Chain(id); err != nil {
				return fmt.Errorf("transfer %s->%s: %w", transfer.Origin, transfer.Destination, err)
			}
		}
		if _, err := c.Asset(transfer.Asset); err != nil {
			return fmt.Errorf("transfer %s->%s: %w", transfer.Origin, transfer.Destination, err)
		}
	}
	return nil
}

func (c *Config) Chain(id string) (ChainConfig, error) {
	for _, chain := range c.Chains {
		if chain.Chain.ID == id {
			return chain, nil
		}
	}
	return ChainConfig{}, fmt.Errorf("chain %s: %w", id, ErrNotConfigured)
}

func (c *Config) Asset(id string) (AssetConfig, error) {
	for _, asset := range c.Assets {
		if asset.ID == id {
			return asset, nil
		}
	}
	return AssetConfig{}, fmt.Errorf("asset %s: %w", id, ErrNotConfigured)
}

func (c *Config) Transfer(origin, destination, asset string) (TransferConfig, error) {
	for _, transfer := range c.Transfers {
		if transfer.Origin == origin && transfer.Destination == destination && transfer.Asset == asset {
			return transfer, nil
		}
	}
	return TransferConfig{}, fmt.Errorf("transfer %s->%s of %s: %w", origin, destination, asset, ErrNotConfigured)
}

// lowerKeys copies m with lower cased keys. Viper lower cases nested keys of
// maps but not of maps inside lists, so both sides are normalised before merging.
func lowerKeys(m map[string]interface{}) map[string]interface{} {
	lowered := make(map[string]interface{}, len(m))
	for k, v := range m {
		lowered[strings.ToLower(k)] = v
	}
	return lowered
}
