// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/ChainSafe/xcm-locator/xcm"
)

type ChainConfig struct {
	Chain       xcm.Chain
	Endpoint    string
	NativeAsset string
}

type RawChainConfig struct {
	ID               string  `mapstructure:"id"`
	Name             string  `mapstructure:"name"`
	IsRelay          bool    `mapstructure:"isRelay"`
	ParachainID      *uint32 `mapstructure:"parachainId"`
	EthereumAccounts bool    `mapstructure:"ethereumAccounts"`
	XcmVersion       string  `mapstructure:"xcmVersion" default:"V4"`
	Endpoint         string  `mapstructure:"endpoint"`
	NativeAsset      string  `mapstructure:"nativeAsset"`
}

func (c *RawChainConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("required field chain.id empty for chain %s", c.Name)
	}
	if c.IsRelay && c.ParachainID != nil {
		return fmt.Errorf("relay chain %s can not have a parachain id", c.ID)
	}
	if !c.IsRelay && c.ParachainID == nil {
		return fmt.Errorf("required field chain.parachainId empty for chain %s", c.ID)
	}
	return nil
}

// NewChainConfig decodes and validates an instance of a ChainConfig from
// raw chain config
func NewChainConfig(chainConfig map[string]interface{}) (*ChainConfig, error) {
	var c RawChainConfig
	err := decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	version, err := xcm.ParseVersion(c.XcmVersion)
	if err != nil {
		return nil, fmt.Errorf("chain %s: %w", c.ID, err)
	}
	if version < xcm.V3 || version > xcm.V5 {
		return nil, fmt.Errorf("chain %s: %w: %s", c.ID, xcm.ErrUnsupportedVersion, version)
	}

	name := c.Name
	if name == "" {
		name = c.ID
	}

	return &ChainConfig{
		Chain: xcm.Chain{
			ID:               c.ID,
			Name:             name,
			IsRelay:          c.IsRelay,
			ParachainID:      c.ParachainID,
			EthereumAccounts: c.EthereumAccounts,
			Version:          version,
		},
		Endpoint:    c.Endpoint,
		NativeAsset: c.NativeAsset,
	}, nil
}

// decode is mapstructure.Decode with weak typing so numeric json values can
// fill string fields such as generalIndex.
func decode(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
