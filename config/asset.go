// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/creasty/defaults"

	"github.com/ChainSafe/xcm-locator/xcm"
)

type AssetConfig struct {
	ID           string
	ReserveChain string
	ReservePath  xcm.ReservePath
}

type RawAssetConfig struct {
	ID           string         `mapstructure:"id"`
	ReserveChain string         `mapstructure:"reserveChain"`
	ReservePath  RawReservePath `mapstructure:"reservePath"`
}

type RawReservePath struct {
	LocationType   string  `mapstructure:"locationType" default:"relative"`
	Parents        *uint8  `mapstructure:"parents"`
	ParachainID    *uint32 `mapstructure:"parachainId"`
	PalletInstance *uint8  `mapstructure:"palletInstance"`
	GeneralKey     string  `mapstructure:"generalKey"`
	GeneralIndex   string  `mapstructure:"generalIndex"`
}

func (c *RawAssetConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("required field asset.id empty")
	}
	if c.ReserveChain == "" {
		return fmt.Errorf("required field asset.reserveChain empty for asset %s", c.ID)
	}
	return nil
}

// NewAssetConfig decodes an asset entry and rejects reserve paths that
// could never be turned into a location.
func NewAssetConfig(assetConfig map[string]interface{}) (*AssetConfig, error) {
	var c RawAssetConfig
	err := decode(assetConfig, &c)
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

	locationType, err := xcm.ParseLocationType(c.ReservePath.LocationType)
	if err != nil {
		return nil, fmt.Errorf("asset %s: %w", c.ID, err)
	}

	path := xcm.ReservePath{
		Type:           locationType,
		Parents:        c.ReservePath.Parents,
		ParachainID:    c.ReservePath.ParachainID,
		PalletInstance: c.ReservePath.PalletInstance,
		GeneralKey:     c.ReservePath.GeneralKey,
		GeneralIndex:   c.ReservePath.GeneralIndex,
	}
	if err := path.Validate(); err != nil {
		return nil, fmt.Errorf("asset %s: %w", c.ID, err)
	}

	return &AssetConfig{
		ID:           c.ID,
		ReserveChain: c.ReserveChain,
		ReservePath:  path,
	}, nil
}
