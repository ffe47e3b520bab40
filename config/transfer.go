// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/ChainSafe/xcm-locator/xcm"
	"github.com/ChainSafe/xcm-locator/xcm/weight"
)

// TransferConfig is one configured route. Instruction names are decoded
// here so unknown names fail at startup instead of during a quote.
type TransferConfig struct {
	Origin      string
	Destination string
	Asset       string
	Fee         weight.FeeParams
}

type RawTransferConfig struct {
	Origin         string   `mapstructure:"origin"`
	Destination    string   `mapstructure:"destination"`
	Asset          string   `mapstructure:"asset"`
	DestinationFee []string `mapstructure:"destinationFee"`
	ReserveFee     []string `mapstructure:"reserveFee"`
}

func (c *RawTransferConfig) Validate() error {
	if c.Origin == "" || c.Destination == "" || c.Asset == "" {
		return fmt.Errorf("transfer requires origin, destination and asset")
	}
	if len(c.DestinationFee) == 0 {
		return fmt.Errorf("required field transfer.destinationFee empty for %s", c.route())
	}
	return nil
}

func (c *RawTransferConfig) route() string {
	return fmt.Sprintf("%s->%s:%s", c.Origin, c.Destination, c.Asset)
}

func NewTransferConfig(transferConfig map[string]interface{}) (*TransferConfig, error) {
	var c RawTransferConfig
	err := decode(transferConfig, &c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	destinationInstructions, err := xcm.ParseInstructionKinds(c.DestinationFee)
	if err != nil {
		return nil, fmt.Errorf("transfer %s destinationFee: %w", c.route(), err)
	}

	reserveInstructions, err := xcm.ParseInstructionKinds(c.ReserveFee)
	if err != nil {
		return nil, fmt.Errorf("transfer %s reserveFee: %w", c.route(), err)
	}

	return &TransferConfig{
		Origin:      c.Origin,
		Destination: c.Destination,
		Asset:       c.Asset,
		Fee: weight.FeeParams{
			DestinationInstructions: destinationInstructions,
			ReserveInstructions:     reserveInstructions,
		},
	}, nil
}
