// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
)

var (
	assetCMD = &cobra.Command{
		Use:   "asset",
		Short: "Print a configured asset as seen from a chain",
		Long:  "Print the versioned multiasset of a configured asset and amount as seen from the origin chain",
		RunE:  asset,
	}
)

var (
	assetOrigin string
	assetID     string
	assetAmount string
)

func init() {
	assetCMD.Flags().StringVar(&assetOrigin, "origin", "", "id of the chain the asset is seen from")
	_ = assetCMD.MarkFlagRequired("origin")
	assetCMD.Flags().StringVar(&assetID, "asset", "", "configured asset id")
	_ = assetCMD.MarkFlagRequired("asset")
	assetCMD.Flags().StringVar(&assetAmount, "amount", "0", "amount in the asset's smallest unit")
}

func asset(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount(assetAmount)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	multiasset, err := a.Asset(assetOrigin, assetID, amount)
	if err != nil {
		return err
	}

	encoded, err := multiasset.Hex()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n%s\n", multiasset.Version, multiasset.Asset, encoded)
	return nil
}

func parseAmount(amount string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(amount, 10)
	if !ok || value.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	return value, nil
}
