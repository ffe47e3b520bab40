// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ChainSafe/xcm-locator/fee"
	"github.com/ChainSafe/xcm-locator/xcm"
)

var (
	messagesCMD = &cobra.Command{
		Use:   "messages",
		Short: "Print the weight programs of a configured transfer",
		Long:  "Print the SCALE encoded xcm programs used to quote the weight of a configured transfer",
		RunE:  messages,
	}
)

var (
	transferOrigin      string
	transferDestination string
	transferAsset       string
	transferAccount     string
	transferAmount      string
)

func init() {
	bindTransferFlags(messagesCMD.Flags())
}

func bindTransferFlags(flags *pflag.FlagSet) {
	flags.StringVar(&transferOrigin, "origin", "", "id of the origin chain")
	_ = cobra.MarkFlagRequired(flags, "origin")
	flags.StringVar(&transferDestination, "destination", "", "id of the destination chain")
	_ = cobra.MarkFlagRequired(flags, "destination")
	flags.StringVar(&transferAsset, "asset", "", "configured asset id")
	_ = cobra.MarkFlagRequired(flags, "asset")
	flags.StringVar(&transferAccount, "account", "", "hex encoded beneficiary on the destination chain")
	_ = cobra.MarkFlagRequired(flags, "account")
	flags.StringVar(&transferAmount, "amount", "0", "amount in the asset's smallest unit")
}

func transferRequest() (fee.Request, error) {
	amount, err := parseAmount(transferAmount)
	if err != nil {
		return fee.Request{}, err
	}

	account, err := xcm.AccountBytes(transferAccount)
	if err != nil {
		return fee.Request{}, err
	}

	return fee.Request{
		Origin:      transferOrigin,
		Destination: transferDestination,
		Asset:       transferAsset,
		Account:     account,
		Amount:      amount,
	}, nil
}

func messages(cmd *cobra.Command, args []string) error {
	req, err := transferRequest()
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	msgs, err := a.Messages(req)
	if err != nil {
		return err
	}

	asset, err := msgs.Asset.Hex()
	if err != nil {
		return err
	}
	destination, err := msgs.Destination.Hex()
	if err != nil {
		return err
	}

	fmt.Printf("version:     %s\nasset:       %s\ndestination: %s\n", msgs.Destination.Version, asset, destination)
	if msgs.Reserve != nil {
		reserve, err := msgs.Reserve.Hex()
		if err != nil {
			return err
		}
		fmt.Printf("reserve:     %s\n", reserve)
	}
	return nil
}
