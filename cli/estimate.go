// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ChainSafe/xcm-locator/fee"
)

var (
	estimateCMD = &cobra.Command{
		Use:   "estimate",
		Short: "Quote the execution fee of a configured transfer",
		Long:  "Query destination and reserve chains for the weight of a configured transfer and convert it into the origin chain's native asset",
		RunE:  estimate,
	}
)

func init() {
	bindTransferFlags(estimateCMD.Flags())
}

func estimate(cmd *cobra.Command, args []string) error {
	req, err := transferRequest()
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP, syscall.SIGQUIT)
	defer cancel()

	result, err := a.Estimate(ctx, req)
	if err != nil {
		return err
	}

	printHop("destination", result.Destination)
	if result.Reserve != nil {
		printHop("reserve", *result.Reserve)
	}
	fmt.Printf("total:       %s\n", result.Total)
	return nil
}

func printHop(name string, hop fee.HopFee) {
	fmt.Printf("%-12s %s refTime=%d proofSize=%d fee=%s\n", name+":", hop.ChainID, hop.Weight.RefTime, hop.Weight.ProofSize, hop.Fee)
}
