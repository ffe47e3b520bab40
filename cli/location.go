// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChainSafe/xcm-locator/app"
)

var (
	locationCMD = &cobra.Command{
		Use:   "location",
		Short: "Print a chain or account location as seen from another chain",
		Long:  "Print the versioned multilocation of a chain, or of an account on it, as seen from the viewpoint chain. With --decode, print the SCALE encoded versioned multilocation given instead",
		RunE:  location,
	}
)

var (
	viewpoint       string
	target          string
	locationAccount string
	encodedLocation string
)

func init() {
	locationCMD.Flags().StringVar(&viewpoint, "from", "", "id of the chain the location is seen from")
	locationCMD.Flags().StringVar(&target, "chain", "", "id of the located chain")
	locationCMD.Flags().StringVar(&locationAccount, "account", "", "hex encoded account on the located chain")
	locationCMD.Flags().StringVar(&encodedLocation, "decode", "", "0x prefixed SCALE encoded versioned multilocation to print")
	locationCMD.MarkFlagsMutuallyExclusive("decode", "from")
	locationCMD.MarkFlagsMutuallyExclusive("decode", "chain")
}

func location(cmd *cobra.Command, args []string) error {
	if encodedLocation != "" {
		l, err := app.DecodeLocation(encodedLocation)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", l.Version, l.Location)
		return nil
	}

	if viewpoint == "" || target == "" {
		return fmt.Errorf("--from and --chain are required unless --decode is set")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	l, err := a.Location(viewpoint, target, locationAccount)
	if err != nil {
		return err
	}

	encoded, err := l.Hex()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n%s\n", l.Version, l.Location, encoded)
	return nil
}
