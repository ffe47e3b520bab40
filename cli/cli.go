// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChainSafe/xcm-locator/app"
)

const (
	ConfigFlagName = "config"
)

var (
	rootCMD = &cobra.Command{
		Use:   "xcmctl",
		Short: "Compute xcm locations, assets and fee quotes for configured chains",
	}
)

func init() {
	rootCMD.PersistentFlags().String(ConfigFlagName, "config.json", "Path to JSON configuration file, or env to read XCM_ variables")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))
}

func Execute() {
	rootCMD.AddCommand(locationCMD, assetCMD, messagesCMD, estimateCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}

func newApp() (*app.App, error) {
	configuration, err := app.LoadConfig(viper.GetString(ConfigFlagName))
	if err != nil {
		return nil, err
	}
	return app.NewApp(configuration)
}
