// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"github.com/ChainSafe/xcm-locator/chains/substrate/client"
	"github.com/ChainSafe/xcm-locator/config"
	"github.com/ChainSafe/xcm-locator/fee"
	"github.com/ChainSafe/xcm-locator/logger"
	"github.com/ChainSafe/xcm-locator/lvldb"
	"github.com/ChainSafe/xcm-locator/metrics"
	"github.com/ChainSafe/xcm-locator/store"
	"github.com/ChainSafe/xcm-locator/xcm"
	"github.com/ChainSafe/xcm-locator/xcm/versioned"
)

const meterName = "github.com/ChainSafe/xcm-locator"

type App struct {
	Config     *config.Config
	Dispatcher *versioned.Dispatcher

	cache   fee.WeightCache
	metrics fee.QuoteMetrics
	connect func(chainID string, url string) (fee.WeightQuerier, error)
}

// LoadConfig reads configuration from env when path is "env", from the json file at path otherwise.
func LoadConfig(path string) (*config.Config, error) {
	if strings.ToLower(path) == "env" {
		return config.GetConfigFromENV()
	}
	return config.GetConfigFromFile(path)
}

func NewApp(configuration *config.Config) (*App, error) {
	logger.ConfigureLogger(configuration.Settings.LogLevel, os.Stderr)
	log.Debug().Msg("Successfully loaded configuration")

	a := &App{
		Config:     configuration,
		Dispatcher: versioned.NewDispatcher(),
		connect: func(chainID string, url string) (fee.WeightQuerier, error) {
			return client.NewWeightClient(chainID, url)
		},
	}

	if configuration.Settings.CachePath != "" {
		db, err := lvldb.NewLvlDB(configuration.Settings.CachePath)
		if err != nil {
			return nil, err
		}
		a.cache = store.NewWeightStore(db)
	}

	weightMetrics, err := metrics.NewWeightMetrics(otel.GetMeterProvider().Meter(meterName), configuration.Settings.Env)
	if err != nil {
		return nil, err
	}
	a.metrics = weightMetrics

	return a, nil
}

// Location returns account on chainID, or the chain itself when account is
// empty, as seen from viewpointID.
func (a *App) Location(viewpointID, chainID, account string) (versioned.Location, error) {
	viewpoint, err := a.Config.Chain(viewpointID)
	if err != nil {
		return versioned.Location{}, err
	}
	target, err := a.Config.Chain(chainID)
	if err != nil {
		return versioned.Location{}, err
	}

	location := target.Chain.Location()
	if account != "" {
		accountBytes, err := xcm.AccountBytes(account)
		if err != nil {
			return versioned.Location{}, err
		}
		location, err = location.AppendingAccount(accountBytes, target.Chain.EthereumAccounts)
		if err != nil {
			return versioned.Location{}, err
		}
	}

	version, err := a.Dispatcher.Select(viewpoint.Chain, target.Chain)
	if err != nil {
		return versioned.Location{}, err
	}
	return a.Dispatcher.Location(version, location, viewpoint.Chain.Location())
}

// DecodeLocation parses a SCALE encoded VersionedLocation, such as one taken
// from an extrinsic, so it can be compared with configured chains.
func DecodeLocation(encoded string) (versioned.Location, error) {
	location, err := versioned.DecodeLocationHex(encoded)
	if err != nil {
		return versioned.Location{}, errors.Wrap(err, "failed decoding location")
	}
	return location, nil
}

// Asset returns amount of assetID as seen from originID.
func (a *App) Asset(originID, assetID string, amount *big.Int) (versioned.Asset, error) {
	origin, err := a.Config.Chain(originID)
	if err != nil {
		return versioned.Asset{}, err
	}
	asset, err := a.Config.Asset(assetID)
	if err != nil {
		return versioned.Asset{}, err
	}
	reserve, err := a.Config.Chain(asset.ReserveChain)
	if err != nil {
		return versioned.Asset{}, err
	}

	version, err := a.Dispatcher.Select(origin.Chain, reserve.Chain)
	if err != nil {
		return versioned.Asset{}, err
	}
	return a.Dispatcher.MultiAsset(version, origin.Chain, reserve.Chain, asset.ReservePath, amount)
}

// Messages builds the weight programs of a configured transfer without querying any chain.
func (a *App) Messages(req fee.Request) (*versioned.WeightMessages, error) {
	weightRequest, err := fee.NewEstimator(a.Config, a.Dispatcher, nil, nil, nil).WeightRequest(req)
	if err != nil {
		return nil, err
	}
	return a.Dispatcher.CreateWeightMessages(weightRequest)
}

// Estimate connects to the chains executing the transfer and quotes its fee.
func (a *App) Estimate(ctx context.Context, req fee.Request) (*fee.Estimate, error) {
	estimator := fee.NewEstimator(a.Config, a.Dispatcher, nil, nil, nil)
	weightRequest, err := estimator.WeightRequest(req)
	if err != nil {
		return nil, err
	}

	chains := []xcm.Chain{weightRequest.Destination.Chain}
	if weightRequest.Fee.HasReserveHop() {
		chains = append(chains, weightRequest.Reserve)
	}

	queriers := make(map[string]fee.WeightQuerier)
	for _, chain := range chains {
		if _, ok := queriers[chain.ID]; ok {
			continue
		}

		chainConfig, err := a.Config.Chain(chain.ID)
		if err != nil {
			return nil, err
		}
		if chainConfig.Endpoint == "" {
			return nil, errors.Errorf("chain %s has no endpoint configured", chain.ID)
		}

		querier, err := a.connect(chain.ID, chainConfig.Endpoint)
		if err != nil {
			return nil, errors.Wrapf(err, "failed connecting to %s", chain.ID)
		}
		log.Debug().Str("chain", chain.ID).Str("endpoint", chainConfig.Endpoint).Msg("Connected to chain")
		queriers[chain.ID] = querier
	}

	return fee.NewEstimator(a.Config, a.Dispatcher, queriers, a.cache, a.metrics).Estimate(ctx, req)
}
