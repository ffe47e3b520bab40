// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package fee quotes the execution fee of a transfer on every chain that
// executes part of it, in the origin chain's native asset.
package fee

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	traceapi "go.opentelemetry.io/otel/trace"

	"github.com/ChainSafe/xcm-locator/chains/substrate/client"
	"github.com/ChainSafe/xcm-locator/config"
	"github.com/ChainSafe/xcm-locator/config/settings"
	"github.com/ChainSafe/xcm-locator/xcm"
	"github.com/ChainSafe/xcm-locator/xcm/versioned"
	"github.com/ChainSafe/xcm-locator/xcm/weight"
)

const tracerName = "xcm-locator"

// ErrBrokenFee is returned when the origin chain has no usable native asset to quote fees in.
var ErrBrokenFee = errors.New("broken fee")

type WeightQuerier interface {
	QueryXcmWeight(message versioned.Xcm) (xcm.Weight, error)
	QueryWeightToAssetFee(weight xcm.Weight, asset versioned.AssetID) (*big.Int, error)
}

type WeightCache interface {
	StoreWeight(chainID string, message []byte, weight xcm.Weight) error
	Weight(chainID string, message []byte) (xcm.Weight, bool, error)
}

type QuoteMetrics interface {
	TrackQuote(ctx context.Context, chainID string, start time.Time, err error)
}

type Request struct {
	Origin      string
	Destination string
	Asset       string
	Account     []byte
	Amount      *big.Int
}

// HopFee is the quote of one executing chain.
type HopFee struct {
	ChainID  string
	Weight   xcm.Weight
	Fee      *big.Int
	FeeAsset versioned.AssetID
}

type Estimate struct {
	Destination HopFee
	Reserve     *HopFee
	Total       *big.Int
}

type Estimator struct {
	config     *config.Config
	dispatcher *versioned.Dispatcher
	queriers   map[string]WeightQuerier
	cache      WeightCache
	metrics    QuoteMetrics
	retry      settings.RetryConfig
}

// NewEstimator creates an estimator. cache can be nil, in which case every
// quote goes to the chain.
func NewEstimator(
	cfg *config.Config,
	dispatcher *versioned.Dispatcher,
	queriers map[string]WeightQuerier,
	cache WeightCache,
	metrics QuoteMetrics,
) *Estimator {
	return &Estimator{
		config:     cfg,
		dispatcher: dispatcher,
		queriers:   queriers,
		cache:      cache,
		metrics:    metrics,
		retry:      cfg.Settings.RetryConfig,
	}
}

// WeightRequest resolves configured ids in req into a weight request.
func (e *Estimator) WeightRequest(req Request) (weight.Request, error) {
	transfer, err := e.config.Transfer(req.Origin, req.Destination, req.Asset)
	if err != nil {
		return weight.Request{}, err
	}
	origin, err := e.config.Chain(transfer.Origin)
	if err != nil {
		return weight.Request{}, err
	}
	destination, err := e.config.Chain(transfer.Destination)
	if err != nil {
		return weight.Request{}, err
	}
	asset, err := e.config.Asset(transfer.Asset)
	if err != nil {
		return weight.Request{}, err
	}
	reserve, err := e.config.Chain(asset.ReserveChain)
	if err != nil {
		return weight.Request{}, err
	}

	return weight.Request{
		Origin:      xcm.Endpoint{Chain: origin.Chain},
		Destination: xcm.Endpoint{Chain: destination.Chain, Account: req.Account},
		Reserve:     reserve.Chain,
		Amount:      req.Amount,
		Fee:         transfer.Fee,
		ReservePath: asset.ReservePath,
	}, nil
}

// Estimate quotes the destination and, for reserve transfers, the reserve
// chain in parallel. The first failing quote cancels the other.
func (e *Estimator) Estimate(ctx context.Context, req Request) (*Estimate, error) {
	weightRequest, err := e.WeightRequest(req)
	if err != nil {
		return nil, err
	}

	native, nativeReserve, err := e.nativeAsset(req.Origin)
	if err != nil {
		return nil, err
	}

	messages, err := e.dispatcher.CreateWeightMessages(weightRequest)
	if err != nil {
		return nil, err
	}
	version := messages.Destination.Version

	estimate := &Estimate{}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		hop, err := e.quote(ctx, weightRequest.Destination.Chain, messages.Destination, version, native, nativeReserve)
		if err != nil {
			return err
		}
		estimate.Destination = *hop
		return nil
	})
	if messages.Reserve != nil {
		reserveMessage := *messages.Reserve
		p.Go(func(ctx context.Context) error {
			hop, err := e.quote(ctx, weightRequest.Reserve, reserveMessage, version, native, nativeReserve)
			if err != nil {
				return err
			}
			estimate.Reserve = hop
			return nil
		})
	}
	err = p.Wait()
	if err != nil {
		return nil, err
	}

	estimate.Total = new(big.Int).Set(estimate.Destination.Fee)
	if estimate.Reserve != nil {
		estimate.Total.Add(estimate.Total, estimate.Reserve.Fee)
	}

	log.Info().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Str("asset", req.Asset).
		Str("fee", estimate.Total.String()).
		Msgf("Estimated %s transfer fee", version)
	return estimate, nil
}

// nativeAsset returns the asset fees are quoted in and its reserve chain.
func (e *Estimator) nativeAsset(chainID string) (config.AssetConfig, xcm.Chain, error) {
	origin, err := e.config.Chain(chainID)
	if err != nil {
		return config.AssetConfig{}, xcm.Chain{}, err
	}
	if origin.NativeAsset == "" {
		return config.AssetConfig{}, xcm.Chain{}, errors.Wrapf(ErrBrokenFee, "chain %s has no native asset", chainID)
	}

	asset, err := e.config.Asset(origin.NativeAsset)
	if err != nil {
		return config.AssetConfig{}, xcm.Chain{}, errors.Wrap(ErrBrokenFee, err.Error())
	}
	reserve, err := e.config.Chain(asset.ReserveChain)
	if err != nil {
		return config.AssetConfig{}, xcm.Chain{}, errors.Wrap(ErrBrokenFee, err.Error())
	}
	return asset, reserve.Chain, nil
}

func (e *Estimator) quote(
	ctx context.Context,
	chain xcm.Chain,
	message versioned.Xcm,
	version xcm.Version,
	native config.AssetConfig,
	nativeReserve xcm.Chain,
) (hop *HopFee, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "xcm.fee.Estimator.quote", traceapi.WithAttributes(
		attribute.String("chain", chain.ID),
		attribute.String("version", version.String()),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		if e.metrics != nil {
			e.metrics.TrackQuote(ctx, chain.ID, start, err)
		}
	}()

	querier, ok := e.queriers[chain.ID]
	if !ok {
		return nil, errors.Errorf("no endpoint configured for chain %s", chain.ID)
	}

	feeAsset, err := e.dispatcher.AssetID(version, chain, nativeReserve, native.ReservePath)
	if err != nil {
		return nil, errors.Wrap(ErrBrokenFee, err.Error())
	}

	w, err := e.weight(ctx, chain.ID, querier, message)
	if err != nil {
		return nil, err
	}

	var fee *big.Int
	err = e.withRetry(ctx, chain.ID, func() error {
		var err error
		fee, err = querier.QueryWeightToAssetFee(w, feeAsset)
		return err
	})
	if err != nil {
		return nil, err
	}

	span.AddEvent("Quoted fee", traceapi.WithAttributes(
		attribute.Int64("weight.refTime", int64(w.RefTime)),
		attribute.Int64("weight.proofSize", int64(w.ProofSize)),
		attribute.String("fee", fee.String()),
	))
	return &HopFee{
		ChainID:  chain.ID,
		Weight:   w,
		Fee:      fee,
		FeeAsset: feeAsset,
	}, nil
}

func (e *Estimator) weight(ctx context.Context, chainID string, querier WeightQuerier, message versioned.Xcm) (xcm.Weight, error) {
	encoded, err := message.Bytes()
	if err != nil {
		return xcm.Weight{}, err
	}

	if e.cache != nil {
		w, found, err := e.cache.Weight(chainID, encoded)
		if err != nil {
			log.Warn().Err(err).Str("chain", chainID).Msg("Failed reading cached weight")
		} else if found {
			return w, nil
		}
	}

	var w xcm.Weight
	err = e.withRetry(ctx, chainID, func() error {
		var err error
		w, err = querier.QueryXcmWeight(message)
		return err
	})
	if err != nil {
		return xcm.Weight{}, err
	}

	if e.cache != nil {
		if err := e.cache.StoreWeight(chainID, encoded, w); err != nil {
			log.Warn().Err(err).Str("chain", chainID).Msg("Failed caching weight")
		}
	}
	return w, nil
}

// withRetry calls fn until it succeeds, the attempts run out or ctx is done.
// Runtime api errors are answers, not failures, and are never retried.
func (e *Estimator) withRetry(ctx context.Context, chainID string, fn func() error) error {
	attempts := e.retry.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || errors.Is(err, client.ErrRuntimeAPI) {
			return err
		}

		log.Warn().Err(err).Str("chain", chainID).Int("attempt", i+1).Msg("Weight query failed")
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.retry.Interval):
		}
	}
	return err
}
