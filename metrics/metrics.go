// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type WeightMetrics struct {
	QuoteCount   api.Int64Counter
	QuoteErrors  api.Int64Counter
	QuoteLatency api.Int64Histogram

	env string
}

// NewWeightMetrics creates an instance of metrics
func NewWeightMetrics(meter api.Meter, env string) (*WeightMetrics, error) {
	quoteCount, err := meter.Int64Counter(
		"xcm.WeightQuotes",
		api.WithDescription("Number of weight quotes requested from chain nodes"),
	)
	if err != nil {
		return nil, err
	}

	quoteErrors, err := meter.Int64Counter(
		"xcm.WeightQuoteErrors",
		api.WithDescription("Number of failed weight quotes"),
	)
	if err != nil {
		return nil, err
	}

	quoteLatency, err := meter.Int64Histogram(
		"xcm.WeightQuoteLatency",
		api.WithDescription("Weight quote round trip in milliseconds"),
		api.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &WeightMetrics{
		QuoteCount:   quoteCount,
		QuoteErrors:  quoteErrors,
		QuoteLatency: quoteLatency,
		env:          env,
	}, nil
}

// TrackQuote records one finished weight quote against chainID.
func (m *WeightMetrics) TrackQuote(ctx context.Context, chainID string, start time.Time, err error) {
	opts := api.WithAttributes(
		attribute.String("env", m.env),
		attribute.String("chain", chainID),
	)

	m.QuoteCount.Add(ctx, 1, opts)
	m.QuoteLatency.Record(ctx, time.Since(start).Milliseconds(), opts)
	if err != nil {
		m.QuoteErrors.Add(ctx, 1, opts)
	}
}
