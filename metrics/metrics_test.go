// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ChainSafe/xcm-locator/metrics"
)

type WeightMetricsTestSuite struct {
	suite.Suite
}

func TestRunWeightMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(WeightMetricsTestSuite))
}

func (s *WeightMetricsTestSuite) Test_TrackQuote() {
	m, err := metrics.NewWeightMetrics(noop.NewMeterProvider().Meter("xcm"), "test")
	s.Nil(err)

	s.NotPanics(func() {
		m.TrackQuote(context.Background(), "moonbeam", time.Now(), nil)
		m.TrackQuote(context.Background(), "moonbeam", time.Now(), errors.New("error"))
	})
}
