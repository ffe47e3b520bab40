// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/xcm-locator/logger"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestRunLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TearDownTest() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func (s *LoggerTestSuite) Test_ParseLevel() {
	level, err := logger.ParseLevel("debug")
	s.Nil(err)
	s.Equal(zerolog.DebugLevel, level)

	level, err = logger.ParseLevel(" WARN ")
	s.Nil(err)
	s.Equal(zerolog.WarnLevel, level)
}

func (s *LoggerTestSuite) Test_ParseLevel_Empty() {
	_, err := logger.ParseLevel("")

	s.NotNil(err)
}

func (s *LoggerTestSuite) Test_ParseLevel_Unknown() {
	_, err := logger.ParseLevel("loud")

	s.NotNil(err)
}

func (s *LoggerTestSuite) Test_ConfigureLogger_FiltersBelowLevel() {
	out := &bytes.Buffer{}
	logger.ConfigureLogger(zerolog.WarnLevel, out)

	log.Info().Msg("hidden")
	s.Empty(out.String())

	log.Warn().Msg("shown")
	s.Contains(out.String(), "shown")
}
