// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets the global zerolog logger to human readable output at level.
func ConfigureLogger(level zerolog.Level, out io.Writer) {
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)
}

// ParseLevel parses a level name case insensitively. Unlike zerolog.ParseLevel
// it rejects the empty name instead of returning NoLevel.
func ParseLevel(level string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "" {
		return zerolog.NoLevel, fmt.Errorf("empty log level")
	}

	l, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level: %s", level)
	}
	return l, nil
}
