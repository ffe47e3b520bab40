// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDataCorruption     = errors.New("data corruption")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrTooManyJunctions   = errors.New("too many junctions")
	ErrUnsupportedVersion = errors.New("unsupported xcm version")
	ErrUnsupportedNetwork = errors.New("unsupported network")
)

// UnsupportedInstructionError is returned when an instruction name is unknown,
// or known but outside the vocabulary of the selected xcm version.
type UnsupportedInstructionError struct {
	Name string
}

func (e *UnsupportedInstructionError) Error() string {
	return fmt.Sprintf("unsupported instruction %s", e.Name)
}

func dataCorruption(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDataCorruption, format, args...)
}
