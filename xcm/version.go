// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is an xcm protocol revision. Its numeric value is also the
// variant index of every Versioned* wrapper on the wire.
type Version uint8

const (
	V3 Version = 3
	V4 Version = 4
	V5 Version = 5
)

func (v Version) String() string {
	return fmt.Sprintf("V%d", uint8(v))
}

// ParseVersion accepts "V4", "v4" or "4".
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "V"), "v")
	n, err := strconv.ParseUint(trimmed, 10, 8)
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupportedVersion, "%q", s)
	}
	return Version(n), nil
}
