// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"fmt"

	"github.com/pkg/errors"
)

// AbsoluteLocation is a path from the relay chain to a point in the chain tree.
type AbsoluteLocation struct {
	Junctions Junctions
}

func NewAbsoluteLocation(junctions ...Junction) AbsoluteLocation {
	return AbsoluteLocation{Junctions: Junctions(nil).Append(junctions...)}
}

// Validate rejects locations deeper than any xcm version can express.
func (l AbsoluteLocation) Validate() error {
	if len(l.Junctions) > MaxJunctions {
		return errors.Wrapf(ErrTooManyJunctions, "%d junctions", len(l.Junctions))
	}
	return nil
}

func (l AbsoluteLocation) Equal(other AbsoluteLocation) bool {
	return l.Junctions.Equal(other.Junctions)
}

// AppendingAccount returns the location of an account living at l. Ethereum style accounts
// are 20 byte keys, substrate accounts 32 byte ids. No network tag is attached.
func (l AbsoluteLocation) AppendingAccount(account []byte, ethereum bool) (AbsoluteLocation, error) {
	if ethereum {
		if len(account) != 20 {
			return AbsoluteLocation{}, errors.Wrapf(ErrInvalidAccount, "expected 20 bytes, got %d", len(account))
		}

		var key [20]byte
		copy(key[:], account)
		return validated(AbsoluteLocation{Junctions: l.Junctions.Append(AccountKey20(nil, key))})
	}

	if len(account) != 32 {
		return AbsoluteLocation{}, errors.Wrapf(ErrInvalidAccount, "expected 32 bytes, got %d", len(account))
	}

	var id [32]byte
	copy(id[:], account)
	return validated(AbsoluteLocation{Junctions: l.Junctions.Append(AccountID32(nil, id))})
}

func validated(l AbsoluteLocation) (AbsoluteLocation, error) {
	if err := l.Validate(); err != nil {
		return AbsoluteLocation{}, err
	}
	return l, nil
}

// Multilocation is a location relative to some viewpoint: ascend Parents levels, then descend Interior.
type Multilocation struct {
	Parents  uint8
	Interior Junctions
}

func Here() Multilocation {
	return Multilocation{Interior: Junctions{}}
}

func (m Multilocation) IsHere() bool {
	return m.Parents == 0 && len(m.Interior) == 0
}

func (m Multilocation) Equal(other Multilocation) bool {
	return m.Parents == other.Parents && m.Interior.Equal(other.Interior)
}

func (m Multilocation) String() string {
	return fmt.Sprintf("{parents: %d, interior: %s}", m.Parents, m.Interior)
}

// FromPointOfView computes where target is as seen from viewpoint, the same way a
// relative filesystem path is computed between two directories.
// Both locations must pass Validate; Parents is only meaningful up to MaxJunctions.
func FromPointOfView(target, viewpoint AbsoluteLocation) Multilocation {
	common := target.Junctions.CommonPrefixLength(viewpoint.Junctions)

	return Multilocation{
		Parents:  uint8(len(viewpoint.Junctions) - common),
		Interior: Junctions(nil).Append(target.Junctions[common:]...),
	}
}
