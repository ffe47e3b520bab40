// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

// Chain describes a chain's place in the relay tree.
type Chain struct {
	ID               string
	Name             string
	IsRelay          bool
	ParachainID      *uint32
	EthereumAccounts bool
	Version          Version
}

// Location returns the chain's absolute location: empty for the relay chain,
// a single parachain hop otherwise.
func (c Chain) Location() AbsoluteLocation {
	if c.IsRelay || c.ParachainID == nil {
		return NewAbsoluteLocation()
	}
	return NewAbsoluteLocation(Parachain(*c.ParachainID))
}

// Same reports whether c and other describe the same chain.
func (c Chain) Same(other Chain) bool {
	if c.ID != "" || other.ID != "" {
		return c.ID == other.ID
	}
	return c.Location().Equal(other.Location())
}

// Endpoint is one side of a transfer: a chain and an account on it.
type Endpoint struct {
	Chain   Chain
	Account []byte
}

func (e Endpoint) Location() (AbsoluteLocation, error) {
	return e.Chain.Location().AppendingAccount(e.Account, e.Chain.EthereumAccounts)
}
