// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package v5 holds the xcm V5 vocabulary: V4 plus PayFees, with the Westend, Rococo
// and Wococo networks removed.
package v5

import (
	"github.com/ChainSafe/xcm-locator/xcm"
	v3 "github.com/ChainSafe/xcm-locator/xcm/v3"
)

const payFeesIndex = 48

var InstructionIndices = func() map[xcm.InstructionKind]byte {
	indices := make(map[xcm.InstructionKind]byte, len(v3.InstructionIndices)+1)
	for kind, index := range v3.InstructionIndices {
		indices[kind] = index
	}
	indices[xcm.PayFeesKind] = payFeesIndex
	return indices
}()

// NetworkIndices keeps the V4 variant indices; removed networks leave gaps.
var NetworkIndices = map[xcm.NetworkKind]byte{
	xcm.ByGenesisNetwork:        0,
	xcm.ByForkNetwork:           1,
	xcm.PolkadotNetwork:         2,
	xcm.KusamaNetwork:           3,
	xcm.EthereumNetwork:         7,
	xcm.BitcoinCoreNetwork:      8,
	xcm.BitcoinCashNetwork:      9,
	xcm.PolkadotBulletinNetwork: 10,
}

var Codec = xcm.Codec{
	Version:      xcm.V5,
	Instructions: InstructionIndices,
	Networks:     NetworkIndices,
}

var vocabulary = func() xcm.Vocabulary {
	v := xcm.NewVocabulary()
	for kind := range InstructionIndices {
		v[kind] = struct{}{}
	}
	return v
}()

type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

func (a *Assembler) Version() xcm.Version {
	return xcm.V5
}

func (a *Assembler) CreateInstructions(kinds []xcm.InstructionKind, destination xcm.Multilocation, asset xcm.Multiasset) ([]xcm.Instruction, error) {
	return xcm.Assemble(vocabulary, kinds, destination, asset)
}
