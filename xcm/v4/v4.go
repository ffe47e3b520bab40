// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package v4 holds the xcm V4 vocabulary. The instruction set is the V3 one; asset ids
// lose the Concrete wrapper and NetworkId gains PolkadotBulletin.
package v4

import (
	"github.com/ChainSafe/xcm-locator/xcm"
	v3 "github.com/ChainSafe/xcm-locator/xcm/v3"
)

var NetworkIndices = map[xcm.NetworkKind]byte{
	xcm.ByGenesisNetwork:        0,
	xcm.ByForkNetwork:           1,
	xcm.PolkadotNetwork:         2,
	xcm.KusamaNetwork:           3,
	xcm.WestendNetwork:          4,
	xcm.RococoNetwork:           5,
	xcm.WococoNetwork:           6,
	xcm.EthereumNetwork:         7,
	xcm.BitcoinCoreNetwork:      8,
	xcm.BitcoinCashNetwork:      9,
	xcm.PolkadotBulletinNetwork: 10,
}

var Codec = xcm.Codec{
	Version:      xcm.V4,
	Instructions: v3.InstructionIndices,
	Networks:     NetworkIndices,
}

var vocabulary = func() xcm.Vocabulary {
	v := xcm.NewVocabulary()
	for kind := range v3.InstructionIndices {
		v[kind] = struct{}{}
	}
	return v
}()

type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

func (a *Assembler) Version() xcm.Version {
	return xcm.V4
}

func (a *Assembler) CreateInstructions(kinds []xcm.InstructionKind, destination xcm.Multilocation, asset xcm.Multiasset) ([]xcm.Instruction, error) {
	return xcm.Assemble(vocabulary, kinds, destination, asset)
}
