// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package v3 holds the xcm V3 vocabulary: the instructions it can assemble, their
// variant indices, and the V3 NetworkId table. Asset ids are wrapped in AssetId::Concrete.
package v3

import "github.com/ChainSafe/xcm-locator/xcm"

// InstructionIndices are the V3 Instruction enum variant indices of the supported kinds.
var InstructionIndices = map[xcm.InstructionKind]byte{
	xcm.WithdrawAssetKind:          0,
	xcm.ReserveAssetDepositedKind:  1,
	xcm.ReceiveTeleportedAssetKind: 2,
	xcm.ClearOriginKind:            10,
	xcm.DepositAssetKind:           13,
	xcm.DepositReserveAssetKind:    14,
	xcm.BuyExecutionKind:           19,
	xcm.RefundSurplusKind:          20,
	xcm.ClearErrorKind:             23,
	xcm.SetTopicKind:               44,
}

var NetworkIndices = map[xcm.NetworkKind]byte{
	xcm.ByGenesisNetwork:   0,
	xcm.ByForkNetwork:      1,
	xcm.PolkadotNetwork:    2,
	xcm.KusamaNetwork:      3,
	xcm.WestendNetwork:     4,
	xcm.RococoNetwork:      5,
	xcm.WococoNetwork:      6,
	xcm.EthereumNetwork:    7,
	xcm.BitcoinCoreNetwork: 8,
	xcm.BitcoinCashNetwork: 9,
}

var Codec = xcm.Codec{
	Version:         xcm.V3,
	Instructions:    InstructionIndices,
	Networks:        NetworkIndices,
	ConcreteAssetID: true,
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
	return xcm.V3
}

func (a *Assembler) CreateInstructions(kinds []xcm.InstructionKind, destination xcm.Multilocation, asset xcm.Multiasset) ([]xcm.Instruction, error) {
	return xcm.Assemble(vocabulary, kinds, destination, asset)
}
