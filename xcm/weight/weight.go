// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package weight builds the synthetic xcm programs that are sent to chain nodes to
// quote execution weight before a transfer is submitted. They are never executed.
package weight

import (
	"math/big"

	"github.com/ChainSafe/xcm-locator/xcm"
)

// FeeParams lists the instructions each hop executes. Reserve instructions are
// empty when the transfer has no reserve hop.
type FeeParams struct {
	DestinationInstructions []xcm.InstructionKind
	ReserveInstructions     []xcm.InstructionKind
}

func (p FeeParams) HasReserveHop() bool {
	return len(p.ReserveInstructions) > 0
}

type Request struct {
	Origin      xcm.Endpoint
	Destination xcm.Endpoint
	Reserve     xcm.Chain
	Amount      *big.Int
	Fee         FeeParams
	ReservePath xcm.ReservePath
}

// Messages holds the destination program and, when a reserve hop exists, the reserve program.
type Messages struct {
	Asset       xcm.Multiasset
	Destination []xcm.Instruction
	Reserve     []xcm.Instruction
}

type Factory struct {
	assembler xcm.Assembler
}

func NewFactory(assembler xcm.Assembler) *Factory {
	return &Factory{assembler: assembler}
}

func (f *Factory) Version() xcm.Version {
	return f.assembler.Version()
}

// CreateWeightMessages assembles the programs for req. Both programs share one asset.
// The destination program deposits to the beneficiary as seen from the destination
// chain, the reserve program forwards to the destination chain as seen from the reserve.
func (f *Factory) CreateWeightMessages(req Request) (*Messages, error) {
	asset, err := xcm.CreateMultiAsset(req.Origin.Chain, req.Reserve, req.ReservePath, req.Amount)
	if err != nil {
		return nil, err
	}

	beneficiary, err := req.Destination.Location()
	if err != nil {
		return nil, err
	}

	destinationInstructions, err := f.assembler.CreateInstructions(
		req.Fee.DestinationInstructions,
		xcm.FromPointOfView(beneficiary, req.Destination.Chain.Location()),
		asset,
	)
	if err != nil {
		return nil, err
	}

	messages := &Messages{
		Asset:       asset,
		Destination: destinationInstructions,
	}

	if !req.Fee.HasReserveHop() {
		return messages, nil
	}

	reserveInstructions, err := f.assembler.CreateInstructions(
		req.Fee.ReserveInstructions,
		xcm.FromPointOfView(req.Destination.Chain.Location(), req.Reserve.Location()),
		asset,
	)
	if err != nil {
		return nil, err
	}
	messages.Reserve = reserveInstructions

	return messages, nil
}
