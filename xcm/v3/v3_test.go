// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package v3_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/xcm-locator/xcm"
	v3 "github.com/ChainSafe/xcm-locator/xcm/v3"
)

type AssemblerTestSuite struct {
	suite.Suite
	assembler   *v3.Assembler
	destination xcm.Multilocation
	asset       xcm.Multiasset
}

func TestRunAssemblerTestSuite(t *testing.T) {
	suite.Run(t, new(AssemblerTestSuite))
}

func (s *AssemblerTestSuite) SetupTest() {
	s.assembler = v3.NewAssembler()
	s.destination = xcm.Multilocation{Parents: 0, Interior: xcm.Junctions{xcm.AccountID32(nil, [32]byte{1})}}
	s.asset = xcm.Multiasset{
		ID:     xcm.Multilocation{Parents: 1, Interior: xcm.Junctions{xcm.Parachain(1000), xcm.GeneralIndex(big.NewInt(42))}},
		Amount: big.NewInt(1_000_000_000),
	}
}

func (s *AssemblerTestSuite) Test_Version() {
	s.Equal(xcm.V3, s.assembler.Version())
}

func (s *AssemblerTestSuite) Test_CreateInstructions_ReserveTransfer() {
	instructions, err := xcm.AssembleNamed(
		s.assembler,
		[]string{"ReserveAssetDeposited", "ClearOrigin", "BuyExecution", "DepositAsset"},
		s.destination,
		s.asset,
	)

	s.Nil(err)
	s.Len(instructions, 4)

	reserveDeposited := instructions[0].(xcm.ReserveAssetDeposited)
	s.True(reserveDeposited.Assets[0].Equal(s.asset))
	s.Equal(xcm.ClearOrigin{}, instructions[1])
	buyExecution := instructions[2].(xcm.BuyExecution)
	s.Equal(xcm.Unlimited(), buyExecution.WeightLimit)
	deposit := instructions[3].(xcm.DepositAsset)
	s.True(deposit.Beneficiary.Equal(s.destination))
}

func (s *AssemblerTestSuite) Test_CreateInstructions_FullVocabulary() {
	kinds := []xcm.InstructionKind{
		xcm.WithdrawAssetKind,
		xcm.ReserveAssetDepositedKind,
		xcm.ReceiveTeleportedAssetKind,
		xcm.ClearOriginKind,
		xcm.BuyExecutionKind,
		xcm.DepositAssetKind,
		xcm.DepositReserveAssetKind,
		xcm.RefundSurplusKind,
		xcm.ClearErrorKind,
		xcm.SetTopicKind,
	}

	instructions, err := s.assembler.CreateInstructions(kinds, s.destination, s.asset)

	s.Nil(err)
	for i, kind := range kinds {
		s.Equal(kind, instructions[i].Kind())
	}
}

func (s *AssemblerTestSuite) Test_CreateInstructions_UnknownName() {
	instructions, err := xcm.AssembleNamed(s.assembler, []string{"FooBar"}, s.destination, s.asset)

	var unsupported *xcm.UnsupportedInstructionError
	s.True(errors.As(err, &unsupported))
	s.Equal("FooBar", unsupported.Name)
	s.Nil(instructions)
}

func (s *AssemblerTestSuite) Test_CreateInstructions_PayFeesNotInV3() {
	instructions, err := s.assembler.CreateInstructions(
		[]xcm.InstructionKind{xcm.WithdrawAssetKind, xcm.PayFeesKind, xcm.DepositAssetKind},
		s.destination,
		s.asset,
	)

	var unsupported *xcm.UnsupportedInstructionError
	s.True(errors.As(err, &unsupported))
	s.Equal("PayFees", unsupported.Name)
	s.Nil(instructions)
}

func (s *AssemblerTestSuite) Test_Codec() {
	s.Equal(xcm.V3, v3.Codec.Version)
	s.True(v3.Codec.ConcreteAssetID)
	_, ok := v3.Codec.Networks[xcm.PolkadotBulletinNetwork]
	s.False(ok)
}
