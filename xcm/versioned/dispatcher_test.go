// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package versioned_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/xcm-locator/xcm"
	"github.com/ChainSafe/xcm-locator/xcm/versioned"
	"github.com/ChainSafe/xcm-locator/xcm/weight"
)

func uint32Ptr(v uint32) *uint32 {
	return &v
}

type DispatcherTestSuite struct {
	suite.Suite
	dispatcher *versioned.Dispatcher
	relay      xcm.Chain
	assetHub   xcm.Chain
	moonbeam   xcm.Chain
}

func TestRunDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) SetupTest() {
	s.dispatcher = versioned.NewDispatcher()
	s.relay = xcm.Chain{ID: "polkadot", IsRelay: true, Version: xcm.V5}
	s.assetHub = xcm.Chain{ID: "assethub", ParachainID: uint32Ptr(1000), Version: xcm.V4}
	s.moonbeam = xcm.Chain{ID: "moonbeam", ParachainID: uint32Ptr(2004), EthereumAccounts: true, Version: xcm.V3}
}

func (s *DispatcherTestSuite) Test_Select_LowestVersion() {
	version, err := s.dispatcher.Select(s.relay, s.assetHub, s.moonbeam)
	s.Nil(err)
	s.Equal(xcm.V3, version)

	version, err = s.dispatcher.Select(s.relay, s.assetHub)
	s.Nil(err)
	s.Equal(xcm.V4, version)
}

func (s *DispatcherTestSuite) Test_Select_NoChains() {
	_, err := s.dispatcher.Select()

	s.True(errors.Is(err, xcm.ErrUnsupportedVersion))
}

func (s *DispatcherTestSuite) Test_Select_UnregisteredVersion() {
	legacy := s.assetHub
	legacy.Version = xcm.Version(2)

	_, err := s.dispatcher.Select(s.relay, legacy)

	s.True(errors.Is(err, xcm.ErrUnsupportedVersion))
}

func (s *DispatcherTestSuite) Test_Location() {
	location, err := s.dispatcher.Location(xcm.V4, s.moonbeam.Location(), s.assetHub.Location())

	s.Nil(err)
	s.Equal(xcm.V4, location.Version)
	s.True(location.Location.Equal(xcm.Multilocation{Parents: 1, Interior: xcm.Junctions{xcm.Parachain(2004)}}))
}

func (s *DispatcherTestSuite) Test_Location_ViewpointTooDeep() {
	junctions := make([]xcm.Junction, 300)
	for i := range junctions {
		junctions[i] = xcm.Parachain(uint32(i))
	}

	_, err := s.dispatcher.Location(xcm.V4, s.assetHub.Location(), xcm.NewAbsoluteLocation(junctions...))

	s.True(errors.Is(err, xcm.ErrTooManyJunctions))
}

func (s *DispatcherTestSuite) Test_AssetID() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType}

	id, err := s.dispatcher.AssetID(xcm.V5, s.relay, s.relay, path)

	s.Nil(err)
	s.Equal(xcm.V5, id.Version)
	s.True(id.ID.IsHere())
}

func (s *DispatcherTestSuite) Test_MultiAsset_NegativeAmount() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType}

	_, err := s.dispatcher.MultiAsset(xcm.V4, s.assetHub, s.relay, path, big.NewInt(-1))

	s.True(errors.Is(err, xcm.ErrDataCorruption))
}

func (s *DispatcherTestSuite) Test_MultiAsset_AmountWiderThanU128() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType}

	_, err := s.dispatcher.MultiAsset(xcm.V4, s.assetHub, s.relay, path, new(big.Int).Lsh(big.NewInt(1), 130))

	s.True(errors.Is(err, xcm.ErrDataCorruption))
}

func (s *DispatcherTestSuite) Test_CreateWeightMessages() {
	account := make([]byte, 20)
	req := weight.Request{
		Origin:      xcm.Endpoint{Chain: s.assetHub},
		Destination: xcm.Endpoint{Chain: s.moonbeam, Account: account},
		Reserve:     s.relay,
		Amount:      big.NewInt(10),
		ReservePath: xcm.ReservePath{Type: xcm.RelativeLocationType},
		Fee: weight.FeeParams{
			DestinationInstructions: []xcm.InstructionKind{xcm.ReserveAssetDepositedKind, xcm.DepositAssetKind},
			ReserveInstructions:     []xcm.InstructionKind{xcm.WithdrawAssetKind, xcm.DepositReserveAssetKind},
		},
	}

	messages, err := s.dispatcher.CreateWeightMessages(req)

	s.Nil(err)
	s.Equal(xcm.V3, messages.Asset.Version)
	s.Equal(xcm.V3, messages.Destination.Version)
	s.NotNil(messages.Reserve)
	s.Equal(xcm.V3, messages.Reserve.Version)
	s.True(messages.Asset.Asset.ID.Equal(xcm.Multilocation{Parents: 1, Interior: xcm.Junctions{}}))

	forward := messages.Reserve.Instructions[1].(xcm.DepositReserveAsset)
	s.True(forward.Dest.Equal(xcm.Multilocation{Interior: xcm.Junctions{xcm.Parachain(2004)}}))
}

func (s *DispatcherTestSuite) Test_CreateWeightMessages_PayFeesRequiresV5() {
	req := weight.Request{
		Origin:      xcm.Endpoint{Chain: s.relay},
		Destination: xcm.Endpoint{Chain: s.assetHub, Account: make([]byte, 32)},
		Reserve:     s.relay,
		Amount:      big.NewInt(10),
		ReservePath: xcm.ReservePath{Type: xcm.RelativeLocationType},
		Fee: weight.FeeParams{
			DestinationInstructions: []xcm.InstructionKind{xcm.WithdrawAssetKind, xcm.PayFeesKind},
		},
	}

	_, err := s.dispatcher.CreateWeightMessages(req)
	var unsupported *xcm.UnsupportedInstructionError
	s.True(errors.As(err, &unsupported))

	req.Destination.Chain.Version = xcm.V5
	messages, err := s.dispatcher.CreateWeightMessages(req)
	s.Nil(err)
	s.Equal(xcm.V5, messages.Destination.Version)
	s.Nil(messages.Reserve)
}
