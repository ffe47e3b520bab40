// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm_test

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/xcm-locator/xcm"
)

func parachain(id uint32) xcm.Chain {
	return xcm.Chain{ID: fmt.Sprintf("para-%d", id), ParachainID: &id, Version: xcm.V4}
}

func uint8Ptr(v uint8) *uint8    { return &v }
func uint32Ptr(v uint32) *uint32 { return &v }

type MultiassetTestSuite struct {
	suite.Suite
	relay xcm.Chain
}

func TestRunMultiassetTestSuite(t *testing.T) {
	suite.Run(t, new(MultiassetTestSuite))
}

func (s *MultiassetTestSuite) SetupSuite() {
	s.relay = xcm.Chain{ID: "relay", IsRelay: true, Version: xcm.V4}
}

func (s *MultiassetTestSuite) Test_Relative_ForeignReserve() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType, GeneralIndex: "42"}

	location, err := xcm.CreateAssetMultilocation(path, parachain(2000), parachain(1000))

	s.Nil(err)
	s.True(location.Equal(xcm.Multilocation{
		Parents:  1,
		Interior: xcm.Junctions{xcm.Parachain(1000), xcm.GeneralIndex(big.NewInt(42))},
	}), location.String())
}

func (s *MultiassetTestSuite) Test_Relative_OriginIsReserve() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType, PalletInstance: uint8Ptr(50), GeneralIndex: "1984"}

	location, err := xcm.CreateAssetMultilocation(path, parachain(1000), parachain(1000))

	s.Nil(err)
	s.Equal(uint8(0), location.Parents)
	s.True(location.Interior.Equal(xcm.Junctions{xcm.PalletInstance(50), xcm.GeneralIndex(big.NewInt(1984))}))
	for _, junction := range location.Interior {
		s.NotEqual(xcm.ParachainJunction, junction.Kind)
	}
}

func (s *MultiassetTestSuite) Test_Relative_NativeAsset() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType, PalletInstance: uint8Ptr(10)}

	location, err := xcm.CreateAssetMultilocation(path, parachain(1000), parachain(2004))

	s.Nil(err)
	s.True(location.Equal(xcm.Multilocation{
		Parents:  1,
		Interior: xcm.Junctions{xcm.Parachain(2004), xcm.PalletInstance(10)},
	}))
}

func (s *MultiassetTestSuite) Test_Absolute_ParentsDependOnlyOnOrigin() {
	path := xcm.ReservePath{
		Type:           xcm.AbsoluteLocationType,
		ParachainID:    uint32Ptr(1000),
		PalletInstance: uint8Ptr(50),
		GeneralIndex:   "1984",
	}
	expectedInterior := xcm.Junctions{xcm.Parachain(1000), xcm.PalletInstance(50), xcm.GeneralIndex(big.NewInt(1984))}

	fromRelay, err := xcm.CreateAssetMultilocation(path, s.relay, parachain(1000))
	s.Nil(err)
	s.Equal(uint8(0), fromRelay.Parents)
	s.True(fromRelay.Interior.Equal(expectedInterior))

	for _, reserve := range []xcm.Chain{s.relay, parachain(1000), parachain(2000)} {
		fromParachain, err := xcm.CreateAssetMultilocation(path, parachain(2000), reserve)
		s.Nil(err)
		s.Equal(uint8(1), fromParachain.Parents)
		s.True(fromParachain.Interior.Equal(expectedInterior))
	}
}

func (s *MultiassetTestSuite) Test_Absolute_RelayNative() {
	path := xcm.ReservePath{Type: xcm.AbsoluteLocationType}

	location, err := xcm.CreateAssetMultilocation(path, parachain(2000), s.relay)

	s.Nil(err)
	s.True(location.Equal(xcm.Multilocation{Parents: 1, Interior: xcm.Junctions{}}))
}

func (s *MultiassetTestSuite) Test_Concrete() {
	path := xcm.ReservePath{
		Type:        xcm.ConcreteLocationType,
		Parents:     uint8Ptr(2),
		ParachainID: uint32Ptr(1000),
		GeneralKey:  "0x0102",
	}

	location, err := xcm.CreateAssetMultilocation(path, parachain(2000), parachain(1000))

	s.Nil(err)
	key, _ := xcm.GeneralKey([]byte{1, 2})
	s.True(location.Equal(xcm.Multilocation{
		Parents:  2,
		Interior: xcm.Junctions{xcm.Parachain(1000), key},
	}))
}

func (s *MultiassetTestSuite) Test_Concrete_WithoutParents() {
	path := xcm.ReservePath{Type: xcm.ConcreteLocationType}

	_, err := xcm.CreateAssetMultilocation(path, parachain(2000), parachain(1000))

	s.True(errors.Is(err, xcm.ErrDataCorruption))
	s.True(errors.Is(path.Validate(), xcm.ErrDataCorruption))
}

func (s *MultiassetTestSuite) Test_GeneralKey_WithoutPrefix() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType, GeneralKey: "0a0b"}

	location, err := xcm.CreateAssetMultilocation(path, parachain(1000), parachain(1000))

	s.Nil(err)
	s.Equal(uint8(2), location.Interior[0].GeneralKeyLength)
	s.Equal(byte(0x0a), location.Interior[0].GeneralKey[0])
	s.Equal(byte(0x0b), location.Interior[0].GeneralKey[1])
}

func (s *MultiassetTestSuite) Test_CorruptDescriptors() {
	paths := []xcm.ReservePath{
		{Type: xcm.RelativeLocationType, GeneralIndex: "forty two"},
		{Type: xcm.RelativeLocationType, GeneralIndex: "-1"},
		{Type: xcm.RelativeLocationType, GeneralIndex: "340282366920938463463374607431768211456"},
		{Type: xcm.RelativeLocationType, GeneralKey: "0xzz"},
		{Type: xcm.RelativeLocationType, GeneralKey: "0x" + "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff00"},
		{Type: xcm.RelativeLocationType, GeneralKey: "0x01", GeneralIndex: "1"},
		{Type: "sideways"},
	}

	for _, path := range paths {
		_, err := xcm.CreateAssetMultilocation(path, parachain(2000), parachain(1000))
		s.True(errors.Is(err, xcm.ErrDataCorruption), "%+v", path)
		s.True(errors.Is(path.Validate(), xcm.ErrDataCorruption), "%+v", path)
	}
}

func (s *MultiassetTestSuite) Test_MaxGeneralIndex() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType, GeneralIndex: "340282366920938463463374607431768211455"}

	s.Nil(path.Validate())
}

func (s *MultiassetTestSuite) Test_CreateMultiAsset() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType, GeneralIndex: "42"}

	asset, err := xcm.CreateMultiAsset(parachain(2000), parachain(1000), path, big.NewInt(1_000_000))

	s.Nil(err)
	s.True(asset.Equal(xcm.Multiasset{
		ID: xcm.Multilocation{
			Parents:  1,
			Interior: xcm.Junctions{xcm.Parachain(1000), xcm.GeneralIndex(big.NewInt(42))},
		},
		Amount: big.NewInt(1_000_000),
	}))
}

func (s *MultiassetTestSuite) Test_CreateMultiAsset_CopiesAmount() {
	amount := big.NewInt(5)
	path := xcm.ReservePath{Type: xcm.RelativeLocationType}

	asset, err := xcm.CreateMultiAsset(parachain(1000), parachain(1000), path, amount)
	amount.SetInt64(6)

	s.Nil(err)
	s.Equal("5", asset.Amount.String())
}

func (s *MultiassetTestSuite) Test_CreateMultiAsset_NegativeAmount() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType}

	_, err := xcm.CreateMultiAsset(parachain(1000), parachain(1000), path, big.NewInt(-1))

	s.True(errors.Is(err, xcm.ErrDataCorruption))
}

func (s *MultiassetTestSuite) Test_CreateMultiAsset_AmountWiderThanU128() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType}

	_, err := xcm.CreateMultiAsset(parachain(1000), parachain(1000), path, new(big.Int).Lsh(big.NewInt(1), 128))
	s.True(errors.Is(err, xcm.ErrDataCorruption))

	_, err = xcm.CreateMultiAsset(parachain(1000), parachain(1000), path, new(big.Int).Lsh(big.NewInt(1), 130))
	s.True(errors.Is(err, xcm.ErrDataCorruption))
}

func (s *MultiassetTestSuite) Test_CreateMultiAsset_MaxU128Amount() {
	path := xcm.ReservePath{Type: xcm.RelativeLocationType}
	maxAmount := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	asset, err := xcm.CreateMultiAsset(parachain(1000), parachain(1000), path, maxAmount)

	s.Nil(err)
	s.Equal(maxAmount.String(), asset.Amount.String())
}

func (s *MultiassetTestSuite) Test_AccountBytes() {
	b, err := xcm.AccountBytes("0x0102")
	s.Nil(err)
	s.Equal([]byte{1, 2}, b)

	_, err = xcm.AccountBytes("0102")
	s.True(errors.Is(err, xcm.ErrInvalidAccount))
}

func (s *MultiassetTestSuite) Test_ParseLocationType() {
	t, err := xcm.ParseLocationType("Concrete")
	s.Nil(err)
	s.Equal(xcm.ConcreteLocationType, t)

	_, err = xcm.ParseLocationType("")
	s.True(errors.Is(err, xcm.ErrDataCorruption))
}
