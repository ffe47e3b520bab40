// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package client_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/xcm-locator/chains/substrate/client"
	"github.com/ChainSafe/xcm-locator/xcm"
	"github.com/ChainSafe/xcm-locator/xcm/versioned"
)

type fakeCaller struct {
	response string
	err      error
	method   string
	args     []interface{}
}

func (c *fakeCaller) Call(result interface{}, method string, args ...interface{}) error {
	c.method = method
	c.args = args
	if c.err != nil {
		return c.err
	}
	*result.(*string) = c.response
	return nil
}

type WeightClientTestSuite struct {
	suite.Suite
	caller *fakeCaller
	client *client.WeightClient
}

func TestRunWeightClientTestSuite(t *testing.T) {
	suite.Run(t, new(WeightClientTestSuite))
}

func (s *WeightClientTestSuite) SetupTest() {
	s.caller = &fakeCaller{}
	s.client = client.NewWeightClientWithCaller("assethub", s.caller)
}

func (s *WeightClientTestSuite) message() versioned.Xcm {
	return versioned.Xcm{Version: xcm.V4, Instructions: []xcm.Instruction{xcm.ClearOrigin{}}}
}

func (s *WeightClientTestSuite) Test_ChainID() {
	s.Equal("assethub", s.client.ChainID())
}

func (s *WeightClientTestSuite) Test_QueryXcmWeight_Ok() {
	s.caller.response = "0x00a10f08"

	weight, err := s.client.QueryXcmWeight(s.message())

	s.Nil(err)
	s.Equal(xcm.Weight{RefTime: 1000, ProofSize: 2}, weight)
	s.Equal("state_call", s.caller.method)
	s.Equal([]interface{}{"XcmPaymentApi_query_xcm_weight", "0x04040a"}, s.caller.args)
}

func (s *WeightClientTestSuite) Test_QueryXcmWeight_RuntimeError() {
	s.caller.response = "0x0102"

	_, err := s.client.QueryXcmWeight(s.message())

	s.True(errors.Is(err, client.ErrRuntimeAPI))
	s.Contains(err.Error(), "WeightNotComputable")
}

func (s *WeightClientTestSuite) Test_QueryXcmWeight_UnknownRuntimeError() {
	s.caller.response = "0x0163"

	_, err := s.client.QueryXcmWeight(s.message())

	s.True(errors.Is(err, client.ErrRuntimeAPI))
	s.Contains(err.Error(), "unknown XcmPaymentApi error")
}

func (s *WeightClientTestSuite) Test_QueryXcmWeight_InvalidResultVariant() {
	s.caller.response = "0x02"

	_, err := s.client.QueryXcmWeight(s.message())

	s.NotNil(err)
	s.False(errors.Is(err, client.ErrRuntimeAPI))
}

func (s *WeightClientTestSuite) Test_QueryXcmWeight_MalformedResponse() {
	s.caller.response = "not hex"

	_, err := s.client.QueryXcmWeight(s.message())

	s.NotNil(err)
	s.False(errors.Is(err, client.ErrRuntimeAPI))
}

func (s *WeightClientTestSuite) Test_QueryXcmWeight_CallFails() {
	s.caller.err = errors.New("connection refused")

	_, err := s.client.QueryXcmWeight(s.message())

	s.NotNil(err)
	s.Contains(err.Error(), "connection refused")
}

func (s *WeightClientTestSuite) Test_QueryXcmWeight_UnsupportedVersion() {
	_, err := s.client.QueryXcmWeight(versioned.Xcm{Version: xcm.Version(2)})

	s.True(errors.Is(err, xcm.ErrUnsupportedVersion))
	s.Empty(s.caller.method)
}

func (s *WeightClientTestSuite) Test_QueryWeightToAssetFee_Ok() {
	s.caller.response = "0x00f4010000000000000000000000000000"

	fee, err := s.client.QueryWeightToAssetFee(
		xcm.Weight{RefTime: 1000, ProofSize: 2},
		versioned.AssetID{Version: xcm.V4, ID: xcm.Here()},
	)

	s.Nil(err)
	s.Equal("500", fee.String())
	s.Equal([]interface{}{"XcmPaymentApi_query_weight_to_asset_fee", "0xa10f08040000"}, s.caller.args)
}

func (s *WeightClientTestSuite) Test_QueryWeightToAssetFee_AssetNotFound() {
	s.caller.response = "0x0104"

	fee, err := s.client.QueryWeightToAssetFee(xcm.Weight{}, versioned.AssetID{Version: xcm.V4, ID: xcm.Here()})

	s.True(errors.Is(err, client.ErrRuntimeAPI))
	s.Contains(err.Error(), "AssetNotFound")
	s.Nil(fee)
}

func (s *WeightClientTestSuite) Test_QueryWeightToAssetFee_TruncatedFee() {
	s.caller.response = "0x00f401"

	_, err := s.client.QueryWeightToAssetFee(xcm.Weight{}, versioned.AssetID{Version: xcm.V4, ID: xcm.Here()})

	s.NotNil(err)
}
