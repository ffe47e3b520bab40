// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/client"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/xcm-locator/xcm"
	"github.com/ChainSafe/xcm-locator/xcm/versioned"
)

const (
	queryXcmWeightMethod         = "XcmPaymentApi_query_xcm_weight"
	queryWeightToAssetFeeMethod  = "XcmPaymentApi_query_weight_to_asset_fee"
	stateCallMethod              = "state_call"
	xcmPaymentApiErrorUnknownMsg = "unknown XcmPaymentApi error"
)

var xcmPaymentApiErrors = map[byte]string{
	0: "Unimplemented",
	1: "VersionedConversionFailed",
	2: "WeightNotComputable",
	3: "UnhandledXcmVersion",
	4: "AssetNotFound",
	5: "Unroutable",
}

// ErrRuntimeAPI is returned when the runtime answers a payment API call with an error variant.
var ErrRuntimeAPI = errors.New("xcm payment api error")

type Caller interface {
	Call(result interface{}, method string, args ...interface{}) error
}

// WeightClient quotes xcm programs through the runtime XcmPaymentApi. It only reads state.
type WeightClient struct {
	conn    Caller
	chainID string
}

func NewWeightClient(chainID string, url string) (*WeightClient, error) {
	c, err := client.Connect(url)
	if err != nil {
		return nil, err
	}
	return NewWeightClientWithCaller(chainID, c), nil
}

func NewWeightClientWithCaller(chainID string, conn Caller) *WeightClient {
	return &WeightClient{
		conn:    conn,
		chainID: chainID,
	}
}

func (c *WeightClient) ChainID() string {
	return c.chainID
}

// QueryXcmWeight returns the weight the chain would charge to execute message.
func (c *WeightClient) QueryXcmWeight(message versioned.Xcm) (xcm.Weight, error) {
	res, err := c.stateCall(queryXcmWeightMethod, message.Encode)
	if err != nil {
		return xcm.Weight{}, err
	}

	decoder := scale.NewDecoder(bytes.NewReader(res))
	if err := decodeResultTag(*decoder); err != nil {
		return xcm.Weight{}, err
	}

	weight, err := xcm.DecodeWeight(*decoder)
	if err != nil {
		return xcm.Weight{}, errors.Wrap(err, "failed decoding weight")
	}

	log.Debug().Str("chain", c.chainID).Uint64("refTime", weight.RefTime).Uint64("proofSize", weight.ProofSize).Msg("Queried xcm weight")
	return weight, nil
}

// QueryWeightToAssetFee converts weight into an amount of asset.
func (c *WeightClient) QueryWeightToAssetFee(weight xcm.Weight, asset versioned.AssetID) (*big.Int, error) {
	res, err := c.stateCall(queryWeightToAssetFeeMethod, func(encoder scale.Encoder) error {
		if err := xcm.EncodeWeight(encoder, weight); err != nil {
			return err
		}
		return asset.Encode(encoder)
	})
	if err != nil {
		return nil, err
	}

	decoder := scale.NewDecoder(bytes.NewReader(res))
	if err := decodeResultTag(*decoder); err != nil {
		return nil, err
	}

	var fee types.U128
	if err := decoder.Decode(&fee); err != nil {
		return nil, errors.Wrap(err, "failed decoding fee")
	}
	return fee.Int, nil
}

func (c *WeightClient) stateCall(method string, encodeFn func(encoder scale.Encoder) error) ([]byte, error) {
	params, err := xcm.Encode(encodeFn)
	if err != nil {
		return nil, err
	}

	var res string
	err = c.conn.Call(&res, stateCallMethod, method, hexutil.Encode(params))
	if err != nil {
		return nil, errors.Wrapf(err, "%s on %s failed", method, c.chainID)
	}

	b, err := hexutil.Decode(res)
	if err != nil {
		return nil, errors.Wrapf(err, "%s on %s returned malformed data", method, c.chainID)
	}
	return b, nil
}

func decodeResultTag(decoder scale.Decoder) error {
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch tag {
	case 0:
		return nil
	case 1:
		code, err := decoder.ReadOneByte()
		if err != nil {
			return err
		}

		msg, ok := xcmPaymentApiErrors[code]
		if !ok {
			msg = xcmPaymentApiErrorUnknownMsg
		}
		return errors.Wrap(ErrRuntimeAPI, msg)
	}

	return fmt.Errorf("invalid result variant %d", tag)
}
