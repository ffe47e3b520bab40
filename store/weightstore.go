// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/xcm-locator/xcm"
)

var KEY = "chain:%s:message:%s"

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

// WeightStore memoizes weight quotes per chain and encoded program.
type WeightStore struct {
	db KeyValueReaderWriter
}

func NewWeightStore(db KeyValueReaderWriter) *WeightStore {
	return &WeightStore{
		db: db,
	}
}

func weightKey(chainID string, message []byte) []byte {
	key := bytes.Buffer{}
	key.WriteString(fmt.Sprintf(KEY, chainID, hexutil.Encode(crypto.Keccak256(message))))
	return key.Bytes()
}

// StoreWeight stores the weight quoted by chainID for the encoded message
func (ws *WeightStore) StoreWeight(chainID string, message []byte, weight xcm.Weight) error {
	value, err := xcm.Encode(func(encoder scale.Encoder) error {
		return xcm.EncodeWeight(encoder, weight)
	})
	if err != nil {
		return err
	}

	return ws.db.SetByKey(weightKey(chainID, message), value)
}

// Weight returns the stored quote. The second return value is false when nothing is stored.
func (ws *WeightStore) Weight(chainID string, message []byte) (xcm.Weight, bool, error) {
	v, err := ws.db.GetByKey(weightKey(chainID, message))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return xcm.Weight{}, false, nil
		}
		return xcm.Weight{}, false, err
	}

	weight, err := xcm.DecodeWeight(*scale.NewDecoder(bytes.NewReader(v)))
	if err != nil {
		return xcm.Weight{}, false, err
	}
	return weight, true, nil
}
