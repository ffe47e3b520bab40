// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type JunctionKind uint8

const (
	ParachainJunction JunctionKind = iota
	AccountID32Junction
	AccountIndex64Junction
	AccountKey20Junction
	PalletInstanceJunction
	GeneralIndexJunction
	GeneralKeyJunction
	OnlyChildJunction
	GlobalConsensusJunction
)

var junctionKindNames = map[JunctionKind]string{
	ParachainJunction:       "Parachain",
	AccountID32Junction:     "AccountId32",
	AccountIndex64Junction:  "AccountIndex64",
	AccountKey20Junction:    "AccountKey20",
	PalletInstanceJunction:  "PalletInstance",
	GeneralIndexJunction:    "GeneralIndex",
	GeneralKeyJunction:      "GeneralKey",
	OnlyChildJunction:       "OnlyChild",
	GlobalConsensusJunction: "GlobalConsensus",
}

func (k JunctionKind) String() string {
	if name, ok := junctionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("JunctionKind(%d)", uint8(k))
}

// Junction is a single hop of a location path. Only the fields matching Kind are meaningful.
type Junction struct {
	Kind JunctionKind

	ParachainID  uint32
	PalletIndex  uint8
	GeneralIndex *big.Int

	GeneralKeyLength uint8
	GeneralKey       [32]byte

	Network      *NetworkID
	AccountID    [32]byte
	AccountKey   [20]byte
	AccountIndex uint64

	GlobalConsensus NetworkID
}

func Parachain(id uint32) Junction {
	return Junction{Kind: ParachainJunction, ParachainID: id}
}

func PalletInstance(index uint8) Junction {
	return Junction{Kind: PalletInstanceJunction, PalletIndex: index}
}

func GeneralIndex(index *big.Int) Junction {
	return Junction{Kind: GeneralIndexJunction, GeneralIndex: new(big.Int).Set(index)}
}

// GeneralKey right pads key to 32 bytes and records its real length.
// Keys longer than 32 bytes are rejected.
func GeneralKey(key []byte) (Junction, error) {
	if len(key) > 32 {
		return Junction{}, fmt.Errorf("general key has %d bytes, at most 32 allowed", len(key))
	}

	j := Junction{Kind: GeneralKeyJunction, GeneralKeyLength: uint8(len(key))}
	copy(j.GeneralKey[:], key)
	return j, nil
}

func AccountID32(network *NetworkID, id [32]byte) Junction {
	return Junction{Kind: AccountID32Junction, Network: network, AccountID: id}
}

func AccountKey20(network *NetworkID, key [20]byte) Junction {
	return Junction{Kind: AccountKey20Junction, Network: network, AccountKey: key}
}

func AccountIndex64(network *NetworkID, index uint64) Junction {
	return Junction{Kind: AccountIndex64Junction, Network: network, AccountIndex: index}
}

func OnlyChild() Junction {
	return Junction{Kind: OnlyChildJunction}
}

func GlobalConsensus(network NetworkID) Junction {
	return Junction{Kind: GlobalConsensusJunction, GlobalConsensus: network}
}

// Equal reports structural equality, ignoring fields that do not belong to the junction kind.
func (j Junction) Equal(other Junction) bool {
	if j.Kind != other.Kind {
		return false
	}

	switch j.Kind {
	case ParachainJunction:
		return j.ParachainID == other.ParachainID
	case PalletInstanceJunction:
		return j.PalletIndex == other.PalletIndex
	case GeneralIndexJunction:
		return bigEqual(j.GeneralIndex, other.GeneralIndex)
	case GeneralKeyJunction:
		return j.GeneralKeyLength == other.GeneralKeyLength && j.GeneralKey == other.GeneralKey
	case AccountID32Junction:
		return networkEqual(j.Network, other.Network) && j.AccountID == other.AccountID
	case AccountKey20Junction:
		return networkEqual(j.Network, other.Network) && j.AccountKey == other.AccountKey
	case AccountIndex64Junction:
		return networkEqual(j.Network, other.Network) && j.AccountIndex == other.AccountIndex
	case OnlyChildJunction:
		return true
	case GlobalConsensusJunction:
		return j.GlobalConsensus.Equal(other.GlobalConsensus)
	}
	return false
}

func (j Junction) String() string {
	switch j.Kind {
	case ParachainJunction:
		return fmt.Sprintf("Parachain(%d)", j.ParachainID)
	case PalletInstanceJunction:
		return fmt.Sprintf("PalletInstance(%d)", j.PalletIndex)
	case GeneralIndexJunction:
		return fmt.Sprintf("GeneralIndex(%s)", j.GeneralIndex)
	case GeneralKeyJunction:
		return fmt.Sprintf("GeneralKey(%s)", hexutil.Encode(j.GeneralKey[:j.GeneralKeyLength]))
	case AccountID32Junction:
		return fmt.Sprintf("AccountId32(%s)", hexutil.Encode(j.AccountID[:]))
	case AccountKey20Junction:
		return fmt.Sprintf("AccountKey20(%s)", hexutil.Encode(j.AccountKey[:]))
	case AccountIndex64Junction:
		return fmt.Sprintf("AccountIndex64(%d)", j.AccountIndex)
	case GlobalConsensusJunction:
		return fmt.Sprintf("GlobalConsensus(%s)", j.GlobalConsensus.Kind)
	}
	return j.Kind.String()
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

func networkEqual(a, b *NetworkID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

type NetworkKind uint8

const (
	ByGenesisNetwork NetworkKind = iota
	ByForkNetwork
	PolkadotNetwork
	KusamaNetwork
	WestendNetwork
	RococoNetwork
	WococoNetwork
	EthereumNetwork
	BitcoinCoreNetwork
	BitcoinCashNetwork
	PolkadotBulletinNetwork
)

var networkKindNames = map[NetworkKind]string{
	ByGenesisNetwork:        "ByGenesis",
	ByForkNetwork:           "ByFork",
	PolkadotNetwork:         "Polkadot",
	KusamaNetwork:           "Kusama",
	WestendNetwork:          "Westend",
	RococoNetwork:           "Rococo",
	WococoNetwork:           "Wococo",
	EthereumNetwork:         "Ethereum",
	BitcoinCoreNetwork:      "BitcoinCore",
	BitcoinCashNetwork:      "BitcoinCash",
	PolkadotBulletinNetwork: "PolkadotBulletin",
}

func (k NetworkKind) String() string {
	if name, ok := networkKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NetworkKind(%d)", uint8(k))
}

// NetworkID names a global consensus system. Which kinds can be encoded depends on the xcm version.
type NetworkID struct {
	Kind NetworkKind

	Genesis   [32]byte
	ForkBlock uint64
	ForkHash  [32]byte
	ChainID   uint64
}

func (n NetworkID) Equal(other NetworkID) bool {
	if n.Kind != other.Kind {
		return false
	}

	switch n.Kind {
	case ByGenesisNetwork:
		return n.Genesis == other.Genesis
	case ByForkNetwork:
		return n.ForkBlock == other.ForkBlock && bytes.Equal(n.ForkHash[:], other.ForkHash[:])
	case EthereumNetwork:
		return n.ChainID == other.ChainID
	}
	return true
}
