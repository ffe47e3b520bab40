// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

type LocationType string

const (
	// AbsoluteLocationType paths are written from the relay chain.
	AbsoluteLocationType LocationType = "absolute"
	// RelativeLocationType paths are written from the reserve chain.
	RelativeLocationType LocationType = "relative"
	// ConcreteLocationType paths are taken literally, parents included.
	ConcreteLocationType LocationType = "concrete"
)

func ParseLocationType(s string) (LocationType, error) {
	switch t := LocationType(strings.ToLower(s)); t {
	case AbsoluteLocationType, RelativeLocationType, ConcreteLocationType:
		return t, nil
	}
	return "", dataCorruption("unknown location type %q", s)
}

// ReservePath describes where an asset lives on its reserve chain.
type ReservePath struct {
	Type           LocationType
	Parents        *uint8
	ParachainID    *uint32
	PalletInstance *uint8
	GeneralKey     string
	GeneralIndex   string
}

// Validate checks that the descriptor can be turned into junctions.
func (p ReservePath) Validate() error {
	if _, err := ParseLocationType(string(p.Type)); err != nil {
		return err
	}
	if p.Type == ConcreteLocationType && p.Parents == nil {
		return dataCorruption("concrete reserve path without parents")
	}

	_, err := p.assetJunctions()
	return err
}

// assetJunctions returns the pallet and key/index junctions that follow the optional parachain hop.
func (p ReservePath) assetJunctions() (Junctions, error) {
	junctions := Junctions{}
	if p.PalletInstance != nil {
		junctions = junctions.Append(PalletInstance(*p.PalletInstance))
	}

	if p.GeneralKey != "" && p.GeneralIndex != "" {
		return nil, dataCorruption("reserve path sets both generalKey and generalIndex")
	}

	if p.GeneralKey != "" {
		key, err := decodeGeneralKey(p.GeneralKey)
		if err != nil {
			return nil, err
		}

		junction, err := GeneralKey(key)
		if err != nil {
			return nil, errors.Wrap(ErrDataCorruption, err.Error())
		}
		junctions = junctions.Append(junction)
	}

	if p.GeneralIndex != "" {
		index, ok := new(big.Int).SetString(p.GeneralIndex, 10)
		if !ok || index.Sign() < 0 || index.BitLen() > 128 {
			return nil, dataCorruption("generalIndex %q is not an unsigned 128 bit integer", p.GeneralIndex)
		}
		junctions = junctions.Append(GeneralIndex(index))
	}

	return junctions, nil
}

func decodeGeneralKey(key string) ([]byte, error) {
	if !strings.HasPrefix(key, "0x") && !strings.HasPrefix(key, "0X") {
		key = "0x" + key
	}

	b, err := hexutil.Decode(key)
	if err != nil {
		return nil, dataCorruption("generalKey %q: %s", key, err)
	}
	return b, nil
}

// CreateAssetMultilocation locates the asset described by path as seen from origin.
func CreateAssetMultilocation(path ReservePath, origin, reserve Chain) (Multilocation, error) {
	var parents uint8
	includeParachain := false

	switch path.Type {
	case AbsoluteLocationType:
		if !origin.IsRelay {
			parents = 1
		}
		includeParachain = true
	case RelativeLocationType:
		if !origin.Same(reserve) && !origin.IsRelay {
			parents = 1
		}
	case ConcreteLocationType:
		if path.Parents == nil {
			return Multilocation{}, dataCorruption("concrete reserve path without parents")
		}
		parents = *path.Parents
		includeParachain = true
	default:
		return Multilocation{}, dataCorruption("unknown location type %q", path.Type)
	}

	interior := Junctions{}
	if includeParachain && path.ParachainID != nil {
		interior = interior.Append(Parachain(*path.ParachainID))
	}
	// Relative paths are rooted at the reserve chain, so the hop into it is only
	// needed when we are somewhere else.
	if path.Type == RelativeLocationType && !origin.Same(reserve) && !reserve.IsRelay && reserve.ParachainID != nil {
		interior = interior.Append(Parachain(*reserve.ParachainID))
	}

	assetJunctions, err := path.assetJunctions()
	if err != nil {
		return Multilocation{}, err
	}

	return Multilocation{Parents: parents, Interior: interior.Append(assetJunctions...)}, nil
}

// Multiasset is a fungible asset id together with an amount.
type Multiasset struct {
	ID     Multilocation
	Amount *big.Int
}

func (a Multiasset) Equal(other Multiasset) bool {
	return a.ID.Equal(other.ID) && bigEqual(a.Amount, other.Amount)
}

func (a Multiasset) String() string {
	return fmt.Sprintf("{id: %s, amount: %s}", a.ID, a.Amount)
}

// CreateMultiAsset binds amount to the asset described by path, as seen from origin.
func CreateMultiAsset(origin, reserve Chain, path ReservePath, amount *big.Int) (Multiasset, error) {
	if amount == nil || amount.Sign() < 0 || amount.BitLen() > 128 {
		return Multiasset{}, dataCorruption("amount %s is not an unsigned 128 bit integer", amount)
	}

	location, err := CreateAssetMultilocation(path, origin, reserve)
	if err != nil {
		return Multiasset{}, err
	}

	return Multiasset{ID: location, Amount: new(big.Int).Set(amount)}, nil
}

// AccountBytes parses a hex account id (0x prefixed) into raw bytes.
func AccountBytes(account string) ([]byte, error) {
	b, err := hexutil.Decode(account)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAccount, "%q: %s", account, err)
	}
	return b, nil
}

type WildAsset uint8

const (
	WildAll WildAsset = iota
	WildAllCounted
)

// AssetFilter selects assets from holding. A nil Definite list means a wildcard.
type AssetFilter struct {
	Definite []Multiasset
	Wild     WildAsset
	Count    uint32
}

func AllAssets() AssetFilter {
	return AssetFilter{Wild: WildAll}
}

func (f AssetFilter) IsWild() bool {
	return f.Definite == nil
}

type WeightLimit struct {
	Unlimited bool
	RefTime   uint64
	ProofSize uint64
}

func Unlimited() WeightLimit {
	return WeightLimit{Unlimited: true}
}
