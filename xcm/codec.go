// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/pkg/errors"
)

// Codec is the SCALE wire format of one xcm version. Versions differ only in which
// instructions and networks exist, their variant indices, and whether asset ids
// carry the Concrete wrapper.
type Codec struct {
	Version         Version
	Instructions    map[InstructionKind]byte
	Networks        map[NetworkKind]byte
	ConcreteAssetID bool
}

// Encode runs encodeFn against a fresh encoder and returns the produced bytes.
func Encode(encodeFn func(encoder scale.Encoder) error) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	encoder := scale.NewEncoder(buf)
	if err := encodeFn(*encoder); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c Codec) EncodeLocation(encoder scale.Encoder, location Multilocation) error {
	if err := encoder.PushByte(location.Parents); err != nil {
		return err
	}
	return c.encodeJunctions(encoder, location.Interior)
}

func (c Codec) encodeJunctions(encoder scale.Encoder, junctions Junctions) error {
	if len(junctions) > MaxJunctions {
		return errors.Wrapf(ErrTooManyJunctions, "%d junctions", len(junctions))
	}

	// Here is variant 0, X1..X8 are variants 1..8
	if err := encoder.PushByte(byte(len(junctions))); err != nil {
		return err
	}

	for _, junction := range junctions {
		if err := c.encodeJunction(encoder, junction); err != nil {
			return err
		}
	}
	return nil
}

func (c Codec) encodeJunction(encoder scale.Encoder, j Junction) error { //nolint:funlen
	switch j.Kind {
	case ParachainJunction:
		if err := encoder.PushByte(0); err != nil {
			return err
		}

		return encodeCompact(encoder, new(big.Int).SetUint64(uint64(j.ParachainID)))
	case AccountID32Junction:
		if err := encoder.PushByte(1); err != nil {
			return err
		}

		if err := c.encodeOptionalNetwork(encoder, j.Network); err != nil {
			return err
		}

		return encoder.Write(j.AccountID[:])
	case AccountIndex64Junction:
		if err := encoder.PushByte(2); err != nil {
			return err
		}

		if err := c.encodeOptionalNetwork(encoder, j.Network); err != nil {
			return err
		}

		return encodeCompact(encoder, new(big.Int).SetUint64(j.AccountIndex))
	case AccountKey20Junction:
		if err := encoder.PushByte(3); err != nil {
			return err
		}

		if err := c.encodeOptionalNetwork(encoder, j.Network); err != nil {
			return err
		}

		return encoder.Write(j.AccountKey[:])
	case PalletInstanceJunction:
		if err := encoder.PushByte(4); err != nil {
			return err
		}

		return encoder.PushByte(j.PalletIndex)
	case GeneralIndexJunction:
		if err := encoder.PushByte(5); err != nil {
			return err
		}

		return encodeCompact(encoder, j.GeneralIndex)
	case GeneralKeyJunction:
		if err := encoder.PushByte(6); err != nil {
			return err
		}

		if err := encoder.PushByte(j.GeneralKeyLength); err != nil {
			return err
		}

		return encoder.Write(j.GeneralKey[:])
	case OnlyChildJunction:
		return encoder.PushByte(7)
	case GlobalConsensusJunction:
		if err := encoder.PushByte(9); err != nil {
			return err
		}

		return c.encodeNetwork(encoder, j.GlobalConsensus)
	}

	return fmt.Errorf("junction %s can not be encoded", j.Kind)
}

func (c Codec) encodeOptionalNetwork(encoder scale.Encoder, network *NetworkID) error {
	if network == nil {
		return encoder.PushByte(0)
	}

	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return c.encodeNetwork(encoder, *network)
}

func (c Codec) encodeNetwork(encoder scale.Encoder, n NetworkID) error {
	index, ok := c.Networks[n.Kind]
	if !ok {
		return errors.Wrapf(ErrUnsupportedNetwork, "%s in %s", n.Kind, c.Version)
	}

	if err := encoder.PushByte(index); err != nil {
		return err
	}

	switch n.Kind {
	case ByGenesisNetwork:
		return encoder.Write(n.Genesis[:])
	case ByForkNetwork:
		if err := encoder.Encode(n.ForkBlock); err != nil {
			return err
		}

		return encoder.Write(n.ForkHash[:])
	case EthereumNetwork:
		return encodeCompact(encoder, new(big.Int).SetUint64(n.ChainID))
	}

	return nil
}

func (c Codec) EncodeAssetID(encoder scale.Encoder, id Multilocation) error {
	if c.ConcreteAssetID {
		// AssetId::Concrete
		if err := encoder.PushByte(0); err != nil {
			return err
		}
	}
	return c.EncodeLocation(encoder, id)
}

func (c Codec) EncodeAsset(encoder scale.Encoder, asset Multiasset) error {
	if err := c.EncodeAssetID(encoder, asset.ID); err != nil {
		return err
	}

	if asset.Amount != nil && asset.Amount.BitLen() > 128 {
		return dataCorruption("amount %s does not fit in 128 bits", asset.Amount)
	}

	// Fungibility::Fungible
	if err := encoder.PushByte(0); err != nil {
		return err
	}

	return encodeCompact(encoder, asset.Amount)
}

func (c Codec) EncodeAssets(encoder scale.Encoder, assets []Multiasset) error {
	if err := encodeCompact(encoder, big.NewInt(int64(len(assets)))); err != nil {
		return err
	}

	for _, asset := range assets {
		if err := c.EncodeAsset(encoder, asset); err != nil {
			return err
		}
	}
	return nil
}

func (c Codec) encodeAssetFilter(encoder scale.Encoder, filter AssetFilter) error {
	if !filter.IsWild() {
		if err := encoder.PushByte(0); err != nil {
			return err
		}

		return c.EncodeAssets(encoder, filter.Definite)
	}

	if err := encoder.PushByte(1); err != nil {
		return err
	}

	switch filter.Wild {
	case WildAll:
		return encoder.PushByte(0)
	case WildAllCounted:
		if err := encoder.PushByte(2); err != nil {
			return err
		}

		return encodeCompact(encoder, new(big.Int).SetUint64(uint64(filter.Count)))
	}

	return fmt.Errorf("wildcard %d can not be encoded", filter.Wild)
}

func encodeWeightLimit(encoder scale.Encoder, limit WeightLimit) error {
	if limit.Unlimited {
		return encoder.PushByte(0)
	}

	if err := encoder.PushByte(1); err != nil {
		return err
	}

	return EncodeWeight(encoder, Weight{RefTime: limit.RefTime, ProofSize: limit.ProofSize})
}

func (c Codec) EncodeInstruction(encoder scale.Encoder, instruction Instruction) error { //nolint:funlen
	index, ok := c.Instructions[instruction.Kind()]
	if !ok {
		return &UnsupportedInstructionError{Name: instruction.Kind().String()}
	}

	if err := encoder.PushByte(index); err != nil {
		return err
	}

	switch i := instruction.(type) {
	case WithdrawAsset:
		return c.EncodeAssets(encoder, i.Assets)
	case ReserveAssetDeposited:
		return c.EncodeAssets(encoder, i.Assets)
	case ReceiveTeleportedAsset:
		return c.EncodeAssets(encoder, i.Assets)
	case ClearOrigin, RefundSurplus, ClearError:
		return nil
	case BuyExecution:
		if err := c.EncodeAsset(encoder, i.Fees); err != nil {
			return err
		}

		return encodeWeightLimit(encoder, i.WeightLimit)
	case DepositAsset:
		if err := c.encodeAssetFilter(encoder, i.Assets); err != nil {
			return err
		}

		return c.EncodeLocation(encoder, i.Beneficiary)
	case DepositReserveAsset:
		if err := c.encodeAssetFilter(encoder, i.Assets); err != nil {
			return err
		}

		if err := c.EncodeLocation(encoder, i.Dest); err != nil {
			return err
		}

		return c.EncodeXcm(encoder, i.Xcm)
	case SetTopic:
		return encoder.Write(i.Topic[:])
	case PayFees:
		return c.EncodeAsset(encoder, i.Asset)
	}

	return &UnsupportedInstructionError{Name: instruction.Kind().String()}
}

func (c Codec) EncodeXcm(encoder scale.Encoder, instructions []Instruction) error {
	if err := encodeCompact(encoder, big.NewInt(int64(len(instructions)))); err != nil {
		return err
	}

	for _, instruction := range instructions {
		if err := c.EncodeInstruction(encoder, instruction); err != nil {
			return err
		}
	}
	return nil
}

func (c Codec) DecodeLocation(decoder scale.Decoder) (Multilocation, error) {
	parents, err := decoder.ReadOneByte()
	if err != nil {
		return Multilocation{}, err
	}

	count, err := decoder.ReadOneByte()
	if err != nil {
		return Multilocation{}, err
	}
	if count > MaxJunctions {
		return Multilocation{}, errors.Wrapf(ErrTooManyJunctions, "junctions variant %d", count)
	}

	interior := make(Junctions, 0, count)
	for i := 0; i < int(count); i++ {
		junction, err := c.decodeJunction(decoder)
		if err != nil {
			return Multilocation{}, err
		}
		interior = append(interior, junction)
	}

	return Multilocation{Parents: parents, Interior: interior}, nil
}

func (c Codec) decodeJunction(decoder scale.Decoder) (Junction, error) { //nolint:funlen
	b, err := decoder.ReadOneByte()
	if err != nil {
		return Junction{}, err
	}

	switch b {
	case 0:
		id, err := decodeBoundedCompact(decoder, 32, "parachain id")
		if err != nil {
			return Junction{}, err
		}

		return Parachain(uint32(id.Uint64())), nil
	case 1:
		network, err := c.decodeOptionalNetwork(decoder)
		if err != nil {
			return Junction{}, err
		}

		var id [32]byte
		if err := decoder.Read(id[:]); err != nil {
			return Junction{}, err
		}

		return AccountID32(network, id), nil
	case 2:
		network, err := c.decodeOptionalNetwork(decoder)
		if err != nil {
			return Junction{}, err
		}

		index, err := decodeBoundedCompact(decoder, 64, "account index")
		if err != nil {
			return Junction{}, err
		}

		return AccountIndex64(network, index.Uint64()), nil
	case 3:
		network, err := c.decodeOptionalNetwork(decoder)
		if err != nil {
			return Junction{}, err
		}

		var key [20]byte
		if err := decoder.Read(key[:]); err != nil {
			return Junction{}, err
		}

		return AccountKey20(network, key), nil
	case 4:
		index, err := decoder.ReadOneByte()
		if err != nil {
			return Junction{}, err
		}

		return PalletInstance(index), nil
	case 5:
		index, err := decodeBoundedCompact(decoder, 128, "general index")
		if err != nil {
			return Junction{}, err
		}

		return GeneralIndex(index), nil
	case 6:
		length, err := decoder.ReadOneByte()
		if err != nil {
			return Junction{}, err
		}
		if length > 32 {
			return Junction{}, dataCorruption("general key length %d", length)
		}

		var data [32]byte
		if err := decoder.Read(data[:]); err != nil {
			return Junction{}, err
		}

		return GeneralKey(data[:length])
	case 7:
		return OnlyChild(), nil
	case 9:
		network, err := c.decodeNetwork(decoder)
		if err != nil {
			return Junction{}, err
		}

		return GlobalConsensus(network), nil
	}

	return Junction{}, dataCorruption("unknown junction variant %d", b)
}

func (c Codec) decodeOptionalNetwork(decoder scale.Decoder) (*NetworkID, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch b {
	case 0:
		return nil, nil
	case 1:
		network, err := c.decodeNetwork(decoder)
		if err != nil {
			return nil, err
		}
		return &network, nil
	}

	return nil, dataCorruption("invalid option tag %d", b)
}

func (c Codec) decodeNetwork(decoder scale.Decoder) (NetworkID, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return NetworkID{}, err
	}

	var n NetworkID
	found := false
	for kind, index := range c.Networks {
		if index == b {
			n.Kind = kind
			found = true
			break
		}
	}
	if !found {
		return NetworkID{}, errors.Wrapf(ErrUnsupportedNetwork, "variant %d in %s", b, c.Version)
	}

	switch n.Kind {
	case ByGenesisNetwork:
		return n, decoder.Read(n.Genesis[:])
	case ByForkNetwork:
		if err := decoder.Decode(&n.ForkBlock); err != nil {
			return NetworkID{}, err
		}

		return n, decoder.Read(n.ForkHash[:])
	case EthereumNetwork:
		chainID, err := decodeBoundedCompact(decoder, 64, "ethereum chain id")
		if err != nil {
			return NetworkID{}, err
		}

		n.ChainID = chainID.Uint64()
	}

	return n, nil
}

// Weight is a two dimensional execution cost.
type Weight struct {
	RefTime   uint64
	ProofSize uint64
}

func EncodeWeight(encoder scale.Encoder, weight Weight) error {
	if err := encodeCompact(encoder, new(big.Int).SetUint64(weight.RefTime)); err != nil {
		return err
	}
	return encodeCompact(encoder, new(big.Int).SetUint64(weight.ProofSize))
}

func DecodeWeight(decoder scale.Decoder) (Weight, error) {
	refTime, err := decodeBoundedCompact(decoder, 64, "ref time")
	if err != nil {
		return Weight{}, err
	}

	proofSize, err := decodeBoundedCompact(decoder, 64, "proof size")
	if err != nil {
		return Weight{}, err
	}

	return Weight{RefTime: refTime.Uint64(), ProofSize: proofSize.Uint64()}, nil
}

// decodeBoundedCompact reads a compact integer that must fit in bits.
func decodeBoundedCompact(decoder scale.Decoder, bits int, field string) (*big.Int, error) {
	v, err := decoder.DecodeUintCompact()
	if err != nil {
		return nil, err
	}
	if v.BitLen() > bits {
		return nil, dataCorruption("%s %s does not fit in %d bits", field, v, bits)
	}
	return v, nil
}

func encodeCompact(encoder scale.Encoder, v *big.Int) error {
	if v == nil {
		return errors.New("nil compact value")
	}
	return encoder.EncodeUintCompact(*v)
}
