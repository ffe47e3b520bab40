// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package versioned

import (
	"bytes"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/ChainSafe/xcm-locator/xcm"
	v3 "github.com/ChainSafe/xcm-locator/xcm/v3"
	v4 "github.com/ChainSafe/xcm-locator/xcm/v4"
	v5 "github.com/ChainSafe/xcm-locator/xcm/v5"
)

var codecs = map[xcm.Version]xcm.Codec{
	xcm.V3: v3.Codec,
	xcm.V4: v4.Codec,
	xcm.V5: v5.Codec,
}

func CodecFor(version xcm.Version) (xcm.Codec, error) {
	codec, ok := codecs[version]
	if !ok {
		return xcm.Codec{}, errors.Wrapf(xcm.ErrUnsupportedVersion, "%s", version)
	}
	return codec, nil
}

func encodeTagged(encoder scale.Encoder, version xcm.Version, encodeFn func(codec xcm.Codec) error) error {
	codec, err := CodecFor(version)
	if err != nil {
		return err
	}

	// every Versioned* enum uses the version number as its variant index from V3 on
	if err := encoder.PushByte(byte(version)); err != nil {
		return err
	}
	return encodeFn(codec)
}

// Location is a VersionedLocation.
type Location struct {
	Version  xcm.Version
	Location xcm.Multilocation
}

func (l Location) Encode(encoder scale.Encoder) error {
	return encodeTagged(encoder, l.Version, func(codec xcm.Codec) error {
		return codec.EncodeLocation(encoder, l.Location)
	})
}

func (l *Location) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	codec, err := CodecFor(xcm.Version(b))
	if err != nil {
		return err
	}

	location, err := codec.DecodeLocation(decoder)
	if err != nil {
		return err
	}

	l.Version = xcm.Version(b)
	l.Location = location
	return nil
}

func (l Location) Hex() (string, error) {
	return toHex(l.Encode)
}

// DecodeLocationHex parses a 0x prefixed SCALE encoded VersionedLocation.
func DecodeLocationHex(s string) (Location, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Location{}, errors.Wrap(xcm.ErrDataCorruption, err.Error())
	}

	var l Location
	if err := l.Decode(*scale.NewDecoder(bytes.NewReader(b))); err != nil {
		return Location{}, err
	}
	return l, nil
}

// Asset is a VersionedAsset holding a single fungible asset.
type Asset struct {
	Version xcm.Version
	Asset   xcm.Multiasset
}

func (a Asset) Encode(encoder scale.Encoder) error {
	return encodeTagged(encoder, a.Version, func(codec xcm.Codec) error {
		return codec.EncodeAsset(encoder, a.Asset)
	})
}

func (a Asset) Hex() (string, error) {
	return toHex(a.Encode)
}

// AssetID is a VersionedAssetId, used to name the asset a fee is quoted in.
type AssetID struct {
	Version xcm.Version
	ID      xcm.Multilocation
}

func (a AssetID) Encode(encoder scale.Encoder) error {
	return encodeTagged(encoder, a.Version, func(codec xcm.Codec) error {
		return codec.EncodeAssetID(encoder, a.ID)
	})
}

func (a AssetID) Hex() (string, error) {
	return toHex(a.Encode)
}

// Xcm is a VersionedXcm program.
type Xcm struct {
	Version      xcm.Version
	Instructions []xcm.Instruction
}

func (x Xcm) Encode(encoder scale.Encoder) error {
	return encodeTagged(encoder, x.Version, func(codec xcm.Codec) error {
		return codec.EncodeXcm(encoder, x.Instructions)
	})
}

func (x Xcm) Bytes() ([]byte, error) {
	return xcm.Encode(x.Encode)
}

func (x Xcm) Hex() (string, error) {
	return toHex(x.Encode)
}

func toHex(encodeFn func(encoder scale.Encoder) error) (string, error) {
	b, err := xcm.Encode(encodeFn)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(b), nil
}
