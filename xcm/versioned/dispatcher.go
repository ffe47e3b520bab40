// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package versioned

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/ChainSafe/xcm-locator/xcm"
	v3 "github.com/ChainSafe/xcm-locator/xcm/v3"
	v4 "github.com/ChainSafe/xcm-locator/xcm/v4"
	v5 "github.com/ChainSafe/xcm-locator/xcm/v5"
	"github.com/ChainSafe/xcm-locator/xcm/weight"
)

// WeightMessages are the version tagged programs produced for one weight quote.
type WeightMessages struct {
	Asset       Asset
	Destination Xcm
	Reserve     *Xcm
}

// Dispatcher routes requests to the assembler of the xcm version every involved chain understands.
type Dispatcher struct {
	assemblers map[xcm.Version]xcm.Assembler
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{assemblers: make(map[xcm.Version]xcm.Assembler)}
	d.Register(v3.NewAssembler())
	d.Register(v4.NewAssembler())
	d.Register(v5.NewAssembler())
	return d
}

func (d *Dispatcher) Register(assembler xcm.Assembler) {
	d.assemblers[assembler.Version()] = assembler
}

func (d *Dispatcher) assembler(version xcm.Version) (xcm.Assembler, error) {
	assembler, ok := d.assemblers[version]
	if !ok {
		return nil, errors.Wrapf(xcm.ErrUnsupportedVersion, "%s", version)
	}
	return assembler, nil
}

// Select returns the lowest version configured among chains.
func (d *Dispatcher) Select(chains ...xcm.Chain) (xcm.Version, error) {
	if len(chains) == 0 {
		return 0, errors.Wrap(xcm.ErrUnsupportedVersion, "no chains to select a version for")
	}

	version := chains[0].Version
	for _, chain := range chains[1:] {
		if chain.Version < version {
			version = chain.Version
		}
	}

	if _, err := d.assembler(version); err != nil {
		return 0, err
	}
	return version, nil
}

func (d *Dispatcher) CreateWeightMessages(req weight.Request) (*WeightMessages, error) {
	version, err := d.Select(req.Origin.Chain, req.Destination.Chain, req.Reserve)
	if err != nil {
		return nil, err
	}

	assembler, err := d.assembler(version)
	if err != nil {
		return nil, err
	}

	messages, err := weight.NewFactory(assembler).CreateWeightMessages(req)
	if err != nil {
		return nil, err
	}

	result := &WeightMessages{
		Asset:       Asset{Version: version, Asset: messages.Asset},
		Destination: Xcm{Version: version, Instructions: messages.Destination},
	}
	if messages.Reserve != nil {
		result.Reserve = &Xcm{Version: version, Instructions: messages.Reserve}
	}
	return result, nil
}

// Location computes target as seen from viewpoint, tagged with version.
func (d *Dispatcher) Location(version xcm.Version, target, viewpoint xcm.AbsoluteLocation) (Location, error) {
	if _, err := d.assembler(version); err != nil {
		return Location{}, err
	}
	for _, l := range []xcm.AbsoluteLocation{target, viewpoint} {
		if err := l.Validate(); err != nil {
			return Location{}, err
		}
	}
	return Location{Version: version, Location: xcm.FromPointOfView(target, viewpoint)}, nil
}

func (d *Dispatcher) MultiAsset(version xcm.Version, origin, reserve xcm.Chain, path xcm.ReservePath, amount *big.Int) (Asset, error) {
	if _, err := d.assembler(version); err != nil {
		return Asset{}, err
	}

	asset, err := xcm.CreateMultiAsset(origin, reserve, path, amount)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Version: version, Asset: asset}, nil
}

func (d *Dispatcher) AssetID(version xcm.Version, origin, reserve xcm.Chain, path xcm.ReservePath) (AssetID, error) {
	asset, err := d.MultiAsset(version, origin, reserve, path, big.NewInt(0))
	if err != nil {
		return AssetID{}, err
	}
	return AssetID{Version: version, ID: asset.Asset.ID}, nil
}
