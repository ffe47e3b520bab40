// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import "fmt"

// InstructionKind enumerates every instruction any supported version can assemble.
type InstructionKind uint8

const (
	WithdrawAssetKind InstructionKind = iota
	ClearOriginKind
	ReserveAssetDepositedKind
	BuyExecutionKind
	DepositAssetKind
	DepositReserveAssetKind
	ReceiveTeleportedAssetKind
	RefundSurplusKind
	ClearErrorKind
	SetTopicKind
	PayFeesKind
)

var instructionKindNames = map[InstructionKind]string{
	WithdrawAssetKind:          "WithdrawAsset",
	ClearOriginKind:            "ClearOrigin",
	ReserveAssetDepositedKind:  "ReserveAssetDeposited",
	BuyExecutionKind:           "BuyExecution",
	DepositAssetKind:           "DepositAsset",
	DepositReserveAssetKind:    "DepositReserveAsset",
	ReceiveTeleportedAssetKind: "ReceiveTeleportedAsset",
	RefundSurplusKind:          "RefundSurplus",
	ClearErrorKind:             "ClearError",
	SetTopicKind:               "SetTopic",
	PayFeesKind:                "PayFees",
}

var instructionKindsByName = func() map[string]InstructionKind {
	m := make(map[string]InstructionKind, len(instructionKindNames))
	for kind, name := range instructionKindNames {
		m[name] = kind
	}
	return m
}()

func (k InstructionKind) String() string {
	if name, ok := instructionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("InstructionKind(%d)", uint8(k))
}

// ParseInstructionKind maps a configured instruction name to its kind.
func ParseInstructionKind(name string) (InstructionKind, error) {
	kind, ok := instructionKindsByName[name]
	if !ok {
		return 0, &UnsupportedInstructionError{Name: name}
	}
	return kind, nil
}

// ParseInstructionKinds maps names in order and fails on the first unknown one.
func ParseInstructionKinds(names []string) ([]InstructionKind, error) {
	kinds := make([]InstructionKind, len(names))
	for i, name := range names {
		kind, err := ParseInstructionKind(name)
		if err != nil {
			return nil, err
		}
		kinds[i] = kind
	}
	return kinds, nil
}

// Instruction is one step of an xcm program.
type Instruction interface {
	Kind() InstructionKind
}

type WithdrawAsset struct {
	Assets []Multiasset
}

type ClearOrigin struct{}

type ReserveAssetDeposited struct {
	Assets []Multiasset
}

type ReceiveTeleportedAsset struct {
	Assets []Multiasset
}

type BuyExecution struct {
	Fees        Multiasset
	WeightLimit WeightLimit
}

type DepositAsset struct {
	Assets      AssetFilter
	Beneficiary Multilocation
}

type DepositReserveAsset struct {
	Assets AssetFilter
	Dest   Multilocation
	Xcm    []Instruction
}

type RefundSurplus struct{}

type ClearError struct{}

type SetTopic struct {
	Topic [32]byte
}

type PayFees struct {
	Asset Multiasset
}

func (WithdrawAsset) Kind() InstructionKind          { return WithdrawAssetKind }
func (ClearOrigin) Kind() InstructionKind            { return ClearOriginKind }
func (ReserveAssetDeposited) Kind() InstructionKind  { return ReserveAssetDepositedKind }
func (ReceiveTeleportedAsset) Kind() InstructionKind { return ReceiveTeleportedAssetKind }
func (BuyExecution) Kind() InstructionKind           { return BuyExecutionKind }
func (DepositAsset) Kind() InstructionKind           { return DepositAssetKind }
func (DepositReserveAsset) Kind() InstructionKind    { return DepositReserveAssetKind }
func (RefundSurplus) Kind() InstructionKind          { return RefundSurplusKind }
func (ClearError) Kind() InstructionKind             { return ClearErrorKind }
func (SetTopic) Kind() InstructionKind               { return SetTopicKind }
func (PayFees) Kind() InstructionKind                { return PayFeesKind }

// Assembler turns instruction kinds into a concrete program for one xcm version.
type Assembler interface {
	Version() Version
	CreateInstructions(kinds []InstructionKind, destination Multilocation, asset Multiasset) ([]Instruction, error)
}

// AssembleNamed decodes names and assembles them with a.
func AssembleNamed(a Assembler, names []string, destination Multilocation, asset Multiasset) ([]Instruction, error) {
	kinds, err := ParseInstructionKinds(names)
	if err != nil {
		return nil, err
	}
	return a.CreateInstructions(kinds, destination, asset)
}

// Vocabulary is the closed set of instruction kinds a version can assemble.
type Vocabulary map[InstructionKind]struct{}

func NewVocabulary(kinds ...InstructionKind) Vocabulary {
	v := make(Vocabulary, len(kinds))
	for _, k := range kinds {
		v[k] = struct{}{}
	}
	return v
}

func (v Vocabulary) Contains(kind InstructionKind) bool {
	_, ok := v[kind]
	return ok
}

// BuildInstruction maps kind to its instruction. Fees always buy unlimited weight and deposits
// always take everything left in holding.
func BuildInstruction(kind InstructionKind, destination Multilocation, asset Multiasset) (Instruction, error) {
	switch kind {
	case WithdrawAssetKind:
		return WithdrawAsset{Assets: []Multiasset{asset}}, nil
	case ClearOriginKind:
		return ClearOrigin{}, nil
	case ReserveAssetDepositedKind:
		return ReserveAssetDeposited{Assets: []Multiasset{asset}}, nil
	case ReceiveTeleportedAssetKind:
		return ReceiveTeleportedAsset{Assets: []Multiasset{asset}}, nil
	case BuyExecutionKind:
		return BuyExecution{Fees: asset, WeightLimit: Unlimited()}, nil
	case DepositAssetKind:
		return DepositAsset{Assets: AllAssets(), Beneficiary: destination}, nil
	case DepositReserveAssetKind:
		return DepositReserveAsset{Assets: AllAssets(), Dest: destination, Xcm: []Instruction{}}, nil
	case RefundSurplusKind:
		return RefundSurplus{}, nil
	case ClearErrorKind:
		return ClearError{}, nil
	case SetTopicKind:
		return SetTopic{}, nil
	case PayFeesKind:
		return PayFees{Asset: asset}, nil
	}
	return nil, &UnsupportedInstructionError{Name: kind.String()}
}

// Assemble builds kinds in order against vocabulary. A kind outside the vocabulary aborts
// the whole assembly.
func Assemble(vocabulary Vocabulary, kinds []InstructionKind, destination Multilocation, asset Multiasset) ([]Instruction, error) {
	instructions := make([]Instruction, 0, len(kinds))
	for _, kind := range kinds {
		if !vocabulary.Contains(kind) {
			return nil, &UnsupportedInstructionError{Name: kind.String()}
		}

		instruction, err := BuildInstruction(kind, destination, asset)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, instruction)
	}
	return instructions, nil
}
