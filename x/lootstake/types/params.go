package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the lootstake module configuration. NumEpochs, EpochDuration
// and the class ids are fixed for the lifetime of a distribution; params can
// only be updated before the epoch clock is started.
type Params struct {
	// RewardDenom is the denom the reward pool is funded and paid out in.
	RewardDenom string `json:"reward_denom" yaml:"reward_denom"`
	// LootClassId / MlootClassId name the x/nft classes holding the bags.
	LootClassId  string `json:"loot_class_id" yaml:"loot_class_id"`
	MlootClassId string `json:"mloot_class_id" yaml:"mloot_class_id"`
	// NumEpochs is the number of reward epochs the pool is split across.
	NumEpochs uint64 `json:"num_epochs" yaml:"num_epochs"`
	// EpochDuration is the length of one epoch in seconds.
	EpochDuration int64 `json:"epoch_duration" yaml:"epoch_duration"`
	// DefaultWeights seeds the weight schedule for every epoch at genesis.
	DefaultWeights EpochWeights `json:"default_weights" yaml:"default_weights"`
}

// DefaultParams returns default module parameters: a ten-week weekly
// distribution split 60/40 between loot and mloot.
func DefaultParams() Params {
	return Params{
		RewardDenom:    "uagld",
		LootClassId:    "loot",
		MlootClassId:   "mloot",
		NumEpochs:      10,
		EpochDuration:  7 * 24 * 60 * 60,
		DefaultWeights: EpochWeights{LootBps: 6000, MlootBps: 4000},
	}
}

// ClassID maps a bag class to its NFT class id.
func (p Params) ClassID(class string) string {
	if class == ClassMloot {
		return p.MlootClassId
	}
	return p.LootClassId
}

// Validate performs basic validation of module parameters.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.RewardDenom); err != nil {
		return fmt.Errorf("invalid reward denom: %w", err)
	}
	if p.LootClassId == "" || p.MlootClassId == "" {
		return fmt.Errorf("bag class ids must be set")
	}
	if p.LootClassId == p.MlootClassId {
		return fmt.Errorf("bag class ids must differ")
	}
	if p.NumEpochs == 0 {
		return fmt.Errorf("num_epochs must be positive")
	}
	if p.EpochDuration <= 0 {
		return fmt.Errorf("epoch_duration must be positive")
	}
	return p.DefaultWeights.Validate()
}
