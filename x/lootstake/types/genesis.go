package types

import (
	"fmt"

	math "cosmossdk.io/math"
)

// GenesisState defines the lootstake module's genesis state. Beyond params
// and the pool it carries the whole stake ledger, so an export taken
// mid-distribution restores every pending stake, aggregate and claim total.
type GenesisState struct {
	Params Params `json:"params"`
	// RewardPool is the total reward amount ever notified.
	RewardPool uint64 `json:"reward_pool,omitempty"`
	// StartTime is the epoch clock's start time; 0 means staking has not
	// been opened.
	StartTime int64 `json:"start_time,omitempty"`
	// Weights overrides entries of the weight schedule; epochs not listed
	// are seeded with Params.DefaultWeights.
	Weights []WeightScheduleEntry `json:"weights,omitempty"`
	// Staked lists every (class, tokenId, epoch) stake flag ever set.
	Staked []StakedEntry `json:"staked,omitempty"`
	// EpochCounts carries the per-(class, epoch) staked-bag aggregates.
	EpochCounts []EpochCountEntry `json:"epoch_counts,omitempty"`
	// Positions carries the non-empty pending-epoch records.
	Positions []PositionEntry `json:"positions,omitempty"`
	// AccountStakes carries the per-account stake counters.
	AccountStakes []AccountStakeEntry `json:"account_stakes,omitempty"`
	// Claimed carries the cumulative per-account payout ledger.
	Claimed []ClaimedEntry `json:"claimed,omitempty"`
}

// WeightScheduleEntry pins the weight split of a single epoch at genesis.
type WeightScheduleEntry struct {
	Epoch   uint64       `json:"epoch"`
	Weights EpochWeights `json:"weights"`
}

type StakedEntry struct {
	Class   string `json:"class"`
	TokenId uint64 `json:"token_id"`
	Epoch   uint64 `json:"epoch"`
}

type EpochCountEntry struct {
	Class string `json:"class"`
	Epoch uint64 `json:"epoch"`
	Count uint64 `json:"count"`
}

type PositionEntry struct {
	Class   string   `json:"class"`
	TokenId uint64   `json:"token_id"`
	Epochs  []uint64 `json:"epochs"`
}

type AccountStakeEntry struct {
	Class   string `json:"class"`
	Address string `json:"address"`
	Count   uint64 `json:"count"`
}

type ClaimedEntry struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.StartTime < 0 {
		return fmt.Errorf("start_time cannot be negative")
	}
	seen := make(map[uint64]bool, len(gs.Weights))
	for _, e := range gs.Weights {
		if e.Epoch == 0 || e.Epoch > gs.Params.NumEpochs {
			return fmt.Errorf("weight entry epoch %d out of range [1, %d]", e.Epoch, gs.Params.NumEpochs)
		}
		if seen[e.Epoch] {
			return fmt.Errorf("duplicate weight entry for epoch %d", e.Epoch)
		}
		seen[e.Epoch] = true
		if err := e.Weights.Validate(); err != nil {
			return err
		}
	}
	for _, e := range gs.Staked {
		if !ValidClass(e.Class) {
			return fmt.Errorf("staked entry: unknown class %q", e.Class)
		}
		if e.Epoch == 0 || e.Epoch > gs.Params.NumEpochs {
			return fmt.Errorf("staked entry epoch %d out of range [1, %d]", e.Epoch, gs.Params.NumEpochs)
		}
	}
	for _, e := range gs.EpochCounts {
		if !ValidClass(e.Class) {
			return fmt.Errorf("epoch count entry: unknown class %q", e.Class)
		}
		if e.Epoch == 0 || e.Epoch > gs.Params.NumEpochs {
			return fmt.Errorf("epoch count entry epoch %d out of range [1, %d]", e.Epoch, gs.Params.NumEpochs)
		}
	}
	for _, e := range gs.Positions {
		if !ValidClass(e.Class) {
			return fmt.Errorf("position entry: unknown class %q", e.Class)
		}
		var last uint64
		for _, epoch := range e.Epochs {
			if epoch == 0 || epoch > gs.Params.NumEpochs {
				return fmt.Errorf("position entry epoch %d out of range [1, %d]", epoch, gs.Params.NumEpochs)
			}
			if epoch <= last {
				return fmt.Errorf("position entry for bag %d: epochs must be strictly increasing", e.TokenId)
			}
			last = epoch
		}
	}
	for _, e := range gs.AccountStakes {
		if !ValidClass(e.Class) {
			return fmt.Errorf("account stake entry: unknown class %q", e.Class)
		}
		if e.Address == "" {
			return fmt.Errorf("account stake entry: address must be set")
		}
	}
	for _, e := range gs.Claimed {
		if e.Address == "" {
			return fmt.Errorf("claimed entry: address must be set")
		}
		amt, ok := math.NewIntFromString(e.Amount)
		if !ok || amt.IsNegative() {
			return fmt.Errorf("claimed entry for %s: invalid amount %q", e.Address, e.Amount)
		}
	}
	return nil
}
