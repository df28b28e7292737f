package types

// Bag classes. Each class has its own NFT collection, stake ledger and
// weight column; both share the reward pool and the epoch clock.
const (
	ClassLoot  = "loot"
	ClassMloot = "mloot"
)

// BpsDenominator is the fixed-point unit weights are expressed in.
const BpsDenominator = 10_000

// ValidClass reports whether class names one of the two bag classes.
func ValidClass(class string) bool {
	return class == ClassLoot || class == ClassMloot
}

// EpochWeights is the basis-point reward split between the two bag classes
// for one epoch.
type EpochWeights struct {
	LootBps  uint64 `json:"loot_bps"`
	MlootBps uint64 `json:"mloot_bps"`
}

// Validate checks that the two columns sum to the fixed-point unit. Each
// column is bounded by the unit first, which keeps the sum overflow-free.
func (w EpochWeights) Validate() error {
	if w.LootBps > BpsDenominator || w.MlootBps > BpsDenominator {
		return ErrWeightsInvalid
	}
	if w.LootBps+w.MlootBps != BpsDenominator {
		return ErrWeightsInvalid
	}
	return nil
}

// WeightFor returns the weight column for the given class.
func (w EpochWeights) WeightFor(class string) uint64 {
	if class == ClassMloot {
		return w.MlootBps
	}
	return w.LootBps
}

// StakePosition is the per-bag record of epochs staked but not yet
// reconciled by a claim. Epochs are strictly increasing; at most the last
// entry may still be unfinalized (the in-progress epoch or the one the bag
// was just signaled for). The claim engine's compaction step enforces this
// by construction, which keeps the record bounded no matter how many epochs
// elapse between claims.
type StakePosition struct {
	Epochs []uint64 `json:"epochs,omitempty"`
}

// IsEmpty reports whether the position holds no pending epochs.
func (p StakePosition) IsEmpty() bool { return len(p.Epochs) == 0 }
