package keeper

import (
	"context"

	"cosmossdk.io/collections"
	math "cosmossdk.io/math"

	"lootchain/x/lootstake/types"
)

// InitGenesis seeds the module state. The whole weight schedule is
// materialized up front at the default weights so no epoch is ever unset;
// explicit genesis entries then overlay individual epochs. The stake ledger
// entries restore an export taken mid-distribution.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}
	if err := k.RewardPool.Set(ctx, gs.RewardPool); err != nil {
		return err
	}
	if err := k.StartTime.Set(ctx, gs.StartTime); err != nil {
		return err
	}
	for e := uint64(1); e <= gs.Params.NumEpochs; e++ {
		if err := k.Weights.Set(ctx, e, gs.Params.DefaultWeights); err != nil {
			return err
		}
	}
	for _, entry := range gs.Weights {
		if err := k.Weights.Set(ctx, entry.Epoch, entry.Weights); err != nil {
			return err
		}
	}
	for _, entry := range gs.Staked {
		if err := k.Staked.Set(ctx, collections.Join3(entry.Class, entry.TokenId, entry.Epoch), true); err != nil {
			return err
		}
	}
	for _, entry := range gs.EpochCounts {
		if err := k.EpochCounts.Set(ctx, collections.Join(entry.Class, entry.Epoch), entry.Count); err != nil {
			return err
		}
	}
	for _, entry := range gs.Positions {
		if err := k.Positions.Set(ctx, collections.Join(entry.Class, entry.TokenId), types.StakePosition{Epochs: entry.Epochs}); err != nil {
			return err
		}
	}
	for _, entry := range gs.AccountStakes {
		if err := k.AccountStakes.Set(ctx, collections.Join(entry.Class, entry.Address), entry.Count); err != nil {
			return err
		}
	}
	for _, entry := range gs.Claimed {
		amt, ok := math.NewIntFromString(entry.Amount)
		if !ok {
			// Validate has already vetted the amounts.
			continue
		}
		if err := k.Claimed.Set(ctx, entry.Address, amt); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports params, pool, clock, the non-default weight schedule
// entries and the entire stake ledger, so pending stakes and claim totals
// survive an export/import mid-distribution.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	p, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	pool, err := k.GetRewardPool(ctx)
	if err != nil {
		return nil, err
	}
	start, err := k.GetStartTime(ctx)
	if err != nil {
		return nil, err
	}

	gs := &types.GenesisState{
		Params:     p,
		RewardPool: pool,
		StartTime:  start,
	}
	err = k.Weights.Walk(ctx, nil, func(epoch uint64, w types.EpochWeights) (bool, error) {
		if w != p.DefaultWeights {
			gs.Weights = append(gs.Weights, types.WeightScheduleEntry{Epoch: epoch, Weights: w})
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.Staked.Walk(ctx, nil, func(key collections.Triple[string, uint64, uint64], _ bool) (bool, error) {
		gs.Staked = append(gs.Staked, types.StakedEntry{Class: key.K1(), TokenId: key.K2(), Epoch: key.K3()})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.EpochCounts.Walk(ctx, nil, func(key collections.Pair[string, uint64], count uint64) (bool, error) {
		gs.EpochCounts = append(gs.EpochCounts, types.EpochCountEntry{Class: key.K1(), Epoch: key.K2(), Count: count})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.Positions.Walk(ctx, nil, func(key collections.Pair[string, uint64], pos types.StakePosition) (bool, error) {
		// Emptied records are semantic no-ops; skip them.
		if !pos.IsEmpty() {
			gs.Positions = append(gs.Positions, types.PositionEntry{Class: key.K1(), TokenId: key.K2(), Epochs: pos.Epochs})
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.AccountStakes.Walk(ctx, nil, func(key collections.Pair[string, string], count uint64) (bool, error) {
		gs.AccountStakes = append(gs.AccountStakes, types.AccountStakeEntry{Class: key.K1(), Address: key.K2(), Count: count})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.Claimed.Walk(ctx, nil, func(addr string, amount math.Int) (bool, error) {
		gs.Claimed = append(gs.Claimed, types.ClaimedEntry{Address: addr, Amount: amount.String()})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
