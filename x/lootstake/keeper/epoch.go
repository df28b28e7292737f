package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"lootchain/x/lootstake/types"
)

// EpochAt is the pure epoch clock: 0 before start, then 1-based floor
// division of the elapsed time. It does not clamp to the schedule length;
// callers enforce epoch-range policy.
func EpochAt(now, start, duration int64) uint64 {
	if start == 0 || now < start {
		return 0
	}
	return uint64((now-start)/duration) + 1
}

// CurrentEpoch derives the current epoch index from block time. Epoch 0 is
// the sentinel for "staking not yet started": either the clock has no start
// time, or the start time lies in the future (the signal window for epoch 1).
func (k Keeper) CurrentEpoch(ctx context.Context) (uint64, error) {
	start, err := k.GetStartTime(ctx)
	if err != nil {
		return 0, err
	}
	if start == 0 {
		return 0, nil
	}
	p, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	return EpochAt(now, start, p.EpochDuration), nil
}

// SetStartTime fixes the epoch clock's start time. It may be set exactly
// once, only when the pool has been funded, and the proposed start must be
// at least one full epoch duration in the future so holders get a signal
// window for epoch 1.
func (k Keeper) SetStartTime(ctx context.Context, startTime int64) error {
	pool, err := k.GetRewardPool(ctx)
	if err != nil {
		return err
	}
	if pool == 0 {
		return types.ErrNoRewards
	}
	existing, err := k.GetStartTime(ctx)
	if err != nil {
		return err
	}
	if existing != 0 {
		return types.ErrAlreadyStarted
	}
	p, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if startTime < now+p.EpochDuration {
		return errorsmod.Wrapf(types.ErrStartTimeInvalid,
			"start time %d must be at least one epoch duration (%ds) after current time %d",
			startTime, p.EpochDuration, now)
	}
	if err := k.StartTime.Set(ctx, startTime); err != nil {
		return err
	}
	k.Logger(ctx).Info("staking started", "start_time", startTime, "num_epochs", p.NumEpochs)
	return nil
}
