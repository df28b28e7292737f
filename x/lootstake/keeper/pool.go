package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"lootchain/x/lootstake/types"
)

// NotifyRewardAmount escrows amount from funder into the module account and
// adds it to the reward pool. Funding is only permitted before the start
// time is set; once the clock runs, the per-epoch allotment is fixed.
func (k Keeper) NotifyRewardAmount(ctx context.Context, funder sdk.AccAddress, amount math.Int) (uint64, error) {
	start, err := k.GetStartTime(ctx)
	if err != nil {
		return 0, err
	}
	if start != 0 {
		return 0, types.ErrAlreadyStarted
	}
	if !amount.IsPositive() || !amount.IsUint64() {
		return 0, errorsmod.Wrapf(types.ErrInvalidAmount, "amount %s", amount)
	}
	amt := amount.Uint64()

	pool, err := k.GetRewardPool(ctx)
	if err != nil {
		return 0, err
	}
	// The bank enforces the denom's supply cap, but keep the pool addition
	// overflow-checked anyway.
	if pool+amt < pool {
		return 0, types.ErrOverflow
	}

	p, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	coins := sdk.NewCoins(sdk.NewCoin(p.RewardDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.ModuleName, coins); err != nil {
		return 0, errorsmod.Wrap(err, "failed to escrow rewards")
	}

	newPool := pool + amt
	if err := k.RewardPool.Set(ctx, newPool); err != nil {
		return 0, err
	}
	return newPool, nil
}

// TotalRewardPerEpoch returns the flat per-epoch allotment: pool divided by
// the number of epochs, floored. Any remainder below NumEpochs is
// permanently unallocated.
func (k Keeper) TotalRewardPerEpoch(ctx context.Context) (uint64, error) {
	pool, err := k.GetRewardPool(ctx)
	if err != nil {
		return 0, err
	}
	p, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	return pool / p.NumEpochs, nil
}

// SetEpochWeights overwrites both weight columns for a single epoch. Only
// epochs strictly after the current one and within the schedule can change,
// so weight edits apply prospectively only.
func (k Keeper) SetEpochWeights(ctx context.Context, epoch uint64, w types.EpochWeights) error {
	p, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	cur, err := k.CurrentEpoch(ctx)
	if err != nil {
		return err
	}
	// The range check comes first: a frozen epoch is rejected as out of range
	// no matter what weights the request carries.
	if epoch <= cur || epoch > p.NumEpochs {
		return errorsmod.Wrapf(types.ErrEpochInvalid,
			"epoch %d not in (%d, %d]", epoch, cur, p.NumEpochs)
	}
	if err := w.Validate(); err != nil {
		return err
	}
	return k.Weights.Set(ctx, epoch, w)
}
