package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"cosmossdk.io/collections"

	"lootchain/x/lootstake/types"
)

// settle prices every finalized epoch in a bag's pending record and returns
// the claimable amount together with the compacted record. An epoch is
// finalized once it has fully elapsed (epoch < current); the in-progress
// epoch and a just-signaled future epoch stay pending. Compaction keeps at
// most that one trailing unfinalized entry, which bounds the record's size
// no matter how many epochs pass between claims.
func (k Keeper) settle(ctx context.Context, class string, tokenID uint64, cur uint64) (uint64, types.StakePosition, error) {
	pos, err := k.getPosition(ctx, class, tokenID)
	if err != nil {
		return 0, types.StakePosition{}, err
	}
	perEpoch, err := k.TotalRewardPerEpoch(ctx)
	if err != nil {
		return 0, types.StakePosition{}, err
	}

	var total uint64
	for _, e := range pos.Epochs {
		if e >= cur {
			continue
		}
		w, err := k.GetEpochWeights(ctx, e)
		if err != nil {
			return 0, types.StakePosition{}, err
		}
		share, err := types.MulDiv(perEpoch, w.WeightFor(class), types.BpsDenominator)
		if err != nil {
			return 0, types.StakePosition{}, err
		}
		cnt, err := k.getEpochCount(ctx, class, e)
		if err != nil {
			return 0, types.StakePosition{}, err
		}
		if cnt == 0 {
			// A recorded stake guarantees a non-zero aggregate; hitting this
			// means the ledger is corrupt.
			return 0, types.StakePosition{}, errorsmod.Wrapf(types.ErrDivisionByZero,
				"no aggregate for %s epoch %d", class, e)
		}
		total += share / cnt
	}

	compacted := types.StakePosition{}
	if n := len(pos.Epochs); n > 0 && pos.Epochs[n-1] >= cur {
		compacted.Epochs = []uint64{pos.Epochs[n-1]}
	}
	return total, compacted, nil
}

// ClaimableRewardsFor is the read-only preview of what a claim would pay for
// a single bag right now.
func (k Keeper) ClaimableRewardsFor(ctx context.Context, class string, tokenID uint64) (uint64, error) {
	if !types.ValidClass(class) {
		return 0, errorsmod.Wrap(types.ErrInvalidClass, class)
	}
	cur, err := k.CurrentEpoch(ctx)
	if err != nil {
		return 0, err
	}
	amount, _, err := k.settle(ctx, class, tokenID, cur)
	return amount, err
}

// ClaimRewards settles all finalized epochs for the given bags, compacts
// their pending records, pays the summed amount to owner and bumps the
// cumulative claim ledger. A zero sum is a valid payout of zero: no coins
// move and no error is raised.
func (k Keeper) ClaimRewards(ctx context.Context, class string, tokenIDs []uint64, owner sdk.AccAddress) (uint64, error) {
	if !types.ValidClass(class) {
		return 0, errorsmod.Wrap(types.ErrInvalidClass, class)
	}
	p, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	cur, err := k.CurrentEpoch(ctx)
	if err != nil {
		return 0, err
	}
	classID := p.ClassID(class)

	var total uint64
	for _, id := range tokenIDs {
		nftID := strconv.FormatUint(id, 10)
		if !k.nftKeeper.GetOwner(ctx, classID, nftID).Equals(owner) {
			return 0, errorsmod.Wrapf(types.ErrNotBagOwner, "bag %d", id)
		}
		amount, compacted, err := k.settle(ctx, class, id, cur)
		if err != nil {
			return 0, err
		}
		// The record is emptied, never deleted.
		if err := k.Positions.Set(ctx, collections.Join(class, id), compacted); err != nil {
			return 0, err
		}
		total += amount
	}

	if total == 0 {
		return 0, nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(p.RewardDenom, math.NewIntFromUint64(total)))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, coins); err != nil {
		return 0, errorsmod.Wrap(err, "failed to pay rewards")
	}

	ownerStr, err := k.addressCodec.BytesToString(owner)
	if err != nil {
		return 0, err
	}
	claimed, err := k.getClaimed(ctx, ownerStr)
	if err != nil {
		return 0, err
	}
	if err := k.Claimed.Set(ctx, ownerStr, claimed.Add(math.NewIntFromUint64(total))); err != nil {
		return 0, err
	}

	k.Logger(ctx).Debug("rewards claimed", "class", class, "owner", ownerStr, "amount", total)
	return total, nil
}
