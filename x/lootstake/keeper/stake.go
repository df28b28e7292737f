package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"lootchain/x/lootstake/types"
)

// SignalStake registers the given bags for the epoch after the current one.
// It returns the target epoch. The call only ever appends: it touches the
// staked flag, the aggregate count and the pending-epoch record for the
// single target epoch, so cost stays linear in the batch size.
func (k Keeper) SignalStake(ctx context.Context, class string, tokenIDs []uint64, owner sdk.AccAddress) (uint64, error) {
	if !types.ValidClass(class) {
		return 0, errorsmod.Wrap(types.ErrInvalidClass, class)
	}
	start, err := k.GetStartTime(ctx)
	if err != nil {
		return 0, err
	}
	if start == 0 {
		return 0, types.ErrStakingNotActive
	}
	p, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	cur, err := k.CurrentEpoch(ctx)
	if err != nil {
		return 0, err
	}
	if cur >= p.NumEpochs {
		return 0, types.ErrStakingEnded
	}
	target := cur + 1

	ownerStr, err := k.addressCodec.BytesToString(owner)
	if err != nil {
		return 0, err
	}
	classID := p.ClassID(class)

	for _, id := range tokenIDs {
		nftID := strconv.FormatUint(id, 10)
		if !k.nftKeeper.HasNFT(ctx, classID, nftID) {
			return 0, errorsmod.Wrapf(types.ErrNotBagOwner, "bag %d does not exist", id)
		}
		if !k.nftKeeper.GetOwner(ctx, classID, nftID).Equals(owner) {
			return 0, errorsmod.Wrapf(types.ErrNotBagOwner, "bag %d", id)
		}

		stakedKey := collections.Join3(class, id, target)
		has, err := k.Staked.Has(ctx, stakedKey)
		if err != nil {
			return 0, err
		}
		if has {
			return 0, errorsmod.Wrapf(types.ErrBagAlreadyStaked, "bag %d, epoch %d", id, target)
		}
		if err := k.Staked.Set(ctx, stakedKey, true); err != nil {
			return 0, err
		}

		cnt, err := k.getEpochCount(ctx, class, target)
		if err != nil {
			return 0, err
		}
		if err := k.EpochCounts.Set(ctx, collections.Join(class, target), cnt+1); err != nil {
			return 0, err
		}

		pos, err := k.getPosition(ctx, class, id)
		if err != nil {
			return 0, err
		}
		// target is strictly greater than every recorded epoch, so a plain
		// append keeps the sequence increasing and duplicate-free.
		pos.Epochs = append(pos.Epochs, target)
		if err := k.Positions.Set(ctx, collections.Join(class, id), pos); err != nil {
			return 0, err
		}

		acct, err := k.getAccountStakes(ctx, class, ownerStr)
		if err != nil {
			return 0, err
		}
		if err := k.AccountStakes.Set(ctx, collections.Join(class, ownerStr), acct+1); err != nil {
			return 0, err
		}
	}

	return target, nil
}
