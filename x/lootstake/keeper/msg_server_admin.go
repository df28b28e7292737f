package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"lootchain/x/lootstake/types"
)

// NotifyRewardAmount handles funding the reward pool. The authority both
// signs and pays: the coins move from its account into the module escrow.
func (m msgServer) NotifyRewardAmount(ctx context.Context, req *types.MsgNotifyRewardAmount) (*types.MsgNotifyRewardAmountResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := m.requireAuthority(req.Authority); err != nil {
		return nil, err
	}
	amount, ok := math.NewIntFromString(req.Amount)
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrInvalidAmount, "amount %q", req.Amount)
	}
	funder, err := m.addressCodec.StringToBytes(req.Authority)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidSigner, "invalid authority address")
	}

	newPool, err := m.Keeper.NotifyRewardAmount(ctx, funder, amount)
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventRewardsAdded,
			sdk.NewAttribute(types.AttrAmount, amount.String()),
			sdk.NewAttribute(types.AttrTotalPool, strconv.FormatUint(newPool, 10)),
		),
	)

	return &types.MsgNotifyRewardAmountResponse{TotalPool: strconv.FormatUint(newPool, 10)}, nil
}

// SetStartTime handles opening staking by starting the epoch clock.
func (m msgServer) SetStartTime(ctx context.Context, req *types.MsgSetStartTime) (*types.MsgSetStartTimeResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := m.requireAuthority(req.Authority); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetStartTime(ctx, req.StartTime); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventStakingStarted,
			sdk.NewAttribute(types.AttrStartTime, strconv.FormatInt(req.StartTime, 10)),
		),
	)

	return &types.MsgSetStartTimeResponse{}, nil
}

// SetEpochWeights handles overwriting the weight split of a future epoch.
func (m msgServer) SetEpochWeights(ctx context.Context, req *types.MsgSetEpochWeights) (*types.MsgSetEpochWeightsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := m.requireAuthority(req.Authority); err != nil {
		return nil, err
	}
	w := types.EpochWeights{LootBps: req.LootBps, MlootBps: req.MlootBps}
	if err := m.Keeper.SetEpochWeights(ctx, req.Epoch, w); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventWeightsSet,
			sdk.NewAttribute(types.AttrEpoch, strconv.FormatUint(req.Epoch, 10)),
			sdk.NewAttribute(types.AttrLootBps, strconv.FormatUint(req.LootBps, 10)),
			sdk.NewAttribute(types.AttrMlootBps, strconv.FormatUint(req.MlootBps, 10)),
		),
	)

	return &types.MsgSetEpochWeightsResponse{}, nil
}
