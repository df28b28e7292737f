package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"lootchain/x/lootstake/types"
)

// SignalStake handles the SignalStake message. Each listed bag is verified
// against the NFT registry and registered for the epoch after the current
// one; any failure aborts the whole batch.
func (m msgServer) SignalStake(ctx context.Context, req *types.MsgSignalStake) (*types.MsgSignalStakeResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	owner, err := m.addressCodec.StringToBytes(req.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}
	if len(req.TokenIds) == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "token_ids is required")
	}

	target, err := m.Keeper.SignalStake(ctx, req.Class, req.TokenIds, sdk.AccAddress(owner))
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventBagsStaked,
			sdk.NewAttribute(types.AttrClass, req.Class),
			sdk.NewAttribute(types.AttrOwner, req.Creator),
			sdk.NewAttribute(types.AttrEpoch, strconv.FormatUint(target, 10)),
			sdk.NewAttribute(types.AttrBagCount, strconv.Itoa(len(req.TokenIds))),
		),
	)

	return &types.MsgSignalStakeResponse{Epoch: target, Staked: uint64(len(req.TokenIds))}, nil
}
