package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"lootchain/x/lootstake/types"
)

// ClaimRewards handles the ClaimRewards message. An empty batch or a batch
// with nothing finalized pays zero without error.
func (m msgServer) ClaimRewards(ctx context.Context, req *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	owner, err := m.addressCodec.StringToBytes(req.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	claimed, err := m.Keeper.ClaimRewards(ctx, req.Class, req.TokenIds, sdk.AccAddress(owner))
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventRewardsClaimed,
			sdk.NewAttribute(types.AttrClass, req.Class),
			sdk.NewAttribute(types.AttrOwner, req.Creator),
			sdk.NewAttribute(types.AttrAmount, strconv.FormatUint(claimed, 10)),
		),
	)

	return &types.MsgClaimRewardsResponse{Claimed: strconv.FormatUint(claimed, 10)}, nil
}
