package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"

	"lootchain/x/lootstake/types"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = msgServer{}

func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

// requireAuthority verifies the message signer is the module authority.
func (m msgServer) requireAuthority(authority string) error {
	signer, err := m.addressCodec.StringToBytes(authority)
	if err != nil {
		return errorsmod.Wrap(types.ErrInvalidSigner, "invalid authority address")
	}
	if !bytes.Equal(signer, m.Authority()) {
		return errorsmod.Wrap(types.ErrInvalidSigner, "unauthorized")
	}
	return nil
}

func (m msgServer) UpdateParams(ctx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := m.requireAuthority(req.Authority); err != nil {
		return nil, err
	}
	// Params drive the reward arithmetic; once the clock runs they are fixed.
	start, err := m.GetStartTime(ctx)
	if err != nil {
		return nil, err
	}
	if start != 0 {
		return nil, types.ErrAlreadyStarted
	}
	if err := req.Params.Validate(); err != nil {
		return nil, err
	}
	if err := m.SetParams(ctx, req.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
