package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lootchain/x/lootstake/types"
)

type queryServer struct {
	Keeper
}

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return &queryServer{Keeper: k}
}

func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	p, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: p}, nil
}

func (q queryServer) CurrentEpoch(ctx context.Context, _ *types.QueryCurrentEpochRequest) (*types.QueryCurrentEpochResponse, error) {
	cur, err := q.Keeper.CurrentEpoch(ctx)
	if err != nil {
		return nil, err
	}
	start, err := q.GetStartTime(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryCurrentEpochResponse{Epoch: cur, StartTime: start}, nil
}

func (q queryServer) EpochWeights(ctx context.Context, req *types.QueryEpochWeightsRequest) (*types.QueryEpochWeightsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	p, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if req.Epoch == 0 || req.Epoch > p.NumEpochs {
		return nil, status.Errorf(codes.InvalidArgument, "epoch %d out of range [1, %d]", req.Epoch, p.NumEpochs)
	}
	w, err := q.GetEpochWeights(ctx, req.Epoch)
	if err != nil {
		return nil, err
	}
	return &types.QueryEpochWeightsResponse{Epoch: req.Epoch, Weights: w}, nil
}

func (q queryServer) Pool(ctx context.Context, _ *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	p, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	pool, err := q.GetRewardPool(ctx)
	if err != nil {
		return nil, err
	}
	perEpoch, err := q.TotalRewardPerEpoch(ctx)
	if err != nil {
		return nil, err
	}
	start, err := q.GetStartTime(ctx)
	if err != nil {
		return nil, err
	}
	escrow := q.bankKeeper.GetBalance(ctx, q.moduleAddress(), p.RewardDenom)
	return &types.QueryPoolResponse{
		RewardDenom:         p.RewardDenom,
		TotalRewards:        pool,
		TotalRewardPerEpoch: perEpoch,
		StartTime:           start,
		Escrow:              escrow.Amount.String(),
	}, nil
}

func (q queryServer) ClaimableRewards(ctx context.Context, req *types.QueryClaimableRewardsRequest) (*types.QueryClaimableRewardsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	amount, err := q.ClaimableRewardsFor(ctx, req.Class, req.TokenId)
	if err != nil {
		return nil, err
	}
	return &types.QueryClaimableRewardsResponse{Amount: amount}, nil
}

func (q queryServer) Bag(ctx context.Context, req *types.QueryBagRequest) (*types.QueryBagResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if !types.ValidClass(req.Class) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown bag class %q", req.Class)
	}
	p, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	classID := p.ClassID(req.Class)
	nftID := strconv.FormatUint(req.TokenId, 10)

	token, found := q.nftKeeper.GetNFT(ctx, classID, nftID)
	if !found {
		return nil, status.Errorf(codes.NotFound, "bag %d not found in class %s", req.TokenId, classID)
	}
	owner := q.nftKeeper.GetOwner(ctx, classID, nftID)
	pos, err := q.getPosition(ctx, req.Class, req.TokenId)
	if err != nil {
		return nil, err
	}

	ownerStr := ""
	if !owner.Empty() {
		ownerStr, err = q.addressCodec.BytesToString(owner)
		if err != nil {
			return nil, err
		}
	}
	return &types.QueryBagResponse{
		Owner:         ownerStr,
		Uri:           token.Uri,
		PendingEpochs: pos.Epochs,
	}, nil
}

func (q queryServer) AccountStakes(ctx context.Context, req *types.QueryAccountStakesRequest) (*types.QueryAccountStakesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if _, err := sdk.AccAddressFromBech32(req.Address); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid address")
	}
	loot, err := q.getAccountStakes(ctx, types.ClassLoot, req.Address)
	if err != nil {
		return nil, err
	}
	mloot, err := q.getAccountStakes(ctx, types.ClassMloot, req.Address)
	if err != nil {
		return nil, err
	}
	claimed, err := q.getClaimed(ctx, req.Address)
	if err != nil {
		return nil, err
	}
	return &types.QueryAccountStakesResponse{
		LootStaked:   loot,
		MlootStaked:  mloot,
		TotalClaimed: claimed.String(),
	}, nil
}
