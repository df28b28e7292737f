package types

import "context"

// QueryServer defines the lootstake Query service.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	CurrentEpoch(ctx context.Context, req *QueryCurrentEpochRequest) (*QueryCurrentEpochResponse, error)
	EpochWeights(ctx context.Context, req *QueryEpochWeightsRequest) (*QueryEpochWeightsResponse, error)
	Pool(ctx context.Context, req *QueryPoolRequest) (*QueryPoolResponse, error)
	ClaimableRewards(ctx context.Context, req *QueryClaimableRewardsRequest) (*QueryClaimableRewardsResponse, error)
	Bag(ctx context.Context, req *QueryBagRequest) (*QueryBagResponse, error)
	AccountStakes(ctx context.Context, req *QueryAccountStakesRequest) (*QueryAccountStakesResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryCurrentEpochRequest struct{}

type QueryCurrentEpochResponse struct {
	// Epoch is 0 until the clock's start time has been reached.
	Epoch     uint64 `json:"epoch"`
	StartTime int64  `json:"start_time"`
}

type QueryEpochWeightsRequest struct {
	Epoch uint64 `json:"epoch"`
}

type QueryEpochWeightsResponse struct {
	Epoch   uint64       `json:"epoch"`
	Weights EpochWeights `json:"weights"`
}

type QueryPoolRequest struct{}

type QueryPoolResponse struct {
	RewardDenom         string `json:"reward_denom"`
	TotalRewards        uint64 `json:"total_rewards"`
	TotalRewardPerEpoch uint64 `json:"total_reward_per_epoch"`
	StartTime           int64  `json:"start_time"`
	// Escrow is the module account's live balance in the reward denom. It
	// shrinks as claims pay out while TotalRewards never does.
	Escrow string `json:"escrow"`
}

type QueryClaimableRewardsRequest struct {
	Class   string `json:"class"`
	TokenId uint64 `json:"token_id"`
}

type QueryClaimableRewardsResponse struct {
	Amount uint64 `json:"amount"`
}

type QueryBagRequest struct {
	Class   string `json:"class"`
	TokenId uint64 `json:"token_id"`
}

type QueryBagResponse struct {
	Owner string `json:"owner"`
	Uri   string `json:"uri,omitempty"`
	// PendingEpochs lists the epochs the bag is staked in but has not yet
	// reconciled by a claim.
	PendingEpochs []uint64 `json:"pending_epochs,omitempty"`
}

type QueryAccountStakesRequest struct {
	Address string `json:"address"`
}

type QueryAccountStakesResponse struct {
	LootStaked  uint64 `json:"loot_staked"`
	MlootStaked uint64 `json:"mloot_staked"`
	// TotalClaimed is the cumulative amount ever paid out to the account.
	TotalClaimed string `json:"total_claimed"`
}
