package types

import "context"

// MsgServer defines the lootstake Msg service.
type MsgServer interface {
	// UpdateParams replaces module params. Authority-gated; rejected once the
	// epoch clock has been started.
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	// NotifyRewardAmount escrows reward tokens into the module account and
	// grows the pool. Only permitted before the start time is set.
	NotifyRewardAmount(ctx context.Context, msg *MsgNotifyRewardAmount) (*MsgNotifyRewardAmountResponse, error)
	// SetStartTime opens staking by fixing the epoch clock's start time.
	SetStartTime(ctx context.Context, msg *MsgSetStartTime) (*MsgSetStartTimeResponse, error)
	// SetEpochWeights overwrites the weight split for a future epoch.
	SetEpochWeights(ctx context.Context, msg *MsgSetEpochWeights) (*MsgSetEpochWeightsResponse, error)
	// SignalStake registers bags for the epoch after the current one.
	SignalStake(ctx context.Context, msg *MsgSignalStake) (*MsgSignalStakeResponse, error)
	// ClaimRewards settles and pays out all finalized epochs for the bags.
	ClaimRewards(ctx context.Context, msg *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

type MsgNotifyRewardAmount struct {
	Authority string `json:"authority"`
	// Amount is the reward amount in base units of the reward denom.
	Amount string `json:"amount"`
}

type MsgNotifyRewardAmountResponse struct {
	TotalPool string `json:"total_pool"`
}

type MsgSetStartTime struct {
	Authority string `json:"authority"`
	// StartTime is the unix time (seconds) epoch 1 begins at. Must be at
	// least one epoch duration in the future.
	StartTime int64 `json:"start_time"`
}

type MsgSetStartTimeResponse struct{}

type MsgSetEpochWeights struct {
	Authority string `json:"authority"`
	Epoch     uint64 `json:"epoch"`
	LootBps   uint64 `json:"loot_bps"`
	MlootBps  uint64 `json:"mloot_bps"`
}

type MsgSetEpochWeightsResponse struct{}

type MsgSignalStake struct {
	Creator  string   `json:"creator"`
	Class    string   `json:"class"`
	TokenIds []uint64 `json:"token_ids"`
}

type MsgSignalStakeResponse struct {
	// Epoch is the epoch the bags were staked for.
	Epoch  uint64 `json:"epoch"`
	Staked uint64 `json:"staked"`
}

type MsgClaimRewards struct {
	Creator  string   `json:"creator"`
	Class    string   `json:"class"`
	TokenIds []uint64 `json:"token_ids"`
}

type MsgClaimRewardsResponse struct {
	Claimed string `json:"claimed"`
}
