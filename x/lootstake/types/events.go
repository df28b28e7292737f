package types

const (
	EventRewardsAdded   = "lootstake.rewards_added"
	EventStakingStarted = "lootstake.staking_started"
	EventWeightsSet     = "lootstake.weights_set"
	EventBagsStaked     = "lootstake.bags_staked"
	EventRewardsClaimed = "lootstake.rewards_claimed"
)

const (
	AttrClass     = "class"
	AttrEpoch     = "epoch"
	AttrAmount    = "amount"
	AttrTotalPool = "total_pool"
	AttrStartTime = "start_time"
	AttrLootBps   = "loot_bps"
	AttrMlootBps  = "mloot_bps"
	AttrOwner     = "owner"
	AttrBagCount  = "bag_count"
)
