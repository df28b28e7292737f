package types

import "cosmossdk.io/errors"

// DONTCOVER

var (
	ErrInvalidSigner    = errors.Register(ModuleName, 2, "invalid signer")
	ErrInvalidRequest   = errors.Register(ModuleName, 3, "invalid request")
	ErrInvalidAmount    = errors.Register(ModuleName, 4, "invalid amount")
	ErrInvalidClass     = errors.Register(ModuleName, 5, "unknown bag class")
	ErrNoRewards        = errors.Register(ModuleName, 6, "reward pool is empty")
	ErrAlreadyStarted   = errors.Register(ModuleName, 7, "staking already started")
	ErrStartTimeInvalid = errors.Register(ModuleName, 8, "invalid start time")
	ErrEpochInvalid     = errors.Register(ModuleName, 9, "epoch out of range")
	ErrWeightsInvalid   = errors.Register(ModuleName, 10, "weights must sum to 10000 bps")
	ErrStakingNotActive = errors.Register(ModuleName, 11, "staking has not started")
	ErrStakingEnded     = errors.Register(ModuleName, 12, "staking period is over")
	ErrNotBagOwner      = errors.Register(ModuleName, 13, "caller does not own bag")
	ErrBagAlreadyStaked = errors.Register(ModuleName, 14, "bag already staked for epoch")
	ErrDivisionByZero   = errors.Register(ModuleName, 15, "division by zero")
	ErrOverflow         = errors.Register(ModuleName, 16, "arithmetic overflow")
)
