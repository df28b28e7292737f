package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "lootstake"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_lootstake"

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	// It should be synced with the gov module's name if it is ever changed.
	GovModuleName = "gov"
)

var (
	ParamsKey              = collections.NewPrefix("p_lootstake")
	RewardPoolKey          = collections.NewPrefix("rp_lootstake")
	StartTimeKey           = collections.NewPrefix("st_lootstake")
	WeightsKeyPrefix       = collections.NewPrefix("w_lootstake")
	StakedKeyPrefix        = collections.NewPrefix("s_lootstake")
	EpochCountKeyPrefix    = collections.NewPrefix("ec_lootstake")
	PositionKeyPrefix      = collections.NewPrefix("pos_lootstake")
	AccountStakesKeyPrefix = collections.NewPrefix("as_lootstake")
	ClaimedKeyPrefix       = collections.NewPrefix("cl_lootstake")
)

// KeyPrefix returns a key prefix from a string
func KeyPrefix(p string) []byte { return []byte(p) }
