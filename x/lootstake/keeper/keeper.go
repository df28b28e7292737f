package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	math "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"lootchain/x/lootstake/types"
)

// Keeper manages the lootstake stake ledger, weight schedule and reward pool.
type Keeper struct {
	storeService store.KVStoreService
	cdc          codec.Codec
	addressCodec address.Codec

	// authority is the address that can fund the pool, start the clock,
	// set weights and update params.
	authority []byte

	bankKeeper types.BankKeeper
	nftKeeper  types.NFTKeeper

	Schema collections.Schema

	Params collections.Item[types.Params]
	// RewardPool is the total reward amount ever notified, in base units of
	// the reward denom.
	RewardPool collections.Item[uint64]
	// StartTime is the epoch clock's start time (unix seconds); 0 until set.
	StartTime collections.Item[int64]
	// Weights maps epoch -> weight split. Seeded for every epoch at genesis.
	Weights collections.Map[uint64, types.EpochWeights]
	// Staked marks (class, tokenId, epoch) as staked. Append-only.
	Staked collections.Map[collections.Triple[string, uint64, uint64], bool]
	// EpochCounts aggregates distinct bags staked per (class, epoch).
	EpochCounts collections.Map[collections.Pair[string, uint64], uint64]
	// Positions holds the pending-epoch record per (class, tokenId).
	Positions collections.Map[collections.Pair[string, uint64], types.StakePosition]
	// AccountStakes counts bags an account has ever staked per (class, address).
	AccountStakes collections.Map[collections.Pair[string, string], uint64]
	// Claimed is the cumulative amount paid out per address. Informational,
	// never read by the payout math.
	Claimed collections.Map[string, math.Int]
}

var _ collcodec.ValueCodec[types.Params] = paramsValueCodec{}

type paramsValueCodec struct{}

func (paramsValueCodec) Encode(value types.Params) ([]byte, error) { return json.Marshal(value) }
func (paramsValueCodec) Decode(bz []byte) (types.Params, error) {
	var p types.Params
	return p, json.Unmarshal(bz, &p)
}
func (c paramsValueCodec) EncodeJSON(value types.Params) ([]byte, error) { return c.Encode(value) }
func (c paramsValueCodec) DecodeJSON(bz []byte) (types.Params, error)    { return c.Decode(bz) }
func (paramsValueCodec) Stringify(value types.Params) string {
	return fmt.Sprintf("denom=%s,epochs=%d", value.RewardDenom, value.NumEpochs)
}
func (paramsValueCodec) ValueType() string { return "lootstake/Params" }

type weightsValueCodec struct{}

func (weightsValueCodec) Encode(value types.EpochWeights) ([]byte, error) { return json.Marshal(value) }
func (weightsValueCodec) Decode(bz []byte) (types.EpochWeights, error) {
	var w types.EpochWeights
	return w, json.Unmarshal(bz, &w)
}
func (c weightsValueCodec) EncodeJSON(value types.EpochWeights) ([]byte, error) { return c.Encode(value) }
func (c weightsValueCodec) DecodeJSON(bz []byte) (types.EpochWeights, error)    { return c.Decode(bz) }
func (weightsValueCodec) Stringify(value types.EpochWeights) string {
	return fmt.Sprintf("%d/%d", value.LootBps, value.MlootBps)
}
func (weightsValueCodec) ValueType() string { return "lootstake/EpochWeights" }

type positionValueCodec struct{}

func (positionValueCodec) Encode(value types.StakePosition) ([]byte, error) { return json.Marshal(value) }
func (positionValueCodec) Decode(bz []byte) (types.StakePosition, error) {
	var p types.StakePosition
	return p, json.Unmarshal(bz, &p)
}
func (c positionValueCodec) EncodeJSON(value types.StakePosition) ([]byte, error) { return c.Encode(value) }
func (c positionValueCodec) DecodeJSON(bz []byte) (types.StakePosition, error)    { return c.Decode(bz) }
func (positionValueCodec) Stringify(value types.StakePosition) string {
	return fmt.Sprintf("epochs=%v", value.Epochs)
}
func (positionValueCodec) ValueType() string { return "lootstake/StakePosition" }

type intValueCodec struct{}

func (intValueCodec) Encode(value math.Int) ([]byte, error) { return []byte(value.String()), nil }
func (intValueCodec) Decode(bz []byte) (math.Int, error) {
	if len(bz) == 0 {
		return math.ZeroInt(), nil
	}
	v, ok := math.NewIntFromString(string(bz))
	if !ok {
		return math.Int{}, fmt.Errorf("invalid int: %q", string(bz))
	}
	return v, nil
}
func (c intValueCodec) EncodeJSON(value math.Int) ([]byte, error) { return c.Encode(value) }
func (c intValueCodec) DecodeJSON(bz []byte) (math.Int, error)    { return c.Decode(bz) }
func (intValueCodec) Stringify(value math.Int) string             { return value.String() }
func (intValueCodec) ValueType() string                           { return "lootstake/Int" }

func NewKeeper(
	storeService store.KVStoreService,
	cdc codec.Codec,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
	nftKeeper types.NFTKeeper,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		cdc:          cdc,
		addressCodec: addressCodec,
		authority:    authority,
		bankKeeper:   bankKeeper,
		nftKeeper:    nftKeeper,

		Params:     collections.NewItem(sb, types.ParamsKey, "params", paramsValueCodec{}),
		RewardPool: collections.NewItem(sb, types.RewardPoolKey, "reward_pool", collections.Uint64Value),
		StartTime:  collections.NewItem(sb, types.StartTimeKey, "start_time", collections.Int64Value),
		Weights:    collections.NewMap(sb, types.WeightsKeyPrefix, "weights", collections.Uint64Key, weightsValueCodec{}),
		Staked: collections.NewMap(sb, types.StakedKeyPrefix, "staked",
			collections.TripleKeyCodec(collections.StringKey, collections.Uint64Key, collections.Uint64Key), collections.BoolValue),
		EpochCounts: collections.NewMap(sb, types.EpochCountKeyPrefix, "epoch_counts",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key), collections.Uint64Value),
		Positions: collections.NewMap(sb, types.PositionKeyPrefix, "positions",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key), positionValueCodec{}),
		AccountStakes: collections.NewMap(sb, types.AccountStakesKeyPrefix, "account_stakes",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey), collections.Uint64Value),
		Claimed: collections.NewMap(sb, types.ClaimedKeyPrefix, "claimed", collections.StringKey, intValueCodec{}),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Authority returns the module's authority.
func (k Keeper) Authority() []byte { return k.authority }

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) moduleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetParams returns current params or defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	p, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return p, nil
}

// SetParams stores module params.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, p)
}

// GetRewardPool returns the total notified reward amount.
func (k Keeper) GetRewardPool(ctx context.Context) (uint64, error) {
	v, err := k.RewardPool.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return v, nil
}

// GetStartTime returns the epoch clock's start time, 0 when not started.
func (k Keeper) GetStartTime(ctx context.Context) (int64, error) {
	v, err := k.StartTime.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return v, nil
}

// GetEpochWeights returns the weight split for an epoch. Epochs without a
// stored entry fall back to the params default, matching the genesis seed.
func (k Keeper) GetEpochWeights(ctx context.Context, epoch uint64) (types.EpochWeights, error) {
	w, err := k.Weights.Get(ctx, epoch)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			p, perr := k.GetParams(ctx)
			if perr != nil {
				return types.EpochWeights{}, perr
			}
			return p.DefaultWeights, nil
		}
		return types.EpochWeights{}, err
	}
	return w, nil
}

func (k Keeper) getEpochCount(ctx context.Context, class string, epoch uint64) (uint64, error) {
	v, err := k.EpochCounts.Get(ctx, collections.Join(class, epoch))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return v, nil
}

func (k Keeper) getPosition(ctx context.Context, class string, tokenID uint64) (types.StakePosition, error) {
	v, err := k.Positions.Get(ctx, collections.Join(class, tokenID))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.StakePosition{}, nil
		}
		return types.StakePosition{}, err
	}
	return v, nil
}

func (k Keeper) getAccountStakes(ctx context.Context, class, addr string) (uint64, error) {
	v, err := k.AccountStakes.Get(ctx, collections.Join(class, addr))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return v, nil
}

func (k Keeper) getClaimed(ctx context.Context, addr string) (math.Int, error) {
	v, err := k.Claimed.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return v, nil
}
