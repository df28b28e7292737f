package keeper_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/store/types"
	"cosmossdk.io/x/nft"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"lootchain/x/lootstake/keeper"
	"lootchain/x/lootstake/types"
)

// MockBankKeeper is a mock implementation of the BankKeeper interface.
type MockBankKeeper struct {
	Balances map[string]sdk.Coins
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		Balances: make(map[string]sdk.Coins),
	}
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	balance := m.Balances[senderAddr.String()]
	if !balance.IsAllGTE(amt) {
		return types.ErrInvalidAmount
	}
	m.Balances[senderAddr.String()] = balance.Sub(amt...)
	moduleAddr := authtypes.NewModuleAddress(recipientModule).String()
	m.Balances[moduleAddr] = m.Balances[moduleAddr].Add(amt...)
	return nil
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	moduleAddr := authtypes.NewModuleAddress(senderModule).String()
	balance := m.Balances[moduleAddr]
	if !balance.IsAllGTE(amt) {
		return types.ErrInvalidAmount
	}
	m.Balances[moduleAddr] = balance.Sub(amt...)
	userBalance := m.Balances[recipientAddr.String()]
	m.Balances[recipientAddr.String()] = userBalance.Add(amt...)
	return nil
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.Balances[addr.String()].AmountOf(denom))
}

// MockNFTKeeper is a mock implementation of the NFTKeeper interface.
type MockNFTKeeper struct {
	Owners map[string]sdk.AccAddress
	Uris   map[string]string
}

func NewMockNFTKeeper() *MockNFTKeeper {
	return &MockNFTKeeper{
		Owners: make(map[string]sdk.AccAddress),
		Uris:   make(map[string]string),
	}
}

func nftKey(classID, nftID string) string { return classID + "/" + nftID }

func (m *MockNFTKeeper) Mint(classID, nftID string, owner sdk.AccAddress) {
	m.Owners[nftKey(classID, nftID)] = owner
}

func (m *MockNFTKeeper) HasNFT(_ context.Context, classID, nftID string) bool {
	_, ok := m.Owners[nftKey(classID, nftID)]
	return ok
}

func (m *MockNFTKeeper) GetOwner(_ context.Context, classID, nftID string) sdk.AccAddress {
	return m.Owners[nftKey(classID, nftID)]
}

func (m *MockNFTKeeper) GetNFT(_ context.Context, classID, nftID string) (nft.NFT, bool) {
	if _, ok := m.Owners[nftKey(classID, nftID)]; !ok {
		return nft.NFT{}, false
	}
	return nft.NFT{ClassId: classID, Id: nftID, Uri: m.Uris[nftKey(classID, nftID)]}, true
}

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
	bankKeeper   *MockBankKeeper
	nftKeeper    *MockNFTKeeper
	authority    sdk.AccAddress
	authorityStr string
}

// testParams is the schedule most tests run against: three epochs of 100
// seconds split 60/40.
func testParams() types.Params {
	return types.Params{
		RewardDenom:    "uagld",
		LootClassId:    "loot",
		MlootClassId:   "mloot",
		NumEpochs:      3,
		EpochDuration:  100,
		DefaultWeights: types.EpochWeights{LootBps: 6000, MlootBps: 4000},
	}
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx
	ctx = ctx.WithBlockTime(time.Unix(1_000, 0))

	authority := authtypes.NewModuleAddress(types.GovModuleName)
	authorityStr, err := addressCodec.BytesToString(authority)
	require.NoError(t, err)

	bankKeeper := NewMockBankKeeper()
	nftKeeper := NewMockNFTKeeper()

	k := keeper.NewKeeper(
		storeService,
		cdc,
		addressCodec,
		authority,
		bankKeeper,
		nftKeeper,
	)

	require.NoError(t, k.InitGenesis(ctx, types.GenesisState{Params: testParams()}))

	// The authority funds the pool in tests; give it plenty.
	bankKeeper.Balances[authority.String()] = sdk.NewCoins(sdk.NewInt64Coin("uagld", 1_000_000))

	return &fixture{
		ctx:          ctx,
		keeper:       k,
		addressCodec: addressCodec,
		bankKeeper:   bankKeeper,
		nftKeeper:    nftKeeper,
		authority:    authority,
		authorityStr: authorityStr,
	}
}

// setNow moves block time to the given unix second.
func (f *fixture) setNow(sec int64) {
	f.ctx = f.ctx.WithBlockTime(time.Unix(sec, 0))
}

// openStaking funds the pool and starts the clock at t=1100, leaving the
// fixture inside the signal window for epoch 1.
func (f *fixture) openStaking(t *testing.T, pool string) {
	t.Helper()
	ms := keeper.NewMsgServerImpl(f.keeper)
	_, err := ms.NotifyRewardAmount(f.ctx, &types.MsgNotifyRewardAmount{Authority: f.authorityStr, Amount: pool})
	require.NoError(t, err)
	_, err = ms.SetStartTime(f.ctx, &types.MsgSetStartTime{Authority: f.authorityStr, StartTime: 1_100})
	require.NoError(t, err)
}

func (f *fixture) newAddr(t *testing.T, seed string) (sdk.AccAddress, string) {
	t.Helper()
	addr := sdk.AccAddress([]byte(seed))
	str, err := f.addressCodec.BytesToString(addr)
	require.NoError(t, err)
	return addr, str
}
