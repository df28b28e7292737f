package types

import (
	"context"

	"cosmossdk.io/x/nft"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// NFTKeeper defines the expected interface for the x/nft module, which holds
// one class per bag collection and answers ownership queries.
type NFTKeeper interface {
	HasNFT(ctx context.Context, classID, nftID string) bool
	GetOwner(ctx context.Context, classID, nftID string) sdk.AccAddress
	GetNFT(ctx context.Context, classID, nftID string) (nft.NFT, bool)
}
