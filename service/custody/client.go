package custody

import (
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/domain"
)

var (
	ErrStatusCodeNotOk = xerrors.Errorf("http.status != 200")
)

// Client is the bridge toward the custody service holding escrowed funds and
// deposited tokens. Every transfer is an external side effect, callers flip
// their own bookkeeping only after the bridge acked.
type Client interface {
	// DeployAuction provisions an escrow account for an approved request and
	// returns its address. The address doubles as the auction id.
	DeployAuction(ctx bCtx.Ctx, seller domain.Address, durationMinutes int64, minimumBid domain.WeiAmount) (domain.Address, error)
	// HoldsNFT reports whether the holder currently owns the given token.
	HoldsNFT(ctx bCtx.Ctx, contract domain.Address, tokenId domain.TokenId, holder domain.Address) (bool, error)
	// TransferNative moves native funds out of an escrow account.
	TransferNative(ctx bCtx.Ctx, from, to domain.Address, amount domain.WeiAmount) error
	// TransferNFT moves a deposited token out of an escrow account.
	TransferNFT(ctx bCtx.Ctx, contract domain.Address, tokenId domain.TokenId, from, to domain.Address) error
}

type ClientCfg struct {
	HttpClient http.Client
	Endpoint   string
	Timeout    time.Duration
	Apikey     string
}
