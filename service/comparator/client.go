package comparator

import (
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/shery8595/fhe-auction-sub000/base/ctx"
)

var (
	ErrStatusCodeNotOk = xerrors.Errorf("http.status != 200")
)

// FoldResult is the updated pair of running handles after one bid was folded.
type FoldResult struct {
	WinnerIndexHandle string `json:"winnerIndexHandle"`
	WinningBidHandle  string `json:"winningBidHandle"`
}

// Client talks to the confidential comparator. The comparator owns the
// ciphertext math; this side only stores the handles it returns and later
// verifies the attestation over them.
type Client interface {
	// FoldBid compares the incoming encrypted bid against the current running
	// maximum and returns the new running handles. Empty running handles mean
	// this is the first bid of the auction.
	FoldBid(ctx bCtx.Ctx, auctionId string, winnerIndexHandle, winningBidHandle string, bidderIndex int, encryptedAmountHandle string) (*FoldResult, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Endpoint   string
	Timeout    time.Duration
	Apikey     string
}
