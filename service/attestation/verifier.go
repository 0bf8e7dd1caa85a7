package attestation

import (
	"fmt"

	bCtx "github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/ethereum"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
)

type VerifierCfg struct {
	// TrustedSigners are the comparator enclave keys allowed to attest
	// decryption results.
	TrustedSigners []domain.Address
}

type verifier struct {
	trusted map[domain.Address]struct{}
}

func NewVerifier(cfg *VerifierCfg) auction.Verifier {
	trusted := map[domain.Address]struct{}{}
	for _, s := range cfg.TrustedSigners {
		trusted[s.ToLower()] = struct{}{}
	}
	return &verifier{trusted: trusted}
}

func (v *verifier) Verify(ctx bCtx.Ctx, a *auction.Auction, payload *auction.RevealPayload) error {
	if payload.WinnerIndex < 0 || payload.WinnerIndex >= len(a.BidderList) {
		return domain.ErrInvalidIndex
	}

	signer, err := ethereum.RecoverMsgSigner(Message(a, payload), payload.Proof)
	if err != nil {
		ctx.WithFields(log.Fields{"auctionId": a.Id, "err": err}).Warn("proof recovery failed")
		return domain.ErrInvalidProof
	}

	addr := domain.Address(signer.Hex()).ToLower()
	if _, ok := v.trusted[addr]; !ok {
		ctx.WithFields(log.Fields{"auctionId": a.Id, "signer": addr}).Warn("untrusted attestation signer")
		return domain.ErrSignerMismatch
	}
	return nil
}

// Message builds the canonical attestation payload. The signature must bind
// the clear values to the exact handles the auction accumulated, otherwise a
// reveal could replay a result computed over different bids.
func Message(a *auction.Auction, payload *auction.RevealPayload) []byte {
	return []byte(fmt.Sprintf(
		"%s|%s|%s|%d|%s|%t|%s",
		a.Id,
		a.WinnerIndexHandle,
		a.WinningBidHandle,
		payload.WinnerIndex,
		payload.WinningBid,
		payload.ReserveMet,
		payload.ClearValuesBlob,
	))
}
