package auction

import (
	"github.com/shery8595/fhe-auction-sub000/base/ctx"
)

// Verifier checks the decryption result produced by the confidential
// comparator against the ciphertext handles the auction accumulated during
// bidding. This is the single trust boundary of the protocol: the core only
// verifies proofs, it never computes the winner comparison itself.
//
// Verify returns nil on success, or one of domain.ErrInvalidIndex,
// domain.ErrInvalidProof, domain.ErrSignerMismatch.
type Verifier interface {
	Verify(ctx ctx.Ctx, a *Auction, payload *RevealPayload) error
}
