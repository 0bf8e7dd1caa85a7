package attestation

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	bCtx "github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/ethereum"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
)

func TestVerify(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	signerKey, signerPub, err := ethereum.GenerateKey()
	req.NoError(err)
	signerAddr := domain.Address(crypto.PubkeyToAddress(*signerPub).Hex())

	a := &auction.Auction{
		Id:                "0x000000000000000000000000000000000000a0c1",
		WinnerIndexHandle: "0xaaaa",
		WinningBidHandle:  "0xbbbb",
		BidderList: []domain.Address{
			"0x0000000000000000000000000000000000000001",
			"0x0000000000000000000000000000000000000002",
		},
	}
	payload := &auction.RevealPayload{
		AuctionId:       a.Id,
		WinnerIndex:     1,
		WinningBid:      "2000000000000000000",
		ReserveMet:      true,
		ClearValuesBlob: "0xdeadbeef",
	}

	sign := func(p *auction.RevealPayload) string {
		sig, err := crypto.Sign(accounts.TextHash(Message(a, p)), signerKey)
		req.NoError(err)
		return hexutil.Encode(sig)
	}

	v := NewVerifier(&VerifierCfg{TrustedSigners: []domain.Address{signerAddr}})

	t.Run("valid proof", func(t *testing.T) {
		p := *payload
		p.Proof = sign(&p)
		require.NoError(t, v.Verify(ctx, a, &p))
	})

	t.Run("index out of range", func(t *testing.T) {
		p := *payload
		p.WinnerIndex = len(a.BidderList)
		p.Proof = sign(&p)
		require.ErrorIs(t, v.Verify(ctx, a, &p), domain.ErrInvalidIndex)
	})

	t.Run("negative index", func(t *testing.T) {
		p := *payload
		p.WinnerIndex = -1
		require.ErrorIs(t, v.Verify(ctx, a, &p), domain.ErrInvalidIndex)
	})

	t.Run("tampered clear values", func(t *testing.T) {
		p := *payload
		p.Proof = sign(&p)
		p.WinningBid = "9000000000000000000"
		// the recovered address no longer matches any trusted signer
		require.ErrorIs(t, v.Verify(ctx, a, &p), domain.ErrSignerMismatch)
	})

	t.Run("malformed proof", func(t *testing.T) {
		p := *payload
		p.Proof = "0x1234"
		require.ErrorIs(t, v.Verify(ctx, a, &p), domain.ErrInvalidProof)
	})

	t.Run("untrusted signer", func(t *testing.T) {
		otherKey, _, err := ethereum.GenerateKey()
		require.NoError(t, err)
		p := *payload
		sig, err := crypto.Sign(accounts.TextHash(Message(a, &p)), otherKey)
		require.NoError(t, err)
		p.Proof = hexutil.Encode(sig)
		require.ErrorIs(t, v.Verify(ctx, a, &p), domain.ErrSignerMismatch)
	})
}
