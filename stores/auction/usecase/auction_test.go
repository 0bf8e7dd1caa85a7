package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
	mAuction "github.com/shery8595/fhe-auction-sub000/domain/auction/mocks"
	"github.com/shery8595/fhe-auction-sub000/service/comparator"
	mComparator "github.com/shery8595/fhe-auction-sub000/service/comparator/mocks"
	mCustody "github.com/shery8595/fhe-auction-sub000/service/custody/mocks"
)

var (
	auctionId  = "0x1a01ecd2263a9d5b5967667e508ea22db478bc4b"
	seller     = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bidderA    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	bidderB    = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	nftAddr    = domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	nftTokenId = domain.TokenId("7")
)

type testDeps struct {
	auctionRepo *mAuction.Repo
	bidRepo     *mAuction.BidRepo
	custody     *mCustody.Client
	comparator  *mComparator.Client
	verifier    *mAuction.Verifier
	emitter     *mAuction.Emitter
	uc          auction.UseCase
}

func newTestDeps() *testDeps {
	d := &testDeps{
		auctionRepo: new(mAuction.Repo),
		bidRepo:     new(mAuction.BidRepo),
		custody:     new(mCustody.Client),
		comparator:  new(mComparator.Client),
		verifier:    new(mAuction.Verifier),
		emitter:     new(mAuction.Emitter),
	}
	d.emitter.On("Emit", mock.Anything, mock.Anything).Return().Maybe()
	d.uc = New(&AuctionUseCaseCfg{
		AuctionRepo: d.auctionRepo,
		BidRepo:     d.bidRepo,
		Custody:     d.custody,
		Comparator:  d.comparator,
		Verifier:    d.verifier,
		Emitter:     d.emitter,
	})
	return d
}

func activeAuction() *auction.Auction {
	now := time.Now()
	return &auction.Auction{
		Id:         auctionId,
		Seller:     seller,
		Title:      "rare punk",
		MinimumBid: "100",
		StartTime:  now.Add(-time.Hour),
		EndTime:    now.Add(time.Hour),
		BidderList: []domain.Address{},
	}
}

func TestPlaceBid(t *testing.T) {
	_ctx := ctx.Background()

	t.Run("first bid appends bidder and folds handles", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		a := activeAuction()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)
		d.comparator.On("FoldBid", mock.Anything, auctionId, "", "", 0, "0xhandleA").
			Return(&comparator.FoldResult{WinnerIndexHandle: "0xw1", WinningBidHandle: "0xb1"}, nil)
		d.bidRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
			return b.Bidder == bidderA && b.Escrow == domain.WeiAmount("100")
		})).Return(nil)
		d.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
			return p.BidderList != nil && len(*p.BidderList) == 1 && (*p.BidderList)[0] == bidderA &&
				p.WinnerIndexHandle != nil && *p.WinnerIndexHandle == "0xw1"
		})).Return(nil)

		err := d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{
			AuctionId:             auctionId,
			Bidder:                bidderA,
			EncryptedAmountHandle: "0xhandleA",
			Escrow:                "100",
		})
		req.NoError(err)
		d.custody.AssertNotCalled(t, "TransferNative", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.bidRepo.AssertExpectations(t)
		d.auctionRepo.AssertExpectations(t)
	})

	t.Run("repeat bid refunds previous escrow exactly once", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		a := activeAuction()
		a.BidderList = []domain.Address{bidderA}
		a.WinnerIndexHandle = "0xw1"
		a.WinningBidHandle = "0xb1"
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)
		d.comparator.On("FoldBid", mock.Anything, auctionId, "0xw1", "0xb1", 0, "0xhandleA2").
			Return(&comparator.FoldResult{WinnerIndexHandle: "0xw2", WinningBidHandle: "0xb2"}, nil)
		d.bidRepo.On("FindOne", mock.Anything, auction.BidId{AuctionId: auctionId, Bidder: bidderA}).
			Return(&auction.Bid{AuctionId: auctionId, Bidder: bidderA, Escrow: "100"}, nil)
		d.custody.On("TransferNative", mock.Anything, domain.Address(auctionId), bidderA, domain.WeiAmount("100")).
			Return(nil).Once()
		d.bidRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
			return b.Bidder == bidderA && b.Escrow == domain.WeiAmount("150") && b.EncryptedAmountHandle == "0xhandleA2"
		})).Return(nil)
		d.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
			// bidder list must not grow on a repeat bid
			return p.BidderList == nil && p.WinnerIndexHandle != nil && *p.WinnerIndexHandle == "0xw2"
		})).Return(nil)

		err := d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{
			AuctionId:             auctionId,
			Bidder:                bidderA,
			EncryptedAmountHandle: "0xhandleA2",
			Escrow:                "150",
		})
		req.NoError(err)
		d.custody.AssertExpectations(t)
	})

	t.Run("expired", func(t *testing.T) {
		d := newTestDeps()
		a := activeAuction()
		a.EndTime = time.Now().Add(-time.Minute)
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

		err := d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{
			AuctionId:             auctionId,
			Bidder:                bidderA,
			EncryptedAmountHandle: "0xh",
			Escrow:                "1000000",
		})
		require.ErrorIs(t, err, domain.ErrAuctionExpired)
	})

	t.Run("ended flag blocks bids before endTime", func(t *testing.T) {
		d := newTestDeps()
		a := activeAuction()
		a.Ended = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

		err := d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{
			AuctionId:             auctionId,
			Bidder:                bidderA,
			EncryptedAmountHandle: "0xh",
			Escrow:                "100",
		})
		require.ErrorIs(t, err, domain.ErrAuctionExpired)
	})

	t.Run("below minimum", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(activeAuction(), nil)

		err := d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{
			AuctionId:             auctionId,
			Bidder:                bidderA,
			EncryptedAmountHandle: "0xh",
			Escrow:                "99",
		})
		require.ErrorIs(t, err, domain.ErrBelowMinimum)
	})

	t.Run("nft not deposited", func(t *testing.T) {
		d := newTestDeps()
		a := activeAuction()
		a.HasNFT = true
		a.NftContract = nftAddr
		a.NftTokenId = nftTokenId
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

		err := d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{
			AuctionId:             auctionId,
			Bidder:                bidderA,
			EncryptedAmountHandle: "0xh",
			Escrow:                "100000000",
		})
		require.ErrorIs(t, err, domain.ErrNFTNotReady)
	})

	t.Run("comparator failure rejects the bid untouched", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(activeAuction(), nil)
		d.comparator.On("FoldBid", mock.Anything, auctionId, "", "", 0, "0xh").
			Return(nil, errors.New("comparator down"))

		err := d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{
			AuctionId:             auctionId,
			Bidder:                bidderA,
			EncryptedAmountHandle: "0xh",
			Escrow:                "100",
		})
		require.Error(t, err)
		d.bidRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		d.auctionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed escrow", func(t *testing.T) {
		d := newTestDeps()
		err := d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{
			AuctionId:             auctionId,
			Bidder:                bidderA,
			EncryptedAmountHandle: "0xh",
			Escrow:                "not-a-number",
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEndAuction(t *testing.T) {
	_ctx := ctx.Background()

	t.Run("still active", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(activeAuction(), nil)

		require.ErrorIs(t, d.uc.EndAuction(_ctx, auctionId), domain.ErrStillActive)
	})

	t.Run("ends after expiry, replay fails", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		a := activeAuction()
		a.EndTime = time.Now().Add(-time.Minute)
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil).Once()
		d.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
			return p.Ended != nil && *p.Ended
		})).Return(nil).Once()

		req.NoError(d.uc.EndAuction(_ctx, auctionId))

		ended := *a
		ended.Ended = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(&ended, nil).Once()
		req.ErrorIs(d.uc.EndAuction(_ctx, auctionId), domain.ErrAlreadyEnded)
	})
}

func TestRevealWinner(t *testing.T) {
	_ctx := ctx.Background()

	endedAuction := func() *auction.Auction {
		a := activeAuction()
		a.EndTime = time.Now().Add(-time.Minute)
		a.Ended = true
		a.BidderList = []domain.Address{bidderA, bidderB}
		a.WinnerIndexHandle = "0xw"
		a.WinningBidHandle = "0xb"
		return a
	}

	payload := auction.RevealPayload{
		AuctionId:   auctionId,
		WinnerIndex: 1,
		WinningBid:  "150",
		Proof:       "0xproof",
	}

	t.Run("not ended", func(t *testing.T) {
		d := newTestDeps()
		a := endedAuction()
		a.Ended = false
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

		require.ErrorIs(t, d.uc.RevealWinner(_ctx, payload), domain.ErrNotEnded)
	})

	t.Run("already revealed", func(t *testing.T) {
		d := newTestDeps()
		a := endedAuction()
		a.WinnerRevealed = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

		require.ErrorIs(t, d.uc.RevealWinner(_ctx, payload), domain.ErrAlreadyRevealed)
	})

	t.Run("no bids", func(t *testing.T) {
		d := newTestDeps()
		a := endedAuction()
		a.BidderList = nil
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

		require.ErrorIs(t, d.uc.RevealWinner(_ctx, payload), domain.ErrNoBids)
	})

	t.Run("verifier rejection passes through", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(endedAuction(), nil)
		d.verifier.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrInvalidIndex)

		require.ErrorIs(t, d.uc.RevealWinner(_ctx, payload), domain.ErrInvalidIndex)
		d.auctionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("resolves winner and reserve", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		a := endedAuction()
		a.HasReservePrice = true
		a.ReserveHandle = "0xr"
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)
		d.verifier.On("Verify", mock.Anything, a, mock.Anything).Return(nil)
		d.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
			return p.WinnerRevealed != nil && *p.WinnerRevealed &&
				p.Winner != nil && *p.Winner == bidderB &&
				p.WinningBid != nil && *p.WinningBid == domain.WeiAmount("150") &&
				p.ReserveMet != nil && *p.ReserveMet
		})).Return(nil)

		pl := payload
		pl.ReserveMet = true
		req.NoError(d.uc.RevealWinner(_ctx, pl))
		d.auctionRepo.AssertExpectations(t)
	})
}

func TestClaims(t *testing.T) {
	_ctx := ctx.Background()

	revealedAuction := func() *auction.Auction {
		a := activeAuction()
		a.EndTime = time.Now().Add(-time.Hour)
		a.Ended = true
		a.BidderList = []domain.Address{bidderA, bidderB}
		a.WinnerRevealed = true
		a.Winner = bidderB
		a.WinningBid = "150"
		return a
	}

	t.Run("winner cannot claim refund", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(revealedAuction(), nil)

		require.ErrorIs(t, d.uc.ClaimRefund(_ctx, auctionId, bidderB), domain.ErrIsWinner)
	})

	t.Run("non bidder cannot claim refund", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(revealedAuction(), nil)
		d.bidRepo.On("FindOne", mock.Anything, auction.BidId{AuctionId: auctionId, Bidder: seller.ToLower()}).
			Return(nil, domain.ErrNotFound)

		require.ErrorIs(t, d.uc.ClaimRefund(_ctx, auctionId, seller), domain.ErrNotABidder)
	})

	t.Run("refund transfers escrow then zeroes it", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(revealedAuction(), nil)
		d.bidRepo.On("FindOne", mock.Anything, auction.BidId{AuctionId: auctionId, Bidder: bidderA}).
			Return(&auction.Bid{AuctionId: auctionId, Bidder: bidderA, Escrow: "100"}, nil)
		d.custody.On("TransferNative", mock.Anything, domain.Address(auctionId), bidderA, domain.WeiAmount("100")).
			Return(nil).Once()
		d.bidRepo.On("Update", mock.Anything, auction.BidId{AuctionId: auctionId, Bidder: bidderA},
			mock.MatchedBy(func(p auction.BidPatchable) bool {
				return p.RefundClaimed != nil && *p.RefundClaimed && p.Escrow != nil && *p.Escrow == domain.ZeroWei
			})).Return(nil).Once()

		req.NoError(d.uc.ClaimRefund(_ctx, auctionId, bidderA))
		d.custody.AssertExpectations(t)
		d.bidRepo.AssertExpectations(t)
	})

	t.Run("refund replay fails", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(revealedAuction(), nil)
		d.bidRepo.On("FindOne", mock.Anything, auction.BidId{AuctionId: auctionId, Bidder: bidderA}).
			Return(&auction.Bid{AuctionId: auctionId, Bidder: bidderA, Escrow: "0", RefundClaimed: true}, nil)

		require.ErrorIs(t, d.uc.ClaimRefund(_ctx, auctionId, bidderA), domain.ErrAlreadyClaimed)
	})

	t.Run("failed refund transfer leaves bid claimable", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(revealedAuction(), nil)
		d.bidRepo.On("FindOne", mock.Anything, auction.BidId{AuctionId: auctionId, Bidder: bidderA}).
			Return(&auction.Bid{AuctionId: auctionId, Bidder: bidderA, Escrow: "100"}, nil)
		d.custody.On("TransferNative", mock.Anything, domain.Address(auctionId), bidderA, domain.WeiAmount("100")).
			Return(errors.New("bridge down"))

		require.Error(t, d.uc.ClaimRefund(_ctx, auctionId, bidderA))
		d.bidRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("claims require reveal", func(t *testing.T) {
		d := newTestDeps()
		a := revealedAuction()
		a.WinnerRevealed = false
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

		require.ErrorIs(t, d.uc.ClaimRefund(_ctx, auctionId, bidderA), domain.ErrNotRevealed)
		require.ErrorIs(t, d.uc.ClaimPrize(_ctx, auctionId, bidderB), domain.ErrNotRevealed)
		require.ErrorIs(t, d.uc.ClaimPayment(_ctx, auctionId, seller), domain.ErrNotRevealed)
	})

	t.Run("loser cannot claim prize", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(revealedAuction(), nil)

		require.ErrorIs(t, d.uc.ClaimPrize(_ctx, auctionId, bidderA), domain.ErrNotWinner)
	})

	t.Run("prize transfers nft once", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		a := revealedAuction()
		a.HasNFT = true
		a.NftContract = nftAddr
		a.NftTokenId = nftTokenId
		a.NftDeposited = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil).Once()
		d.custody.On("TransferNFT", mock.Anything, nftAddr, nftTokenId, domain.Address(auctionId), bidderB).
			Return(nil).Once()
		d.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
			return p.NftClaimed != nil && *p.NftClaimed
		})).Return(nil).Once()

		req.NoError(d.uc.ClaimPrize(_ctx, auctionId, bidderB))

		claimed := *a
		claimed.NftClaimed = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(&claimed, nil).Once()
		req.ErrorIs(d.uc.ClaimPrize(_ctx, auctionId, bidderB), domain.ErrAlreadyClaimed)
		d.custody.AssertExpectations(t)
	})

	t.Run("payment pays winning bid to seller once", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		a := revealedAuction()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil).Once()
		d.custody.On("TransferNative", mock.Anything, domain.Address(auctionId), seller, domain.WeiAmount("150")).
			Return(nil).Once()
		d.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
			return p.SellerClaimed != nil && *p.SellerClaimed
		})).Return(nil).Once()

		req.NoError(d.uc.ClaimPayment(_ctx, auctionId, seller))

		claimed := *a
		claimed.SellerClaimed = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(&claimed, nil).Once()
		req.ErrorIs(d.uc.ClaimPayment(_ctx, auctionId, seller), domain.ErrAlreadyClaimed)
		d.custody.AssertExpectations(t)
	})

	t.Run("payment requires seller", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(revealedAuction(), nil)

		require.ErrorIs(t, d.uc.ClaimPayment(_ctx, auctionId, bidderB), domain.ErrNotSeller)
	})

	t.Run("reserve gating", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		a := revealedAuction()
		a.HasReservePrice = true
		a.ReserveMet = false
		a.HasNFT = true
		a.NftContract = nftAddr
		a.NftTokenId = nftTokenId
		a.NftDeposited = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil).Times(3)

		req.ErrorIs(d.uc.ClaimPrize(_ctx, auctionId, bidderB), domain.ErrReserveNotMet)
		req.ErrorIs(d.uc.ClaimPayment(_ctx, auctionId, seller), domain.ErrReserveNotMet)

		// the reclaim path is the one that must succeed, exactly once
		d.custody.On("TransferNFT", mock.Anything, nftAddr, nftTokenId, domain.Address(auctionId), seller).
			Return(nil).Once()
		d.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
			return p.NftClaimed != nil && *p.NftClaimed
		})).Return(nil).Once()
		req.NoError(d.uc.ReclaimNFT(_ctx, auctionId, seller))

		reclaimed := *a
		reclaimed.NftClaimed = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(&reclaimed, nil).Once()
		req.ErrorIs(d.uc.ReclaimNFT(_ctx, auctionId, seller), domain.ErrAlreadyClaimed)
	})

	t.Run("reclaim fails when sale completed", func(t *testing.T) {
		d := newTestDeps()
		a := revealedAuction()
		a.HasNFT = true
		a.NftContract = nftAddr
		a.NftTokenId = nftTokenId
		a.NftDeposited = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

		require.ErrorIs(t, d.uc.ReclaimNFT(_ctx, auctionId, seller), domain.ErrReserveMet)
	})

	t.Run("reclaim allowed for zero-bid auction", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		a := activeAuction()
		a.EndTime = time.Now().Add(-time.Hour)
		a.Ended = true
		a.HasNFT = true
		a.NftContract = nftAddr
		a.NftTokenId = nftTokenId
		a.NftDeposited = true
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)
		d.custody.On("TransferNFT", mock.Anything, nftAddr, nftTokenId, domain.Address(auctionId), seller).
			Return(nil).Once()
		d.auctionRepo.On("Update", mock.Anything, auctionId, mock.Anything).Return(nil).Once()

		req.NoError(d.uc.ReclaimNFT(_ctx, auctionId, seller))
	})

	t.Run("reclaim blocked while reveal pending", func(t *testing.T) {
		d := newTestDeps()
		a := activeAuction()
		a.EndTime = time.Now().Add(-time.Hour)
		a.Ended = true
		a.HasNFT = true
		a.NftContract = nftAddr
		a.NftDeposited = true
		a.BidderList = []domain.Address{bidderA}
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

		require.ErrorIs(t, d.uc.ReclaimNFT(_ctx, auctionId, seller), domain.ErrNotRevealed)
	})
}

func TestDepositNFT(t *testing.T) {
	_ctx := ctx.Background()

	nftAuction := func() *auction.Auction {
		a := activeAuction()
		a.HasNFT = true
		a.NftContract = nftAddr
		a.NftTokenId = nftTokenId
		return a
	}

	t.Run("seller only", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(nftAuction(), nil)

		require.ErrorIs(t, d.uc.DepositNFT(_ctx, auctionId, bidderA), domain.ErrNotSeller)
	})

	t.Run("custody must hold the token", func(t *testing.T) {
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(nftAuction(), nil)
		d.custody.On("HoldsNFT", mock.Anything, nftAddr, nftTokenId, domain.Address(auctionId)).Return(false, nil)

		require.ErrorIs(t, d.uc.DepositNFT(_ctx, auctionId, seller), domain.ErrNFTNotReady)
	})

	t.Run("marks deposited", func(t *testing.T) {
		req := require.New(t)
		d := newTestDeps()
		d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(nftAuction(), nil)
		d.custody.On("HoldsNFT", mock.Anything, nftAddr, nftTokenId, domain.Address(auctionId)).Return(true, nil)
		d.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
			return p.NftDeposited != nil && *p.NftDeposited
		})).Return(nil).Once()

		req.NoError(d.uc.DepositNFT(_ctx, auctionId, seller))
	})
}

func TestFullSettlementScenario(t *testing.T) {
	// minimumBid=100, A escrows 100, B escrows 150, B wins with 150
	req := require.New(t)
	_ctx := ctx.Background()
	d := newTestDeps()

	state := activeAuction()
	d.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(func(ctx.Ctx, string) *auction.Auction {
		cp := *state
		return &cp
	}, nil)
	d.auctionRepo.On("Update", mock.Anything, auctionId, mock.Anything).Return(func(_ ctx.Ctx, _ string, p auction.Patchable) error {
		if p.BidderList != nil {
			state.BidderList = *p.BidderList
		}
		if p.WinnerIndexHandle != nil {
			state.WinnerIndexHandle = *p.WinnerIndexHandle
		}
		if p.WinningBidHandle != nil {
			state.WinningBidHandle = *p.WinningBidHandle
		}
		if p.Ended != nil {
			state.Ended = *p.Ended
		}
		if p.WinnerRevealed != nil {
			state.WinnerRevealed = *p.WinnerRevealed
		}
		if p.Winner != nil {
			state.Winner = *p.Winner
		}
		if p.WinningBid != nil {
			state.WinningBid = *p.WinningBid
		}
		if p.NftClaimed != nil {
			state.NftClaimed = *p.NftClaimed
		}
		if p.SellerClaimed != nil {
			state.SellerClaimed = *p.SellerClaimed
		}
		return nil
	})

	bids := map[domain.Address]*auction.Bid{}
	d.bidRepo.On("Upsert", mock.Anything, mock.Anything).Return(func(_ ctx.Ctx, b *auction.Bid) error {
		cp := *b
		bids[b.Bidder] = &cp
		return nil
	})
	d.bidRepo.On("FindOne", mock.Anything, mock.Anything).Return(func(_ ctx.Ctx, id auction.BidId) *auction.Bid {
		if b, ok := bids[id.Bidder]; ok {
			cp := *b
			return &cp
		}
		return nil
	}, func(_ ctx.Ctx, id auction.BidId) error {
		if _, ok := bids[id.Bidder]; !ok {
			return domain.ErrNotFound
		}
		return nil
	})
	d.bidRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(func(_ ctx.Ctx, id auction.BidId, p auction.BidPatchable) error {
		b := bids[id.Bidder]
		if p.RefundClaimed != nil {
			b.RefundClaimed = *p.RefundClaimed
		}
		if p.Escrow != nil {
			b.Escrow = *p.Escrow
		}
		return nil
	})

	d.comparator.On("FoldBid", mock.Anything, auctionId, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&comparator.FoldResult{WinnerIndexHandle: "0xw", WinningBidHandle: "0xb"}, nil)
	d.verifier.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req.NoError(d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{AuctionId: auctionId, Bidder: bidderA, EncryptedAmountHandle: "0xa", Escrow: "100"}))
	req.NoError(d.uc.PlaceBid(_ctx, auction.PlaceBidPayload{AuctionId: auctionId, Bidder: bidderB, EncryptedAmountHandle: "0xb", Escrow: "150"}))
	req.Equal([]domain.Address{bidderA, bidderB}, state.BidderList)

	state.EndTime = time.Now().Add(-time.Second)
	req.NoError(d.uc.EndAuction(_ctx, auctionId))
	req.ErrorIs(d.uc.EndAuction(_ctx, auctionId), domain.ErrAlreadyEnded)

	req.NoError(d.uc.RevealWinner(_ctx, auction.RevealPayload{AuctionId: auctionId, WinnerIndex: 1, WinningBid: "150", Proof: "0xp"}))
	req.Equal(bidderB, state.Winner)

	// B claims the prize once
	req.NoError(d.uc.ClaimPrize(_ctx, auctionId, bidderB))
	req.ErrorIs(d.uc.ClaimPrize(_ctx, auctionId, bidderB), domain.ErrAlreadyClaimed)

	// A gets the 100 refund once
	d.custody.On("TransferNative", mock.Anything, domain.Address(auctionId), bidderA, domain.WeiAmount("100")).Return(nil).Once()
	req.NoError(d.uc.ClaimRefund(_ctx, auctionId, bidderA))
	req.ErrorIs(d.uc.ClaimRefund(_ctx, auctionId, bidderA), domain.ErrAlreadyClaimed)

	// seller collects 150 once
	d.custody.On("TransferNative", mock.Anything, domain.Address(auctionId), seller, domain.WeiAmount("150")).Return(nil).Once()
	req.NoError(d.uc.ClaimPayment(_ctx, auctionId, seller))
	req.ErrorIs(d.uc.ClaimPayment(_ctx, auctionId, seller), domain.ErrAlreadyClaimed)

	d.custody.AssertExpectations(t)
}
