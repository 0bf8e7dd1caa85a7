package usecase

import (
	"sync"
	"time"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/base/ptr"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
	"github.com/shery8595/fhe-auction-sub000/service/comparator"
	"github.com/shery8595/fhe-auction-sub000/service/custody"
)

type AuctionUseCaseCfg struct {
	AuctionRepo auction.Repo
	BidRepo     auction.BidRepo
	EventRepo   auction.EventRepo
	Custody     custody.Client
	Comparator  comparator.Client
	Verifier    auction.Verifier
	Emitter     auction.Emitter
}

type impl struct {
	auctionRepo auction.Repo
	bidRepo     auction.BidRepo
	eventRepo   auction.EventRepo
	custody     custody.Client
	comparator  comparator.Client
	verifier    auction.Verifier
	emitter     auction.Emitter

	// per-auction mutexes. placeBid's refund-then-accept and endAuction's
	// time check are check-then-act, every mutating op on one auction must
	// run alone. Different auctions never contend.
	locks sync.Map
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		auctionRepo: cfg.AuctionRepo,
		bidRepo:     cfg.BidRepo,
		eventRepo:   cfg.EventRepo,
		custody:     cfg.Custody,
		comparator:  cfg.Comparator,
		verifier:    cfg.Verifier,
		emitter:     cfg.Emitter,
	}
}

func (im *impl) lock(auctionId string) func() {
	v, _ := im.locks.LoadOrStore(domain.Address(auctionId).ToLowerStr(), &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (im *impl) Register(c ctx.Ctx, payload auction.RegisterPayload) (*auction.Auction, error) {
	if payload.Address.IsEmpty() || payload.Seller.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	if payload.DurationMinutes <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := payload.MinimumBid.Big(); !ok {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	a := &auction.Auction{
		Id:          payload.Address.ToLowerStr(),
		RequestId:   payload.RequestId,
		Seller:      payload.Seller,
		Title:       payload.Title,
		Description: payload.Description,
		MinimumBid:  payload.MinimumBid,
		StartTime:   now,
		EndTime:     now.Add(time.Duration(payload.DurationMinutes) * time.Minute),
		HasNFT:      !payload.NftContract.IsEmpty(),
		NftContract: payload.NftContract,
		NftTokenId:  payload.NftTokenId,
		BidderList:  []domain.Address{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := im.auctionRepo.Insert(c, a); err != nil {
		c.WithField("err", err).Error("auctionRepo.Insert failed")
		return nil, err
	}
	return a, nil
}

func (im *impl) Get(c ctx.Ctx, id string) (*auction.Auction, error) {
	return im.auctionRepo.FindOne(c, id)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	res, err := im.auctionRepo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("auctionRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetBid(c ctx.Ctx, id auction.BidId) (*auction.Bid, error) {
	return im.bidRepo.FindOne(c, id)
}

func (im *impl) ListBids(c ctx.Ctx, auctionId string) ([]*auction.Bid, error) {
	return im.bidRepo.FindAll(c, auctionId)
}

func (im *impl) Events(c ctx.Ctx, opts ...auction.EventFindAllOptionsFunc) ([]*auction.Event, error) {
	return im.eventRepo.FindAll(c, opts...)
}

func (im *impl) BidderCount(c ctx.Ctx, auctionId string) (int, error) {
	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return 0, err
	}
	return len(a.BidderList), nil
}

func (im *impl) DepositNFT(c ctx.Ctx, auctionId string, caller domain.Address) error {
	defer im.lock(auctionId)()

	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if !a.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}
	if !a.HasNFT {
		return domain.ErrInvalidInput
	}
	if a.Ended {
		return domain.ErrAlreadyEnded
	}
	if a.NftDeposited {
		return domain.ErrConflict
	}

	holds, err := im.custody.HoldsNFT(c, a.NftContract, a.NftTokenId, domain.Address(a.Id))
	if err != nil {
		return err
	}
	if !holds {
		return domain.ErrNFTNotReady
	}

	if err := im.auctionRepo.Update(c, a.Id, auction.Patchable{
		NftDeposited: ptr.Bool(true),
		UpdatedAt:    ptr.Time(time.Now()),
	}); err != nil {
		return err
	}

	im.emitter.Emit(c, &auction.Event{
		AuctionId: a.Id,
		Type:      auction.EventNFTDeposited,
		Account:   caller.ToLower(),
	})
	return nil
}

func (im *impl) SetReservePrice(c ctx.Ctx, auctionId string, caller domain.Address, handle string) error {
	defer im.lock(auctionId)()

	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if !a.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}
	if a.Ended {
		return domain.ErrAlreadyEnded
	}
	// set once, and only while nobody has bid against the old threshold
	if a.HasReservePrice || len(a.BidderList) > 0 {
		return domain.ErrConflict
	}
	if len(handle) == 0 {
		return domain.ErrInvalidInput
	}

	return im.auctionRepo.Update(c, a.Id, auction.Patchable{
		HasReservePrice: ptr.Bool(true),
		ReserveHandle:   &handle,
		UpdatedAt:       ptr.Time(time.Now()),
	})
}

func (im *impl) PlaceBid(c ctx.Ctx, payload auction.PlaceBidPayload) error {
	if payload.Bidder.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if len(payload.EncryptedAmountHandle) == 0 {
		return domain.ErrInvalidInput
	}
	escrow, ok := payload.Escrow.Big()
	if !ok || escrow.Sign() < 0 {
		return domain.ErrInvalidInput
	}

	defer im.lock(payload.AuctionId)()

	a, err := im.auctionRepo.FindOne(c, payload.AuctionId)
	if err != nil {
		return err
	}

	now := time.Now()
	if a.Ended || !now.Before(a.EndTime) {
		return domain.ErrAuctionExpired
	}
	if payload.Escrow.Cmp(a.MinimumBid) < 0 {
		return domain.ErrBelowMinimum
	}
	if a.HasNFT && !a.NftDeposited {
		return domain.ErrNFTNotReady
	}

	bidder := payload.Bidder.ToLower()
	bidderIndex := a.BidderIndex(bidder)
	isNewBidder := bidderIndex == -1
	if isNewBidder {
		bidderIndex = len(a.BidderList)
	}

	// fold before touching any state so a comparator failure rejects the
	// bid outright
	folded, err := im.comparator.FoldBid(c, a.Id, a.WinnerIndexHandle, a.WinningBidHandle, bidderIndex, payload.EncryptedAmountHandle)
	if err != nil {
		c.WithFields(log.Fields{
			"auctionId": a.Id,
			"bidder":    bidder,
			"err":       err,
		}).Error("comparator.FoldBid failed")
		return err
	}

	var prev *auction.Bid
	if !isNewBidder {
		prev, err = im.bidRepo.FindOne(c, auction.BidId{AuctionId: a.Id, Bidder: bidder})
		if err != nil {
			return err
		}
		// push-refund the stale escrow before accepting the replacement
		if !prev.Escrow.IsZero() {
			if err := im.custody.TransferNative(c, domain.Address(a.Id), bidder, prev.Escrow); err != nil {
				c.WithFields(log.Fields{
					"auctionId": a.Id,
					"bidder":    bidder,
					"err":       err,
				}).Error("refund of previous escrow failed")
				return err
			}
		}
	}

	bid := &auction.Bid{
		AuctionId:             a.Id,
		Bidder:                bidder,
		EncryptedAmountHandle: payload.EncryptedAmountHandle,
		Escrow:                payload.Escrow,
		PlacedAt:              now,
		UpdatedAt:             now,
	}
	if prev != nil {
		bid.PlacedAt = prev.PlacedAt
	}
	if err := im.bidRepo.Upsert(c, bid); err != nil {
		return err
	}

	patch := auction.Patchable{
		WinnerIndexHandle: &folded.WinnerIndexHandle,
		WinningBidHandle:  &folded.WinningBidHandle,
		UpdatedAt:         ptr.Time(now),
	}
	if isNewBidder {
		list := append(a.BidderList, bidder)
		patch.BidderList = &list
	}
	if err := im.auctionRepo.Update(c, a.Id, patch); err != nil {
		return err
	}

	im.emitter.Emit(c, &auction.Event{
		AuctionId: a.Id,
		Type:      auction.EventBidPlaced,
		Account:   bidder,
		Amount:    payload.Escrow,
	})
	return nil
}

func (im *impl) EndAuction(c ctx.Ctx, auctionId string) error {
	defer im.lock(auctionId)()

	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if a.Ended {
		return domain.ErrAlreadyEnded
	}
	if time.Now().Before(a.EndTime) {
		return domain.ErrStillActive
	}

	if err := im.auctionRepo.Update(c, a.Id, auction.Patchable{
		Ended:     ptr.Bool(true),
		UpdatedAt: ptr.Time(time.Now()),
	}); err != nil {
		return err
	}

	im.emitter.Emit(c, &auction.Event{
		AuctionId: a.Id,
		Type:      auction.EventAuctionEnded,
	})
	return nil
}

func (im *impl) RevealWinner(c ctx.Ctx, payload auction.RevealPayload) error {
	defer im.lock(payload.AuctionId)()

	a, err := im.auctionRepo.FindOne(c, payload.AuctionId)
	if err != nil {
		return err
	}
	if !a.Ended {
		return domain.ErrNotEnded
	}
	if a.WinnerRevealed {
		return domain.ErrAlreadyRevealed
	}
	if len(a.BidderList) == 0 {
		return domain.ErrNoBids
	}
	if _, ok := payload.WinningBid.Big(); !ok {
		return domain.ErrInvalidInput
	}

	if err := im.verifier.Verify(c, a, &payload); err != nil {
		c.WithFields(log.Fields{
			"auctionId":   a.Id,
			"winnerIndex": payload.WinnerIndex,
			"err":         err,
		}).Warn("reveal verification failed")
		return err
	}

	winner := a.BidderList[payload.WinnerIndex]
	patch := auction.Patchable{
		WinnerRevealed: ptr.Bool(true),
		Winner:         &winner,
		WinningBid:     &payload.WinningBid,
		UpdatedAt:      ptr.Time(time.Now()),
	}
	if a.HasReservePrice {
		patch.ReserveMet = ptr.Bool(payload.ReserveMet)
	}
	if err := im.auctionRepo.Update(c, a.Id, patch); err != nil {
		return err
	}

	im.emitter.Emit(c, &auction.Event{
		AuctionId: a.Id,
		Type:      auction.EventWinnerRevealed,
		Account:   winner,
		Amount:    payload.WinningBid,
	})
	return nil
}

func (im *impl) ClaimRefund(c ctx.Ctx, auctionId string, caller domain.Address) error {
	defer im.lock(auctionId)()

	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if !a.WinnerRevealed {
		return domain.ErrNotRevealed
	}
	if a.Winner.Equals(caller) {
		return domain.ErrIsWinner
	}

	bid, err := im.bidRepo.FindOne(c, auction.BidId{AuctionId: a.Id, Bidder: caller.ToLower()})
	if err == domain.ErrNotFound {
		return domain.ErrNotABidder
	} else if err != nil {
		return err
	}
	if bid.RefundClaimed {
		return domain.ErrAlreadyClaimed
	}

	// transfer first, flag only after success so a failed send stays
	// retryable
	if err := im.custody.TransferNative(c, domain.Address(a.Id), caller.ToLower(), bid.Escrow); err != nil {
		c.WithFields(log.Fields{
			"auctionId": a.Id,
			"bidder":    caller,
			"err":       err,
		}).Error("refund transfer failed")
		return err
	}

	if err := im.bidRepo.Update(c, auction.BidId{AuctionId: a.Id, Bidder: caller.ToLower()}, auction.BidPatchable{
		RefundClaimed: ptr.Bool(true),
		Escrow:        weiPtr(domain.ZeroWei),
		UpdatedAt:     ptr.Time(time.Now()),
	}); err != nil {
		return err
	}

	im.emitter.Emit(c, &auction.Event{
		AuctionId: a.Id,
		Type:      auction.EventRefundClaimed,
		Account:   caller.ToLower(),
		Amount:    bid.Escrow,
	})
	return nil
}

func (im *impl) ClaimPrize(c ctx.Ctx, auctionId string, caller domain.Address) error {
	defer im.lock(auctionId)()

	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if !a.WinnerRevealed {
		return domain.ErrNotRevealed
	}
	if !a.Winner.Equals(caller) {
		return domain.ErrNotWinner
	}
	if a.HasReservePrice && !a.ReserveMet {
		return domain.ErrReserveNotMet
	}
	if a.NftClaimed {
		return domain.ErrAlreadyClaimed
	}

	if a.HasNFT {
		if err := im.custody.TransferNFT(c, a.NftContract, a.NftTokenId, domain.Address(a.Id), a.Winner); err != nil {
			c.WithFields(log.Fields{
				"auctionId": a.Id,
				"winner":    a.Winner,
				"err":       err,
			}).Error("prize transfer failed")
			return err
		}
	}

	if err := im.auctionRepo.Update(c, a.Id, auction.Patchable{
		NftClaimed: ptr.Bool(true),
		UpdatedAt:  ptr.Time(time.Now()),
	}); err != nil {
		return err
	}

	im.emitter.Emit(c, &auction.Event{
		AuctionId: a.Id,
		Type:      auction.EventPrizeClaimed,
		Account:   a.Winner,
	})
	return nil
}

func (im *impl) ClaimPayment(c ctx.Ctx, auctionId string, caller domain.Address) error {
	defer im.lock(auctionId)()

	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if !a.WinnerRevealed {
		return domain.ErrNotRevealed
	}
	if !a.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}
	if a.HasReservePrice && !a.ReserveMet {
		return domain.ErrReserveNotMet
	}
	if a.SellerClaimed {
		return domain.ErrAlreadyClaimed
	}

	if err := im.custody.TransferNative(c, domain.Address(a.Id), a.Seller, a.WinningBid); err != nil {
		c.WithFields(log.Fields{
			"auctionId": a.Id,
			"seller":    a.Seller,
			"err":       err,
		}).Error("payment transfer failed")
		return err
	}

	if err := im.auctionRepo.Update(c, a.Id, auction.Patchable{
		SellerClaimed: ptr.Bool(true),
		UpdatedAt:     ptr.Time(time.Now()),
	}); err != nil {
		return err
	}

	im.emitter.Emit(c, &auction.Event{
		AuctionId: a.Id,
		Type:      auction.EventPaymentClaimed,
		Account:   a.Seller,
		Amount:    a.WinningBid,
	})
	return nil
}

func (im *impl) ReclaimNFT(c ctx.Ctx, auctionId string, caller domain.Address) error {
	defer im.lock(auctionId)()

	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if !a.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}
	if !a.HasNFT {
		return domain.ErrInvalidInput
	}
	if !a.WinnerRevealed {
		// the zero-bid branch: nothing to reveal, the seller takes the
		// NFT back once the auction ended
		if !a.Ended || len(a.BidderList) > 0 {
			return domain.ErrNotRevealed
		}
	} else if !a.HasReservePrice || a.ReserveMet {
		// a completed sale, the NFT belongs to the winner
		return domain.ErrReserveMet
	}
	if a.NftClaimed {
		return domain.ErrAlreadyClaimed
	}
	if !a.NftDeposited {
		return domain.ErrNFTNotReady
	}

	if err := im.custody.TransferNFT(c, a.NftContract, a.NftTokenId, domain.Address(a.Id), a.Seller); err != nil {
		c.WithFields(log.Fields{
			"auctionId": a.Id,
			"seller":    a.Seller,
			"err":       err,
		}).Error("nft reclaim transfer failed")
		return err
	}

	if err := im.auctionRepo.Update(c, a.Id, auction.Patchable{
		NftClaimed: ptr.Bool(true),
		UpdatedAt:  ptr.Time(time.Now()),
	}); err != nil {
		return err
	}

	im.emitter.Emit(c, &auction.Event{
		AuctionId: a.Id,
		Type:      auction.EventNFTReclaimed,
		Account:   a.Seller,
	})
	return nil
}

func weiPtr(w domain.WeiAmount) *domain.WeiAmount {
	return &w
}
