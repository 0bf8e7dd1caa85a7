package auction

import (
	"time"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/domain"
)

// Phase is derived from stored flags and the clock, never stored itself.
type Phase string

const (
	PhaseAwaitingDeposit Phase = "awaitingDeposit"
	PhaseActive          Phase = "active"
	PhaseExpired         Phase = "expired"
	PhasePendingReveal   Phase = "pendingReveal"
	PhaseRevealed        Phase = "revealed"
	PhaseSettled         Phase = "settled"
)

// Auction is one sealed-bid auction instance. Each instance owns its bid set,
// NFT custody flags and reserve state; there is no shared mutable state
// across auctions.
type Auction struct {
	Id          string           `json:"id" bson:"id"` // deployed auction address, lowercased
	RequestId   string           `json:"requestId" bson:"requestId"`
	Seller      domain.Address   `json:"seller" bson:"seller"`
	Title       string           `json:"title" bson:"title"`
	Description string           `json:"description" bson:"description"`
	MinimumBid  domain.WeiAmount `json:"minimumBid" bson:"minimumBid"`
	StartTime   time.Time        `json:"startTime" bson:"startTime"`
	EndTime     time.Time        `json:"endTime" bson:"endTime"`

	Ended          bool             `json:"ended" bson:"ended"`
	WinnerRevealed bool             `json:"winnerRevealed" bson:"winnerRevealed"`
	Winner         domain.Address   `json:"winner" bson:"winner"`
	WinningBid     domain.WeiAmount `json:"winningBid" bson:"winningBid"`

	HasReservePrice bool   `json:"hasReservePrice" bson:"hasReservePrice"`
	ReserveHandle   string `json:"reserveHandle" bson:"reserveHandle"`
	ReserveMet      bool   `json:"reserveMet" bson:"reserveMet"`

	HasNFT       bool           `json:"hasNft" bson:"hasNft"`
	NftContract  domain.Address `json:"nftContract" bson:"nftContract"`
	NftTokenId   domain.TokenId `json:"nftTokenId" bson:"nftTokenId"`
	NftDeposited bool           `json:"nftDeposited" bson:"nftDeposited"`
	NftClaimed   bool           `json:"nftClaimed" bson:"nftClaimed"`

	SellerClaimed bool `json:"sellerClaimed" bson:"sellerClaimed"`

	// Running ciphertext handles folded by the confidential comparator as
	// each bid lands. The reveal proof must bind to these exact handles.
	WinnerIndexHandle string `json:"winnerIndexHandle" bson:"winnerIndexHandle"`
	WinningBidHandle  string `json:"winningBidHandle" bson:"winningBidHandle"`

	// BidderList keeps distinct bidders in first-seen order. It is the
	// enumeration surface for the comparator; the revealed winner index
	// points into it. Never derived from the bid documents.
	BidderList []domain.Address `json:"bidderList" bson:"bidderList"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (a *Auction) LowerCase() {
	a.Id = string(domain.Address(a.Id).ToLower())
	a.Seller = a.Seller.ToLower()
	a.Winner = a.Winner.ToLower()
	a.NftContract = a.NftContract.ToLower()
	for i := range a.BidderList {
		a.BidderList[i] = a.BidderList[i].ToLower()
	}
}

// IsActiveAt reports whether bids are accepted at the given instant.
func (a *Auction) IsActiveAt(now time.Time) bool {
	if a.Ended || now.Before(a.StartTime) || !now.Before(a.EndTime) {
		return false
	}
	if a.HasNFT && !a.NftDeposited {
		return false
	}
	return true
}

func (a *Auction) PhaseAt(now time.Time) Phase {
	switch {
	case a.WinnerRevealed && a.settled():
		return PhaseSettled
	case a.WinnerRevealed:
		return PhaseRevealed
	case a.Ended:
		return PhasePendingReveal
	case !now.Before(a.EndTime):
		return PhaseExpired
	case a.HasNFT && !a.NftDeposited:
		return PhaseAwaitingDeposit
	default:
		return PhaseActive
	}
}

func (a *Auction) settled() bool {
	if a.HasReservePrice && !a.ReserveMet {
		// reserve-not-met auctions settle when the seller took the NFT back
		return !a.HasNFT || a.NftClaimed
	}
	if a.HasNFT && !a.NftClaimed {
		return false
	}
	return a.SellerClaimed
}

// BidderIndex returns the first-seen position of bidder, or -1.
func (a *Auction) BidderIndex(bidder domain.Address) int {
	for i, b := range a.BidderList {
		if b.Equals(bidder) {
			return i
		}
	}
	return -1
}

// Bid is the latest sealed bid of one bidder in one auction. A repeat bid
// from the same address replaces the handle and escrow in place.
type Bid struct {
	AuctionId             string           `json:"auctionId" bson:"auctionId"`
	Bidder                domain.Address   `json:"bidder" bson:"bidder"`
	EncryptedAmountHandle string           `json:"encryptedAmountHandle" bson:"encryptedAmountHandle"`
	Escrow                domain.WeiAmount `json:"escrow" bson:"escrow"`
	RefundClaimed         bool             `json:"refundClaimed" bson:"refundClaimed"`
	PlacedAt              time.Time        `json:"placedAt" bson:"placedAt"`
	UpdatedAt             time.Time        `json:"updatedAt" bson:"updatedAt"`
}

type BidId struct {
	AuctionId string         `json:"auctionId" bson:"auctionId"`
	Bidder    domain.Address `json:"bidder" bson:"bidder"`
}

type BidPatchable struct {
	EncryptedAmountHandle *string           `bson:"encryptedAmountHandle,omitempty"`
	Escrow                *domain.WeiAmount `bson:"escrow,omitempty"`
	RefundClaimed         *bool             `bson:"refundClaimed,omitempty"`
	UpdatedAt             *time.Time        `bson:"updatedAt,omitempty"`
}

// Patchable carries the mutable auction flags. Pointer fields so MakeBsonM
// only patches what a transition actually changed.
type Patchable struct {
	Ended             *bool             `bson:"ended,omitempty"`
	WinnerRevealed    *bool             `bson:"winnerRevealed,omitempty"`
	Winner            *domain.Address   `bson:"winner,omitempty"`
	WinningBid        *domain.WeiAmount `bson:"winningBid,omitempty"`
	ReserveMet        *bool             `bson:"reserveMet,omitempty"`
	ReserveHandle     *string           `bson:"reserveHandle,omitempty"`
	HasReservePrice   *bool             `bson:"hasReservePrice,omitempty"`
	NftDeposited      *bool             `bson:"nftDeposited,omitempty"`
	NftClaimed        *bool             `bson:"nftClaimed,omitempty"`
	SellerClaimed     *bool             `bson:"sellerClaimed,omitempty"`
	WinnerIndexHandle *string           `bson:"winnerIndexHandle,omitempty"`
	WinningBidHandle  *string           `bson:"winningBidHandle,omitempty"`
	BidderList        *[]domain.Address `bson:"bidderList,omitempty"`
	UpdatedAt         *time.Time        `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Seller    *domain.Address
	Bidder    *domain.Address
	Ended     *bool
	Revealed  *bool
	EndTimeLT *time.Time
	Offset    *int32
	Limit     *int32
	SortDir   *domain.SortDir
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		seller = seller.ToLower()
		options.Seller = &seller
		return nil
	}
}

func WithBidder(bidder domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		bidder = bidder.ToLower()
		options.Bidder = &bidder
		return nil
	}
}

func WithEnded(ended bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Ended = &ended
		return nil
	}
}

func WithRevealed(revealed bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Revealed = &revealed
		return nil
	}
}

func WithEndTimeLT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeLT = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(dir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortDir = &dir
		return nil
	}
}

type Repo interface {
	Insert(ctx ctx.Ctx, a *Auction) error
	FindOne(ctx ctx.Ctx, id string) (*Auction, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Update(ctx ctx.Ctx, id string, patchable Patchable) error
}

type BidRepo interface {
	FindOne(ctx ctx.Ctx, id BidId) (*Bid, error)
	FindAll(ctx ctx.Ctx, auctionId string) ([]*Bid, error)
	Upsert(ctx ctx.Ctx, bid *Bid) error
	Update(ctx ctx.Ctx, id BidId, patchable BidPatchable) error
	Count(ctx ctx.Ctx, auctionId string) (int, error)
}

type RegisterPayload struct {
	Address         domain.Address
	RequestId       string
	Seller          domain.Address
	Title           string
	Description     string
	DurationMinutes int64
	MinimumBid      domain.WeiAmount
	NftContract     domain.Address
	NftTokenId      domain.TokenId
}

type PlaceBidPayload struct {
	AuctionId             string           `json:"auctionId"`
	Bidder                domain.Address   `json:"bidder"`
	EncryptedAmountHandle string           `json:"encryptedAmountHandle"`
	Escrow                domain.WeiAmount `json:"escrow"`
}

type RevealPayload struct {
	AuctionId       string           `json:"auctionId"`
	WinnerIndex     int              `json:"winnerIndex"`
	WinningBid      domain.WeiAmount `json:"winningBid"`
	ReserveMet      bool             `json:"reserveMet"`
	ClearValuesBlob string           `json:"clearValuesBlob"`
	Proof           string           `json:"proof"`
}

type UseCase interface {
	Register(ctx ctx.Ctx, payload RegisterPayload) (*Auction, error)
	Get(ctx ctx.Ctx, id string) (*Auction, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	GetBid(ctx ctx.Ctx, id BidId) (*Bid, error)
	ListBids(ctx ctx.Ctx, auctionId string) ([]*Bid, error)
	BidderCount(ctx ctx.Ctx, auctionId string) (int, error)
	Events(ctx ctx.Ctx, opts ...EventFindAllOptionsFunc) ([]*Event, error)

	DepositNFT(ctx ctx.Ctx, auctionId string, caller domain.Address) error
	SetReservePrice(ctx ctx.Ctx, auctionId string, caller domain.Address, handle string) error
	PlaceBid(ctx ctx.Ctx, payload PlaceBidPayload) error
	EndAuction(ctx ctx.Ctx, auctionId string) error
	RevealWinner(ctx ctx.Ctx, payload RevealPayload) error

	ClaimRefund(ctx ctx.Ctx, auctionId string, caller domain.Address) error
	ClaimPrize(ctx ctx.Ctx, auctionId string, caller domain.Address) error
	ClaimPayment(ctx ctx.Ctx, auctionId string, caller domain.Address) error
	ReclaimNFT(ctx ctx.Ctx, auctionId string, caller domain.Address) error
}
