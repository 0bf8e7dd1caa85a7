package auctionrequest

import (
	"time"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/domain"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// AuctionRequest is the admission record a seller submits before an auction
// instance is deployed. Approved and Rejected are terminal; DeployedAuction
// is set exactly once, during approval.
type AuctionRequest struct {
	Id              string           `json:"id" bson:"id"`
	Seller          domain.Address   `json:"seller" bson:"seller"`
	Title           string           `json:"title" bson:"title"`
	Description     string           `json:"description" bson:"description"`
	DurationMinutes int64            `json:"durationMinutes" bson:"durationMinutes"`
	MinimumBid      domain.WeiAmount `json:"minimumBid" bson:"minimumBid"`
	NftContract     domain.Address   `json:"nftContract" bson:"nftContract"`
	NftTokenId      domain.TokenId   `json:"nftTokenId" bson:"nftTokenId"`
	Status          Status           `json:"status" bson:"status"`
	DeployedAuction domain.Address   `json:"deployedAuction" bson:"deployedAuction"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
}

func (r *AuctionRequest) HasNFT() bool {
	return !r.NftContract.IsEmpty()
}

func (r *AuctionRequest) LowerCase() {
	r.Seller = r.Seller.ToLower()
	r.NftContract = r.NftContract.ToLower()
	r.DeployedAuction = r.DeployedAuction.ToLower()
}

// RegisteredAuction marks a deployed auction address as a protocol auction.
// Downstream consumers use this lookup set as the trust boundary for which
// contracts may be treated as ours.
type RegisteredAuction struct {
	Address      domain.Address `json:"address" bson:"address"`
	RequestId    string         `json:"requestId" bson:"requestId"`
	Seller       domain.Address `json:"seller" bson:"seller"`
	RegisteredAt time.Time      `json:"registeredAt" bson:"registeredAt"`
}

type FindAllOptions struct {
	Seller  *domain.Address
	Status  *Status
	Offset  *int32
	Limit   *int32
	SortDir *domain.SortDir
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

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
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
	Insert(ctx ctx.Ctx, req *AuctionRequest) error
	FindOne(ctx ctx.Ctx, id string) (*AuctionRequest, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*AuctionRequest, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)

	// SettleIfPending moves a request out of Pending. The selector matches on
	// {id, status: pending} so a concurrent approve/reject loses with
	// domain.ErrNotPending instead of overwriting a terminal state.
	SettleIfPending(ctx ctx.Ctx, id string, to Status, deployedAuction domain.Address) error
}

type RegisteredRepo interface {
	Insert(ctx ctx.Ctx, reg *RegisteredAuction) error
	FindOne(ctx ctx.Ctx, address domain.Address) (*RegisteredAuction, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*RegisteredAuction, error)
}

type SubmitPayload struct {
	Seller          domain.Address   `json:"seller"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DurationMinutes int64            `json:"durationMinutes"`
	MinimumBid      domain.WeiAmount `json:"minimumBid"`
	NftContract     domain.Address   `json:"nftContract"`
	NftTokenId      domain.TokenId   `json:"nftTokenId"`
}

type UseCase interface {
	Submit(ctx ctx.Ctx, payload SubmitPayload) (*AuctionRequest, error)
	// Approve provisions the escrow account, registers the new auction
	// instance and settles the request. Fails with domain.ErrNotPending when
	// the request already left the pending state.
	Approve(ctx ctx.Ctx, id string) (*AuctionRequest, error)
	Reject(ctx ctx.Ctx, id string) (*AuctionRequest, error)
	Get(ctx ctx.Ctx, id string) (*AuctionRequest, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*AuctionRequest, error)
	IsRegistered(ctx ctx.Ctx, address domain.Address) (bool, error)
}
