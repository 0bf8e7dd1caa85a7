package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
	"github.com/shery8595/fhe-auction-sub000/domain/auctionrequest"
	"github.com/shery8595/fhe-auction-sub000/service/custody"
)

const (
	maxTitleLen       = 256
	maxDescriptionLen = 4096
)

type RequestUseCaseCfg struct {
	RequestRepo    auctionrequest.Repo
	RegisteredRepo auctionrequest.RegisteredRepo
	AuctionUC      auction.UseCase
	Custody        custody.Client
}

type impl struct {
	requestRepo    auctionrequest.Repo
	registeredRepo auctionrequest.RegisteredRepo
	auctionUC      auction.UseCase
	custody        custody.Client
}

func New(cfg *RequestUseCaseCfg) auctionrequest.UseCase {
	return &impl{
		requestRepo:    cfg.RequestRepo,
		registeredRepo: cfg.RegisteredRepo,
		auctionUC:      cfg.AuctionUC,
		custody:        cfg.Custody,
	}
}

func (im *impl) Submit(ctx ctx.Ctx, payload auctionrequest.SubmitPayload) (*auctionrequest.AuctionRequest, error) {
	if payload.Seller.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	if len(payload.Title) == 0 || len(payload.Title) > maxTitleLen {
		return nil, domain.ErrInvalidInput
	}
	if len(payload.Description) > maxDescriptionLen {
		return nil, domain.ErrInvalidInput
	}
	if payload.DurationMinutes <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(payload.MinimumBid) == 0 {
		payload.MinimumBid = domain.ZeroWei
	}
	if v, ok := payload.MinimumBid.Big(); !ok || v.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}
	// token id without contract or vice versa is an incomplete NFT reference
	if payload.NftContract.IsEmpty() != (len(payload.NftTokenId) == 0) {
		return nil, domain.ErrInvalidInput
	}

	uuid, err := uuid.NewRandom()
	if err != nil {
		ctx.WithField("err", err).Error("failed to uuid.NewRandom")
		return nil, err
	}

	req := &auctionrequest.AuctionRequest{
		Id:              uuid.String(),
		Seller:          payload.Seller,
		Title:           payload.Title,
		Description:     payload.Description,
		DurationMinutes: payload.DurationMinutes,
		MinimumBid:      payload.MinimumBid,
		NftContract:     payload.NftContract,
		NftTokenId:      payload.NftTokenId,
		Status:          auctionrequest.StatusPending,
		CreatedAt:       time.Now(),
	}
	if err := im.requestRepo.Insert(ctx, req); err != nil {
		ctx.WithField("err", err).Error("requestRepo.Insert failed")
		return nil, err
	}
	return req, nil
}

func (im *impl) Approve(ctx ctx.Ctx, id string) (*auctionrequest.AuctionRequest, error) {
	req, err := im.requestRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != auctionrequest.StatusPending {
		return nil, domain.ErrNotPending
	}

	addr, err := im.custody.DeployAuction(ctx, req.Seller, req.DurationMinutes, req.MinimumBid)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("custody.DeployAuction failed")
		return nil, err
	}

	// claim the transition before wiring the new instance, a concurrent
	// approve or reject loses here and the extra escrow stays unused
	if err := im.requestRepo.SettleIfPending(ctx, id, auctionrequest.StatusApproved, addr); err != nil {
		if err == domain.ErrNotPending {
			ctx.WithFields(log.Fields{
				"id":      id,
				"address": addr,
			}).Warn("request settled concurrently, abandoning escrow")
		}
		return nil, err
	}

	if _, err := im.auctionUC.Register(ctx, auction.RegisterPayload{
		Address:         addr,
		RequestId:       req.Id,
		Seller:          req.Seller,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		MinimumBid:      req.MinimumBid,
		NftContract:     req.NftContract,
		NftTokenId:      req.NftTokenId,
	}); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"id":      id,
			"address": addr,
		}).Error("auctionUC.Register failed")
		return nil, err
	}

	if err := im.registeredRepo.Insert(ctx, &auctionrequest.RegisteredAuction{
		Address:      addr,
		RequestId:    req.Id,
		Seller:       req.Seller,
		RegisteredAt: time.Now(),
	}); err != nil && err != domain.ErrConflict {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": addr,
		}).Error("registeredRepo.Insert failed")
		return nil, err
	}

	req.Status = auctionrequest.StatusApproved
	req.DeployedAuction = addr.ToLower()
	return req, nil
}

func (im *impl) Reject(ctx ctx.Ctx, id string) (*auctionrequest.AuctionRequest, error) {
	req, err := im.requestRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != auctionrequest.StatusPending {
		return nil, domain.ErrNotPending
	}

	if err := im.requestRepo.SettleIfPending(ctx, id, auctionrequest.StatusRejected, ""); err != nil {
		return nil, err
	}

	req.Status = auctionrequest.StatusRejected
	return req, nil
}

func (im *impl) Get(ctx ctx.Ctx, id string) (*auctionrequest.AuctionRequest, error) {
	return im.requestRepo.FindOne(ctx, id)
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...auctionrequest.FindAllOptionsFunc) ([]*auctionrequest.AuctionRequest, error) {
	res, err := im.requestRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("requestRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) IsRegistered(ctx ctx.Ctx, address domain.Address) (bool, error) {
	_, err := im.registeredRepo.FindOne(ctx, address)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
