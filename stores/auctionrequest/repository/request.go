package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auctionrequest"
	"github.com/shery8595/fhe-auction-sub000/service/query"
)

type requestRepoImpl struct {
	q query.Mongo
}

func NewRequestRepo(q query.Mongo) auctionrequest.Repo {
	return &requestRepoImpl{q}
}

func (im *requestRepoImpl) makeQuery(opts ...auctionrequest.FindAllOptionsFunc) (bson.M, error) {
	options, err := auctionrequest.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.Status != nil {
		query["status"] = *options.Status
	}

	return query, nil
}

func (im *requestRepoImpl) Insert(ctx ctx.Ctx, req *auctionrequest.AuctionRequest) error {
	req.LowerCase()
	if err := im.q.Insert(ctx, domain.TableAuctionRequests, req); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"request": *req,
		}).Error("failed to q.Insert")
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (im *requestRepoImpl) FindOne(ctx ctx.Ctx, id string) (*auctionrequest.AuctionRequest, error) {
	res := auctionrequest.AuctionRequest{}
	err := im.q.FindOne(ctx, domain.TableAuctionRequests, bson.M{"id": id}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *requestRepoImpl) FindAll(ctx ctx.Ctx, opts ...auctionrequest.FindAllOptionsFunc) ([]*auctionrequest.AuctionRequest, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := auctionrequest.GetFindAllOptions(opts...)

	offset := int32(0)
	limit := int32(0)
	sort := "-createdAt"

	if options.Offset != nil {
		offset = *options.Offset
	}

	if options.Limit != nil {
		limit = *options.Limit
	}

	if options.SortDir != nil && *options.SortDir == domain.SortDirAsc {
		sort = "createdAt"
	}

	res := []*auctionrequest.AuctionRequest{}
	if err := im.q.Search(ctx, domain.TableAuctionRequests, int(offset), int(limit), sort, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *requestRepoImpl) Count(ctx ctx.Ctx, opts ...auctionrequest.FindAllOptionsFunc) (int, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableAuctionRequests, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *requestRepoImpl) SettleIfPending(ctx ctx.Ctx, id string, to auctionrequest.Status, deployedAuction domain.Address) error {
	selector := bson.M{
		"id":     id,
		"status": auctionrequest.StatusPending,
	}
	updater := bson.M{
		"status": to,
	}
	if !deployedAuction.IsEmpty() {
		updater["deployedAuction"] = deployedAuction.ToLower()
	}

	err := im.q.Patch(ctx, domain.TableAuctionRequests, selector, updater)
	if err == query.ErrNotFound {
		// either the request does not exist or it already left pending,
		// the caller resolves which
		return domain.ErrNotPending
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}
