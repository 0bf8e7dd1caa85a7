package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auctionrequest"
	"github.com/shery8595/fhe-auction-sub000/service/query"
)

type registeredRepoImpl struct {
	q query.Mongo
}

func NewRegisteredRepo(q query.Mongo) auctionrequest.RegisteredRepo {
	return &registeredRepoImpl{q}
}

func (im *registeredRepoImpl) Insert(ctx ctx.Ctx, reg *auctionrequest.RegisteredAuction) error {
	reg.Address = reg.Address.ToLower()
	reg.Seller = reg.Seller.ToLower()
	if err := im.q.Insert(ctx, domain.TableRegisteredAuctions, reg); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"registered": *reg,
		}).Error("failed to q.Insert")
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (im *registeredRepoImpl) FindOne(ctx ctx.Ctx, address domain.Address) (*auctionrequest.RegisteredAuction, error) {
	res := auctionrequest.RegisteredAuction{}
	err := im.q.FindOne(ctx, domain.TableRegisteredAuctions, bson.M{"address": address.ToLower()}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *registeredRepoImpl) FindAll(ctx ctx.Ctx, opts ...auctionrequest.FindAllOptionsFunc) ([]*auctionrequest.RegisteredAuction, error) {
	options, err := auctionrequest.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}
	if options.Seller != nil {
		qry["seller"] = *options.Seller
	}

	offset := int32(0)
	limit := int32(0)

	if options.Offset != nil {
		offset = *options.Offset
	}

	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*auctionrequest.RegisteredAuction{}
	if err := im.q.Search(ctx, domain.TableRegisteredAuctions, int(offset), int(limit), "-registeredAt", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}
