package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
	"github.com/shery8595/fhe-auction-sub000/service/query"
)

type eventRepoImpl struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) auction.EventRepo {
	return &eventRepoImpl{q}
}

func (im *eventRepoImpl) Insert(ctx ctx.Ctx, event *auction.Event) error {
	event.AuctionId = domain.Address(event.AuctionId).ToLowerStr()
	event.Account = event.Account.ToLower()
	if err := im.q.Insert(ctx, domain.TableAuctionEvents, event); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"event": *event,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *eventRepoImpl) FindAll(ctx ctx.Ctx, opts ...auction.EventFindAllOptionsFunc) ([]*auction.Event, error) {
	options, err := auction.GetEventFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}
	if options.AuctionId != nil {
		qry["auctionId"] = domain.Address(*options.AuctionId).ToLowerStr()
	}
	if options.Type != nil {
		qry["type"] = *options.Type
	}

	offset := int32(0)
	limit := int32(0)

	if options.Offset != nil {
		offset = *options.Offset
	}

	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*auction.Event{}
	if err := im.q.Search(ctx, domain.TableAuctionEvents, int(offset), int(limit), "-time", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}
