package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/base/database/mongoclient"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
	"github.com/shery8595/fhe-auction-sub000/service/query"
)

type bidRepoImpl struct {
	q query.Mongo
}

func NewBidRepo(q query.Mongo) auction.BidRepo {
	return &bidRepoImpl{q}
}

func makeBidSelector(id auction.BidId) bson.M {
	return bson.M{
		"auctionId": domain.Address(id.AuctionId).ToLowerStr(),
		"bidder":    id.Bidder.ToLower(),
	}
}

func (im *bidRepoImpl) FindOne(ctx ctx.Ctx, id auction.BidId) (*auction.Bid, error) {
	res := auction.Bid{}
	err := im.q.FindOne(ctx, domain.TableBids, makeBidSelector(id), &res)
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

func (im *bidRepoImpl) FindAll(ctx ctx.Ctx, auctionId string) ([]*auction.Bid, error) {
	qry := bson.M{"auctionId": domain.Address(auctionId).ToLowerStr()}

	res := []*auction.Bid{}
	if err := im.q.Search(ctx, domain.TableBids, 0, 0, "placedAt", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *bidRepoImpl) Upsert(ctx ctx.Ctx, bid *auction.Bid) error {
	bid.Bidder = bid.Bidder.ToLower()
	bid.AuctionId = domain.Address(bid.AuctionId).ToLowerStr()
	selector := makeBidSelector(auction.BidId{AuctionId: bid.AuctionId, Bidder: bid.Bidder})

	if err := im.q.Upsert(ctx, domain.TableBids, selector, bid); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"bid":      *bid,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *bidRepoImpl) Update(ctx ctx.Ctx, id auction.BidId, patchable auction.BidPatchable) error {
	selector := makeBidSelector(id)

	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableBids, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
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

func (im *bidRepoImpl) Count(ctx ctx.Ctx, auctionId string) (int, error) {
	qry := bson.M{"auctionId": domain.Address(auctionId).ToLowerStr()}

	cnt, err := im.q.Count(ctx, domain.TableBids, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}
