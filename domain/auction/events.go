package auction

import (
	"time"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/domain"
)

type EventType string

const (
	EventBidPlaced      EventType = "bidPlaced"
	EventAuctionEnded   EventType = "auctionEnded"
	EventWinnerRevealed EventType = "winnerRevealed"
	EventRefundClaimed  EventType = "refundClaimed"
	EventPrizeClaimed   EventType = "prizeClaimed"
	EventPaymentClaimed EventType = "paymentClaimed"
	EventNFTDeposited   EventType = "nftDeposited"
	EventNFTReclaimed   EventType = "nftReclaimed"
)

// Event is a side-channel lifecycle notification for external indexers.
// The core appends them best effort and never depends on them being read.
type Event struct {
	AuctionId string           `json:"auctionId" bson:"auctionId"`
	Type      EventType        `json:"type" bson:"type"`
	Account   domain.Address   `json:"account" bson:"account"`
	Amount    domain.WeiAmount `json:"amount" bson:"amount"`
	Time      time.Time        `json:"time" bson:"time"`
}

type EventFindAllOptions struct {
	AuctionId *string
	Type      *EventType
	Offset    *int32
	Limit     *int32
}

type EventFindAllOptionsFunc func(*EventFindAllOptions) error

func GetEventFindAllOptions(opts ...EventFindAllOptionsFunc) (EventFindAllOptions, error) {
	res := EventFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func EventWithAuctionId(id string) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.AuctionId = &id
		return nil
	}
}

func EventWithType(t EventType) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func EventWithPagination(offset int32, limit int32) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type EventRepo interface {
	Insert(ctx ctx.Ctx, event *Event) error
	FindAll(ctx ctx.Ctx, opts ...EventFindAllOptionsFunc) ([]*Event, error)
}

// Emitter fans lifecycle events out to the event store without blocking the
// settlement path.
type Emitter interface {
	Emit(ctx ctx.Ctx, event *Event)
}
