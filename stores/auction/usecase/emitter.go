package usecase

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
)

type poolEmitter struct {
	eventRepo  auction.EventRepo
	workerPool *goroutines.Pool
}

// NewEmitter appends lifecycle events off the settlement path. A dropped
// event only costs indexer visibility, never correctness, so failures are
// logged and swallowed.
func NewEmitter(eventRepo auction.EventRepo) auction.Emitter {
	return &poolEmitter{
		eventRepo:  eventRepo,
		workerPool: goroutines.NewPool(32, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(8)),
	}
}

func (im *poolEmitter) Emit(c ctx.Ctx, event *auction.Event) {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	err := im.workerPool.ScheduleWithTimeout(3*time.Second, func() {
		if err := im.eventRepo.Insert(c, event); err != nil {
			c.WithFields(log.Fields{
				"event": *event,
				"err":   err,
			}).Error("failed to eventRepo.Insert")
		}
	})
	if err != nil {
		c.WithFields(log.Fields{
			"event": *event,
			"err":   err,
		}).Error("failed to ScheduleWithTimeout")
	}
}
