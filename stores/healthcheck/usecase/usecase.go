package usecase

import (
	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	hcdomain "github.com/shery8595/fhe-auction-sub000/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.PingDB(context)
}
