package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
	mAuction "github.com/shery8595/fhe-auction-sub000/domain/auction/mocks"
	"github.com/shery8595/fhe-auction-sub000/domain/auctionrequest"
	mRequest "github.com/shery8595/fhe-auction-sub000/domain/auctionrequest/mocks"
	mCustody "github.com/shery8595/fhe-auction-sub000/service/custody/mocks"
)

var (
	seller      = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	auctionAddr = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
)

func validPayload() auctionrequest.SubmitPayload {
	return auctionrequest.SubmitPayload{
		Seller:          seller,
		Title:           "rare punk",
		Description:     "one of one",
		DurationMinutes: 60,
		MinimumBid:      "1000000000000000000",
		NftContract:     domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba"),
		NftTokenId:      domain.TokenId("42"),
	}
}

func newTestImpl() (*impl, *mRequest.Repo, *mRequest.RegisteredRepo, *mAuction.UseCase, *mCustody.Client) {
	requestRepo := new(mRequest.Repo)
	registeredRepo := new(mRequest.RegisteredRepo)
	auctionUC := new(mAuction.UseCase)
	custodyCli := new(mCustody.Client)
	uc := New(&RequestUseCaseCfg{
		RequestRepo:    requestRepo,
		RegisteredRepo: registeredRepo,
		AuctionUC:      auctionUC,
		Custody:        custodyCli,
	}).(*impl)
	return uc, requestRepo, registeredRepo, auctionUC, custodyCli
}

func TestSubmit(t *testing.T) {
	_ctx := ctx.Background()

	t.Run("valid payload creates pending request", func(t *testing.T) {
		req := require.New(t)
		uc, requestRepo, _, _, _ := newTestImpl()
		requestRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		res, err := uc.Submit(_ctx, validPayload())
		req.NoError(err)
		req.NotEmpty(res.Id)
		req.Equal(auctionrequest.StatusPending, res.Status)
		req.True(res.DeployedAuction.IsEmpty())
		requestRepo.AssertExpectations(t)
	})

	t.Run("defaults minimum bid to zero", func(t *testing.T) {
		req := require.New(t)
		uc, requestRepo, _, _, _ := newTestImpl()
		requestRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		p := validPayload()
		p.MinimumBid = ""
		res, err := uc.Submit(_ctx, p)
		req.NoError(err)
		req.Equal(domain.ZeroWei, res.MinimumBid)
	})

	t.Run("invalid payloads", func(t *testing.T) {
		uc, _, _, _, _ := newTestImpl()

		cases := []struct {
			name   string
			mutate func(*auctionrequest.SubmitPayload)
			err    error
		}{
			{"empty seller", func(p *auctionrequest.SubmitPayload) { p.Seller = "" }, domain.ErrInvalidAddress},
			{"empty title", func(p *auctionrequest.SubmitPayload) { p.Title = "" }, domain.ErrInvalidInput},
			{"zero duration", func(p *auctionrequest.SubmitPayload) { p.DurationMinutes = 0 }, domain.ErrInvalidInput},
			{"negative duration", func(p *auctionrequest.SubmitPayload) { p.DurationMinutes = -10 }, domain.ErrInvalidInput},
			{"malformed minimum bid", func(p *auctionrequest.SubmitPayload) { p.MinimumBid = "not-a-number" }, domain.ErrInvalidInput},
			{"negative minimum bid", func(p *auctionrequest.SubmitPayload) { p.MinimumBid = "-5" }, domain.ErrInvalidInput},
			{"token id without contract", func(p *auctionrequest.SubmitPayload) { p.NftContract = "" }, domain.ErrInvalidInput},
			{"contract without token id", func(p *auctionrequest.SubmitPayload) { p.NftTokenId = "" }, domain.ErrInvalidInput},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				p := validPayload()
				c.mutate(&p)
				_, err := uc.Submit(_ctx, p)
				require.ErrorIs(t, err, c.err)
			})
		}
	})
}

func TestApprove(t *testing.T) {
	_ctx := ctx.Background()
	pending := &auctionrequest.AuctionRequest{
		Id:              "req-1",
		Seller:          seller,
		Title:           "rare punk",
		DurationMinutes: 60,
		MinimumBid:      "1000000000000000000",
		NftContract:     domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba"),
		NftTokenId:      domain.TokenId("42"),
		Status:          auctionrequest.StatusPending,
	}

	t.Run("deploys, registers and settles", func(t *testing.T) {
		req := require.New(t)
		uc, requestRepo, registeredRepo, auctionUC, custodyCli := newTestImpl()

		cp := *pending
		requestRepo.On("FindOne", mock.Anything, "req-1").Return(&cp, nil)
		custodyCli.On("DeployAuction", mock.Anything, seller, int64(60), pending.MinimumBid).Return(auctionAddr, nil)
		requestRepo.On("SettleIfPending", mock.Anything, "req-1", auctionrequest.StatusApproved, auctionAddr).Return(nil)
		auctionUC.On("Register", mock.Anything, mock.MatchedBy(func(p auction.RegisterPayload) bool {
			return p.Address == auctionAddr && p.RequestId == "req-1" && p.Seller == seller
		})).Return(&auction.Auction{Id: auctionAddr.ToLowerStr()}, nil)
		registeredRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		res, err := uc.Approve(_ctx, "req-1")
		req.NoError(err)
		req.Equal(auctionrequest.StatusApproved, res.Status)
		req.Equal(auctionAddr.ToLower(), res.DeployedAuction)
		requestRepo.AssertExpectations(t)
		auctionUC.AssertExpectations(t)
		registeredRepo.AssertExpectations(t)
	})

	t.Run("already settled", func(t *testing.T) {
		uc, requestRepo, _, _, _ := newTestImpl()
		settled := *pending
		settled.Status = auctionrequest.StatusRejected
		requestRepo.On("FindOne", mock.Anything, "req-1").Return(&settled, nil)

		_, err := uc.Approve(_ctx, "req-1")
		require.ErrorIs(t, err, domain.ErrNotPending)
	})

	t.Run("lost settle race", func(t *testing.T) {
		uc, requestRepo, registeredRepo, auctionUC, custodyCli := newTestImpl()

		cp := *pending
		requestRepo.On("FindOne", mock.Anything, "req-1").Return(&cp, nil)
		custodyCli.On("DeployAuction", mock.Anything, seller, int64(60), pending.MinimumBid).Return(auctionAddr, nil)
		requestRepo.On("SettleIfPending", mock.Anything, "req-1", auctionrequest.StatusApproved, auctionAddr).Return(domain.ErrNotPending)

		_, err := uc.Approve(_ctx, "req-1")
		require.ErrorIs(t, err, domain.ErrNotPending)
		auctionUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		registeredRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("unknown request", func(t *testing.T) {
		uc, requestRepo, _, _, _ := newTestImpl()
		requestRepo.On("FindOne", mock.Anything, "nope").Return(nil, domain.ErrNotFound)

		_, err := uc.Approve(_ctx, "nope")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReject(t *testing.T) {
	_ctx := ctx.Background()

	t.Run("settles pending request", func(t *testing.T) {
		req := require.New(t)
		uc, requestRepo, _, _, _ := newTestImpl()
		pending := &auctionrequest.AuctionRequest{Id: "req-1", Status: auctionrequest.StatusPending}
		requestRepo.On("FindOne", mock.Anything, "req-1").Return(pending, nil)
		requestRepo.On("SettleIfPending", mock.Anything, "req-1", auctionrequest.StatusRejected, domain.Address("")).Return(nil)

		res, err := uc.Reject(_ctx, "req-1")
		req.NoError(err)
		req.Equal(auctionrequest.StatusRejected, res.Status)
	})

	t.Run("reject replay", func(t *testing.T) {
		uc, requestRepo, _, _, _ := newTestImpl()
		rejected := &auctionrequest.AuctionRequest{Id: "req-1", Status: auctionrequest.StatusRejected}
		requestRepo.On("FindOne", mock.Anything, "req-1").Return(rejected, nil)

		_, err := uc.Reject(_ctx, "req-1")
		require.ErrorIs(t, err, domain.ErrNotPending)
	})
}

func TestIsRegistered(t *testing.T) {
	_ctx := ctx.Background()
	req := require.New(t)
	uc, _, registeredRepo, _, _ := newTestImpl()

	registeredRepo.On("FindOne", mock.Anything, auctionAddr).Return(&auctionrequest.RegisteredAuction{Address: auctionAddr}, nil).Once()
	ok, err := uc.IsRegistered(_ctx, auctionAddr)
	req.NoError(err)
	req.True(ok)

	registeredRepo.On("FindOne", mock.Anything, seller).Return(nil, domain.ErrNotFound).Once()
	ok, err = uc.IsRegistered(_ctx, seller)
	req.NoError(err)
	req.False(ok)
}
