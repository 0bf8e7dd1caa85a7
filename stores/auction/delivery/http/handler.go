package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/delivery"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auction"
	"github.com/shery8595/fhe-auction-sub000/middleware"
	authMiddleware "github.com/shery8595/fhe-auction-sub000/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, uc auction.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{auction: uc}

	g := e.Group("/auctions")

	g.GET("", h.list, middleware.CacheHttp(15*time.Second))
	g.GET("/:id", h.get, middleware.CacheHttp(5*time.Second))
	g.GET("/:id/bids", h.listBids)
	g.GET("/:id/bids/:bidder", h.getBid, middleware.IsValidAddress("bidder"))
	g.GET("/:id/bidderCount", h.bidderCount)
	g.GET("/:id/events", h.events)

	g.POST("/:id/nft", h.depositNFT, am.Auth())
	g.PUT("/:id/reservePrice", h.setReservePrice, am.Auth())
	g.POST("/:id/bids", h.placeBid, am.Auth())
	g.POST("/:id/end", h.endAuction)
	g.POST("/:id/reveal", h.revealWinner, am.Auth(), am.IsAdmin())

	g.POST("/:id/claims/refund", h.claimRefund, am.Auth())
	g.POST("/:id/claims/prize", h.claimPrize, am.Auth())
	g.POST("/:id/claims/payment", h.claimPayment, am.Auth())
	g.POST("/:id/claims/nft", h.reclaimNFT, am.Auth())
}

// claimStatus maps the shared claim guard taxonomy onto http statuses.
func claimStatus(err error) int {
	switch err {
	case domain.ErrNotRevealed, domain.ErrAlreadyClaimed, domain.ErrReserveNotMet, domain.ErrReserveMet:
		return http.StatusConflict
	case domain.ErrIsWinner, domain.ErrNotWinner, domain.ErrNotSeller, domain.ErrNotABidder:
		return http.StatusForbidden
	case domain.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Seller *domain.Address `query:"seller"`
		Bidder *domain.Address `query:"bidder"`
		Ended  *bool           `query:"ended"`
		Offset int32           `query:"offset"`
		Limit  int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []auction.FindAllOptionsFunc{
		auction.WithPagination(p.Offset, p.Limit),
	}
	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(*p.Seller))
	}
	if p.Bidder != nil {
		opts = append(opts, auction.WithBidder(*p.Bidder))
	}
	if p.Ended != nil {
		opts = append(opts, auction.WithEnded(*p.Ended))
	}

	res, err := h.auction.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	a, err := h.auction.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	now := time.Now()
	res := struct {
		*auction.Auction
		Phase         auction.Phase `json:"phase"`
		RemainingSecs int64         `json:"remainingSecs"`
		MinimumBidEth string        `json:"minimumBidEth"`
		WinningBidEth string        `json:"winningBidEth,omitempty"`
	}{a, a.PhaseAt(now), 0, toEth(a.MinimumBid), ""}
	if now.Before(a.EndTime) {
		res.RemainingSecs = int64(a.EndTime.Sub(now).Seconds())
	}
	if a.WinnerRevealed {
		res.WinningBidEth = toEth(a.WinningBid)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// toEth renders a wei amount as a decimal ether string for display.
func toEth(w domain.WeiAmount) string {
	d, err := decimal.NewFromString(string(w))
	if err != nil {
		return ""
	}
	return d.Shift(-18).String()
}

func (h *handler) listBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.ListBids(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := auction.BidId{
		AuctionId: c.Param("id"),
		Bidder:    domain.Address(c.Param("bidder")),
	}
	res, err := h.auction.GetBid(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) bidderCount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	cnt, err := h.auction.BidderCount(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, cnt)
}

func (h *handler) events(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Type   *auction.EventType `query:"type"`
		Offset int32              `query:"offset"`
		Limit  int32              `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []auction.EventFindAllOptionsFunc{
		auction.EventWithAuctionId(c.Param("id")),
		auction.EventWithPagination(p.Offset, p.Limit),
	}
	if p.Type != nil {
		opts = append(opts, auction.EventWithType(*p.Type))
	}

	res, err := h.auction.Events(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) depositNFT(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	err := h.auction.DepositNFT(ctx, c.Param("id"), caller)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrNotSeller:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrNFTNotReady, domain.ErrConflict, domain.ErrAlreadyEnded:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrInvalidInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) setReservePrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		EncryptedReserveHandle string `json:"encryptedReserveHandle"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	err := h.auction.SetReservePrice(ctx, c.Param("id"), caller, p.EncryptedReserveHandle)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrNotSeller:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrConflict, domain.ErrAlreadyEnded:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrInvalidInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)

	type params struct {
		EncryptedAmountHandle string           `json:"encryptedAmountHandle"`
		Escrow                domain.WeiAmount `json:"escrow"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	err := h.auction.PlaceBid(ctx, auction.PlaceBidPayload{
		AuctionId:             c.Param("id"),
		Bidder:                bidder,
		EncryptedAmountHandle: p.EncryptedAmountHandle,
		Escrow:                p.Escrow,
	})
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
	case domain.ErrAuctionExpired, domain.ErrBelowMinimum, domain.ErrNFTNotReady:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrInvalidInput, domain.ErrInvalidAddress:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	err := h.auction.EndAuction(ctx, c.Param("id"))
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrStillActive, domain.ErrAlreadyEnded:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) revealWinner(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := auction.RevealPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.AuctionId = c.Param("id")

	err := h.auction.RevealWinner(ctx, p)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrNotEnded, domain.ErrAlreadyRevealed, domain.ErrNoBids:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrInvalidIndex, domain.ErrInvalidProof, domain.ErrSignerMismatch, domain.ErrInvalidInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) claimRefund(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.auction.ClaimRefund(ctx, c.Param("id"), caller); err != nil {
		return delivery.MakeJsonResp(c, claimStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) claimPrize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.auction.ClaimPrize(ctx, c.Param("id"), caller); err != nil {
		return delivery.MakeJsonResp(c, claimStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) claimPayment(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.auction.ClaimPayment(ctx, c.Param("id"), caller); err != nil {
		return delivery.MakeJsonResp(c, claimStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) reclaimNFT(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.auction.ReclaimNFT(ctx, c.Param("id"), caller); err != nil {
		return delivery.MakeJsonResp(c, claimStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
