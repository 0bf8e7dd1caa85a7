package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/delivery"
	"github.com/shery8595/fhe-auction-sub000/domain"
	"github.com/shery8595/fhe-auction-sub000/domain/auctionrequest"
	authMiddleware "github.com/shery8595/fhe-auction-sub000/stores/auth/delivery/http/middleware"
)

type handler struct {
	request auctionrequest.UseCase
}

func New(e *echo.Echo, uc auctionrequest.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{request: uc}

	g := e.Group("/requests")

	g.POST("", h.submit, am.Auth())
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/registered/:address", h.isRegistered)

	g.POST("/:id/approve", h.approve, am.Auth(), am.IsAdmin())
	g.POST("/:id/reject", h.reject, am.Auth(), am.IsAdmin())
}

func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	p := auctionrequest.SubmitPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	// the admission record always belongs to the authenticated wallet
	p.Seller = seller

	res, err := h.request.Submit(ctx, p)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	case domain.ErrInvalidInput, domain.ErrInvalidAddress:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Seller *domain.Address        `query:"seller"`
		Status *auctionrequest.Status `query:"status"`
		Offset int32                  `query:"offset"`
		Limit  int32                  `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []auctionrequest.FindAllOptionsFunc{
		auctionrequest.WithPagination(p.Offset, p.Limit),
	}
	if p.Seller != nil {
		opts = append(opts, auctionrequest.WithSeller(*p.Seller))
	}
	if p.Status != nil {
		opts = append(opts, auctionrequest.WithStatus(*p.Status))
	}

	res, err := h.request.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.request.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) isRegistered(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.request.IsRegistered(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.request.Approve(ctx, c.Param("id"))
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	case domain.ErrNotPending:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) reject(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.request.Reject(ctx, c.Param("id"))
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	case domain.ErrNotPending:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
