package controllers

import (
	"strconv"

	"github.com/Xebarter/Manziz/cart"
	"github.com/Xebarter/Manziz/pkg/resp"
	"github.com/Xebarter/Manziz/services"
	"github.com/Xebarter/Manziz/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
	Carts   *cart.Manager
}

func NewOrderController(s *services.OrderService, carts *cart.Manager) *OrderController {
	return &OrderController{Service: s, Carts: carts}
}

// POST /orders — checkout. The cart is addressed by X-Cart-ID like the
// cart endpoints; the body carries the checkout form.
func (ctl *OrderController) Checkout(c *gin.Context) {
	token := c.GetHeader(cartHeader)
	if !cart.ValidToken(token) {
		resp.BadRequest(c, "missing or invalid cart id")
		return
	}

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if userID := utils.CurrentUserID(c); userID != "" {
		req.UserID = &userID
	}

	res, err := ctl.Service.Checkout(ctl.Carts.Get(token), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /orders/:id/track
func (ctl *OrderController) Track(c *gin.Context) {
	res, err := ctl.Service.Track(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, res)
}

// GET /profile/orders — signed-in customer's order history.
func (ctl *OrderController) ListForMe(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == "" {
		resp.Unauthorized(c, "sign in required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := ctl.Service.ListForUser(userID, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// ----- admin -----

// GET /admin/orders?status=&page=&limit=
func (ctl *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, total, err := ctl.Service.List(c.Query("status"), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status — jump-to-any-status operator control.
func (ctl *OrderController) SetStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.SetStatus(c.Param("id"), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"order_status": req.Status})
}
