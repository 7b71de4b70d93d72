package controllers

import (
	"github.com/Xebarter/Manziz/cart"
	"github.com/Xebarter/Manziz/pkg/resp"
	"github.com/Xebarter/Manziz/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Carts are keyed by an opaque client token. Clients without one get a
// fresh token back and persist it themselves.
const cartHeader = "X-Cart-ID"

type CartController struct {
	Manager *cart.Manager
	Menu    *services.MenuService
}

func NewCartController(m *cart.Manager, menu *services.MenuService) *CartController {
	return &CartController{Manager: m, Menu: menu}
}

func (ctl *CartController) store(c *gin.Context) (*cart.Store, string) {
	token := c.GetHeader(cartHeader)
	if !cart.ValidToken(token) {
		token = uuid.NewString()
	}
	c.Header(cartHeader, token)
	return ctl.Manager.Get(token), token
}

type cartView struct {
	CartID     string      `json:"cart_id"`
	Items      []cart.Line `json:"items"`
	TotalPrice int64       `json:"total_price"`
	TotalItems int         `json:"total_items"`
}

func view(s *cart.Store, token string) cartView {
	return cartView{
		CartID:     token,
		Items:      s.Lines(),
		TotalPrice: s.TotalPrice(),
		TotalItems: s.TotalItems(),
	}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	s, token := ctl.store(c)
	resp.OK(c, view(s, token))
}

type addItemReq struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Note       string `json:"note"`
}

// POST /cart/items — re-adding the same item bumps quantity; a new note
// replaces the old one.
func (ctl *CartController) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menu.Get(req.MenuItemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if !item.IsAvailable {
		resp.BadRequest(c, "item is not available")
		return
	}

	s, token := ctl.store(c)
	s.AddItem(*item, req.Note)
	resp.OK(c, view(s, token))
}

type updateQtyReq struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// PATCH /cart/items/:id — quantity 0 removes the line.
func (ctl *CartController) UpdateQuantity(c *gin.Context) {
	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s, token := ctl.store(c)
	s.UpdateQuantity(c.Param("id"), *req.Quantity)
	resp.OK(c, view(s, token))
}

// DELETE /cart/items/:id
func (ctl *CartController) RemoveItem(c *gin.Context) {
	s, token := ctl.store(c)
	s.RemoveItem(c.Param("id"))
	resp.OK(c, view(s, token))
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	s, token := ctl.store(c)
	s.Clear()
	resp.OK(c, view(s, token))
}
