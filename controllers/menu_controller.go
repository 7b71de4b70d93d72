package controllers

import (
	"strconv"

	"github.com/Xebarter/Manziz/pkg/resp"
	"github.com/Xebarter/Manziz/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GET /menu?category=&all=
func (ctl *MenuController) List(c *gin.Context) {
	category := c.Query("category")
	// Storefront sees only available items; admin passes all=1.
	availableOnly := c.Query("all") == ""
	items, err := ctl.Service.List(category, availableOnly)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/favorites — homepage highlight section, max 6.
func (ctl *MenuController) Favorites(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	items, err := ctl.Service.Favorites(limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	item, err := ctl.Service.Get(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// ----- admin -----

// POST /admin/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Service.Create(&in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /admin/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Service.Update(c.Param("id"), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type toggleReq struct {
	Value *bool `json:"value" binding:"required"`
}

// PATCH /admin/menu/:id/availability
func (ctl *MenuController) ToggleAvailability(c *gin.Context) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.SetAvailability(c.Param("id"), *req.Value); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"is_available": *req.Value})
}

// PATCH /admin/menu/:id/favorite
func (ctl *MenuController) ToggleFavorite(c *gin.Context) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.SetFavorite(c.Param("id"), *req.Value); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"is_favorite": *req.Value})
}
