package controllers

import (
	"github.com/Xebarter/Manziz/pkg/resp"
	"github.com/Xebarter/Manziz/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Service: s}
}

// POST /reservations
func (ctl *ReservationController) Create(c *gin.Context) {
	var in services.ReservationIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := ctl.Service.Create(&in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /admin/reservations
func (ctl *ReservationController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// DELETE /admin/reservations/:id
func (ctl *ReservationController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
