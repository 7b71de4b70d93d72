package controllers

import (
	"github.com/Xebarter/Manziz/pkg/resp"
	"github.com/Xebarter/Manziz/services"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Service *services.MessageService
}

func NewMessageController(s *services.MessageService) *MessageController {
	return &MessageController{Service: s}
}

type customerMessageReq struct {
	Message       string `json:"message" binding:"required"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

// POST /messages — support chat, customer side.
func (ctl *MessageController) SendCustomer(c *gin.Context) {
	var req customerMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Service.SendCustomer(req.Message, req.CustomerName, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

type adminMessageReq struct {
	Message string  `json:"message" binding:"required"`
	ReplyTo *string `json:"reply_to"`
}

// POST /admin/messages
func (ctl *MessageController) SendAdmin(c *gin.Context) {
	var req adminMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Service.SendAdmin(req.Message, req.ReplyTo)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

// GET /admin/messages
func (ctl *MessageController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// PATCH /admin/messages/:id/read
func (ctl *MessageController) MarkRead(c *gin.Context) {
	m, err := ctl.Service.MarkRead(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /admin/messages/unread-count
func (ctl *MessageController) UnreadCount(c *gin.Context) {
	count, err := ctl.Service.UnreadCount()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"count": count})
}
