package controllers

import (
	"github.com/Xebarter/Manziz/pkg/resp"
	"github.com/Xebarter/Manziz/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Service: s}
}

// GET /payment/callback?OrderTrackingId=...&OrderMerchantReference=...
// The gateway redirects the customer here after the hosted payment page.
// Safe to hit repeatedly (page refresh re-runs the same reconciliation).
func (ctl *PaymentController) Callback(c *gin.Context) {
	trackingID := c.Query("OrderTrackingId")
	merchantRef := c.Query("OrderMerchantReference")
	if trackingID == "" || merchantRef == "" {
		resp.BadRequest(c, "missing payment parameters")
		return
	}

	res, err := ctl.Service.HandleCallback(trackingID, merchantRef)
	if err != nil {
		resp.Error(c, err)
		return
	}

	out := gin.H{
		"outcome": res.Outcome,
		"order":   res.Order,
		"status":  res.Status,
	}
	if res.RetryAfter != nil {
		out["retry_after_seconds"] = int(res.RetryAfter.Seconds())
	}
	resp.OK(c, out)
}

// GET /payment/status/:trackingId — polling endpoint for pending payments.
func (ctl *PaymentController) Status(c *gin.Context) {
	status, err := ctl.Service.CheckStatus(c.Param("trackingId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, status)
}
