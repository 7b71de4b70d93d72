package services

import (
	"log"
	"time"

	"github.com/Xebarter/Manziz/entity"
	"github.com/Xebarter/Manziz/pesapal"
	"github.com/Xebarter/Manziz/repository"
)

// Callback outcomes. Pending tells the caller to poll again shortly.
const (
	CallbackCompleted = "completed"
	CallbackFailed    = "failed"
	CallbackPending   = "pending"
)

// PollDelay is how long callers should wait before re-checking a payment
// the provider still reports as in flight.
const PollDelay = 5 * time.Second

type CallbackRes struct {
	Outcome    string                     `json:"outcome"`
	Order      *entity.Order              `json:"order,omitempty"`
	Status     *pesapal.TransactionStatus `json:"status"`
	RetryAfter *time.Duration             `json:"-"`
}

type PaymentService struct {
	Gateway  *pesapal.Client
	Payments *repository.PaymentRepository
	Orders   *repository.OrderRepository
}

func NewPaymentService(gateway *pesapal.Client, payments *repository.PaymentRepository, orders *repository.OrderRepository) *PaymentService {
	return &PaymentService{Gateway: gateway, Payments: payments, Orders: orders}
}

// HandleCallback runs when the customer returns from the hosted payment
// page. It fetches the provider's verdict, records it on the payment row
// and reconciles the order. Every write is an unconditional overwrite of
// the same target state, so a refreshed callback page replays harmlessly.
func (s *PaymentService) HandleCallback(trackingID, merchantReference string) (*CallbackRes, error) {
	status, err := s.Gateway.CheckPaymentStatus(trackingID)
	if err != nil {
		return nil, err
	}

	if err := s.Payments.UpdateStatus(trackingID, status.PaymentStatusDescription, status.ConfirmationCode, status.PaymentMethod); err != nil {
		log.Printf("update payment record %s: %v", trackingID, err)
	}

	res := &CallbackRes{Status: status}
	switch {
	case status.Completed():
		if err := s.Orders.MarkPaid(merchantReference); err != nil {
			return nil, err
		}
		res.Outcome = CallbackCompleted
	case status.Failed():
		if err := s.Orders.SetPaymentStatus(merchantReference, entity.PaymentFailed); err != nil {
			return nil, err
		}
		res.Outcome = CallbackFailed
	default:
		// Still in flight at the provider; leave both statuses pending.
		delay := PollDelay
		res.Outcome = CallbackPending
		res.RetryAfter = &delay
	}

	if order, err := s.Orders.GetOrder(merchantReference); err == nil {
		res.Order = order
	}
	return res, nil
}

// CheckStatus proxies a raw status probe for the tracking view.
func (s *PaymentService) CheckStatus(trackingID string) (*pesapal.TransactionStatus, error) {
	return s.Gateway.CheckPaymentStatus(trackingID)
}
