package services

import (
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/cart"
	"github.com/Xebarter/Manziz/entity"
	"github.com/Xebarter/Manziz/pesapal"
	"github.com/Xebarter/Manziz/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Delivery pricing: flat fee below the free-delivery threshold, pickup
// always free.
const (
	DeliveryFee           int64 = 5000
	FreeDeliveryThreshold int64 = 50000
	Currency                    = "UGX"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	PaymentRepo *repository.PaymentRepository
	Gateway     *pesapal.Client
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, payRepo *repository.PaymentRepository, gateway *pesapal.Client) *OrderService {
	return &OrderService{DB: db, Repo: repo, PaymentRepo: payRepo, Gateway: gateway}
}

// ----- DTOs from Controller -----

type CheckoutReq struct {
	CustomerName    string `json:"customer_name"`
	PhoneNumber     string `json:"phone_number"`
	Email           string `json:"email"`
	DeliveryType    string `json:"delivery_type"`
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`
	ScheduleOrder   bool   `json:"schedule_order"`
	ScheduledDate   string `json:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime   string `json:"scheduled_time"` // HH:MM
	UserID          *string `json:"-"`
}

type CheckoutRes struct {
	OrderID     string `json:"order_id"`
	TotalAmount int64  `json:"total_amount"`
	DeliveryFee int64  `json:"delivery_fee"`

	// Online payments only: where to send the customer, and the
	// provider's id for later reconciliation.
	RedirectURL string `json:"redirect_url,omitempty"`
	TrackingID  string `json:"tracking_id,omitempty"`
	Scheduled   bool   `json:"scheduled,omitempty"`
}

// Quote computes the order total from a subtotal per the pricing invariant.
func Quote(subtotal int64, deliveryType string) (fee, total int64) {
	if deliveryType == entity.DeliveryTypeDelivery && subtotal < FreeDeliveryThreshold {
		fee = DeliveryFee
	}
	return fee, subtotal + fee
}

// Checkout validates the form, persists the order with its line items in
// one transaction, then branches on payment method. Cash orders are done;
// online orders go through the gateway and only then clear the cart.
func (s *OrderService) Checkout(store *cart.Store, req *CheckoutReq) (*CheckoutRes, error) {
	lines := store.Lines()
	if len(lines) == 0 {
		return nil, apperr.ErrEmptyCart
	}

	scheduledFor, err := validateCheckout(req)
	if err != nil {
		return nil, err
	}

	subtotal := store.TotalPrice()
	fee, total := Quote(subtotal, req.DeliveryType)

	orderID := uuid.NewString()
	order := entity.Order{
		ID:              orderID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		PhoneNumber:     strings.TrimSpace(req.PhoneNumber),
		Email:           strings.TrimSpace(req.Email),
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
		OrderStatus:     entity.StatusPending,
		TotalAmount:     total,
		PaymentStatus:   entity.PaymentPending,
		ScheduledFor:    scheduledFor,
		UserID:          req.UserID,
	}

	// Order and line items land together or not at all: no billable
	// order without lines.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				ID:          uuid.NewString(),
				OrderID:     orderID,
				MenuItemID:  l.Item.ID,
				Quantity:    l.Quantity,
				Note:        l.Note,
				PriceAtTime: l.Item.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &CheckoutRes{OrderID: orderID, TotalAmount: total, DeliveryFee: fee, Scheduled: req.ScheduleOrder}

	if req.PaymentMethod == entity.PaymentMethodCash {
		// Stays pending until admin advances it.
		store.Clear()
		return res, nil
	}

	gw, err := s.initiateOnlinePayment(&order, len(lines))
	if err != nil {
		// Best-effort marker so the orphaned row is visibly dead. The
		// customer retries from checkout with a fresh order id.
		if markErr := s.Repo.SetPaymentStatus(orderID, entity.PaymentFailed); markErr != nil {
			log.Printf("mark order %s payment failed: %v", orderID, markErr)
		}
		return nil, err
	}

	// Cart is only cleared once the gateway accepted the attempt.
	store.Clear()
	res.RedirectURL = gw.RedirectURL
	res.TrackingID = gw.OrderTrackingID
	return res, nil
}

func (s *OrderService) initiateOnlinePayment(order *entity.Order, itemCount int) (*pesapal.OrderResponse, error) {
	payReq := &pesapal.PaymentRequest{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		Currency:      Currency,
		Description:   fmt.Sprintf("Manziz Order #%s - %d items", shortID(order.ID), itemCount),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.Email,
		CustomerPhone: order.PhoneNumber,
	}

	gw, err := s.Gateway.InitiatePayment(payReq)
	if err != nil {
		return nil, err
	}

	payment := entity.Payment{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		TrackingID: gw.OrderTrackingID,
		Provider:   "pesapal",
		Status:     "initiated",
		Amount:     order.TotalAmount,
	}
	if err := s.PaymentRepo.Create(&payment); err != nil {
		// Attempt is live at the provider; reconciliation still works by
		// tracking id, so only log.
		log.Printf("store payment record for order %s: %v", order.ID, err)
	}
	return gw, nil
}

func validateCheckout(req *CheckoutReq) (*time.Time, error) {
	v := apperr.NewValidation()

	if strings.TrimSpace(req.CustomerName) == "" {
		v.Add("customer_name", "name is required")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		v.Add("phone_number", "phone number is required")
	} else if !validPhone(req.PhoneNumber) {
		v.Add("phone_number", "invalid phone number")
	}
	if strings.TrimSpace(req.Email) == "" {
		v.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		v.Add("email", "invalid email address")
	}

	switch req.DeliveryType {
	case entity.DeliveryTypeDelivery:
		if strings.TrimSpace(req.DeliveryAddress) == "" {
			v.Add("delivery_address", "delivery address is required for delivery orders")
		}
	case entity.DeliveryTypePickup:
	default:
		v.Add("delivery_type", "must be delivery or pickup")
	}

	if req.PaymentMethod != entity.PaymentMethodOnline && req.PaymentMethod != entity.PaymentMethodCash {
		v.Add("payment_method", "must be online or cash")
	}

	var scheduledFor *time.Time
	if req.ScheduleOrder {
		if req.ScheduledDate == "" || req.ScheduledTime == "" {
			v.Add("scheduled_for", "select date and time for a scheduled order")
		} else {
			ts, err := time.ParseInLocation("2006-01-02T15:04", req.ScheduledDate+"T"+req.ScheduledTime, time.Local)
			if err != nil {
				v.Add("scheduled_for", "invalid scheduled date or time")
			} else if !ts.After(time.Now()) {
				v.Add("scheduled_for", "scheduled time must be in the future")
			} else {
				scheduledFor = &ts
			}
		}
	}

	if v.Has() {
		return nil, v
	}
	return scheduledFor, nil
}

func validPhone(p string) bool {
	p = strings.TrimSpace(p)
	digits := 0
	for i, r := range p {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits >= 9
}

// ----- tracking -----

type TrackStep struct {
	Key     string `json:"key"`
	Reached bool   `json:"reached"`
	Current bool   `json:"current"`
}

type TrackRes struct {
	Order     *entity.Order `json:"order"`
	Steps     []TrackStep   `json:"steps"`
	Cancelled bool          `json:"cancelled"`
}

// Track renders the order's progress as filled steps up to the current
// status. Cancelled (or anything unrecognized) shows as an indicator
// outside the linear bar rather than an error.
func (s *OrderService) Track(orderID string) (*TrackRes, error) {
	order, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		return nil, err
	}

	idx := entity.StatusIndex(order.OrderStatus)
	steps := make([]TrackStep, 0, 5)
	for i, key := range entity.StatusSteps() {
		steps = append(steps, TrackStep{
			Key:     key,
			Reached: idx >= 0 && i <= idx,
			Current: idx >= 0 && i == idx,
		})
	}
	return &TrackRes{Order: order, Steps: steps, Cancelled: idx < 0}, nil
}

// ----- admin -----

// SetStatus is the operator override: admins may jump to any valid status
// regardless of the current one. Cancelling still respects terminality of
// delivered orders.
func (s *OrderService) SetStatus(orderID, status string) error {
	if !entity.ValidOrderStatus(status) {
		v := apperr.NewValidation()
		v.Add("status", "unknown order status")
		return v
	}
	if status == entity.StatusCancelled {
		affected, err := s.Repo.CancelGuard(orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			if _, err := s.Repo.GetOrder(orderID); err != nil {
				return err
			}
			v := apperr.NewValidation()
			v.Add("status", "order can no longer be cancelled")
			return v
		}
		return nil
	}
	return s.Repo.SetOrderStatus(orderID, status)
}

func (s *OrderService) List(status string, page, limit int) ([]repository.OrderSummary, int64, error) {
	return s.Repo.ListOrders(status, page, limit)
}

func (s *OrderService) ListForUser(userID string, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
