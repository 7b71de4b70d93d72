package repository

import (
	"errors"
	"time"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder inserts the order row inside the caller's transaction.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(orderID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Preload("Items.MenuItem").
		First(&o, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// OrderSummary is the admin dashboard row shape.
type OrderSummary struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	PhoneNumber   string    `json:"phone_number"`
	DeliveryType  string    `json:"delivery_type"`
	OrderStatus   string    `json:"order_status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   int64     `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

func (r *OrderRepository) ListOrders(status string, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{})
	if status != "" {
		q = q.Where("order_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Select("id, customer_name, phone_number, delivery_type, order_status, payment_status, total_amount, created_at").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

func (r *OrderRepository) ListOrdersForUser(userID string, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, customer_name, phone_number, delivery_type, order_status, payment_status, total_amount, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// SetOrderStatus is the admin override: any target status, no ordering
// guard. Intentional operator capability.
func (r *OrderRepository) SetOrderStatus(orderID, status string) error {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// CancelGuard cancels only orders that are still cancellable. Zero rows
// affected means the order was already delivered, cancelled, or missing.
func (r *OrderRepository) CancelGuard(orderID string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND order_status NOT IN ?", orderID,
			[]string{entity.StatusDelivered, entity.StatusCancelled}).
		Update("order_status", entity.StatusCancelled)
	return res.RowsAffected, res.Error
}

// SetPaymentStatus overwrites the payment status unconditionally. The
// callback flow relies on this being idempotent.
func (r *OrderRepository) SetPaymentStatus(orderID, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("payment_status", status).Error
}

// MarkPaid records a successful payment: payment completed, order
// confirmed, in one statement. Safe to repeat.
func (r *OrderRepository) MarkPaid(orderID string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{
			"payment_status": entity.PaymentCompleted,
			"order_status":   entity.StatusConfirmed,
		}).Error
}
