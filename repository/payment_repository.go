package repository

import (
	"errors"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(p *entity.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) GetByTrackingID(trackingID string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, "tracking_id = ?", trackingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByOrderID(orderID string) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("order_id = ?", orderID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// UpdateStatus overwrites the provider-reported fields for one attempt.
// Repeating the same callback writes the same values again.
func (r *PaymentRepository) UpdateStatus(trackingID, status, confirmationCode, method string) error {
	return r.DB.Model(&entity.Payment{}).
		Where("tracking_id = ?", trackingID).
		Updates(map[string]any{
			"status":            status,
			"confirmation_code": confirmationCode,
			"payment_method":    method,
		}).Error
}
