package repository

import (
	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(m *entity.Message) error {
	return r.DB.Create(m).Error
}

func (r *MessageRepository) List() ([]entity.Message, error) {
	var out []entity.Message
	err := r.DB.Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *MessageRepository) Get(id string) (*entity.Message, error) {
	var m entity.Message
	if err := r.DB.First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// MarkRead flips is_read to true. The flag never goes back.
func (r *MessageRepository) MarkRead(id string) (*entity.Message, error) {
	res := r.DB.Model(&entity.Message{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return r.Get(id)
}

// UnreadCount counts customer-sent messages the admin has not read yet.
func (r *MessageRepository) UnreadCount() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Message{}).
		Where("is_read = ? AND sender = ?", false, entity.SenderCustomer).
		Count(&count).Error
	return count, err
}
