package repository

import (
	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

func (r *ReservationRepository) List() ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.Order("reservation_time ASC").Find(&out).Error
	return out, err
}

func (r *ReservationRepository) Delete(id string) error {
	res := r.DB.Delete(&entity.Reservation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
