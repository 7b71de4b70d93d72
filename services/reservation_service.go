package services

import (
	"strings"
	"time"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"
	"github.com/Xebarter/Manziz/repository"

	"github.com/google/uuid"
)

type ReservationService struct {
	Repo *repository.ReservationRepository
}

func NewReservationService(repo *repository.ReservationRepository) *ReservationService {
	return &ReservationService{Repo: repo}
}

type ReservationIn struct {
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phone_number"`
	ReservationTime time.Time `json:"reservation_time"`
	Guests          int       `json:"guests"`
	SpecialRequest  string    `json:"special_request"`
}

func (s *ReservationService) Create(in *ReservationIn) (*entity.Reservation, error) {
	v := apperr.NewValidation()
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "name is required")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		v.Add("phone_number", "phone number is required")
	}
	if in.ReservationTime.IsZero() {
		v.Add("reservation_time", "reservation time is required")
	}
	if in.Guests < 1 {
		v.Add("guests", "at least one guest is required")
	}
	if v.Has() {
		return nil, v
	}

	res := &entity.Reservation{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		ReservationTime: in.ReservationTime,
		Guests:          in.Guests,
		SpecialRequest:  strings.TrimSpace(in.SpecialRequest),
	}
	if err := s.Repo.Create(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) List() ([]entity.Reservation, error) {
	return s.Repo.List()
}

func (s *ReservationService) Delete(id string) error {
	return s.Repo.Delete(id)
}
