package services

import (
	"testing"
	"time"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(repository.NewReservationRepository(db))

	when := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	res, err := svc.Create(&ReservationIn{
		Name:            " Nansubuga Ritah ",
		PhoneNumber:     "0701234567",
		ReservationTime: when,
		Guests:          4,
		SpecialRequest:  "window table",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nansubuga Ritah", res.Name)
	assert.Equal(t, 4, res.Guests)
	assert.NotEmpty(t, res.ID)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].ReservationTime.Equal(when))
}

func TestCreateReservationValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(repository.NewReservationRepository(db))

	_, err := svc.Create(&ReservationIn{Guests: 0})
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "phone_number")
	assert.Contains(t, vErr.Fields, "reservation_time")
	assert.Contains(t, vErr.Fields, "guests")
}

func TestDeleteReservation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(repository.NewReservationRepository(db))

	res, err := svc.Create(&ReservationIn{
		Name:            "A",
		PhoneNumber:     "0700000000",
		ReservationTime: time.Now().Add(24 * time.Hour),
		Guests:          2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(res.ID))

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	require.ErrorIs(t, svc.Delete(res.ID), apperr.ErrNotFound)
}
