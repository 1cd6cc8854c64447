package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
)

type ReservationService struct {
	reservations reservationStore
}

func NewReservationService(reservations reservationStore) *ReservationService {
	return &ReservationService{reservations: reservations}
}

func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]*model.GuestReservation, error) {
	return s.reservations.ListReservationsForGuest(ctx, guestID, limit)
}
