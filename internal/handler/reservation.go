package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
)

type ReservationHandler struct {
	Handler
	reservations *service.ReservationService
}

func NewReservationHandler(s *server.Server, reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		Handler:      NewHandler(s),
		reservations: reservations,
	}
}

// ListReservationsRequest names the guest explicitly; there is no session
// to read it from.
type ListReservationsRequest struct {
	GuestID int64 `query:"guest_id" validate:"required,gt=0"`
	Limit   int   `query:"limit" validate:"gte=0,lte=100"`
}

func (r *ListReservationsRequest) Validate() error {
	return validation.Struct(r)
}

type ReservationsResponse struct {
	Reservations []*model.GuestReservation `json:"reservations"`
}

func (r *ReservationsResponse) Count() int { return len(r.Reservations) }

func (h *ReservationHandler) ListReservations(c echo.Context, req *ListReservationsRequest) (*ReservationsResponse, error) {
	reservations, err := h.reservations.ListForGuest(c.Request().Context(), req.GuestID, req.Limit)
	if err != nil {
		return nil, err
	}
	return &ReservationsResponse{Reservations: reservations}, nil
}
