package handler

import (
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one value.
type Handlers struct {
	Health       *HealthHandler
	Users        *UserHandler
	Properties   *PropertyHandler
	Reservations *ReservationHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Users:        NewUserHandler(s, services.Users),
		Properties:   NewPropertyHandler(s, services.Properties),
		Reservations: NewReservationHandler(s, services.Reservations),
	}
}
