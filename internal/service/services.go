package service

import (
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

// Services groups every business service so router setup passes one value.
type Services struct {
	Users        *UserService
	Properties   *PropertyService
	Reservations *ReservationService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:        NewUserService(s.Logger, repos.Users),
		Properties:   NewPropertyService(s.Logger, repos.Properties),
		Reservations: NewReservationService(repos.Reservations),
	}, nil
}
