package repository

import (
	"github.com/deppfellow/lightbnb/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Reservations *ReservationRepository
	Properties   *PropertyRepository
}

// New builds every repository on the same executor.
func New(exec Executor) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(exec),
		Reservations: NewReservationRepository(exec),
		Properties:   NewPropertyRepository(exec),
	}
}

// NewRepositories builds the repositories on the server's shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB)
}
