// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
)

// The store interfaces are the subsets of the repositories each service calls.

type userStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, u model.NewUser) (*model.User, error)
}

type propertyStore interface {
	ListProperties(ctx context.Context, filter model.PropertyFilter, limit int) ([]*model.Property, error)
	AddProperty(ctx context.Context, p model.NewProperty) (*model.Property, error)
}

type reservationStore interface {
	ListReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]*model.GuestReservation, error)
}
