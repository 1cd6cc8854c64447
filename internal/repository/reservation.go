package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
)

// guestReservationsSelect projects every reservation and property column.
// properties.id is not selected: it equals reservations.property_id and
// would collide with reservations.id in the column-keyed row.
const guestReservationsSelect = `SELECT reservations.id, reservations.guest_id, reservations.property_id,
  reservations.start_date, reservations.end_date,
  properties.owner_id, properties.title, properties.description,
  properties.thumbnail_photo_url, properties.cover_photo_url,
  properties.cost_per_night, properties.parking_spaces,
  properties.number_of_bathrooms, properties.number_of_bedrooms,
  properties.active, properties.country, properties.street,
  properties.city, properties.province, properties.post_code,
  ROUND(AVG(property_reviews.rating), 2) AS average_rating
FROM reservations
JOIN properties ON reservations.property_id = properties.id
JOIN property_reviews ON properties.id = property_reviews.property_id`

type ReservationRepository struct {
	exec Executor
}

func NewReservationRepository(exec Executor) *ReservationRepository {
	return &ReservationRepository{exec: exec}
}

// BuildGuestReservations returns the statement listing a guest's
// reservations by start date.
func BuildGuestReservations(guestID int64, limit int) query.Statement {
	return query.Select(guestReservationsSelect).
		Where("reservations.guest_id", query.OpEq, guestID).
		GroupBy("properties.id", "reservations.id").
		OrderBy("reservations.start_date").
		Limit(limit).
		Build()
}

// ListReservationsForGuest returns up to limit reservations for guestID.
// A non-positive limit means query.DefaultLimit.
func (r *ReservationRepository) ListReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]*model.GuestReservation, error) {
	stmt := BuildGuestReservations(guestID, limit)
	return queryAll[model.GuestReservation](ctx, r.exec, "list reservations for guest", stmt.Text, stmt.Args...)
}
