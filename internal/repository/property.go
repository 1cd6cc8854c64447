package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
)

const propertyListingSelect = `SELECT properties.*, ROUND(AVG(rating), 2) AS average_rating
FROM properties
JOIN property_reviews ON properties.id = property_reviews.property_id`

const insertPropertySQL = `INSERT INTO properties (title, description, owner_id, cover_photo_url, thumbnail_photo_url,
  cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms, active,
  province, city, country, street, post_code)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING *;`

type PropertyRepository struct {
	exec Executor
}

func NewPropertyRepository(exec Executor) *PropertyRepository {
	return &PropertyRepository{exec: exec}
}

// BuildPropertyListing compiles filter into a listing statement.
//
// Predicates are added in a fixed order (city, owner, minimum price,
// maximum price) so identical filters always bind identical ledgers.
// Price bounds are bound in minor units. The minimum rating filters the
// grouped average through HAVING. A price bound outside the column range
// returns model.ErrAmountOutOfRange.
func BuildPropertyListing(filter model.PropertyFilter, limit int) (query.Statement, error) {
	b := query.Select(propertyListingSelect)

	if filter.City != nil {
		b.Where("city", query.OpLike, "%"+*filter.City+"%")
	}
	if filter.OwnerID != nil {
		b.Where("owner_id", query.OpEq, *filter.OwnerID)
	}
	if filter.MinimumPricePerNight != nil {
		minimum, err := model.ToMinorUnits(*filter.MinimumPricePerNight)
		if err != nil {
			return query.Statement{}, fmt.Errorf("minimum price per night: %w", err)
		}
		b.Where("cost_per_night", query.OpGte, minimum)
	}
	if filter.MaximumPricePerNight != nil {
		maximum, err := model.ToMinorUnits(*filter.MaximumPricePerNight)
		if err != nil {
			return query.Statement{}, fmt.Errorf("maximum price per night: %w", err)
		}
		b.Where("cost_per_night", query.OpLte, maximum)
	}

	b.GroupBy("properties.id")

	if filter.MinimumRating != nil {
		b.Having("ROUND(AVG(rating), 2)", query.OpGte, *filter.MinimumRating)
	}

	return b.OrderBy("cost_per_night").Limit(limit).Build(), nil
}

// ListProperties returns reviewed properties matching filter, cheapest first.
func (r *PropertyRepository) ListProperties(ctx context.Context, filter model.PropertyFilter, limit int) ([]*model.Property, error) {
	stmt, err := BuildPropertyListing(filter, limit)
	if err != nil {
		return nil, err
	}
	return queryAll[model.Property](ctx, r.exec, "list properties", stmt.Text, stmt.Args...)
}

// AddProperty inserts p as an active listing and returns the stored row.
func (r *PropertyRepository) AddProperty(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	return insertOne[model.Property](ctx, r.exec, "add property", insertPropertySQL,
		p.Title,
		p.Description,
		p.OwnerID,
		p.CoverPhotoURL,
		p.ThumbnailPhotoURL,
		p.CostPerNight,
		p.ParkingSpaces,
		p.NumberOfBathrooms,
		p.NumberOfBedrooms,
		true,
		p.Province,
		p.City,
		p.Country,
		p.Street,
		p.PostCode,
	)
}
