package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/lightbnb/internal/model"
)

type PropertyService struct {
	logger     *zerolog.Logger
	properties propertyStore
}

func NewPropertyService(logger *zerolog.Logger, properties propertyStore) *PropertyService {
	return &PropertyService{
		logger:     logger,
		properties: properties,
	}
}

// List returns up to limit properties matching filter, cheapest first.
func (s *PropertyService) List(ctx context.Context, filter model.PropertyFilter, limit int) ([]*model.Property, error) {
	return s.properties.ListProperties(ctx, filter, limit)
}

// Create stores p as an active listing.
func (s *PropertyService) Create(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	property, err := s.properties.AddProperty(ctx, p)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("property_id", property.ID).
		Int64("owner_id", property.OwnerID).
		Msg("property created")

	return property, nil
}
