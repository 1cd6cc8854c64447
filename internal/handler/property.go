package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
)

type PropertyHandler struct {
	Handler
	properties *service.PropertyService
}

func NewPropertyHandler(s *server.Server, properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		Handler:    NewHandler(s),
		properties: properties,
	}
}

// ListPropertiesRequest carries the optional listing filters from the query
// string. Prices are major currency units. Empty values mean "no filter".
type ListPropertiesRequest struct {
	City                 string `query:"city" validate:"max=255"`
	OwnerID              string `query:"owner_id" validate:"omitempty,number"`
	MinimumPricePerNight string `query:"minimum_price_per_night" validate:"omitempty,numeric"`
	MaximumPricePerNight string `query:"maximum_price_per_night" validate:"omitempty,numeric"`
	MinimumRating        string `query:"minimum_rating" validate:"omitempty,numeric"`
	Limit                int    `query:"limit" validate:"gte=0,lte=100"`

	filter model.PropertyFilter
}

func (r *ListPropertiesRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var problems validation.CustomValidationErrors
	var filter model.PropertyFilter

	if r.City != "" {
		city := r.City
		filter.City = &city
	}

	if r.OwnerID != "" {
		id, err := strconv.ParseInt(r.OwnerID, 10, 64)
		if err != nil {
			problems = append(problems, validation.CustomValidationError{Field: "owner_id", Message: "must be a whole number"})
		} else {
			filter.OwnerID = &id
		}
	}

	filter.MinimumPricePerNight = parsePrice(r.MinimumPricePerNight, "minimum_price_per_night", &problems)
	filter.MaximumPricePerNight = parsePrice(r.MaximumPricePerNight, "maximum_price_per_night", &problems)
	filter.MinimumRating = parseDecimal(r.MinimumRating, "minimum_rating", &problems)

	if filter.MinimumPricePerNight != nil && filter.MaximumPricePerNight != nil &&
		filter.MinimumPricePerNight.GreaterThan(*filter.MaximumPricePerNight) {
		problems = append(problems, validation.CustomValidationError{
			Field:   "maximum_price_per_night",
			Message: "must not be less than minimum_price_per_night",
		})
	}

	if len(problems) > 0 {
		return problems
	}

	r.filter = filter
	return nil
}

func parseDecimal(raw, field string, problems *validation.CustomValidationErrors) *decimal.Decimal {
	if raw == "" {
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		*problems = append(*problems, validation.CustomValidationError{Field: field, Message: "must be a number"})
		return nil
	}
	if d.IsNegative() {
		*problems = append(*problems, validation.CustomValidationError{Field: field, Message: "must not be negative"})
		return nil
	}
	return &d
}

// parsePrice is parseDecimal for amounts that must fit cost_per_night.
func parsePrice(raw, field string, problems *validation.CustomValidationErrors) *decimal.Decimal {
	d := parseDecimal(raw, field, problems)
	if d == nil {
		return nil
	}
	if _, err := model.ToMinorUnits(*d); err != nil {
		*problems = append(*problems, validation.CustomValidationError{Field: field, Message: priceRangeMessage})
		return nil
	}
	return d
}

var priceRangeMessage = "must not exceed " + decimal.New(model.MaxMinorUnits, -2).StringFixed(2)

// CreatePropertyRequest creates an active listing. CostPerNight is in major
// currency units and is stored in minor units.
type CreatePropertyRequest struct {
	OwnerID           int64           `json:"owner_id" validate:"required,gt=0"`
	Title             string          `json:"title" validate:"required,max=255"`
	Description       string          `json:"description"`
	ThumbnailPhotoURL string          `json:"thumbnail_photo_url" validate:"required,url,max=255"`
	CoverPhotoURL     string          `json:"cover_photo_url" validate:"required,url,max=255"`
	CostPerNight      decimal.Decimal `json:"cost_per_night"`
	ParkingSpaces     int             `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int             `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int             `json:"number_of_bedrooms" validate:"gte=0"`
	Country           string          `json:"country" validate:"required,max=255"`
	Street            string          `json:"street" validate:"required,max=255"`
	City              string          `json:"city" validate:"required,max=255"`
	Province          string          `json:"province" validate:"required,max=255"`
	PostCode          string          `json:"post_code" validate:"required,max=255"`

	costPerNight int64
}

func (r *CreatePropertyRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if !r.CostPerNight.IsPositive() {
		return validation.CustomValidationErrors{{Field: "cost_per_night", Message: "must be greater than 0"}}
	}

	cost, err := model.ToMinorUnits(r.CostPerNight)
	if err != nil {
		return validation.CustomValidationErrors{{Field: "cost_per_night", Message: priceRangeMessage}}
	}
	r.costPerNight = cost
	return nil
}

func (r *CreatePropertyRequest) toModel() model.NewProperty {
	return model.NewProperty{
		OwnerID:           r.OwnerID,
		Title:             r.Title,
		Description:       r.Description,
		ThumbnailPhotoURL: r.ThumbnailPhotoURL,
		CoverPhotoURL:     r.CoverPhotoURL,
		CostPerNight:      r.costPerNight,
		ParkingSpaces:     r.ParkingSpaces,
		NumberOfBathrooms: r.NumberOfBathrooms,
		NumberOfBedrooms:  r.NumberOfBedrooms,
		Country:           r.Country,
		Street:            r.Street,
		City:              r.City,
		Province:          r.Province,
		PostCode:          r.PostCode,
	}
}

type PropertiesResponse struct {
	Properties []*model.Property `json:"properties"`
}

func (r *PropertiesResponse) Count() int { return len(r.Properties) }

type PropertyResponse struct {
	Property *model.Property `json:"property"`
}

func (h *PropertyHandler) ListProperties(c echo.Context, req *ListPropertiesRequest) (*PropertiesResponse, error) {
	properties, err := h.properties.List(c.Request().Context(), req.filter, req.Limit)
	if err != nil {
		return nil, err
	}
	return &PropertiesResponse{Properties: properties}, nil
}

func (h *PropertyHandler) CreateProperty(c echo.Context, req *CreatePropertyRequest) (*PropertyResponse, error) {
	property, err := h.properties.Create(c.Request().Context(), req.toModel())
	if err != nil {
		return nil, err
	}
	return &PropertyResponse{Property: property}, nil
}
