package services

import (
	"context"
	"fmt"
	"net/url"

	"footy-api/packages/core/models"
	"footy-api/packages/core/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var venueQuery = Query{
	Filters: FilterSet{
		"name":                    Exact("name"),
		"name__contains":          Contains("name"),
		"alternative_names__name": HasAlternativeName("venues", "venue_alternative_names", "venue_id"),
	},
	Order:   []string{"id ASC"},
	Preload: []string{"AlternativeNames"},
}

var (
	maxLatitude  = decimal.NewFromInt(90)
	maxLongitude = decimal.NewFromInt(180)
)

type VenueService struct {
	db *gorm.DB
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{
		db: db,
	}
}

func (s *VenueService) ListVenues(ctx context.Context, params url.Values, page PageRequest) (*Page[models.Venue], error) {
	base := s.db.WithContext(ctx).Model(&models.Venue{})
	return paginate[models.Venue](base, venueQuery, params, page)
}

func (s *VenueService) CreateVenue(ctx context.Context, req models.VenueRequest) (*models.Venue, error) {
	verr := NewValidationError()
	if !validation.IsIdentifier(req.ID) {
		verr.Add("id", "invalid identifier")
	}
	venue := &models.Venue{ID: req.ID}
	bindVenue(verr, venue, req)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.Venue{}, venue.ID); err != nil {
			return err
		}
		return translateWriteError(tx.Omit(clause.Associations).Create(venue).Error, "id")
	})
	if err != nil {
		return nil, err
	}

	venue.AlternativeNames = []models.VenueAlternativeName{}
	return venue, nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, venue *models.Venue, req models.VenueRequest) (*models.Venue, error) {
	verr := NewValidationError()
	if req.ID != "" {
		checkImmutableID(verr, &req.ID, venue.ID)
	}
	updated := *venue
	bindVenue(verr, &updated, req)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":      updated.Name,
		"latitude":  updated.Latitude,
		"longitude": updated.Longitude,
	}
	if err := s.db.WithContext(ctx).Model(&models.Venue{ID: venue.ID}).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating venue %q: %w", venue.ID, err)
	}

	return &updated, nil
}

// DeleteVenue removes a venue and its alternative names unless a game is played there
func (s *VenueService) DeleteVenue(ctx context.Context, venue *models.Venue) error {
	resource := "venue " + venue.ID
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnreferenced(tx, resource, venue.ID,
			reference{model: &models.Game{}, columns: []string{"venue_id"}, name: "games"},
		); err != nil {
			return err
		}

		if err := tx.Where("venue_id = ?", venue.ID).Delete(&models.VenueAlternativeName{}).Error; err != nil {
			return fmt.Errorf("deleting alternative names of %s: %w", resource, err)
		}

		result := tx.Delete(&models.Venue{}, "id = ?", venue.ID)
		if result.Error != nil {
			return translateDeleteError(result.Error, resource)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func bindVenue(verr *ValidationError, venue *models.Venue, req models.VenueRequest) {
	if req.Name == "" {
		verr.Add("name", "this field is required")
	}
	venue.Name = req.Name

	if lat, ok := bindCoordinate(verr, "latitude", req.Latitude, maxLatitude); ok {
		venue.Latitude = lat
	}
	if lng, ok := bindCoordinate(verr, "longitude", req.Longitude, maxLongitude); ok {
		venue.Longitude = lng
	}
}

// bindCoordinate requires a value in [-limit, limit] with at most
// models.CoordinatePlaces fractional digits
func bindCoordinate(verr *ValidationError, field string, value *decimal.Decimal, limit decimal.Decimal) (decimal.Decimal, bool) {
	if value == nil {
		verr.Add(field, "this field is required")
		return decimal.Decimal{}, false
	}
	if value.Exponent() < -models.CoordinatePlaces {
		verr.Add(field, fmt.Sprintf("must have no more than %d decimal places", models.CoordinatePlaces))
		return decimal.Decimal{}, false
	}
	if value.GreaterThan(limit) || value.LessThan(limit.Neg()) {
		verr.Add(field, fmt.Sprintf("must be between %s and %s", limit.Neg().String(), limit.String()))
		return decimal.Decimal{}, false
	}
	return *value, true
}
