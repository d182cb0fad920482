package services

import (
	"context"
	"fmt"
	"net/url"

	"footy-api/packages/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var alternativeNameQuery = Query{
	Filters: FilterSet{
		"name":           Exact("name"),
		"name__contains": Contains("name"),
	},
	Order: []string{"id ASC"},
}

// AlternativeNameService manages the alternative names of teams and venues.
// The owner is always a resolved entity from the URL.
type AlternativeNameService struct {
	db *gorm.DB
}

func NewAlternativeNameService(db *gorm.DB) *AlternativeNameService {
	return &AlternativeNameService{
		db: db,
	}
}

func (s *AlternativeNameService) ListTeamAlternativeNames(ctx context.Context, team *models.Team, params url.Values, page PageRequest) (*Page[models.TeamAlternativeName], error) {
	base := s.db.WithContext(ctx).Model(&models.TeamAlternativeName{}).Where("team_id = ?", team.ID)
	return paginate[models.TeamAlternativeName](base, alternativeNameQuery, params, page)
}

func (s *AlternativeNameService) CreateTeamAlternativeName(ctx context.Context, team *models.Team, req models.AlternativeNameRequest) (*models.TeamAlternativeName, error) {
	if err := requireName(req); err != nil {
		return nil, err
	}

	name := &models.TeamAlternativeName{
		TeamID: team.ID,
		Name:   req.Name,
	}
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(name).Error
	if err = translateWriteError(err, "team"); err != nil {
		return nil, err
	}
	return name, nil
}

func (s *AlternativeNameService) UpdateTeamAlternativeName(ctx context.Context, name *models.TeamAlternativeName, req models.AlternativeNameRequest) (*models.TeamAlternativeName, error) {
	if err := requireName(req); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Model(&models.TeamAlternativeName{ID: name.ID}).Update("name", req.Name).Error
	if err != nil {
		return nil, fmt.Errorf("updating team alternative name %d: %w", name.ID, err)
	}

	updated := *name
	updated.Name = req.Name
	return &updated, nil
}

func (s *AlternativeNameService) DeleteTeamAlternativeName(ctx context.Context, name *models.TeamAlternativeName) error {
	return deleteByID(s.db.WithContext(ctx), &models.TeamAlternativeName{}, name.ID)
}

func (s *AlternativeNameService) ListVenueAlternativeNames(ctx context.Context, venue *models.Venue, params url.Values, page PageRequest) (*Page[models.VenueAlternativeName], error) {
	base := s.db.WithContext(ctx).Model(&models.VenueAlternativeName{}).Where("venue_id = ?", venue.ID)
	return paginate[models.VenueAlternativeName](base, alternativeNameQuery, params, page)
}

func (s *AlternativeNameService) CreateVenueAlternativeName(ctx context.Context, venue *models.Venue, req models.AlternativeNameRequest) (*models.VenueAlternativeName, error) {
	if err := requireName(req); err != nil {
		return nil, err
	}

	name := &models.VenueAlternativeName{
		VenueID: venue.ID,
		Name:    req.Name,
	}
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(name).Error
	if err = translateWriteError(err, "venue"); err != nil {
		return nil, err
	}
	return name, nil
}

func (s *AlternativeNameService) UpdateVenueAlternativeName(ctx context.Context, name *models.VenueAlternativeName, req models.AlternativeNameRequest) (*models.VenueAlternativeName, error) {
	if err := requireName(req); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Model(&models.VenueAlternativeName{ID: name.ID}).Update("name", req.Name).Error
	if err != nil {
		return nil, fmt.Errorf("updating venue alternative name %d: %w", name.ID, err)
	}

	updated := *name
	updated.Name = req.Name
	return &updated, nil
}

func (s *AlternativeNameService) DeleteVenueAlternativeName(ctx context.Context, name *models.VenueAlternativeName) error {
	return deleteByID(s.db.WithContext(ctx), &models.VenueAlternativeName{}, name.ID)
}

func requireName(req models.AlternativeNameRequest) error {
	if req.Name == "" {
		return FieldError("name", "this field is required")
	}
	return nil
}

func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("deleting %T %d: %w", model, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
