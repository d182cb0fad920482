package services

import (
	"context"
	"fmt"
	"net/url"

	"footy-api/packages/core/models"
	"footy-api/packages/core/validation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seasonQuery = Query{
	Filters: FilterSet{
		"name":           Exact("name"),
		"name__contains": Contains("name"),
	},
	Order: []string{"id ASC"},
}

type SeasonService struct {
	db *gorm.DB
}

func NewSeasonService(db *gorm.DB) *SeasonService {
	return &SeasonService{
		db: db,
	}
}

func (s *SeasonService) ListSeasons(ctx context.Context, league *models.League, params url.Values, page PageRequest) (*Page[models.Season], error) {
	base := s.db.WithContext(ctx).Model(&models.Season{}).Where("league_id = ?", league.ID)
	return paginate[models.Season](base, seasonQuery, params, page)
}

func (s *SeasonService) CreateSeason(ctx context.Context, league *models.League, req models.SeasonRequest) (*models.Season, error) {
	verr := NewValidationError()
	if !validation.IsIdentifier(req.ID) {
		verr.Add("id", "invalid identifier")
	}
	if req.Name == "" {
		verr.Add("name", "this field is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	season := &models.Season{
		ID:       req.ID,
		LeagueID: league.ID,
		Name:     req.Name,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.Season{}, season.ID); err != nil {
			return err
		}
		return translateWriteError(tx.Omit(clause.Associations).Create(season).Error, "id")
	})
	if err != nil {
		return nil, err
	}

	return season, nil
}

func (s *SeasonService) UpdateSeason(ctx context.Context, season *models.Season, req models.SeasonRequest) (*models.Season, error) {
	verr := NewValidationError()
	if req.ID != "" {
		checkImmutableID(verr, &req.ID, season.ID)
	}
	if req.Name == "" {
		verr.Add("name", "this field is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name": req.Name,
	}
	if err := s.db.WithContext(ctx).Model(&models.Season{ID: season.ID}).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating season %q: %w", season.ID, err)
	}

	updated := *season
	updated.Name = req.Name
	return &updated, nil
}

// DeleteSeason refuses to remove a season that still has games
func (s *SeasonService) DeleteSeason(ctx context.Context, season *models.Season) error {
	resource := "season " + season.ID
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnreferenced(tx, resource, season.ID,
			reference{model: &models.Game{}, columns: []string{"season_id"}, name: "games"},
		); err != nil {
			return err
		}

		result := tx.Delete(&models.Season{}, "id = ?", season.ID)
		if result.Error != nil {
			return translateDeleteError(result.Error, resource)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
