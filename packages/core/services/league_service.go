package services

import (
	"context"
	"fmt"
	"net/url"

	"footy-api/packages/core/models"
	"footy-api/packages/core/validation"

	"gorm.io/gorm"
)

var leagueQuery = Query{
	Filters: FilterSet{
		"name":           Exact("name"),
		"name__contains": Contains("name"),
	},
	Order: []string{"id ASC"},
}

type LeagueService struct {
	db *gorm.DB
}

func NewLeagueService(db *gorm.DB) *LeagueService {
	return &LeagueService{
		db: db,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context, params url.Values, page PageRequest) (*Page[models.League], error) {
	base := s.db.WithContext(ctx).Model(&models.League{})
	return paginate[models.League](base, leagueQuery, params, page)
}

func (s *LeagueService) CreateLeague(ctx context.Context, req models.CreateLeagueRequest) (*models.League, error) {
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

	league := &models.League{
		ID:   req.ID,
		Name: req.Name,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.League{}, req.ID); err != nil {
			return err
		}
		return translateWriteError(tx.Create(league).Error, "id")
	})
	if err != nil {
		return nil, err
	}

	return league, nil
}

func (s *LeagueService) UpdateLeague(ctx context.Context, league *models.League, req models.UpdateLeagueRequest) (*models.League, error) {
	verr := NewValidationError()
	checkImmutableID(verr, req.ID, league.ID)
	if req.Name == "" {
		verr.Add("name", "this field is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name": req.Name,
	}
	if err := s.db.WithContext(ctx).Model(league).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating league %q: %w", league.ID, err)
	}
	league.Name = req.Name

	return league, nil
}

// DeleteLeague refuses to remove a league that still has teams or seasons
func (s *LeagueService) DeleteLeague(ctx context.Context, league *models.League) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnreferenced(tx, "league "+league.ID, league.ID,
			reference{model: &models.Team{}, columns: []string{"league_id"}, name: "teams"},
			reference{model: &models.Season{}, columns: []string{"league_id"}, name: "seasons"},
		); err != nil {
			return err
		}

		result := tx.Delete(&models.League{}, "id = ?", league.ID)
		if result.Error != nil {
			return translateDeleteError(result.Error, "league "+league.ID)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ensureUnique rejects a create whose string identifier is already taken
func ensureUnique(tx *gorm.DB, model interface{}, id string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("checking identifier %q: %w", id, err)
	}
	if count > 0 {
		return FieldError("id", "already exists")
	}
	return nil
}

// checkImmutableID flags a body id that differs from the one in the URL
func checkImmutableID(verr *ValidationError, bodyID *string, current string) {
	if bodyID != nil && *bodyID != current {
		verr.Add("id", "cannot be changed")
	}
}

type reference struct {
	model   interface{}
	columns []string
	name    string
}

// ensureUnreferenced returns ErrProtected if any of refs points at id
func ensureUnreferenced(tx *gorm.DB, resource string, id interface{}, refs ...reference) error {
	for _, ref := range refs {
		q := tx.Model(ref.model)
		cond := tx.Where(ref.columns[0]+" = ?", id)
		for _, column := range ref.columns[1:] {
			cond = cond.Or(column+" = ?", id)
		}

		var count int64
		if err := q.Where(cond).Count(&count).Error; err != nil {
			return fmt.Errorf("checking %s of %s: %w", ref.name, resource, err)
		}
		if count > 0 {
			return protectedError(resource, ref.name)
		}
	}
	return nil
}
