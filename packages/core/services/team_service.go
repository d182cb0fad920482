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

var teamQuery = Query{
	Filters: FilterSet{
		"name":                    Exact("name"),
		"name__contains":          Contains("name"),
		"alternative_names__name": HasAlternativeName("teams", "team_alternative_names", "team_id"),
	},
	Order:   []string{"id ASC"},
	Preload: []string{"AlternativeNames"},
}

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db: db,
	}
}

// ListTeams returns the league's teams with their alternative names
func (s *TeamService) ListTeams(ctx context.Context, league *models.League, params url.Values, page PageRequest) (*Page[models.Team], error) {
	base := s.db.WithContext(ctx).Model(&models.Team{}).Where("league_id = ?", league.ID)
	return paginate[models.Team](base, teamQuery, params, page)
}

// CreateTeam adds a team to league. The league always comes from the caller,
// never from the request body.
func (s *TeamService) CreateTeam(ctx context.Context, league *models.League, req models.TeamRequest) (*models.Team, error) {
	verr := NewValidationError()
	if !validation.IsIdentifier(req.ID) {
		verr.Add("id", "invalid identifier")
	}
	team := &models.Team{
		ID:       req.ID,
		LeagueID: league.ID,
	}
	bindTeam(verr, team, req)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.Team{}, team.ID); err != nil {
			return err
		}
		return translateWriteError(tx.Omit(clause.Associations).Create(team).Error, "id")
	})
	if err != nil {
		return nil, err
	}

	team.AlternativeNames = []models.TeamAlternativeName{}
	return team, nil
}

// UpdateTeam replaces the team's attributes. Its id and league never change.
func (s *TeamService) UpdateTeam(ctx context.Context, team *models.Team, req models.TeamRequest) (*models.Team, error) {
	verr := NewValidationError()
	if req.ID != "" {
		checkImmutableID(verr, &req.ID, team.ID)
	}
	updated := *team
	bindTeam(verr, &updated, req)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":             updated.Name,
		"primary_colour":   updated.PrimaryColour,
		"secondary_colour": updated.SecondaryColour,
		"tertiary_colour":  updated.TertiaryColour,
	}
	if err := s.db.WithContext(ctx).Model(&models.Team{ID: team.ID}).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating team %q: %w", team.ID, err)
	}

	return &updated, nil
}

// DeleteTeam removes a team and its alternative names. Teams that played in
// any game are protected.
func (s *TeamService) DeleteTeam(ctx context.Context, team *models.Team) error {
	resource := "team " + team.ID
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnreferenced(tx, resource, team.ID,
			reference{model: &models.Game{}, columns: []string{"team_1_id", "team_2_id"}, name: "games"},
		); err != nil {
			return err
		}

		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamAlternativeName{}).Error; err != nil {
			return fmt.Errorf("deleting alternative names of %s: %w", resource, err)
		}

		result := tx.Delete(&models.Team{}, "id = ?", team.ID)
		if result.Error != nil {
			return translateDeleteError(result.Error, resource)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// bindTeam copies the mutable attributes of req onto team
func bindTeam(verr *ValidationError, team *models.Team, req models.TeamRequest) {
	if req.Name == "" {
		verr.Add("name", "this field is required")
	}
	team.Name = req.Name
	team.PrimaryColour = bindColour(verr, "primary_colour", req.PrimaryColour)
	team.SecondaryColour = bindColour(verr, "secondary_colour", req.SecondaryColour)
	team.TertiaryColour = bindColour(verr, "tertiary_colour", req.TertiaryColour)
}

// bindColour treats absent and empty colours as unset
func bindColour(verr *ValidationError, field string, value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	if !validation.IsColour(*value) {
		verr.Add(field, "must be a colour in the form #RRGGBB")
		return nil
	}
	colour := *value
	return &colour
}
