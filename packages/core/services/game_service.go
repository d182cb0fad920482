package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"footy-api/packages/core/links"
	"footy-api/packages/core/models"
	"footy-api/packages/core/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var gameQuery = Query{
	Filters: FilterSet{
		"team_1": Exact("team_1_id"),
		"team_2": Exact("team_2_id"),
		"venue":  Exact("venue_id"),
	},
	Order:   []string{"start ASC", "id ASC"},
	Preload: []string{"Team1", "Team2"},
}

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{
		db: db,
	}
}

// ListGames returns the season's games ordered by start time
func (s *GameService) ListGames(ctx context.Context, season *models.Season, params url.Values, page PageRequest) (*Page[models.Game], error) {
	base := s.db.WithContext(ctx).Model(&models.Game{}).Where("season_id = ?", season.ID)
	return paginate[models.Game](base, gameQuery, params, page)
}

// CreateGame schedules a game in season. Team and venue links in req are
// resolved before anything is written.
func (s *GameService) CreateGame(ctx context.Context, season *models.Season, req models.GameRequest) (*models.Game, error) {
	game := &models.Game{SeasonID: season.ID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := bindGame(tx, game, season, req); err != nil {
			return err
		}
		return translateWriteError(tx.Omit(clause.Associations).Create(game).Error, "game")
	})
	if err != nil {
		return nil, err
	}

	return game, nil
}

// UpdateGame replaces every attribute of the game except its id and season
func (s *GameService) UpdateGame(ctx context.Context, game *models.Game, season *models.Season, req models.GameRequest) (*models.Game, error) {
	updated := *game

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := bindGame(tx, &updated, season, req); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"start":          updated.Start,
			"venue_id":       nil,
			"team_1_id":      updated.Team1ID,
			"team_1_goals":   updated.Team1Goals,
			"team_1_behinds": updated.Team1Behinds,
			"team_2_id":      updated.Team2ID,
			"team_2_goals":   updated.Team2Goals,
			"team_2_behinds": updated.Team2Behinds,
		}
		if updated.VenueID != nil {
			updates["venue_id"] = *updated.VenueID
		}
		err := tx.Model(&models.Game{ID: game.ID}).Updates(updates).Error
		return translateWriteError(err, "game")
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *GameService) DeleteGame(ctx context.Context, game *models.Game) error {
	result := s.db.WithContext(ctx).Delete(&models.Game{}, game.ID)
	if result.Error != nil {
		return fmt.Errorf("deleting game %d: %w", game.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// bindGame validates req and copies it onto game. All problems are reported
// together in one ValidationError.
func bindGame(tx *gorm.DB, game *models.Game, season *models.Season, req models.GameRequest) error {
	verr := NewValidationError()

	if req.Start == nil {
		verr.Add("start", "this field is required")
	} else {
		game.Start = req.Start.UTC()
	}

	team1, err := resolveTeamLink(tx, verr, "team_1", req.Team1, season.LeagueID)
	if err != nil {
		return err
	}
	team2, err := resolveTeamLink(tx, verr, "team_2", req.Team2, season.LeagueID)
	if err != nil {
		return err
	}
	if team1 != nil {
		game.Team1ID = team1.ID
		game.Team1 = *team1
	}
	if team2 != nil {
		game.Team2ID = team2.ID
		game.Team2 = *team2
	}

	venueID, err := resolveVenueLink(tx, verr, req.Venue)
	if err != nil {
		return err
	}
	game.VenueID = venueID

	game.Team1Goals = bindCount(verr, "team_1_goals", req.Team1Goals)
	game.Team1Behinds = bindCount(verr, "team_1_behinds", req.Team1Behinds)
	game.Team2Goals = bindCount(verr, "team_2_goals", req.Team2Goals)
	game.Team2Behinds = bindCount(verr, "team_2_behinds", req.Team2Behinds)

	if !verr.Empty() {
		return verr
	}

	q := tx.Model(&models.Game{}).Where(
		"start = ? AND season_id = ? AND team_1_id = ? AND team_2_id = ?",
		game.Start, game.SeasonID, game.Team1ID, game.Team2ID,
	)
	if game.ID != 0 {
		q = q.Where("id <> ?", game.ID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("checking for duplicate game: %w", err)
	}
	if count > 0 {
		return FieldError("game", "a game with this start, season, team_1 and team_2 already exists")
	}

	return nil
}

// resolveTeamLink turns a team link into a team of the given league
func resolveTeamLink(tx *gorm.DB, verr *ValidationError, field, link, leagueID string) (*models.Team, error) {
	if link == "" {
		verr.Add(field, "this field is required")
		return nil, nil
	}

	linkLeague, teamID, err := links.ParseTeam(link)
	if err != nil {
		verr.Add(field, "invalid team link")
		return nil, nil
	}

	path, err := resolveWith(tx, LeagueSegment(linkLeague), TeamSegment(teamID))
	if errors.Is(err, ErrNotFound) {
		verr.Add(field, "team does not exist")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if path.Team.LeagueID != leagueID {
		verr.Add(field, fmt.Sprintf("team must belong to league %s", leagueID))
		return nil, nil
	}
	return path.Team, nil
}

// resolveVenueLink accepts a missing or empty link as "no venue"
func resolveVenueLink(tx *gorm.DB, verr *ValidationError, link *string) (*string, error) {
	if link == nil || *link == "" {
		return nil, nil
	}

	venueID, err := links.ParseVenue(*link)
	if err != nil {
		verr.Add("venue", "invalid venue link")
		return nil, nil
	}

	path, err := resolveWith(tx, VenueSegment(venueID))
	if errors.Is(err, ErrNotFound) {
		verr.Add("venue", "venue does not exist")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &path.Venue.ID, nil
}

// bindCount defaults a missing goal or behind count to zero and bounds it to utils.MaxCount
func bindCount(verr *ValidationError, field string, value *int) int {
	if value == nil {
		return 0
	}
	if *value < 0 {
		verr.Add(field, "must be at least 0")
		return 0
	}
	if *value > utils.MaxCount {
		verr.Add(field, fmt.Sprintf("must be at most %d", utils.MaxCount))
		return 0
	}
	return *value
}
