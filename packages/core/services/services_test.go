package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"testing"
	"time"

	"footy-api/packages/core/links"
	"footy-api/packages/core/models"
	"footy-api/packages/core/testutil"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ServicesTestSuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	links    links.Builder
	resolver *Resolver
	leagues  *LeagueService
	teams    *TeamService
	seasons  *SeasonService
	venues   *VenueService
	games    *GameService
	names    *AlternativeNameService
}

func (suite *ServicesTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutil.NewTestDB(suite.T())
	suite.links = links.NewBuilder("http://testserver")
	suite.resolver = NewResolver(suite.db)
	suite.leagues = NewLeagueService(suite.db)
	suite.teams = NewTeamService(suite.db)
	suite.seasons = NewSeasonService(suite.db)
	suite.venues = NewVenueService(suite.db)
	suite.games = NewGameService(suite.db)
	suite.names = NewAlternativeNameService(suite.db)
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}

func (suite *ServicesTestSuite) createLeague(id string) *models.League {
	league, err := suite.leagues.CreateLeague(suite.ctx, models.CreateLeagueRequest{ID: id, Name: id + " league"})
	require.NoError(suite.T(), err)
	return league
}

func (suite *ServicesTestSuite) createTeam(league *models.League, id string) *models.Team {
	team, err := suite.teams.CreateTeam(suite.ctx, league, models.TeamRequest{ID: id, Name: id})
	require.NoError(suite.T(), err)
	return team
}

func (suite *ServicesTestSuite) createSeason(league *models.League, id string) *models.Season {
	season, err := suite.seasons.CreateSeason(suite.ctx, league, models.SeasonRequest{ID: id, Name: id + " season"})
	require.NoError(suite.T(), err)
	return season
}

func (suite *ServicesTestSuite) createVenue(id, latitude, longitude string) *models.Venue {
	lat := decimal.RequireFromString(latitude)
	lng := decimal.RequireFromString(longitude)
	venue, err := suite.venues.CreateVenue(suite.ctx, models.VenueRequest{ID: id, Name: id, Latitude: &lat, Longitude: &lng})
	require.NoError(suite.T(), err)
	return venue
}

func (suite *ServicesTestSuite) gameRequest(start time.Time, team1, team2 *models.Team) models.GameRequest {
	return models.GameRequest{
		Start: &start,
		Team1: suite.links.Team(team1.LeagueID, team1.ID),
		Team2: suite.links.Team(team2.LeagueID, team2.ID),
	}
}

func intPtr(v int) *int {
	return &v
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	return verr.Fields
}

// RESOLVER

func (suite *ServicesTestSuite) TestResolve_NestedPath() {
	afl := suite.createLeague("afl")
	suite.createTeam(afl, "richmond")
	season := suite.createSeason(afl, "2021")
	game, err := suite.games.CreateGame(suite.ctx, season, suite.gameRequest(
		time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC),
		suite.createTeam(afl, "carlton"), suite.mustTeam("afl", "richmond"),
	))
	require.NoError(suite.T(), err)

	path, err := suite.resolver.Resolve(suite.ctx, LeagueSegment("afl"), SeasonSegment("2021"), GameSegment(fmt.Sprint(game.ID)))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "afl", path.League.ID)
	assert.Equal(suite.T(), "2021", path.Season.ID)
	assert.Equal(suite.T(), game.ID, path.Game.ID)
	assert.Equal(suite.T(), "carlton", path.Game.Team1.ID)
	assert.Equal(suite.T(), "richmond", path.Game.Team2.ID)
}

func (suite *ServicesTestSuite) mustTeam(leagueID, teamID string) *models.Team {
	path, err := suite.resolver.Resolve(suite.ctx, LeagueSegment(leagueID), TeamSegment(teamID))
	require.NoError(suite.T(), err)
	return path.Team
}

func (suite *ServicesTestSuite) TestResolve_WrongParentIsNotFound() {
	l1 := suite.createLeague("l1")
	suite.createLeague("l2")
	suite.createSeason(l1, "s1")
	team := suite.createTeam(l1, "t1")
	name, err := suite.names.CreateTeamAlternativeName(suite.ctx, team, models.AlternativeNameRequest{Name: "The Ones"})
	require.NoError(suite.T(), err)
	suite.createTeam(l1, "t2")

	_, err = suite.resolver.Resolve(suite.ctx, LeagueSegment("l2"), SeasonSegment("s1"))
	assert.ErrorIs(suite.T(), err, ErrNotFound)

	_, err = suite.resolver.Resolve(suite.ctx, LeagueSegment("l2"), TeamSegment("t1"))
	assert.ErrorIs(suite.T(), err, ErrNotFound)

	_, err = suite.resolver.Resolve(suite.ctx, LeagueSegment("l1"), TeamSegment("t2"), TeamAlternativeNameSegment(fmt.Sprint(name.ID)))
	assert.ErrorIs(suite.T(), err, ErrNotFound)

	_, err = suite.resolver.Resolve(suite.ctx, LeagueSegment("no_such_league"))
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *ServicesTestSuite) TestResolve_GameUnderOtherSeason() {
	afl := suite.createLeague("afl")
	s2021 := suite.createSeason(afl, "2021")
	suite.createSeason(afl, "2022")
	home, away := suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton")

	game, err := suite.games.CreateGame(suite.ctx, s2021, suite.gameRequest(time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC), home, away))
	require.NoError(suite.T(), err)

	_, err = suite.resolver.Resolve(suite.ctx, LeagueSegment("afl"), SeasonSegment("2022"), GameSegment(fmt.Sprint(game.ID)))
	assert.ErrorIs(suite.T(), err, ErrNotFound)

	_, err = suite.resolver.Resolve(suite.ctx, LeagueSegment("afl"), SeasonSegment("2021"), GameSegment("first"))
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

// LISTING

func (suite *ServicesTestSuite) TestListLeagues_Pagination() {
	for i := 1; i <= 30; i++ {
		suite.createLeague(fmt.Sprintf("league_%02d", i))
	}

	page, err := suite.leagues.ListLeagues(suite.ctx, url.Values{}, PageRequest{Page: 1, PageSize: 4})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(30), page.Total)
	assert.Equal(suite.T(), 8, page.TotalPages)
	assert.Len(suite.T(), page.Items, 4)
	assert.Equal(suite.T(), "league_01", page.Items[0].ID)
	assert.True(suite.T(), page.HasNext())
	assert.False(suite.T(), page.HasPrevious())

	page, err = suite.leagues.ListLeagues(suite.ctx, url.Values{}, PageRequest{Page: 8, PageSize: 4})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), page.Items, 2)
	assert.Equal(suite.T(), "league_30", page.Items[1].ID)
	assert.False(suite.T(), page.HasNext())

	page, err = suite.leagues.ListLeagues(suite.ctx, url.Values{}, PageRequest{Page: 9, PageSize: 4})
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), page.Items)
	assert.Equal(suite.T(), int64(30), page.Total)
}

func (suite *ServicesTestSuite) TestListLeagues_PageFarPastTheEnd() {
	for i := 1; i <= 5; i++ {
		suite.createLeague(fmt.Sprintf("league_%02d", i))
	}

	page, err := suite.leagues.ListLeagues(suite.ctx, url.Values{}, PageRequest{Page: math.MaxInt, PageSize: 4})
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), page.Items)
	assert.Equal(suite.T(), int64(5), page.Total)
	assert.Equal(suite.T(), 2, page.TotalPages)
	assert.False(suite.T(), page.HasNext())
	assert.True(suite.T(), page.HasPrevious())
}

func (suite *ServicesTestSuite) TestListLeagues_ContainsIsCaseSensitive() {
	for id, name := range map[string]string{
		"afl":  "Australian Football League",
		"vfl":  "Victorian football league",
		"pct":  "100% Footy",
		"misc": "Footy_Misc",
	} {
		_, err := suite.leagues.CreateLeague(suite.ctx, models.CreateLeagueRequest{ID: id, Name: name})
		require.NoError(suite.T(), err)
	}

	tests := []struct {
		value    string
		expected []string
	}{
		{"Football", []string{"afl"}},
		{"football", []string{"vfl"}},
		{"FOOTBALL", []string{}},
		{"%", []string{"pct"}},
		{"_", []string{"misc"}},
		{"Footy", []string{"misc", "pct"}},
	}

	for _, tt := range tests {
		page, err := suite.leagues.ListLeagues(suite.ctx, url.Values{"name__contains": {tt.value}}, PageRequest{Page: 1, PageSize: 20})
		require.NoError(suite.T(), err)
		ids := []string{}
		for _, league := range page.Items {
			ids = append(ids, league.ID)
		}
		assert.Equal(suite.T(), tt.expected, ids, "name__contains=%s", tt.value)
	}
}

func (suite *ServicesTestSuite) TestListTeams_Filters() {
	afl := suite.createLeague("afl")
	vfl := suite.createLeague("vfl")
	richmond := suite.createTeam(afl, "richmond")
	suite.createTeam(afl, "north_melbourne")
	suite.createTeam(afl, "melbourne")
	suite.createTeam(vfl, "williamstown")
	_, err := suite.names.CreateTeamAlternativeName(suite.ctx, richmond, models.AlternativeNameRequest{Name: "Tigers"})
	require.NoError(suite.T(), err)

	page, err := suite.teams.ListTeams(suite.ctx, afl, url.Values{}, PageRequest{Page: 1, PageSize: 20})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), page.Total)

	page, err = suite.teams.ListTeams(suite.ctx, afl, url.Values{"name__contains": {"melbourne"}}, PageRequest{Page: 1, PageSize: 20})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Items, 2)
	assert.Equal(suite.T(), "melbourne", page.Items[0].ID)
	assert.Equal(suite.T(), "north_melbourne", page.Items[1].ID)

	page, err = suite.teams.ListTeams(suite.ctx, afl, url.Values{"name": {"melbourne"}}, PageRequest{Page: 1, PageSize: 20})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Items, 1)

	page, err = suite.teams.ListTeams(suite.ctx, afl, url.Values{"alternative_names__name": {"Tigers"}}, PageRequest{Page: 1, PageSize: 20})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Items, 1)
	assert.Equal(suite.T(), "richmond", page.Items[0].ID)
	assert.Equal(suite.T(), []string{"Tigers"}, page.Items[0].AlternativeNameList())
}

func (suite *ServicesTestSuite) TestListGames_OrderedByStartAndFiltered() {
	afl := suite.createLeague("afl")
	season := suite.createSeason(afl, "2021")
	richmond, carlton, geelong := suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton"), suite.createTeam(afl, "geelong")

	late := time.Date(2021, 3, 25, 8, 0, 0, 0, time.UTC)
	early := time.Date(2021, 3, 18, 8, 0, 0, 0, time.UTC)
	_, err := suite.games.CreateGame(suite.ctx, season, suite.gameRequest(late, geelong, richmond))
	require.NoError(suite.T(), err)
	_, err = suite.games.CreateGame(suite.ctx, season, suite.gameRequest(early, richmond, carlton))
	require.NoError(suite.T(), err)

	page, err := suite.games.ListGames(suite.ctx, season, url.Values{}, PageRequest{Page: 1, PageSize: 20})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Items, 2)
	assert.Equal(suite.T(), "carlton", page.Items[0].Team2ID)
	assert.Equal(suite.T(), "geelong", page.Items[1].Team1.ID)

	page, err = suite.games.ListGames(suite.ctx, season, url.Values{"team_1": {"richmond"}}, PageRequest{Page: 1, PageSize: 20})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Items, 1)
	assert.Equal(suite.T(), "carlton", page.Items[0].Team2ID)
}

// CREATE AND UPDATE

func (suite *ServicesTestSuite) TestCreateLeague_Validation() {
	suite.createLeague("afl")

	_, err := suite.leagues.CreateLeague(suite.ctx, models.CreateLeagueRequest{ID: "afl", Name: "Again"})
	assert.Equal(suite.T(), map[string]string{"id": "already exists"}, fieldsOf(suite.T(), err))

	_, err = suite.leagues.CreateLeague(suite.ctx, models.CreateLeagueRequest{ID: "not valid", Name: ""})
	fields := fieldsOf(suite.T(), err)
	assert.Contains(suite.T(), fields, "id")
	assert.Contains(suite.T(), fields, "name")
}

func (suite *ServicesTestSuite) TestUpdateLeague_IDIsImmutable() {
	league := suite.createLeague("afl")

	other := "vfl"
	_, err := suite.leagues.UpdateLeague(suite.ctx, league, models.UpdateLeagueRequest{ID: &other, Name: "Renamed"})
	assert.Contains(suite.T(), fieldsOf(suite.T(), err), "id")

	same := "afl"
	updated, err := suite.leagues.UpdateLeague(suite.ctx, league, models.UpdateLeagueRequest{ID: &same, Name: "Renamed"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Renamed", updated.Name)

	path, err := suite.resolver.Resolve(suite.ctx, LeagueSegment("afl"))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Renamed", path.League.Name)
}

func (suite *ServicesTestSuite) TestCreateTeam_IDReusedInOtherLeague() {
	afl := suite.createLeague("afl")
	vfl := suite.createLeague("vfl")
	suite.createTeam(afl, "richmond")

	_, err := suite.teams.CreateTeam(suite.ctx, vfl, models.TeamRequest{ID: "richmond", Name: "Richmond"})
	assert.Equal(suite.T(), "already exists", fieldsOf(suite.T(), err)["id"])
}

func (suite *ServicesTestSuite) TestCreateTeam_Colours() {
	afl := suite.createLeague("afl")

	yellow, black, empty := "#FFD200", "#000000", ""
	team, err := suite.teams.CreateTeam(suite.ctx, afl, models.TeamRequest{
		ID: "richmond", Name: "Richmond",
		PrimaryColour: &yellow, SecondaryColour: &black, TertiaryColour: &empty,
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "#FFD200", *team.PrimaryColour)
	assert.Nil(suite.T(), team.TertiaryColour)

	bad := "yellow"
	_, err = suite.teams.CreateTeam(suite.ctx, afl, models.TeamRequest{ID: "carlton", Name: "Carlton", PrimaryColour: &bad})
	assert.Contains(suite.T(), fieldsOf(suite.T(), err), "primary_colour")
}

func (suite *ServicesTestSuite) TestCreateVenue_Coordinates() {
	lat := decimal.RequireFromString("91")
	lng := decimal.RequireFromString("144.983449")
	_, err := suite.venues.CreateVenue(suite.ctx, models.VenueRequest{ID: "north", Name: "North", Latitude: &lat, Longitude: &lng})
	assert.Contains(suite.T(), fieldsOf(suite.T(), err), "latitude")

	lat = decimal.RequireFromString("-37.8199671")
	_, err = suite.venues.CreateVenue(suite.ctx, models.VenueRequest{ID: "mcg", Name: "MCG", Latitude: &lat, Longitude: &lng})
	assert.Contains(suite.T(), fieldsOf(suite.T(), err)["latitude"], "decimal places")

	_, err = suite.venues.CreateVenue(suite.ctx, models.VenueRequest{ID: "mcg", Name: "MCG"})
	fields := fieldsOf(suite.T(), err)
	assert.Equal(suite.T(), "this field is required", fields["latitude"])
	assert.Equal(suite.T(), "this field is required", fields["longitude"])

	venue := suite.createVenue("pole", "90", "-180")
	assert.True(suite.T(), venue.Latitude.Equal(decimal.NewFromInt(90)))
}

func (suite *ServicesTestSuite) TestCreateGame_ScoresAndNormalisedStart() {
	afl := suite.createLeague("afl")
	season := suite.createSeason(afl, "2021")
	venue := suite.createVenue("mcg", "-37.819967", "144.983449")
	richmond, carlton := suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton")

	melbourne := time.FixedZone("AEDT", 11*60*60)
	req := suite.gameRequest(time.Date(2021, 3, 18, 19, 25, 0, 0, melbourne), richmond, carlton)
	venueLink := suite.links.Venue(venue.ID)
	req.Venue = &venueLink
	req.Team1Goals, req.Team1Behinds = intPtr(16), intPtr(11)
	req.Team2Goals, req.Team2Behinds = intPtr(11), intPtr(9)

	game, err := suite.games.CreateGame(suite.ctx, season, req)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC), game.Start)
	assert.Equal(suite.T(), int64(107), game.Team1Score())
	assert.Equal(suite.T(), int64(75), game.Team2Score())
	require.NotNil(suite.T(), game.VenueID)
	assert.Equal(suite.T(), "mcg", *game.VenueID)

	path, err := suite.resolver.Resolve(suite.ctx, LeagueSegment("afl"), SeasonSegment("2021"), GameSegment(fmt.Sprint(game.ID)))
	require.NoError(suite.T(), err)
	assert.True(suite.T(), path.Game.Start.Equal(game.Start))
	assert.Equal(suite.T(), 16, path.Game.Team1Goals)
}

func (suite *ServicesTestSuite) TestCreateGame_DefaultsToZero() {
	afl := suite.createLeague("afl")
	season := suite.createSeason(afl, "2021")

	game, err := suite.games.CreateGame(suite.ctx, season, suite.gameRequest(
		time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC), suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton"),
	))
	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), game.Team1Score())
	assert.Zero(suite.T(), game.Team2Score())
	assert.Nil(suite.T(), game.VenueID)
}

func (suite *ServicesTestSuite) TestCreateGame_InvalidLinks() {
	afl := suite.createLeague("afl")
	vfl := suite.createLeague("vfl")
	season := suite.createSeason(afl, "2021")
	richmond := suite.createTeam(afl, "richmond")
	williamstown := suite.createTeam(vfl, "williamstown")
	start := time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC)

	req := suite.gameRequest(start, richmond, williamstown)
	_, err := suite.games.CreateGame(suite.ctx, season, req)
	assert.Equal(suite.T(), "team must belong to league afl", fieldsOf(suite.T(), err)["team_2"])

	req = suite.gameRequest(start, richmond, richmond)
	req.Team2 = "http://testserver/v1/leagues/afl/teams/nobody"
	_, err = suite.games.CreateGame(suite.ctx, season, req)
	assert.Equal(suite.T(), "team does not exist", fieldsOf(suite.T(), err)["team_2"])

	// A team link naming the wrong league does not resolve
	req.Team2 = "http://testserver/v1/leagues/vfl/teams/richmond"
	_, err = suite.games.CreateGame(suite.ctx, season, req)
	assert.Equal(suite.T(), "team does not exist", fieldsOf(suite.T(), err)["team_2"])

	req.Team2 = "richmond"
	badVenue := "http://testserver/v1/venues/nowhere"
	req.Venue = &badVenue
	_, err = suite.games.CreateGame(suite.ctx, season, req)
	fields := fieldsOf(suite.T(), err)
	assert.Equal(suite.T(), "invalid team link", fields["team_2"])
	assert.Equal(suite.T(), "venue does not exist", fields["venue"])

	var count int64
	require.NoError(suite.T(), suite.db.Model(&models.Game{}).Count(&count).Error)
	assert.Zero(suite.T(), count)
}

func (suite *ServicesTestSuite) TestCreateGame_Duplicate() {
	afl := suite.createLeague("afl")
	season := suite.createSeason(afl, "2021")
	richmond, carlton := suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton")
	req := suite.gameRequest(time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC), richmond, carlton)

	game, err := suite.games.CreateGame(suite.ctx, season, req)
	require.NoError(suite.T(), err)

	_, err = suite.games.CreateGame(suite.ctx, season, req)
	assert.Contains(suite.T(), fieldsOf(suite.T(), err), "game")

	// Saving the same game again is not a conflict with itself
	req.Team1Goals = intPtr(3)
	updated, err := suite.games.UpdateGame(suite.ctx, game, season, req)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(18), updated.Team1Score())
}

func (suite *ServicesTestSuite) TestCreateGame_CountBounds() {
	afl := suite.createLeague("afl")
	season := suite.createSeason(afl, "2021")
	richmond, carlton := suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton")

	req := suite.gameRequest(time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC), richmond, carlton)
	req.Team1Goals, req.Team1Behinds = intPtr(math.MaxInt32), intPtr(math.MaxInt32)
	game, err := suite.games.CreateGame(suite.ctx, season, req)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(15032385529), game.Team1Score())

	path, err := suite.resolver.Resolve(suite.ctx, LeagueSegment("afl"), SeasonSegment("2021"), GameSegment(fmt.Sprint(game.ID)))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), math.MaxInt32, path.Game.Team1Goals)
	assert.Equal(suite.T(), int64(15032385529), path.Game.Team1Score())

	req = suite.gameRequest(time.Date(2021, 3, 25, 8, 25, 0, 0, time.UTC), richmond, carlton)
	req.Team1Goals = intPtr(math.MaxInt32 + 1)
	req.Team2Behinds = intPtr(-1)
	_, err = suite.games.CreateGame(suite.ctx, season, req)
	fields := fieldsOf(suite.T(), err)
	assert.Equal(suite.T(), "must be at most 2147483647", fields["team_1_goals"])
	assert.Equal(suite.T(), "must be at least 0", fields["team_2_behinds"])
}

func (suite *ServicesTestSuite) TestUpdateGame_ChangesTeamsAndVenue() {
	afl := suite.createLeague("afl")
	vfl := suite.createLeague("vfl")
	season := suite.createSeason(afl, "2021")
	mcg := suite.createVenue("mcg", "-37.819967", "144.983449")
	marvel := suite.createVenue("marvel", "-37.816528", "144.947266")
	richmond, carlton, geelong := suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton"), suite.createTeam(afl, "geelong")
	williamstown := suite.createTeam(vfl, "williamstown")
	start := time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC)

	req := suite.gameRequest(start, richmond, carlton)
	venueLink := suite.links.Venue(mcg.ID)
	req.Venue = &venueLink
	game, err := suite.games.CreateGame(suite.ctx, season, req)
	require.NoError(suite.T(), err)
	gameID := fmt.Sprint(game.ID)

	reload := func() *models.Game {
		path, err := suite.resolver.Resolve(suite.ctx, LeagueSegment("afl"), SeasonSegment("2021"), GameSegment(gameID))
		require.NoError(suite.T(), err)
		return path.Game
	}

	req = suite.gameRequest(start.Add(time.Hour), geelong, richmond)
	venueLink = suite.links.Venue(marvel.ID)
	req.Venue = &venueLink
	req.Team1Goals, req.Team1Behinds = intPtr(10), intPtr(4)
	req.Team2Goals = intPtr(2)
	updated, err := suite.games.UpdateGame(suite.ctx, reload(), season, req)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "geelong", updated.Team1.ID)
	assert.Equal(suite.T(), int64(64), updated.Team1Score())

	stored := reload()
	assert.Equal(suite.T(), "geelong", stored.Team1ID)
	assert.Equal(suite.T(), "richmond", stored.Team2ID)
	assert.True(suite.T(), stored.Start.Equal(start.Add(time.Hour)))
	require.NotNil(suite.T(), stored.VenueID)
	assert.Equal(suite.T(), "marvel", *stored.VenueID)
	assert.Equal(suite.T(), int64(64), stored.Team1Score())
	assert.Equal(suite.T(), int64(12), stored.Team2Score())

	// Omitting the venue clears it
	req.Venue = nil
	updated, err = suite.games.UpdateGame(suite.ctx, stored, season, req)
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), updated.VenueID)
	assert.Nil(suite.T(), reload().VenueID)

	// A rejected update leaves the stored game untouched
	req = suite.gameRequest(start, richmond, williamstown)
	_, err = suite.games.UpdateGame(suite.ctx, reload(), season, req)
	assert.Equal(suite.T(), "team must belong to league afl", fieldsOf(suite.T(), err)["team_2"])
	stored = reload()
	assert.Equal(suite.T(), "geelong", stored.Team1ID)
	assert.Equal(suite.T(), "richmond", stored.Team2ID)
	assert.Equal(suite.T(), int64(64), stored.Team1Score())
}

// DELETE

func (suite *ServicesTestSuite) TestDeleteLeague_Protected() {
	afl := suite.createLeague("afl")
	team := suite.createTeam(afl, "richmond")

	err := suite.leagues.DeleteLeague(suite.ctx, afl)
	assert.ErrorIs(suite.T(), err, ErrProtected)

	require.NoError(suite.T(), suite.teams.DeleteTeam(suite.ctx, team))
	require.NoError(suite.T(), suite.leagues.DeleteLeague(suite.ctx, afl))

	_, err = suite.resolver.Resolve(suite.ctx, LeagueSegment("afl"))
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *ServicesTestSuite) TestDeleteTeam_ProtectedByGamesAndCascadesNames() {
	afl := suite.createLeague("afl")
	season := suite.createSeason(afl, "2021")
	richmond, carlton := suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton")
	_, err := suite.names.CreateTeamAlternativeName(suite.ctx, carlton, models.AlternativeNameRequest{Name: "Blues"})
	require.NoError(suite.T(), err)

	game, err := suite.games.CreateGame(suite.ctx, season, suite.gameRequest(time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC), richmond, carlton))
	require.NoError(suite.T(), err)

	assert.ErrorIs(suite.T(), suite.teams.DeleteTeam(suite.ctx, carlton), ErrProtected)
	assert.ErrorIs(suite.T(), suite.seasons.DeleteSeason(suite.ctx, season), ErrProtected)

	require.NoError(suite.T(), suite.games.DeleteGame(suite.ctx, game))
	require.NoError(suite.T(), suite.teams.DeleteTeam(suite.ctx, carlton))

	var count int64
	require.NoError(suite.T(), suite.db.Model(&models.TeamAlternativeName{}).Count(&count).Error)
	assert.Zero(suite.T(), count)
}

func (suite *ServicesTestSuite) TestDeleteVenue_ProtectedByGames() {
	afl := suite.createLeague("afl")
	season := suite.createSeason(afl, "2021")
	venue := suite.createVenue("mcg", "-37.819967", "144.983449")
	_, err := suite.names.CreateVenueAlternativeName(suite.ctx, venue, models.AlternativeNameRequest{Name: "The G"})
	require.NoError(suite.T(), err)

	req := suite.gameRequest(time.Date(2021, 3, 18, 8, 25, 0, 0, time.UTC), suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton"))
	link := suite.links.Venue("mcg")
	req.Venue = &link
	game, err := suite.games.CreateGame(suite.ctx, season, req)
	require.NoError(suite.T(), err)

	assert.ErrorIs(suite.T(), suite.venues.DeleteVenue(suite.ctx, venue), ErrProtected)

	require.NoError(suite.T(), suite.games.DeleteGame(suite.ctx, game))
	require.NoError(suite.T(), suite.venues.DeleteVenue(suite.ctx, venue))

	var count int64
	require.NoError(suite.T(), suite.db.Model(&models.VenueAlternativeName{}).Count(&count).Error)
	assert.Zero(suite.T(), count)
}

// STATS

func (suite *ServicesTestSuite) TestGetStats() {
	afl := suite.createLeague("afl")
	season := suite.createSeason(afl, "2021")
	richmond, carlton := suite.createTeam(afl, "richmond"), suite.createTeam(afl, "carlton")
	suite.createVenue("mcg", "-37.819967", "144.983449")

	now := time.Date(2021, 4, 1, 12, 0, 0, 0, time.UTC)
	for _, start := range []time.Time{
		now.AddDate(0, 0, -10),
		now.AddDate(0, 0, -3),
		now.AddDate(0, 0, 2),
		now.AddDate(0, 0, 5),
		now.AddDate(0, 0, 9),
	} {
		_, err := suite.games.CreateGame(suite.ctx, season, suite.gameRequest(start, richmond, carlton))
		require.NoError(suite.T(), err)
	}

	stats := NewStatsServiceWithClock(suite.db, clockwork.NewFakeClockAt(now))

	result, err := stats.GetStats(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), &models.Stats{
		TotalLeagues:   1,
		TotalTeams:     2,
		TotalSeasons:   1,
		TotalVenues:    1,
		TotalGames:     5,
		GamesLast7Days: 1,
		GamesNext7Days: 2,
	}, result)
}
