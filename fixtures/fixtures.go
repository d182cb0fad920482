package fixtures

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"footy-api/packages/core/links"
	"footy-api/packages/core/models"
	"footy-api/packages/core/services"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	leagueID   = "afl"
	leagueName = "Australian Football League"

	roundCount       = 12
	roundsBeforeNow  = 8
	gameHourUTC      = 9
	daysBetweenRound = 7
)

type teamFixture struct {
	id, name                     string
	primary, secondary, tertiary string
	alternativeNames             []string
}

type venueFixture struct {
	id, name         string
	latitude         string
	longitude        string
	alternativeNames []string
}

var teamFixtures = []teamFixture{
	{"adelaide", "Adelaide", "#002B5C", "#E21937", "#FFD200", []string{"Crows"}},
	{"brisbane", "Brisbane Lions", "#A30046", "#0055A3", "#FDBE57", []string{"Lions"}},
	{"carlton", "Carlton", "#0E1E2D", "#FFFFFF", "", []string{"Blues"}},
	{"collingwood", "Collingwood", "#000000", "#FFFFFF", "", []string{"Magpies", "Pies"}},
	{"essendon", "Essendon", "#CC2031", "#000000", "", []string{"Bombers", "Dons"}},
	{"fremantle", "Fremantle", "#2A1A54", "#FFFFFF", "", []string{"Dockers"}},
	{"geelong", "Geelong", "#1C3C63", "#FFFFFF", "", []string{"Cats"}},
	{"gold_coast", "Gold Coast", "#D93E39", "#F4D03F", "#1C5CA0", []string{"Suns"}},
	{"gws", "Greater Western Sydney", "#F47920", "#4D4D4D", "#FFFFFF", []string{"Giants", "GWS Giants"}},
	{"hawthorn", "Hawthorn", "#4D2004", "#FBBF15", "", []string{"Hawks"}},
	{"melbourne", "Melbourne", "#0F1131", "#CC2031", "", []string{"Demons", "Dees"}},
	{"north_melbourne", "North Melbourne", "#013B9F", "#FFFFFF", "", []string{"Kangaroos", "Roos"}},
	{"port_adelaide", "Port Adelaide", "#008AAB", "#000000", "#FFFFFF", []string{"Power"}},
	{"richmond", "Richmond", "#FFD200", "#000000", "", []string{"Tigers"}},
	{"st_kilda", "St Kilda", "#ED0F05", "#000000", "#FFFFFF", []string{"Saints"}},
	{"sydney", "Sydney", "#ED171F", "#FFFFFF", "", []string{"Swans"}},
	{"west_coast", "West Coast", "#062EE2", "#FFD200", "", []string{"Eagles"}},
	{"western_bulldogs", "Western Bulldogs", "#014896", "#E31937", "#FFFFFF", []string{"Bulldogs", "Doggies"}},
}

var venueFixtures = []venueFixture{
	{"mcg", "Melbourne Cricket Ground", "-37.819967", "144.983449", []string{"MCG", "The G"}},
	{"marvel", "Marvel Stadium", "-37.816528", "144.947266", []string{"Docklands", "Etihad Stadium"}},
	{"adelaide_oval", "Adelaide Oval", "-34.915556", "138.596111", nil},
	{"optus", "Optus Stadium", "-31.951111", "115.888889", []string{"Perth Stadium"}},
	{"gabba", "The Gabba", "-27.485833", "153.038056", []string{"Brisbane Cricket Ground"}},
	{"scg", "Sydney Cricket Ground", "-33.891667", "151.224722", []string{"SCG"}},
	{"gmhba", "GMHBA Stadium", "-38.158056", "144.354722", []string{"Kardinia Park"}},
	{"people_first", "People First Stadium", "-28.006389", "153.366944", []string{"Carrara"}},
	{"engie", "ENGIE Stadium", "-33.843611", "151.066667", []string{"Sydney Showground Stadium"}},
}

// Fixtures seeds a database with an AFL league through the services layer,
// so seeded data obeys the same rules as data created over the API.
type Fixtures struct {
	db     *gorm.DB
	rand   *rand.Rand
	now    time.Time
	links  links.Builder
	league *services.LeagueService
	team   *services.TeamService
	season *services.SeasonService
	venue  *services.VenueService
	game   *services.GameService
	names  *services.AlternativeNameService
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{
		db:     db,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404
		now:    time.Now().UTC(),
		links:  links.NewBuilder(""),
		league: services.NewLeagueService(db),
		team:   services.NewTeamService(db),
		season: services.NewSeasonService(db),
		venue:  services.NewVenueService(db),
		game:   services.NewGameService(db),
		names:  services.NewAlternativeNameService(db),
	}
}

// GenerateTestData creates the AFL league, its teams, the venues and a season
// of games around the current date. Games already played have scores.
func (f *Fixtures) GenerateTestData(ctx context.Context) error {
	log.Info().Msg("starting fixtures generation")

	league, err := f.league.CreateLeague(ctx, models.CreateLeagueRequest{ID: leagueID, Name: leagueName})
	if err != nil {
		return fmt.Errorf("failed to create league: %w", err)
	}

	teams, err := f.generateTeams(ctx, league)
	if err != nil {
		return fmt.Errorf("failed to generate teams: %w", err)
	}

	venues, err := f.generateVenues(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate venues: %w", err)
	}

	year := strconv.Itoa(f.now.Year())
	season, err := f.season.CreateSeason(ctx, league, models.SeasonRequest{
		ID:   year,
		Name: year + " Premiership Season",
	})
	if err != nil {
		return fmt.Errorf("failed to create season: %w", err)
	}

	games, err := f.generateGames(ctx, season, teams, venues)
	if err != nil {
		return fmt.Errorf("failed to generate games: %w", err)
	}

	log.Info().
		Int("teams", len(teams)).
		Int("venues", len(venues)).
		Int("games", games).
		Msg("fixtures generated successfully")
	return nil
}

func (f *Fixtures) generateTeams(ctx context.Context, league *models.League) ([]*models.Team, error) {
	teams := make([]*models.Team, 0, len(teamFixtures))

	for _, tf := range teamFixtures {
		team, err := f.team.CreateTeam(ctx, league, models.TeamRequest{
			ID:              tf.id,
			Name:            tf.name,
			PrimaryColour:   &tf.primary,
			SecondaryColour: &tf.secondary,
			TertiaryColour:  &tf.tertiary,
		})
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", tf.id, err)
		}

		for _, name := range tf.alternativeNames {
			req := models.AlternativeNameRequest{Name: name}
			if _, err := f.names.CreateTeamAlternativeName(ctx, team, req); err != nil {
				return nil, fmt.Errorf("alternative name %q of team %s: %w", name, tf.id, err)
			}
		}

		log.Debug().Str("team", team.ID).Msg("created team")
		teams = append(teams, team)
	}

	return teams, nil
}

func (f *Fixtures) generateVenues(ctx context.Context) ([]*models.Venue, error) {
	venues := make([]*models.Venue, 0, len(venueFixtures))

	for _, vf := range venueFixtures {
		latitude, err := decimal.NewFromString(vf.latitude)
		if err != nil {
			return nil, err
		}
		longitude, err := decimal.NewFromString(vf.longitude)
		if err != nil {
			return nil, err
		}

		venue, err := f.venue.CreateVenue(ctx, models.VenueRequest{
			ID:        vf.id,
			Name:      vf.name,
			Latitude:  &latitude,
			Longitude: &longitude,
		})
		if err != nil {
			return nil, fmt.Errorf("venue %s: %w", vf.id, err)
		}

		for _, name := range vf.alternativeNames {
			req := models.AlternativeNameRequest{Name: name}
			if _, err := f.names.CreateVenueAlternativeName(ctx, venue, req); err != nil {
				return nil, fmt.Errorf("alternative name %q of venue %s: %w", name, vf.id, err)
			}
		}

		log.Debug().Str("venue", venue.ID).Msg("created venue")
		venues = append(venues, venue)
	}

	return venues, nil
}

// generateGames pairs teams with the circle method, one round per week.
// Rounds before now are scored; later rounds are left at zero.
func (f *Fixtures) generateGames(ctx context.Context, season *models.Season, teams []*models.Team, venues []*models.Venue) (int, error) {
	today := time.Date(f.now.Year(), f.now.Month(), f.now.Day(), gameHourUTC, 0, 0, 0, time.UTC)
	firstRound := today.AddDate(0, 0, -daysBetweenRound*roundsBeforeNow)

	order := make([]*models.Team, len(teams))
	copy(order, teams)

	created := 0
	for round := 0; round < roundCount; round++ {
		start := firstRound.AddDate(0, 0, daysBetweenRound*round)
		played := start.Before(f.now)

		for i := 0; i < len(order)/2; i++ {
			home, away := order[i], order[len(order)-1-i]
			venue := venues[(round+i)%len(venues)]
			venueLink := f.links.Venue(venue.ID)

			req := models.GameRequest{
				Start: &start,
				Venue: &venueLink,
				Team1: f.links.Team(home.LeagueID, home.ID),
				Team2: f.links.Team(away.LeagueID, away.ID),
			}
			if played {
				req.Team1Goals, req.Team1Behinds = f.randomScore()
				req.Team2Goals, req.Team2Behinds = f.randomScore()
			}

			if _, err := f.game.CreateGame(ctx, season, req); err != nil {
				return created, fmt.Errorf("round %d %s v %s: %w", round+1, home.ID, away.ID, err)
			}
			created++
		}

		// Rotate every team but the first one place clockwise
		last := order[len(order)-1]
		copy(order[2:], order[1:len(order)-1])
		order[1] = last
	}

	return created, nil
}

func (f *Fixtures) randomScore() (*int, *int) {
	goals := 6 + f.rand.Intn(14)   // #nosec G404
	behinds := 4 + f.rand.Intn(12) // #nosec G404
	return &goals, &behinds
}

// ClearAllData removes every league, team, season, venue and game
func (f *Fixtures) ClearAllData() error {
	log.Info().Msg("clearing all fixture data")

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.Game{},
		&models.TeamAlternativeName{},
		&models.VenueAlternativeName{},
		&models.Season{},
		&models.Team{},
		&models.Venue{},
		&models.League{},
	}

	for _, table := range tables {
		if err := f.db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	if f.db.Dialector.Name() == "postgres" {
		sequences := []string{
			"ALTER SEQUENCE games_id_seq RESTART WITH 1",
			"ALTER SEQUENCE team_alternative_names_id_seq RESTART WITH 1",
			"ALTER SEQUENCE venue_alternative_names_id_seq RESTART WITH 1",
		}
		for _, seq := range sequences {
			if err := f.db.Exec(seq).Error; err != nil {
				return fmt.Errorf("failed to reset sequence: %w", err)
			}
		}
	}

	log.Info().Msg("all fixture data cleared")
	return nil
}
