package core

import (
	"footy-api/packages/core/handlers"
	"footy-api/packages/core/links"
	"footy-api/packages/core/middleware"
	"footy-api/packages/core/services"
	"footy-api/packages/core/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	LeagueHandler          *handlers.LeagueHandler
	LeagueService          *services.LeagueService
	TeamHandler            *handlers.TeamHandler
	TeamService            *services.TeamService
	SeasonHandler          *handlers.SeasonHandler
	SeasonService          *services.SeasonService
	GameHandler            *handlers.GameHandler
	GameService            *services.GameService
	VenueHandler           *handlers.VenueHandler
	VenueService           *services.VenueService
	AlternativeNameHandler *handlers.AlternativeNameHandler
	AlternativeNameService *services.AlternativeNameService
	StatsHandler           *handlers.StatsHandler
	StatsService           *services.StatsService
	HealthHandler          *handlers.HealthHandler
	Resolver               *services.Resolver
	db                     *gorm.DB
}

func NewModule(db *gorm.DB, settings handlers.Settings) (*Module, error) {
	if err := validation.Register(); err != nil {
		return nil, err
	}

	leagueService := services.NewLeagueService(db)
	teamService := services.NewTeamService(db)
	seasonService := services.NewSeasonService(db)
	gameService := services.NewGameService(db)
	venueService := services.NewVenueService(db)
	alternativeNameService := services.NewAlternativeNameService(db)
	statsService := services.NewStatsService(db)

	return &Module{
		LeagueHandler:          handlers.NewLeagueHandler(leagueService, settings),
		LeagueService:          leagueService,
		TeamHandler:            handlers.NewTeamHandler(teamService, settings),
		TeamService:            teamService,
		SeasonHandler:          handlers.NewSeasonHandler(seasonService, settings),
		SeasonService:          seasonService,
		GameHandler:            handlers.NewGameHandler(gameService, settings),
		GameService:            gameService,
		VenueHandler:           handlers.NewVenueHandler(venueService, settings),
		VenueService:           venueService,
		AlternativeNameHandler: handlers.NewAlternativeNameHandler(alternativeNameService, settings),
		AlternativeNameService: alternativeNameService,
		StatsHandler:           handlers.NewStatsHandler(statsService),
		StatsService:           statsService,
		HealthHandler:          handlers.NewHealthHandler(db),
		Resolver:               services.NewResolver(db),
		db:                     db,
	}, nil
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	r.GET("/health", m.HealthHandler.Health)

	v1 := r.Group(links.APIPrefix)
	v1.GET("/stats", m.StatsHandler.GetStats)

	var (
		league = middleware.PathParam{Kind: services.KindLeague, Param: "league"}
		team   = middleware.PathParam{Kind: services.KindTeam, Param: "team"}
		season = middleware.PathParam{Kind: services.KindSeason, Param: "season"}
		game   = middleware.PathParam{Kind: services.KindGame, Param: "game"}
		venue  = middleware.PathParam{Kind: services.KindVenue, Param: "venue"}

		teamName  = middleware.PathParam{Kind: services.KindTeamAlternativeName, Param: "name"}
		venueName = middleware.PathParam{Kind: services.KindVenueAlternativeName, Param: "name"}
	)
	resolve := func(params ...middleware.PathParam) gin.HandlerFunc {
		return middleware.ResolvePath(m.Resolver, params...)
	}

	leagues := v1.Group("/leagues")
	{
		leagues.GET("", m.LeagueHandler.ListLeagues)
		leagues.POST("", m.LeagueHandler.CreateLeague)
		leagues.GET("/:league", resolve(league), m.LeagueHandler.GetLeague)
		leagues.PUT("/:league", resolve(league), m.LeagueHandler.UpdateLeague)
		leagues.DELETE("/:league", resolve(league), m.LeagueHandler.DeleteLeague)
	}

	teams := leagues.Group("/:league/teams")
	{
		teams.GET("", resolve(league), m.TeamHandler.ListTeams)
		teams.POST("", resolve(league), m.TeamHandler.CreateTeam)
		teams.GET("/:team", resolve(league, team), m.TeamHandler.GetTeam)
		teams.PUT("/:team", resolve(league, team), m.TeamHandler.UpdateTeam)
		teams.DELETE("/:team", resolve(league, team), m.TeamHandler.DeleteTeam)

		names := teams.Group("/:team/alternative_names")
		names.GET("", resolve(league, team), m.AlternativeNameHandler.ListTeamAlternativeNames)
		names.POST("", resolve(league, team), m.AlternativeNameHandler.CreateTeamAlternativeName)
		names.GET("/:name", resolve(league, team, teamName), m.AlternativeNameHandler.GetTeamAlternativeName)
		names.PUT("/:name", resolve(league, team, teamName), m.AlternativeNameHandler.UpdateTeamAlternativeName)
		names.DELETE("/:name", resolve(league, team, teamName), m.AlternativeNameHandler.DeleteTeamAlternativeName)
	}

	seasons := leagues.Group("/:league/seasons")
	{
		seasons.GET("", resolve(league), m.SeasonHandler.ListSeasons)
		seasons.POST("", resolve(league), m.SeasonHandler.CreateSeason)
		seasons.GET("/:season", resolve(league, season), m.SeasonHandler.GetSeason)
		seasons.PUT("/:season", resolve(league, season), m.SeasonHandler.UpdateSeason)
		seasons.DELETE("/:season", resolve(league, season), m.SeasonHandler.DeleteSeason)

		games := seasons.Group("/:season/games")
		games.GET("", resolve(league, season), m.GameHandler.ListGames)
		games.POST("", resolve(league, season), m.GameHandler.CreateGame)
		games.GET("/:game", resolve(league, season, game), m.GameHandler.GetGame)
		games.PUT("/:game", resolve(league, season, game), m.GameHandler.UpdateGame)
		games.DELETE("/:game", resolve(league, season, game), m.GameHandler.DeleteGame)
	}

	venues := v1.Group("/venues")
	{
		venues.GET("", m.VenueHandler.ListVenues)
		venues.POST("", m.VenueHandler.CreateVenue)
		venues.GET("/:venue", resolve(venue), m.VenueHandler.GetVenue)
		venues.PUT("/:venue", resolve(venue), m.VenueHandler.UpdateVenue)
		venues.DELETE("/:venue", resolve(venue), m.VenueHandler.DeleteVenue)

		names := venues.Group("/:venue/alternative_names")
		names.GET("", resolve(venue), m.AlternativeNameHandler.ListVenueAlternativeNames)
		names.POST("", resolve(venue), m.AlternativeNameHandler.CreateVenueAlternativeName)
		names.GET("/:name", resolve(venue, venueName), m.AlternativeNameHandler.GetVenueAlternativeName)
		names.PUT("/:name", resolve(venue, venueName), m.AlternativeNameHandler.UpdateVenueAlternativeName)
		names.DELETE("/:name", resolve(venue, venueName), m.AlternativeNameHandler.DeleteVenueAlternativeName)
	}
}
