package handlers

import (
	"footy-api/packages/core/links"
	"footy-api/packages/core/models"
	"footy-api/packages/core/utils"
)

func leagueResponse(b links.Builder, league *models.League) models.LeagueResponse {
	return models.LeagueResponse{
		ID:   league.ID,
		Name: league.Name,
		URL:  b.League(league.ID),
	}
}

func teamResponse(b links.Builder, team *models.Team) models.TeamResponse {
	return models.TeamResponse{
		ID:               team.ID,
		Name:             team.Name,
		League:           team.LeagueID,
		PrimaryColour:    team.PrimaryColour,
		SecondaryColour:  team.SecondaryColour,
		TertiaryColour:   team.TertiaryColour,
		AlternativeNames: team.AlternativeNameList(),
		URL:              b.Team(team.LeagueID, team.ID),
	}
}

func seasonResponse(b links.Builder, season *models.Season) models.SeasonResponse {
	return models.SeasonResponse{
		ID:     season.ID,
		Name:   season.Name,
		League: season.LeagueID,
		URL:    b.Season(season.LeagueID, season.ID),
	}
}

func venueResponse(b links.Builder, venue *models.Venue) models.VenueResponse {
	return models.VenueResponse{
		ID:               venue.ID,
		Name:             venue.Name,
		Latitude:         venue.Latitude.StringFixed(models.CoordinatePlaces),
		Longitude:        venue.Longitude.StringFixed(models.CoordinatePlaces),
		Timezone:         utils.TimezoneAt(venue.Latitude.InexactFloat64(), venue.Longitude.InexactFloat64()),
		AlternativeNames: venue.AlternativeNameList(),
		URL:              b.Venue(venue.ID),
	}
}

// gameResponse needs the season's league to build the game and team links;
// Team1 and Team2 must be loaded.
func gameResponse(b links.Builder, leagueID string, game *models.Game) models.GameResponse {
	var venue *string
	if game.VenueID != nil {
		link := b.Venue(*game.VenueID)
		venue = &link
	}

	return models.GameResponse{
		ID:           game.ID,
		Start:        game.Start.UTC(),
		Season:       game.SeasonID,
		Venue:        venue,
		Team1:        b.Team(game.Team1.LeagueID, game.Team1ID),
		Team1Goals:   game.Team1Goals,
		Team1Behinds: game.Team1Behinds,
		Team1Score:   game.Team1Score(),
		Team2:        b.Team(game.Team2.LeagueID, game.Team2ID),
		Team2Goals:   game.Team2Goals,
		Team2Behinds: game.Team2Behinds,
		Team2Score:   game.Team2Score(),
		URL:          b.Game(leagueID, game.SeasonID, game.ID),
	}
}

func teamAlternativeNameResponse(b links.Builder, leagueID string, name *models.TeamAlternativeName) models.TeamAlternativeNameResponse {
	return models.TeamAlternativeNameResponse{
		ID:   name.ID,
		Name: name.Name,
		Team: name.TeamID,
		URL:  b.TeamAlternativeName(leagueID, name.TeamID, name.ID),
	}
}

func venueAlternativeNameResponse(b links.Builder, name *models.VenueAlternativeName) models.VenueAlternativeNameResponse {
	return models.VenueAlternativeNameResponse{
		ID:    name.ID,
		Name:  name.Name,
		Venue: name.VenueID,
		URL:   b.VenueAlternativeName(name.VenueID, name.ID),
	}
}
