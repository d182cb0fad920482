package models

type Stats struct {
	TotalLeagues   int64 `json:"total_leagues"`
	TotalTeams     int64 `json:"total_teams"`
	TotalSeasons   int64 `json:"total_seasons"`
	TotalVenues    int64 `json:"total_venues"`
	TotalGames     int64 `json:"total_games"`
	GamesLast7Days int64 `json:"games_last_7_days"`
	GamesNext7Days int64 `json:"games_next_7_days"`
}
