package models

import (
	"footy-api/packages/core/utils"
	"time"
)

type Game struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Start        time.Time `gorm:"not null;index;uniqueIndex:idx_games_natural_key,priority:1" json:"start"`
	SeasonID     string    `gorm:"size:200;not null;index;uniqueIndex:idx_games_natural_key,priority:2" json:"season"`
	VenueID      *string   `gorm:"size:200;index" json:"venue"`
	Team1ID      string    `gorm:"column:team_1_id;size:200;not null;index;uniqueIndex:idx_games_natural_key,priority:3" json:"team_1"`
	Team1Goals   int       `gorm:"column:team_1_goals;type:integer;not null;default:0" json:"team_1_goals"`
	Team1Behinds int       `gorm:"column:team_1_behinds;type:integer;not null;default:0" json:"team_1_behinds"`
	Team2ID      string    `gorm:"column:team_2_id;size:200;not null;index;uniqueIndex:idx_games_natural_key,priority:4" json:"team_2"`
	Team2Goals   int       `gorm:"column:team_2_goals;type:integer;not null;default:0" json:"team_2_goals"`
	Team2Behinds int       `gorm:"column:team_2_behinds;type:integer;not null;default:0" json:"team_2_behinds"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// Relationships
	Season Season `gorm:"foreignKey:SeasonID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Venue  *Venue `gorm:"foreignKey:VenueID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Team1  Team   `gorm:"foreignKey:Team1ID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Team2  Team   `gorm:"foreignKey:Team2ID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Game) TableName() string {
	return "games"
}

func (g *Game) Team1Score() int64 {
	return utils.CalculateScore(g.Team1Goals, g.Team1Behinds)
}

func (g *Game) Team2Score() int64 {
	return utils.CalculateScore(g.Team2Goals, g.Team2Behinds)
}

// GameRequest carries teams and venue as resource links, e.g.
// "/v1/leagues/afl/teams/richmond". Scores are derived and never accepted.
type GameRequest struct {
	Start        *time.Time `json:"start" binding:"required"`
	Venue        *string    `json:"venue"`
	Team1        string     `json:"team_1" binding:"required"`
	Team1Goals   *int       `json:"team_1_goals" binding:"omitempty,min=0,max=2147483647"`
	Team1Behinds *int       `json:"team_1_behinds" binding:"omitempty,min=0,max=2147483647"`
	Team2        string     `json:"team_2" binding:"required"`
	Team2Goals   *int       `json:"team_2_goals" binding:"omitempty,min=0,max=2147483647"`
	Team2Behinds *int       `json:"team_2_behinds" binding:"omitempty,min=0,max=2147483647"`
}

type GameResponse struct {
	ID           uint      `json:"id" example:"1"`
	Start        time.Time `json:"start" example:"2021-03-18T08:25:00Z"`
	Season       string    `json:"season" example:"2021"`
	Venue        *string   `json:"venue" example:"http://localhost:8080/v1/venues/mcg"`
	Team1        string    `json:"team_1" example:"http://localhost:8080/v1/leagues/afl/teams/richmond"`
	Team1Goals   int       `json:"team_1_goals" example:"16"`
	Team1Behinds int       `json:"team_1_behinds" example:"11"`
	Team1Score   int64     `json:"team_1_score" example:"107"`
	Team2        string    `json:"team_2" example:"http://localhost:8080/v1/leagues/afl/teams/carlton"`
	Team2Goals   int       `json:"team_2_goals" example:"11"`
	Team2Behinds int       `json:"team_2_behinds" example:"9"`
	Team2Score   int64     `json:"team_2_score" example:"75"`
	URL          string    `json:"url" example:"http://localhost:8080/v1/leagues/afl/seasons/2021/games/1"`
}
