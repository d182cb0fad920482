package models

import "time"

type TeamAlternativeName struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID    string    `gorm:"size:200;not null;index" json:"team"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Team Team `gorm:"foreignKey:TeamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (TeamAlternativeName) TableName() string {
	return "team_alternative_names"
}

type VenueAlternativeName struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VenueID   string    `gorm:"size:200;not null;index" json:"venue"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Venue Venue `gorm:"foreignKey:VenueID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (VenueAlternativeName) TableName() string {
	return "venue_alternative_names"
}

// AlternativeNameRequest is shared by team and venue alternative names;
// the owner always comes from the URL.
type AlternativeNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type TeamAlternativeNameResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Tigers"`
	Team string `json:"team" example:"richmond"`
	URL  string `json:"url" example:"http://localhost:8080/v1/leagues/afl/teams/richmond/alternative_names/1"`
}

type VenueAlternativeNameResponse struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"The G"`
	Venue string `json:"venue" example:"mcg"`
	URL   string `json:"url" example:"http://localhost:8080/v1/venues/mcg/alternative_names/1"`
}
