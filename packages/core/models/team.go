package models

import "time"

type Team struct {
	ID              string    `gorm:"primaryKey;size:200" json:"id"`
	LeagueID        string    `gorm:"size:200;not null;index" json:"league"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	PrimaryColour   *string   `gorm:"size:7" json:"primary_colour"`
	SecondaryColour *string   `gorm:"size:7" json:"secondary_colour"`
	TertiaryColour  *string   `gorm:"size:7" json:"tertiary_colour"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`

	// Relationships
	League           League                `gorm:"foreignKey:LeagueID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	AlternativeNames []TeamAlternativeName `gorm:"foreignKey:TeamID" json:"-"`
}

func (Team) TableName() string {
	return "teams"
}

// AlternativeNameList returns the names of the team's preloaded alternative names
func (t *Team) AlternativeNameList() []string {
	names := make([]string, 0, len(t.AlternativeNames))
	for _, n := range t.AlternativeNames {
		names = append(names, n.Name)
	}
	return names
}

// TeamRequest is the body accepted by team create and update. The league is
// always taken from the URL.
type TeamRequest struct {
	ID              string  `json:"id" binding:"omitempty,identifier"`
	Name            string  `json:"name" binding:"required"`
	PrimaryColour   *string `json:"primary_colour" binding:"omitempty,rgbcolour"`
	SecondaryColour *string `json:"secondary_colour" binding:"omitempty,rgbcolour"`
	TertiaryColour  *string `json:"tertiary_colour" binding:"omitempty,rgbcolour"`
}

type TeamResponse struct {
	ID               string   `json:"id" example:"richmond"`
	Name             string   `json:"name" example:"Richmond"`
	League           string   `json:"league" example:"afl"`
	PrimaryColour    *string  `json:"primary_colour" example:"#FFD200"`
	SecondaryColour  *string  `json:"secondary_colour" example:"#000000"`
	TertiaryColour   *string  `json:"tertiary_colour"`
	AlternativeNames []string `json:"alternative_names"`
	URL              string   `json:"url" example:"http://localhost:8080/v1/leagues/afl/teams/richmond"`
}
