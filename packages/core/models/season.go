package models

import "time"

type Season struct {
	ID        string    `gorm:"primaryKey;size:200" json:"id"`
	LeagueID  string    `gorm:"size:200;not null;index" json:"league"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	League League `gorm:"foreignKey:LeagueID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Season) TableName() string {
	return "seasons"
}

type SeasonRequest struct {
	ID   string `json:"id" binding:"omitempty,identifier"`
	Name string `json:"name" binding:"required"`
}

type SeasonResponse struct {
	ID     string `json:"id" example:"2021"`
	Name   string `json:"name" example:"2021 Premiership Season"`
	League string `json:"league" example:"afl"`
	URL    string `json:"url" example:"http://localhost:8080/v1/leagues/afl/seasons/2021"`
}
