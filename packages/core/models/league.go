package models

import "time"

type League struct {
	ID        string    `gorm:"primaryKey;size:200" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (League) TableName() string {
	return "leagues"
}

type CreateLeagueRequest struct {
	ID   string `json:"id" binding:"required,identifier"`
	Name string `json:"name" binding:"required"`
}

type UpdateLeagueRequest struct {
	ID   *string `json:"id,omitempty"`
	Name string  `json:"name" binding:"required"`
}

type LeagueResponse struct {
	ID   string `json:"id" example:"afl"`
	Name string `json:"name" example:"Australian Football League"`
	URL  string `json:"url" example:"http://localhost:8080/v1/leagues/afl"`
}
