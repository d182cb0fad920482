package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CoordinatePlaces is the number of fractional digits stored for latitude and longitude
const CoordinatePlaces = 6

type Venue struct {
	ID        string          `gorm:"primaryKey;size:200" json:"id"`
	Name      string          `gorm:"type:text;not null" json:"name"`
	Latitude  decimal.Decimal `gorm:"type:numeric(8,6);not null" json:"latitude"`
	Longitude decimal.Decimal `gorm:"type:numeric(9,6);not null" json:"longitude"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`

	AlternativeNames []VenueAlternativeName `gorm:"foreignKey:VenueID" json:"-"`
}

func (Venue) TableName() string {
	return "venues"
}

func (v *Venue) AlternativeNameList() []string {
	names := make([]string, 0, len(v.AlternativeNames))
	for _, n := range v.AlternativeNames {
		names = append(names, n.Name)
	}
	return names
}

// VenueRequest accepts coordinates as JSON strings or numbers.
type VenueRequest struct {
	ID        string           `json:"id" binding:"omitempty,identifier"`
	Name      string           `json:"name" binding:"required"`
	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`
}

type VenueResponse struct {
	ID               string   `json:"id" example:"mcg"`
	Name             string   `json:"name" example:"Melbourne Cricket Ground"`
	Latitude         string   `json:"latitude" example:"-37.819967"`
	Longitude        string   `json:"longitude" example:"144.983449"`
	Timezone         *string  `json:"timezone" example:"Australia/Melbourne"`
	AlternativeNames []string `json:"alternative_names"`
	URL              string   `json:"url" example:"http://localhost:8080/v1/venues/mcg"`
}
