package services

import (
	"context"
	"fmt"

	"footy-api/packages/core/models"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type StatsService struct {
	db    *gorm.DB
	clock clockwork.Clock
}

func NewStatsService(db *gorm.DB) *StatsService {
	return NewStatsServiceWithClock(db, clockwork.NewRealClock())
}

// NewStatsServiceWithClock measures the 7 day windows from clock's current time
func NewStatsServiceWithClock(db *gorm.DB, clock clockwork.Clock) *StatsService {
	return &StatsService{
		db:    db,
		clock: clock,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	db := s.db.WithContext(ctx)
	stats := &models.Stats{}

	totals := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.League{}, &stats.TotalLeagues},
		{&models.Team{}, &stats.TotalTeams},
		{&models.Season{}, &stats.TotalSeasons},
		{&models.Venue{}, &stats.TotalVenues},
		{&models.Game{}, &stats.TotalGames},
	}
	for _, t := range totals {
		if err := db.Model(t.model).Count(t.dest).Error; err != nil {
			return nil, fmt.Errorf("counting %T: %w", t.model, err)
		}
	}

	now := s.clock.Now().UTC()
	weekAgo := now.AddDate(0, 0, -7)
	weekAhead := now.AddDate(0, 0, 7)

	// Games played in the last 7 days
	if err := db.Model(&models.Game{}).
		Where("start >= ? AND start < ?", weekAgo, now).
		Count(&stats.GamesLast7Days).Error; err != nil {
		return nil, fmt.Errorf("counting recent games: %w", err)
	}

	// Games scheduled in the next 7 days
	if err := db.Model(&models.Game{}).
		Where("start >= ? AND start < ?", now, weekAhead).
		Count(&stats.GamesNext7Days).Error; err != nil {
		return nil, fmt.Errorf("counting upcoming games: %w", err)
	}

	return stats, nil
}
