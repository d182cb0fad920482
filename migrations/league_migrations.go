package migrations

import (
	"footy-api/packages/core/models"

	"gorm.io/gorm"
)

// GetAllMigrations returns every schema migration in the order it must run
func GetAllMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_01_000000_create_league_tables",
			Up: func(db *gorm.DB) error {
				// Referenced tables first so foreign keys can be created inline
				return db.Migrator().CreateTable(
					&models.League{},
					&models.Venue{},
					&models.Team{},
					&models.Season{},
					&models.TeamAlternativeName{},
					&models.VenueAlternativeName{},
					&models.Game{},
				)
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(
					&models.Game{},
					&models.VenueAlternativeName{},
					&models.TeamAlternativeName{},
					&models.Season{},
					&models.Team{},
					&models.Venue{},
					&models.League{},
				)
			},
		},
		{
			Name: "2025_01_02_000000_add_name_indexes",
			Up: func(db *gorm.DB) error {
				for _, stmt := range []string{
					"CREATE INDEX IF NOT EXISTS idx_teams_name ON teams(name)",
					"CREATE INDEX IF NOT EXISTS idx_venues_name ON venues(name)",
					"CREATE INDEX IF NOT EXISTS idx_team_alternative_names_name ON team_alternative_names(name)",
					"CREATE INDEX IF NOT EXISTS idx_venue_alternative_names_name ON venue_alternative_names(name)",
				} {
					if err := db.Exec(stmt).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Down: func(db *gorm.DB) error {
				for _, stmt := range []string{
					"DROP INDEX IF EXISTS idx_venue_alternative_names_name",
					"DROP INDEX IF EXISTS idx_team_alternative_names_name",
					"DROP INDEX IF EXISTS idx_venues_name",
					"DROP INDEX IF EXISTS idx_teams_name",
				} {
					if err := db.Exec(stmt).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
