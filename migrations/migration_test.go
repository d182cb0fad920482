package migrations

import (
	"testing"

	"footy-api/packages/core/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type MigratorTestSuite struct {
	suite.Suite
	db       *gorm.DB
	migrator *Migrator
}

func (suite *MigratorTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(suite.T(), err)

	sqlDB, err := db.DB()
	require.NoError(suite.T(), err)
	sqlDB.SetMaxOpenConns(1)
	suite.T().Cleanup(func() {
		sqlDB.Close()
	})

	suite.db = db
	suite.migrator, err = NewMigrator(db)
	require.NoError(suite.T(), err)
	suite.migrator.AddMigrations(GetAllMigrations())
}

func TestMigratorTestSuite(t *testing.T) {
	suite.Run(t, new(MigratorTestSuite))
}

func (suite *MigratorTestSuite) TestMigrate_CreatesSchema() {
	pending, err := suite.migrator.Pending()
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), pending, 2)

	require.NoError(suite.T(), suite.migrator.Migrate())

	for _, model := range []interface{}{
		&models.League{}, &models.Team{}, &models.Season{}, &models.Venue{},
		&models.Game{}, &models.TeamAlternativeName{}, &models.VenueAlternativeName{},
	} {
		assert.True(suite.T(), suite.db.Migrator().HasTable(model), "%T", model)
	}

	pending, err = suite.migrator.Pending()
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), pending)

	records, err := suite.migrator.Status()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), 1, records[0].Batch)
	assert.Equal(suite.T(), 1, records[1].Batch)
}

func (suite *MigratorTestSuite) TestMigrate_IsIdempotent() {
	require.NoError(suite.T(), suite.migrator.Migrate())
	require.NoError(suite.T(), suite.migrator.Migrate())

	records, err := suite.migrator.Status()
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), records, 2)
}

func (suite *MigratorTestSuite) TestMigrate_NewBatch() {
	first := GetAllMigrations()[:1]
	migrator, err := NewMigrator(suite.db)
	require.NoError(suite.T(), err)
	migrator.AddMigrations(first)
	require.NoError(suite.T(), migrator.Migrate())

	require.NoError(suite.T(), suite.migrator.Migrate())

	records, err := suite.migrator.Status()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), 1, records[0].Batch)
	assert.Equal(suite.T(), 2, records[1].Batch)

	// Rolling back one step only undoes the second batch
	require.NoError(suite.T(), suite.migrator.Rollback(1))
	pending, err := suite.migrator.Pending()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"2025_01_02_000000_add_name_indexes"}, pending)
	assert.True(suite.T(), suite.db.Migrator().HasTable(&models.League{}))
}

func (suite *MigratorTestSuite) TestRollback_DropsSchema() {
	require.NoError(suite.T(), suite.migrator.Migrate())
	require.NoError(suite.T(), suite.migrator.Rollback(1))

	records, err := suite.migrator.Status()
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), records)
	assert.False(suite.T(), suite.db.Migrator().HasTable(&models.Game{}))
	assert.False(suite.T(), suite.db.Migrator().HasTable(&models.League{}))

	// Nothing left to undo
	require.NoError(suite.T(), suite.migrator.Rollback(1))
}
