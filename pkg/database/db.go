package database

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

// InitDB initializes the database connection and migrates the schema.
//
// With DATABASE_URL set it connects to postgres; otherwise it opens sqlite at
// DATA_PATH, defaulting to a shared in-memory database so all state is
// process-local and discarded on exit.
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			// cache=shared keeps every pooled connection on the same
			// in-memory database.
			dbPath = "file::memory:?cache=shared"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

// Migrate creates or updates the domain tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserAccount{},
		&models.Shift{},
		&models.Availability{},
		&models.TimeOffRequest{},
		&models.ShiftTradeRequest{},
	)
}
