package config

import (
	"fmt"
	"log"

	movies "cinecatalog/src/modules/movies/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the PostgreSQL connection and migrates the schema.
func ConnectDatabase(settings Settings) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		settings.DBHost, settings.DBPort, settings.DBUser, settings.DBPass, settings.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to PostgreSQL database")

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	return db
}

// Migrate runs all schema migrations. Reference tables go first so the join
// tables created by the movie migration can point at them.
func Migrate(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		movies.MigrateReferences,
		movies.MigrateMovies,
	}

	for _, migrate := range migrations {
		if err := migrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func CheckConnection(db *gorm.DB) bool {
	if db == nil {
		return false
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get generic database object: %v", err)
		return false
	}

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database ping failed: %v", err)
		return false
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Printf("Test query failed: %v", err)
		return false
	}
	return result == 1
}
