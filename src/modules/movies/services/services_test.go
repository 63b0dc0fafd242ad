package movies

import (
	"testing"

	"cinecatalog/src/config"
	movies "cinecatalog/src/modules/movies/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second pooled connection would see its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

// catalog is the two-movie fixture most query and write tests run against.
// SciFi, France and Villeneuve exist but are linked to nothing.
type catalog struct {
	action, drama, scifi movies.Genre
	usa, uk, france      movies.Country
	nolan, dicaprio      movies.Person
	villeneuve           movies.Person
	inception, memento   movies.Movie
}

func seedCatalog(t *testing.T, db *gorm.DB) catalog {
	t.Helper()

	c := catalog{
		action:     movies.Genre{Name: "Action"},
		drama:      movies.Genre{Name: "Drama"},
		scifi:      movies.Genre{Name: "Sci-Fi"},
		usa:        movies.Country{Name: "USA"},
		uk:         movies.Country{Name: "UK"},
		france:     movies.Country{Name: "France"},
		nolan:      movies.Person{FullName: "Christopher Nolan"},
		dicaprio:   movies.Person{FullName: "Leonardo DiCaprio"},
		villeneuve: movies.Person{FullName: "Denis Villeneuve"},
	}
	for _, row := range []any{
		&c.action, &c.drama, &c.scifi,
		&c.usa, &c.uk, &c.france,
		&c.nolan, &c.dicaprio, &c.villeneuve,
	} {
		require.NoError(t, db.Create(row).Error)
	}

	c.inception = movies.Movie{
		Title:       "Inception",
		Description: ptr("A thief steals secrets through dream-sharing technology."),
		ReleaseYear: ptr(2010),
		Rating:      ptr(8.8),
		Genres:      []movies.Genre{c.action, c.drama},
		Countries:   []movies.Country{c.usa, c.uk},
		Persons:     []movies.Person{c.nolan, c.dicaprio},
	}
	c.memento = movies.Movie{
		Title:       "Memento",
		Description: ptr("A man with short-term memory loss hunts his wife's killer."),
		ReleaseYear: ptr(2000),
		Rating:      ptr(8.4),
		Genres:      []movies.Genre{c.drama},
		Countries:   []movies.Country{c.usa},
		Persons:     []movies.Person{c.nolan},
	}
	require.NoError(t, db.Create(&c.inception).Error)
	require.NoError(t, db.Create(&c.memento).Error)

	return c
}

func ptr[T any](v T) *T {
	return &v
}
