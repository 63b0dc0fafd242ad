package movies

import (
	"context"
	"testing"

	movies "cinecatalog/src/modules/movies/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedReferenceRows(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{"Drama", "Action", "Animation", "Adventure", "Comedy"} {
		require.NoError(t, db.Create(&movies.Genre{Name: name}).Error)
	}
	for _, name := range []string{"USA", "UK", "Ukraine", "Japan"} {
		require.NoError(t, db.Create(&movies.Country{Name: name}).Error)
	}
	for _, name := range []string{"Christopher Nolan", "Greta Gerwig", "Bong Joon-ho", "Brad Pitt"} {
		require.NoError(t, db.Create(&movies.Person{FullName: name}).Error)
	}
}

func TestListGenresOrderedByName(t *testing.T) {
	db := newTestDB(t)
	seedReferenceRows(t, db)
	svc := NewReferenceService(db)

	items, total, err := svc.ListGenres(context.Background(), "", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)

	names := make([]string, 0, len(items))
	for _, g := range items {
		names = append(names, g.Name)
	}
	require.Equal(t, []string{"Action", "Adventure", "Animation", "Comedy", "Drama"}, names)
}

func TestListGenresSearchIsCaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	seedReferenceRows(t, db)
	svc := NewReferenceService(db)

	items, total, err := svc.ListGenres(context.Background(), "ANIM", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Animation", items[0].Name)

	// substring in the middle of the name
	items, total, err = svc.ListGenres(context.Background(), "ram", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Drama", items[0].Name)
}

func TestListGenresWhitespaceSearchMeansNoFilter(t *testing.T) {
	db := newTestDB(t)
	seedReferenceRows(t, db)
	svc := NewReferenceService(db)

	_, total, err := svc.ListGenres(context.Background(), "   ", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
}

func TestListGenresPaginationKeepsExactTotal(t *testing.T) {
	db := newTestDB(t)
	seedReferenceRows(t, db)
	svc := NewReferenceService(db)

	items, total, err := svc.ListGenres(context.Background(), "", 1, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, items, 2)
	require.Equal(t, "Action", items[0].Name)

	items, total, err = svc.ListGenres(context.Background(), "", 3, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, items, 1)
	require.Equal(t, "Drama", items[0].Name)
}

func TestListCountriesSearch(t *testing.T) {
	db := newTestDB(t)
	seedReferenceRows(t, db)
	svc := NewReferenceService(db)

	// "uk" is a substring of both UK and Ukraine
	items, total, err := svc.ListCountries(context.Background(), "uk", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Equal(t, "UK", items[0].Name)
	require.Equal(t, "Ukraine", items[1].Name)
}

func TestListPersonsOrderedByFullName(t *testing.T) {
	db := newTestDB(t)
	seedReferenceRows(t, db)
	svc := NewReferenceService(db)

	items, total, err := svc.ListPersons(context.Background(), "", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Equal(t, "Bong Joon-ho", items[0].FullName)
	require.Equal(t, "Greta Gerwig", items[3].FullName)

	items, total, err = svc.ListPersons(context.Background(), "nolan", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Christopher Nolan", items[0].FullName)
}
