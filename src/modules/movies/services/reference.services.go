package movies

import (
	"context"
	"strings"

	movies "cinecatalog/src/modules/movies/models"
	"cinecatalog/src/utils"

	"gorm.io/gorm"
)

// ReferenceService lists the shared genre/country/person reference data.
type ReferenceService struct {
	db *gorm.DB
}

func NewReferenceService(db *gorm.DB) *ReferenceService {
	return &ReferenceService{db: db}
}

func (s *ReferenceService) ListGenres(ctx context.Context, search string, page, size int) ([]movies.Genre, int64, error) {
	q := s.db.WithContext(ctx).Model(&movies.Genre{})
	q = applyNameSearch(q, "name", search)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []movies.Genre{}
	err := q.Order("name ASC").
		Offset(utils.Offset(page, size)).Limit(size).
		Find(&items).Error
	return items, total, err
}

func (s *ReferenceService) ListCountries(ctx context.Context, search string, page, size int) ([]movies.Country, int64, error) {
	q := s.db.WithContext(ctx).Model(&movies.Country{})
	q = applyNameSearch(q, "name", search)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []movies.Country{}
	err := q.Order("name ASC").
		Offset(utils.Offset(page, size)).Limit(size).
		Find(&items).Error
	return items, total, err
}

func (s *ReferenceService) ListPersons(ctx context.Context, search string, page, size int) ([]movies.Person, int64, error) {
	q := s.db.WithContext(ctx).Model(&movies.Person{})
	q = applyNameSearch(q, "full_name", search)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []movies.Person{}
	err := q.Order("full_name ASC").
		Offset(utils.Offset(page, size)).Limit(size).
		Find(&items).Error
	return items, total, err
}

// applyNameSearch adds a case-insensitive substring filter on the given
// column. Whitespace-only input counts as "no filter".
func applyNameSearch(q *gorm.DB, column, search string) *gorm.DB {
	term := strings.TrimSpace(search)
	if term == "" {
		return q
	}
	return q.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
}
