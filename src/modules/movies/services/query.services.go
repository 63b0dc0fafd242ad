package movies

import (
	"context"
	"strings"

	lib "cinecatalog/src/modules/movies/lib"
	movies "cinecatalog/src/modules/movies/models"
	"cinecatalog/src/utils"

	"gorm.io/gorm"
)

// orderClauses maps the public sort keys onto ORDER BY clauses. Anything not
// listed here falls back to ascending title; bad sort input is masked, not
// rejected.
var orderClauses = map[string]string{
	"title":   "title ASC",
	"-title":  "title DESC",
	"rating":  "rating ASC",
	"-rating": "rating DESC",
	"year":    "release_year ASC",
	"-year":   "release_year DESC",
}

const defaultOrder = "title ASC"

// List compiles the filter request into one relational query and returns a
// page of lightweight movie rows plus the exact total matching the filters.
func (s *MovieService) List(ctx context.Context, req lib.MovieListRequest) ([]movies.MovieSummary, int64, error) {
	q := s.applyFilters(s.db.WithContext(ctx).Model(&movies.Movie{}), req)

	// Total is counted over the filtered predicate before any pagination.
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []movies.MovieSummary{}
	err := q.Select("id", "title", "release_year", "rating").
		Order(orderClause(req.Sort)).
		Offset(utils.Offset(req.Page, req.Size)).Limit(req.Size).
		Find(&items).Error
	return items, total, err
}

// applyFilters translates the structured request into WHERE conditions.
// Each relational filter is an existence check against the join table: OR
// across the ids of one field, AND across different fields. Absent or empty
// id sets add no condition at all.
func (s *MovieService) applyFilters(q *gorm.DB, req lib.MovieListRequest) *gorm.DB {
	if len(req.GenreIDs) > 0 {
		sub := s.db.Table("movie_genre").Select("movie_id").Where("genre_id IN ?", req.GenreIDs)
		q = q.Where("movies.id IN (?)", sub)
	}
	if len(req.CountryIDs) > 0 {
		sub := s.db.Table("movie_country").Select("movie_id").Where("country_id IN ?", req.CountryIDs)
		q = q.Where("movies.id IN (?)", sub)
	}
	if len(req.PersonIDs) > 0 {
		sub := s.db.Table("movie_person").Select("movie_id").Where("person_id IN ?", req.PersonIDs)
		q = q.Where("movies.id IN (?)", sub)
	}

	if term := strings.TrimSpace(req.Query); term != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	if req.YearFrom != nil {
		q = q.Where("release_year >= ?", *req.YearFrom)
	}
	if req.YearTo != nil {
		q = q.Where("release_year <= ?", *req.YearTo)
	}
	if req.RatingFrom != nil {
		q = q.Where("rating >= ?", *req.RatingFrom)
	}
	if req.RatingTo != nil {
		q = q.Where("rating <= ?", *req.RatingTo)
	}

	return q
}

func orderClause(sort string) string {
	if clause, ok := orderClauses[sort]; ok {
		return clause
	}
	return defaultOrder
}
