package movies

import (
	"context"
	"errors"
	"fmt"

	lib "cinecatalog/src/modules/movies/lib"
	movies "cinecatalog/src/modules/movies/models"
	"cinecatalog/src/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieService owns movie reads and the admin write path. Every write runs
// as one transaction: relationship replacement and scalar updates either all
// apply or none do.
type MovieService struct {
	db *gorm.DB
}

func NewMovieService(db *gorm.DB) *MovieService {
	return &MovieService{db: db}
}

// GetByID returns the movie with all three relation sets expanded.
func (s *MovieService) GetByID(ctx context.Context, id uint) (*movies.Movie, error) {
	var movie movies.Movie
	err := s.db.WithContext(ctx).
		Preload("Genres").
		Preload("Countries").
		Preload("Persons").
		First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to load movie %d: %w", id, err)
	}
	return &movie, nil
}

// Create validates every referenced id, then persists the movie together
// with exactly the resolved relationship sets.
func (s *MovieService) Create(ctx context.Context, req lib.MovieCreateRequest) (*movies.Movie, error) {
	var movieID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, req.GenreIDs)
		if err != nil {
			return err
		}
		countries, err := resolveCountries(tx, req.CountryIDs)
		if err != nil {
			return err
		}
		persons, err := resolvePersons(tx, req.PersonIDs)
		if err != nil {
			return err
		}

		movie := movies.Movie{
			Title:       req.Title,
			Description: req.Description,
			ReleaseYear: req.ReleaseYear,
			Rating:      req.Rating,
		}
		if err := tx.Omit(clause.Associations).Create(&movie).Error; err != nil {
			return fmt.Errorf("failed to create movie: %w", err)
		}

		if err := replaceLinks(tx, &movie, "Genres", &genres, len(genres)); err != nil {
			return err
		}
		if err := replaceLinks(tx, &movie, "Countries", &countries, len(countries)); err != nil {
			return err
		}
		if err := replaceLinks(tx, &movie, "Persons", &persons, len(persons)); err != nil {
			return err
		}

		movieID = movie.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, movieID)
}

// Update overwrites only the scalar fields present in the request and
// replaces only the relation sets present in the request (an explicit empty
// set clears that kind). All referenced ids are validated before anything
// is mutated.
func (s *MovieService) Update(ctx context.Context, id uint, req lib.MovieUpdateRequest) (*movies.Movie, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movie movies.Movie
		if err := tx.First(&movie, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrMovieNotFound
			}
			return fmt.Errorf("failed to load movie %d: %w", id, err)
		}

		var (
			genres    []movies.Genre
			countries []movies.Country
			persons   []movies.Person
			err       error
		)
		if req.GenreIDs != nil {
			if genres, err = resolveGenres(tx, *req.GenreIDs); err != nil {
				return err
			}
		}
		if req.CountryIDs != nil {
			if countries, err = resolveCountries(tx, *req.CountryIDs); err != nil {
				return err
			}
		}
		if req.PersonIDs != nil {
			if persons, err = resolvePersons(tx, *req.PersonIDs); err != nil {
				return err
			}
		}

		if req.Title != nil {
			movie.Title = *req.Title
		}
		if req.Description != nil {
			movie.Description = req.Description
		}
		if req.ReleaseYear != nil {
			movie.ReleaseYear = req.ReleaseYear
		}
		if req.Rating != nil {
			movie.Rating = req.Rating
		}
		if err := tx.Omit(clause.Associations).Save(&movie).Error; err != nil {
			return fmt.Errorf("failed to update movie %d: %w", id, err)
		}

		if req.GenreIDs != nil {
			if err := replaceLinks(tx, &movie, "Genres", &genres, len(genres)); err != nil {
				return err
			}
		}
		if req.CountryIDs != nil {
			if err := replaceLinks(tx, &movie, "Countries", &countries, len(countries)); err != nil {
				return err
			}
		}
		if req.PersonIDs != nil {
			if err := replaceLinks(tx, &movie, "Persons", &persons, len(persons)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes the movie and its relationship links. Reference rows are
// shared and always survive.
func (s *MovieService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movie movies.Movie
		if err := tx.First(&movie, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrMovieNotFound
			}
			return fmt.Errorf("failed to load movie %d: %w", id, err)
		}

		for _, relation := range []string{"Genres", "Countries", "Persons"} {
			if err := tx.Model(&movie).Association(relation).Clear(); err != nil {
				return fmt.Errorf("failed to clear %s links: %w", relation, err)
			}
		}
		if err := tx.Delete(&movie).Error; err != nil {
			return fmt.Errorf("failed to delete movie %d: %w", id, err)
		}
		return nil
	})
}

// replaceLinks swaps the movie's current link set of one kind for the
// resolved set, clearing it when the set is empty.
func replaceLinks(tx *gorm.DB, movie *movies.Movie, relation string, values any, count int) error {
	assoc := tx.Model(movie).Association(relation)
	var err error
	if count == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(values)
	}
	if err != nil {
		return fmt.Errorf("failed to replace %s links: %w", relation, err)
	}
	return nil
}

// Each resolver is a single batched lookup per kind; unknown ids in the
// input come back as a ValidationError naming the field.

func resolveGenres(tx *gorm.DB, ids []uint) ([]movies.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []movies.Genre
	if err := tx.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve genre ids: %w", err)
	}
	seen := make(map[uint]bool, len(found))
	for _, g := range found {
		seen[g.ID] = true
	}
	if missing := missingIDs(ids, seen); len(missing) > 0 {
		return nil, &utils.ValidationError{Field: "genre_ids", MissingIDs: missing}
	}
	return found, nil
}

func resolveCountries(tx *gorm.DB, ids []uint) ([]movies.Country, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []movies.Country
	if err := tx.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve country ids: %w", err)
	}
	seen := make(map[uint]bool, len(found))
	for _, c := range found {
		seen[c.ID] = true
	}
	if missing := missingIDs(ids, seen); len(missing) > 0 {
		return nil, &utils.ValidationError{Field: "country_ids", MissingIDs: missing}
	}
	return found, nil
}

func resolvePersons(tx *gorm.DB, ids []uint) ([]movies.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []movies.Person
	if err := tx.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve person ids: %w", err)
	}
	seen := make(map[uint]bool, len(found))
	for _, p := range found {
		seen[p.ID] = true
	}
	if missing := missingIDs(ids, seen); len(missing) > 0 {
		return nil, &utils.ValidationError{Field: "person_ids", MissingIDs: missing}
	}
	return found, nil
}

func missingIDs(requested []uint, seen map[uint]bool) []uint {
	var missing []uint
	reported := make(map[uint]bool)
	for _, id := range requested {
		if !seen[id] && !reported[id] {
			missing = append(missing, id)
			reported[id] = true
		}
	}
	return missing
}
