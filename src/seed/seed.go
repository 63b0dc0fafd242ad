package seed

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	movies "cinecatalog/src/modules/movies/models"

	"gorm.io/gorm"
)

var genreNames = []string{
	"Action", "Comedy", "Drama", "Thriller", "Sci-Fi",
	"Fantasy", "Animation", "Adventure", "Mystery", "Crime",
}

var countryNames = []string{
	"USA", "UK", "France", "Japan", "Germany", "Canada", "South Korea", "Spain",
}

var personNames = []string{
	"Christopher Nolan", "Leonardo DiCaprio", "Keanu Reeves", "Hayao Miyazaki",
	"Greta Gerwig", "Denis Villeneuve", "Bong Joon-ho", "Natalie Portman",
	"Brad Pitt", "Tilda Swinton",
}

var titleBases = []string{
	"Midnight Protocol", "Neon Harbor", "Glass Horizon", "Silent Meridian",
	"Crimson Circuit", "Paper Sky", "Echoes of Tomorrow", "Velvet Storm",
	"Shadow Atlas", "Last Train North", "The Fourth Door", "Moonlit Archive",
	"Winter Signal", "City of Ash", "Astra Run", "Hidden Orchard",
	"Terminal Bloom", "Kite & Stone", "Wild Card", "The Long Detour",
}

type curatedMovie struct {
	title       string
	description string
	year        int
	rating      float64
	genres      []string
	countries   []string
	persons     []string
}

var curated = []curatedMovie{
	{
		title:       "Inception",
		description: "A thief steals secrets through dream-sharing technology.",
		year:        2010,
		rating:      8.8,
		genres:      []string{"Sci-Fi", "Thriller"},
		countries:   []string{"USA", "UK"},
		persons:     []string{"Christopher Nolan", "Leonardo DiCaprio"},
	},
	{
		title:       "The Matrix",
		description: "A hacker discovers the world is a simulation.",
		year:        1999,
		rating:      8.7,
		genres:      []string{"Action", "Sci-Fi"},
		countries:   []string{"USA"},
		persons:     []string{"Keanu Reeves"},
	},
	{
		title:       "Spirited Away",
		description: "A girl navigates a mysterious spirit world.",
		year:        2001,
		rating:      8.6,
		genres:      []string{"Animation", "Fantasy", "Adventure"},
		countries:   []string{"Japan"},
		persons:     []string{"Hayao Miyazaki"},
	},
}

const targetTotal = 50

// Run seeds reference data plus a deterministic 50-movie catalog.
// It is a no-op when movies already exist.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&movies.Movie{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: failed to count movies: %w", err)
	}
	if count > 0 {
		log.Println("Seed: movies already exist, skip")
		return nil
	}

	for _, name := range genreNames {
		if err := db.FirstOrCreate(&movies.Genre{}, movies.Genre{Name: name}).Error; err != nil {
			return fmt.Errorf("seed: genre %q: %w", name, err)
		}
	}
	for _, name := range countryNames {
		if err := db.FirstOrCreate(&movies.Country{}, movies.Country{Name: name}).Error; err != nil {
			return fmt.Errorf("seed: country %q: %w", name, err)
		}
	}
	for _, name := range personNames {
		if err := db.FirstOrCreate(&movies.Person{}, movies.Person{FullName: name}).Error; err != nil {
			return fmt.Errorf("seed: person %q: %w", name, err)
		}
	}

	var genreRows []movies.Genre
	if err := db.Find(&genreRows).Error; err != nil {
		return fmt.Errorf("seed: load genres: %w", err)
	}
	var countryRows []movies.Country
	if err := db.Find(&countryRows).Error; err != nil {
		return fmt.Errorf("seed: load countries: %w", err)
	}
	var personRows []movies.Person
	if err := db.Find(&personRows).Error; err != nil {
		return fmt.Errorf("seed: load persons: %w", err)
	}

	genresByName := make(map[string]movies.Genre, len(genreRows))
	for _, g := range genreRows {
		genresByName[g.Name] = g
	}
	countriesByName := make(map[string]movies.Country, len(countryRows))
	for _, c := range countryRows {
		countriesByName[c.Name] = c
	}
	personsByName := make(map[string]movies.Person, len(personRows))
	for _, p := range personRows {
		personsByName[p.FullName] = p
	}

	var catalog []movies.Movie
	for _, item := range curated {
		movie := movies.Movie{
			Title:       item.title,
			Description: ptr(item.description),
			ReleaseYear: ptr(item.year),
			Rating:      ptr(item.rating),
		}
		for _, g := range item.genres {
			movie.Genres = append(movie.Genres, genresByName[g])
		}
		for _, c := range item.countries {
			movie.Countries = append(movie.Countries, countriesByName[c])
		}
		for _, p := range item.persons {
			movie.Persons = append(movie.Persons, personsByName[p])
		}
		catalog = append(catalog, movie)
	}

	// Deterministic filler titles
	rng := rand.New(rand.NewSource(42))
	for len(catalog) < targetTotal {
		base := titleBases[rng.Intn(len(titleBases))]
		title := fmt.Sprintf("%s #%02d", base, len(catalog)+1)
		year := 1985 + rng.Intn(41)
		rating := math.Round((5.5+rng.Float64()*3.6)*10) / 10

		movie := movies.Movie{
			Title:       title,
			Description: ptr(fmt.Sprintf("%s: a story of choices, consequences, and unexpected turns.", base)),
			ReleaseYear: ptr(year),
			Rating:      ptr(rating),
		}
		for _, g := range sample(rng, genreNames, 1+rng.Intn(3)) {
			movie.Genres = append(movie.Genres, genresByName[g])
		}
		for _, c := range sample(rng, countryNames, 1+rng.Intn(2)) {
			movie.Countries = append(movie.Countries, countriesByName[c])
		}
		for _, p := range sample(rng, personNames, 1+rng.Intn(3)) {
			movie.Persons = append(movie.Persons, personsByName[p])
		}
		catalog = append(catalog, movie)
	}

	for i := range catalog {
		if err := db.Create(&catalog[i]).Error; err != nil {
			return fmt.Errorf("seed: movie %q: %w", catalog[i].Title, err)
		}
	}

	log.Println("Seed: done")
	return nil
}

// sample picks k distinct values from the pool.
func sample(rng *rand.Rand, pool []string, k int) []string {
	picked := rng.Perm(len(pool))[:k]
	out := make([]string, 0, k)
	for _, i := range picked {
		out = append(out, pool[i])
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
