package movies

import (
	"gorm.io/gorm"
)

type Movie struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Title       string   `json:"title" gorm:"type:varchar(255);index;not null"`
	Description *string  `json:"description" gorm:"type:text"`
	ReleaseYear *int     `json:"release_year" gorm:"index"`
	Rating      *float64 `json:"rating" gorm:"index"`

	Genres    []Genre   `json:"genres" gorm:"many2many:movie_genre;constraint:OnDelete:CASCADE"`
	Countries []Country `json:"countries" gorm:"many2many:movie_country;constraint:OnDelete:CASCADE"`
	Persons   []Person  `json:"persons" gorm:"many2many:movie_person;constraint:OnDelete:CASCADE"`
}

// MovieSummary is the lightweight projection returned by list queries;
// relationship detail is only expanded on single-item fetch.
type MovieSummary struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	ReleaseYear *int     `json:"release_year"`
	Rating      *float64 `json:"rating"`
}

// MoviePerson is the movie_person join row. Role is optional ("" means no
// role) and is part of the key, so the same person may be linked to the
// same movie under several roles.
type MoviePerson struct {
	MovieID  uint   `json:"movie_id" gorm:"primaryKey"`
	PersonID uint   `json:"person_id" gorm:"primaryKey"`
	Role     string `json:"role" gorm:"primaryKey;type:varchar(50);default:''"`
}

// TableName keeps the join table at the name declared in the many2many tag;
// without it SetupJoinTable renames the table to the pluralized "movie_people".
func (MoviePerson) TableName() string {
	return "movie_person"
}

func MigrateMovies(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Movie{}, "Persons", &MoviePerson{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Movie{})
}
