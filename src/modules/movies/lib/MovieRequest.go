package movies

// MovieCreateRequest is the admin create body. Relationship sets reference
// existing genre/country/person rows by id; every id must resolve.
type MovieCreateRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description *string  `json:"description"`
	ReleaseYear *int     `json:"release_year" binding:"omitempty,gte=1800"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=10"`
	GenreIDs    []uint   `json:"genre_ids"`
	CountryIDs  []uint   `json:"country_ids"`
	PersonIDs   []uint   `json:"person_ids"`
}

// MovieUpdateRequest uses pointers throughout so a field that is absent from
// the JSON body can be told apart from one sent as null/empty. A relation
// field left nil is untouched; sent as an explicit (even empty) array it
// replaces the current link set wholesale.
type MovieUpdateRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	ReleaseYear *int     `json:"release_year" binding:"omitempty,gte=1800"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=10"`
	GenreIDs    *[]uint  `json:"genre_ids"`
	CountryIDs  *[]uint  `json:"country_ids"`
	PersonIDs   *[]uint  `json:"person_ids"`
}
