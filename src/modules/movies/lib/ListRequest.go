package movies

// MovieListRequest carries the full filter/sort/page surface of the movie
// list endpoint. The id filters are repeatable query params; an empty set
// means "no filter on that field".
type MovieListRequest struct {
	Query      string   `form:"q"`
	GenreIDs   []uint   `form:"genre_id"`
	CountryIDs []uint   `form:"country_id"`
	PersonIDs  []uint   `form:"person_id"`
	YearFrom   *int     `form:"year_from" binding:"omitempty,gte=1800"`
	YearTo     *int     `form:"year_to" binding:"omitempty,gte=1800"`
	RatingFrom *float64 `form:"rating_from" binding:"omitempty,gte=0,lte=10"`
	RatingTo   *float64 `form:"rating_to" binding:"omitempty,gte=0,lte=10"`
	Sort       string   `form:"sort"`
	Page       int      `form:"page"`
	Size       int      `form:"size"`
}

type ReferenceListRequest struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Size   int    `form:"size"`
}
