package movies

import (
	"errors"
	"net/http"
	"strconv"

	lib "cinecatalog/src/modules/movies/lib"
	service "cinecatalog/src/modules/movies/services"
	"cinecatalog/src/utils"

	"github.com/gin-gonic/gin"
)

// AdminController handles the token-gated movie write endpoints.
type AdminController struct {
	movies *service.MovieService
}

func NewAdminController(movies *service.MovieService) *AdminController {
	return &AdminController{movies: movies}
}

func (ac *AdminController) CreateMovie(c *gin.Context) {
	var req lib.MovieCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	movie, err := ac.movies.Create(c.Request.Context(), req)
	if err != nil {
		writeMovieError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

func (ac *AdminController) UpdateMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	var req lib.MovieUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	movie, err := ac.movies.Update(c.Request.Context(), id, req)
	if err != nil {
		writeMovieError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (ac *AdminController) DeleteMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	if err := ac.movies.Delete(c.Request.Context(), id); err != nil {
		writeMovieError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func movieID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return 0, false
	}
	return uint(id), true
}

// writeMovieError maps service errors onto the response taxonomy: unknown
// reference ids are client errors, a missing movie is 404, anything else is
// a generic server error.
func writeMovieError(c *gin.Context, err error) {
	var validationErr *utils.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, utils.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
