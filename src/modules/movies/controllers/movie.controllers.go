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

type MovieController struct {
	movies *service.MovieService
}

func NewMovieController(movies *service.MovieService) *MovieController {
	return &MovieController{movies: movies}
}

func (mc *MovieController) ListMovies(c *gin.Context) {
	var req lib.MovieListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return
	}
	req.Page, req.Size = utils.NormalizePaging(req.Page, req.Size)

	items, total, err := mc.movies.List(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movies: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, utils.NewPage(items, req.Page, req.Size, total))
}

func (mc *MovieController) GetMovieDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	movie, err := mc.movies.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, utils.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movie)
}
