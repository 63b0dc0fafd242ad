package movies

import (
	"net/http"

	lib "cinecatalog/src/modules/movies/lib"
	service "cinecatalog/src/modules/movies/services"
	"cinecatalog/src/utils"

	"github.com/gin-gonic/gin"
)

type ReferenceController struct {
	refs *service.ReferenceService
}

func NewReferenceController(refs *service.ReferenceService) *ReferenceController {
	return &ReferenceController{refs: refs}
}

func (rc *ReferenceController) ListGenres(c *gin.Context) {
	req, ok := bindReferenceList(c)
	if !ok {
		return
	}
	items, total, err := rc.refs.ListGenres(c.Request.Context(), req.Search, req.Page, req.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list genres: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, utils.NewPage(items, req.Page, req.Size, total))
}

func (rc *ReferenceController) ListCountries(c *gin.Context) {
	req, ok := bindReferenceList(c)
	if !ok {
		return
	}
	items, total, err := rc.refs.ListCountries(c.Request.Context(), req.Search, req.Page, req.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list countries: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, utils.NewPage(items, req.Page, req.Size, total))
}

func (rc *ReferenceController) ListPersons(c *gin.Context) {
	req, ok := bindReferenceList(c)
	if !ok {
		return
	}
	items, total, err := rc.refs.ListPersons(c.Request.Context(), req.Search, req.Page, req.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list persons: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, utils.NewPage(items, req.Page, req.Size, total))
}

func bindReferenceList(c *gin.Context) (lib.ReferenceListRequest, bool) {
	var req lib.ReferenceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return req, false
	}
	req.Page, req.Size = utils.NormalizePaging(req.Page, req.Size)
	return req, true
}
