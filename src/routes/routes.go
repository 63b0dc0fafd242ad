package routes

import (
	"net/http"

	"cinecatalog/src/config"
	"cinecatalog/src/middleware"
	controllers "cinecatalog/src/modules/movies/controllers"
	services "cinecatalog/src/modules/movies/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(router *gin.Engine, db *gorm.DB, settings config.Settings) {
	movieService := services.NewMovieService(db)
	referenceService := services.NewReferenceService(db)

	movieController := controllers.NewMovieController(movieService)
	referenceController := controllers.NewReferenceController(referenceService)
	adminController := controllers.NewAdminController(movieService)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if config.CheckConnection(db) {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
		} else {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		}
	})

	api := router.Group(settings.APIPrefix)

	// Public read API
	api.GET("/genres", referenceController.ListGenres)
	api.GET("/countries", referenceController.ListCountries)
	api.GET("/persons", referenceController.ListPersons)
	api.GET("/movies", movieController.ListMovies)
	api.GET("/movies/:id", movieController.GetMovieDetails)

	// Admin write API, all behind the shared token
	admin := api.Group("/admin", middleware.RequireAdmin(settings.AdminToken))
	{
		admin.POST("/movies", adminController.CreateMovie)
		admin.PUT("/movies/:id", adminController.UpdateMovie)
		admin.DELETE("/movies/:id", adminController.DeleteMovie)
	}
}
