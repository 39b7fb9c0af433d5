package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/movie-api/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/movies", h.ListMovies)
		api.GET("/movies/:id", h.GetMovie)
		api.GET("/movies/title/:title", h.GetMoviesByTitle)
		api.GET("/movies/genre/:genre", h.GetMoviesByGenre)
		api.GET("/movies/director/:director", h.GetMoviesByDirector)
		api.GET("/movies/year/:year", h.GetMoviesByYear)
		api.POST("/movies", h.CreateMovie)
		api.PATCH("/movies/:id", h.UpdateMovie)
		api.DELETE("/movies/:id", h.DeleteMovie)
	}
}
