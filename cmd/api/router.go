package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-library-backend/internal/shared/middleware"
	"personal-library-backend/pkg/container"
)

// SetupRouter wires middleware and every route group onto a gin engine.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(ctx *gin.Context) {
		dbStatus := "up"
		status := http.StatusOK
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, gin.H{
			"name":     c.Config.App.Name,
			"version":  c.Config.App.Version,
			"database": dbStatus,
		})
	})

	auth := middleware.Auth(c.Tokens)
	v1 := router.Group("/api/v1")

	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/statistics/summary", c.BookHandler.Statistics)
		books.GET("/:id", c.BookHandler.GetByID)
		books.POST("", c.BookHandler.Create)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}

	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/search", c.AuthorHandler.Search)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.GET("/:id/books", c.AuthorHandler.Books)
		authors.POST("", c.AuthorHandler.Create)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}

	genres := v1.Group("/genres")
	{
		genres.GET("", c.GenreHandler.List)
		genres.GET("/hierarchy", c.GenreHandler.Hierarchy)
		genres.GET("/:id", c.GenreHandler.GetByID)
		genres.POST("", c.GenreHandler.Create)
		genres.PUT("/:id", c.GenreHandler.Update)
		genres.DELETE("/:id", c.GenreHandler.Delete)
	}

	publishers := v1.Group("/publishers")
	{
		publishers.GET("", c.PublisherHandler.List)
		publishers.GET("/:id", c.PublisherHandler.GetByID)
		publishers.POST("", c.PublisherHandler.Create)
		publishers.PUT("/:id", c.PublisherHandler.Update)
		publishers.DELETE("/:id", c.PublisherHandler.Delete)
	}

	series := v1.Group("/series")
	{
		series.GET("", c.SeriesHandler.List)
		series.GET("/:id", c.SeriesHandler.GetByID)
		series.GET("/:id/books", c.SeriesHandler.Books)
		series.POST("", c.SeriesHandler.Create)
		series.PUT("/:id", c.SeriesHandler.Update)
		series.DELETE("/:id", c.SeriesHandler.Delete)
	}

	readers := v1.Group("/readers")
	{
		readers.POST("/register", c.ReaderHandler.Register)
		readers.POST("/login", c.ReaderHandler.Login)
		readers.GET("", c.ReaderHandler.List)
		readers.GET("/:id", c.ReaderHandler.GetByID)
		readers.GET("/:id/statistics", c.ReaderHandler.Statistics)
		readers.PUT("/:id", auth, c.ReaderHandler.Update)
		readers.DELETE("/:id", auth, c.ReaderHandler.Delete)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.GET("", c.ReviewHandler.List)
		reviews.GET("/statistics/reading-progress", c.ReviewHandler.ReadingProgress)
		reviews.GET("/:id", c.ReviewHandler.GetByID)
		reviews.POST("", auth, c.ReviewHandler.Create)
		reviews.PUT("/:id", auth, c.ReviewHandler.Update)
		reviews.DELETE("/:id", auth, c.ReviewHandler.Delete)
	}

	return router
}
