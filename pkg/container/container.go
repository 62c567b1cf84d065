package container

import (
	"context"
	"fmt"
	"time"

	"personal-library-backend/internal/config"
	"personal-library-backend/internal/infrastructure/database"
	"personal-library-backend/pkg/logger"
	"personal-library-backend/pkg/token"

	"personal-library-backend/internal/domains/author"
	authorHandler "personal-library-backend/internal/domains/author/handler"
	authorRepo "personal-library-backend/internal/domains/author/repository"
	authorService "personal-library-backend/internal/domains/author/service"

	"personal-library-backend/internal/domains/book"
	bookHandler "personal-library-backend/internal/domains/book/handler"
	bookRepo "personal-library-backend/internal/domains/book/repository"
	bookService "personal-library-backend/internal/domains/book/service"

	"personal-library-backend/internal/domains/genre"
	genreHandler "personal-library-backend/internal/domains/genre/handler"
	genreRepo "personal-library-backend/internal/domains/genre/repository"
	genreService "personal-library-backend/internal/domains/genre/service"

	"personal-library-backend/internal/domains/publisher"
	publisherHandler "personal-library-backend/internal/domains/publisher/handler"
	publisherRepo "personal-library-backend/internal/domains/publisher/repository"
	publisherService "personal-library-backend/internal/domains/publisher/service"

	"personal-library-backend/internal/domains/reader"
	readerHandler "personal-library-backend/internal/domains/reader/handler"
	readerRepo "personal-library-backend/internal/domains/reader/repository"
	readerService "personal-library-backend/internal/domains/reader/service"

	"personal-library-backend/internal/domains/review"
	reviewHandler "personal-library-backend/internal/domains/review/handler"
	reviewRepo "personal-library-backend/internal/domains/review/repository"
	reviewService "personal-library-backend/internal/domains/review/service"

	"personal-library-backend/internal/domains/series"
	seriesHandler "personal-library-backend/internal/domains/series/handler"
	seriesRepo "personal-library-backend/internal/domains/series/repository"
	seriesService "personal-library-backend/internal/domains/series/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Tokens *token.Manager

	AuthorRepo    author.Repository
	BookRepo      book.Repository
	GenreRepo     genre.Repository
	PublisherRepo publisher.Repository
	ReaderRepo    reader.Repository
	ReviewRepo    review.Repository
	SeriesRepo    series.Repository

	AuthorService    *authorService.Service
	BookService      *bookService.Service
	GenreService     *genreService.Service
	PublisherService *publisherService.Service
	ReaderService    *readerService.Service
	ReviewService    *reviewService.Service
	SeriesService    *seriesService.Service

	AuthorHandler    *authorHandler.Handler
	BookHandler      *bookHandler.Handler
	GenreHandler     *genreHandler.Handler
	PublisherHandler *publisherHandler.Handler
	ReaderHandler    *readerHandler.Handler
	ReviewHandler    *reviewHandler.Handler
	SeriesHandler    *seriesHandler.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)
	logger.Info("configuration loaded", map[string]interface{}{"environment": cfg.App.Environment})

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.Tokens = token.NewManager(
		cfg.Auth.Secret,
		cfg.Auth.Algorithm,
		time.Duration(cfg.Auth.TokenExpireMinutes)*time.Minute,
	)

	pool := db.Pool
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(pool)
	c.ReaderRepo = readerRepo.NewPostgresRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
	c.SeriesRepo = seriesRepo.NewPostgresRepository(pool)

	c.AuthorService = authorService.NewService(c.AuthorRepo)
	c.BookService = bookService.NewService(c.BookRepo)
	c.GenreService = genreService.NewService(c.GenreRepo)
	c.PublisherService = publisherService.NewService(c.PublisherRepo)
	c.ReaderService = readerService.NewService(c.ReaderRepo, c.Tokens)
	c.ReviewService = reviewService.NewService(c.ReviewRepo)
	c.SeriesService = seriesService.NewService(c.SeriesRepo)

	c.AuthorHandler = authorHandler.NewHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.GenreHandler = genreHandler.NewHandler(c.GenreService)
	c.PublisherHandler = publisherHandler.NewHandler(c.PublisherService)
	c.ReaderHandler = readerHandler.NewHandler(c.ReaderService)
	c.ReviewHandler = reviewHandler.NewHandler(c.ReviewService)
	c.SeriesHandler = seriesHandler.NewHandler(c.SeriesService)

	logger.Info("dependency container ready", nil)
	return c, nil
}

// Close releases infrastructure resources in reverse initialization order.
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
