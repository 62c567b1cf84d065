package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"personal-library-backend/internal/domains/book"
	"personal-library-backend/internal/domains/book/service"
	"personal-library-backend/internal/shared/response"
	"personal-library-backend/internal/shared/utils"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/books
func (h *Handler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// List handles GET /api/v1/books. Any search parameter switches the plain
// listing into filtered search.
func (h *Handler) List(c *gin.Context) {
	skip, limit := utils.ParsePagination(c)
	ctx := c.Request.Context()

	filter := book.SearchFilter{
		Query:    c.Query("search"),
		AuthorID: utils.ParseOptionalInt(c, "author_id"),
		GenreID:  utils.ParseOptionalInt(c, "genre_id"),
		YearFrom: parseOptionalYear(c, "year_from"),
		YearTo:   parseOptionalYear(c, "year_to"),
	}

	if !filter.IsZero() {
		books, err := h.service.Search(ctx, filter, skip, limit)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, books)
		return
	}

	books, total, err := h.service.List(ctx, skip, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{
		Skip:  skip,
		Limit: limit,
		Total: total,
	})
}

// GetByID handles GET /api/v1/books/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if detail == nil {
		response.NotFound(c, "Book not found")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// Update handles PUT /api/v1/books/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if updated == nil {
		response.NotFound(c, "Book not found")
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/books/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "Book not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Statistics handles GET /api/v1/books/statistics/summary
func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func parseOptionalYear(c *gin.Context, name string) *int {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
