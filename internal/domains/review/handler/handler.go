package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-library-backend/internal/domains/review"
	"personal-library-backend/internal/domains/review/service"
	"personal-library-backend/internal/shared/middleware"
	"personal-library-backend/internal/shared/response"
	"personal-library-backend/internal/shared/utils"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/reviews (authenticated). Reviewing a book the
// reader already reviewed overwrites the earlier review.
func (h *Handler) Create(c *gin.Context) {
	readerID, ok := authenticatedReader(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), readerID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// List handles GET /api/v1/reviews with optional book_id / reader_id scoping.
func (h *Handler) List(c *gin.Context) {
	skip, limit := utils.ParsePagination(c)
	ctx := c.Request.Context()

	if bookID := utils.ParseOptionalInt(c, "book_id"); bookID != nil {
		reviews, err := h.service.ListByBook(ctx, *bookID, skip, limit)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, reviews)
		return
	}

	if readerID := utils.ParseOptionalInt(c, "reader_id"); readerID != nil {
		reviews, err := h.service.ListByReader(ctx, *readerID, skip, limit)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, reviews)
		return
	}

	reviews, total, err := h.service.List(ctx, skip, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, reviews, &response.Meta{
		Skip:  skip,
		Limit: limit,
		Total: total,
	})
}

// GetByID handles GET /api/v1/reviews/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if rec == nil {
		response.NotFound(c, "Review not found")
		return
	}
	response.Success(c, http.StatusOK, rec)
}

// ReadingProgress handles GET /api/v1/reviews/statistics/reading-progress
func (h *Handler) ReadingProgress(c *gin.Context) {
	readerID := utils.ParseOptionalInt(c, "reader_id")

	buckets, err := h.service.ReadingProgress(c.Request.Context(), readerID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, buckets)
}

// Update handles PUT /api/v1/reviews/:id (authenticated, owner only)
func (h *Handler) Update(c *gin.Context) {
	readerID, ok := authenticatedReader(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req review.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, readerID, req)
	if err != nil {
		if errors.Is(err, review.ErrNotOwner) {
			response.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", err.Error())
			return
		}
		response.FromError(c, err)
		return
	}
	if updated == nil {
		response.NotFound(c, "Review not found")
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/reviews/:id (authenticated, owner only)
func (h *Handler) Delete(c *gin.Context) {
	readerID, ok := authenticatedReader(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id, readerID)
	if err != nil {
		if errors.Is(err, review.ErrNotOwner) {
			response.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", err.Error())
			return
		}
		response.FromError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "Review not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func authenticatedReader(c *gin.Context) (int64, bool) {
	v, ok := c.Get(middleware.ContextReaderID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
