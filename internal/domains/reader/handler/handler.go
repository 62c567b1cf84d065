package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-library-backend/internal/domains/reader"
	"personal-library-backend/internal/domains/reader/service"
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

// Register handles POST /api/v1/readers/register
func (h *Handler) Register(c *gin.Context) {
	var req reader.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// Login handles POST /api/v1/readers/login
func (h *Handler) Login(c *gin.Context) {
	var req reader.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, reader.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// List handles GET /api/v1/readers
func (h *Handler) List(c *gin.Context) {
	skip, limit := utils.ParsePagination(c)

	readers, total, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, readers, &response.Meta{
		Skip:  skip,
		Limit: limit,
		Total: total,
	})
}

// GetByID handles GET /api/v1/readers/:id
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
		response.NotFound(c, "Reader not found")
		return
	}
	response.Success(c, http.StatusOK, rec)
}

// Statistics handles GET /api/v1/readers/:id/statistics
func (h *Handler) Statistics(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	stats, err := h.service.Statistics(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if stats == nil {
		response.NotFound(c, "Reader not found")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Update handles PUT /api/v1/readers/:id (authenticated, self only)
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !isSelf(c, id) {
		response.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "Cannot modify another reader")
		return
	}

	var req reader.UpdateReaderRequest
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
		response.NotFound(c, "Reader not found")
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/readers/:id (authenticated, self only).
// Deletion is a soft deactivate; reviews are kept.
func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !isSelf(c, id) {
		response.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "Cannot deactivate another reader")
		return
	}

	deactivated, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !deactivated {
		response.NotFound(c, "Reader not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func isSelf(c *gin.Context, id int64) bool {
	authID, ok := c.Get(middleware.ContextReaderID)
	if !ok {
		return false
	}
	readerID, ok := authID.(int64)
	return ok && readerID == id
}
