package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-library-backend/internal/domains/publisher"
	"personal-library-backend/internal/domains/publisher/service"
	"personal-library-backend/internal/shared/response"
	"personal-library-backend/internal/shared/utils"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/publishers
func (h *Handler) Create(c *gin.Context) {
	var req publisher.CreatePublisherRequest
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

// List handles GET /api/v1/publishers
func (h *Handler) List(c *gin.Context) {
	skip, limit := utils.ParsePagination(c)

	publishers, total, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, publishers, &response.Meta{
		Skip:  skip,
		Limit: limit,
		Total: total,
	})
}

// GetByID handles GET /api/v1/publishers/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c, "Publisher not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Update handles PUT /api/v1/publishers/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req publisher.UpdatePublisherRequest
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
		response.NotFound(c, "Publisher not found")
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/publishers/:id
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
		response.NotFound(c, "Publisher not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
