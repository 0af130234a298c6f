package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/http/response"
	"github.com/shopcanvas/builder-backend/internal/services"
)

// SectionHandler serves the admin screens for the marketing sections.
// Every POST replaces the whole section; the screens always submit the
// full ordered list.
type SectionHandler struct {
	sections services.SectionService
}

func NewSectionHandler(sections services.SectionService) *SectionHandler {
	return &SectionHandler{sections: sections}
}

// GET /api/admin/slider
func (h *SectionHandler) GetSlider(c *gin.Context) {
	section, err := h.sections.GetSlider(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "slider": section})
}

type updateSliderRequest struct {
	Enabled bool                 `json:"enabled"`
	Items   []*domain.SliderItem `json:"items"`
}

// POST /api/admin/slider
func (h *SectionHandler) UpdateSlider(c *gin.Context) {
	var req updateSliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	if err := h.sections.UpdateSlider(c.Request.Context(), req.Enabled, req.Items); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/admin/shark-tank
func (h *SectionHandler) GetSharkTank(c *gin.Context) {
	section, err := h.sections.GetSharkTank(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "sharkTank": section})
}

type updateSharkTankRequest struct {
	Enabled bool                    `json:"enabled"`
	Title   string                  `json:"title"`
	Items   []*domain.SharkTankItem `json:"items"`
}

// POST /api/admin/shark-tank
func (h *SectionHandler) UpdateSharkTank(c *gin.Context) {
	var req updateSharkTankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	if err := h.sections.UpdateSharkTank(c.Request.Context(), req.Enabled, req.Title, req.Items); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/admin/new-drops
func (h *SectionHandler) GetNewDrops(c *gin.Context) {
	section, err := h.sections.GetNewDrops(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "newDrops": section})
}

type updateNewDropsRequest struct {
	Enabled        bool                   `json:"enabled"`
	Title          string                 `json:"title"`
	BannerImageURL string                 `json:"bannerImageUrl"`
	Items          []*domain.NewDropsItem `json:"items"`
}

// POST /api/admin/new-drops
func (h *SectionHandler) UpdateNewDrops(c *gin.Context) {
	var req updateNewDropsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	if err := h.sections.UpdateNewDrops(c.Request.Context(), req.Enabled, req.Title, req.BannerImageURL, req.Items); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/admin/header
func (h *SectionHandler) GetHeader(c *gin.Context) {
	cfg, err := h.sections.GetHeader(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "header": cfg})
}

// POST /api/admin/header
func (h *SectionHandler) UpdateHeader(c *gin.Context) {
	var req domain.HeaderConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	req.ID = domain.SectionConfigID
	if err := h.sections.UpdateHeader(c.Request.Context(), req); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/admin/categories
func (h *SectionHandler) GetCategories(c *gin.Context) {
	section, err := h.sections.GetCategories(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "categories": section.Items})
}

type updateCategoriesRequest struct {
	Items []*domain.CategoryItem `json:"items"`
}

// POST /api/admin/categories
func (h *SectionHandler) UpdateCategories(c *gin.Context) {
	var req updateCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	if err := h.sections.UpdateCategories(c.Request.Context(), req.Items); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
