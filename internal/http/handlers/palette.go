package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/http/response"
	"github.com/shopcanvas/builder-backend/internal/registry"
)

// PaletteHandler drives the editor's component picker and prop forms.
type PaletteHandler struct{}

func NewPaletteHandler() *PaletteHandler { return &PaletteHandler{} }

// GET /api/palette?design=
func (h *PaletteHandler) Palette(c *gin.Context) {
	design := domain.DesignType(c.Query("design"))
	if !design.Valid() {
		response.RespondError(c, http.StatusBadRequest, "validation_error",
			fmt.Errorf("unknown design type %q", design))
		return
	}
	response.RespondOK(c, gin.H{
		"success": true,
		"design":  design,
		"palette": registry.Palette(design),
	})
}

// GET /api/palette/schema?type=
func (h *PaletteHandler) Schema(c *gin.Context) {
	componentType := c.Query("type")
	specs, ok := registry.Schema(componentType)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "not_found",
			fmt.Errorf("unknown component type %q", componentType))
		return
	}
	response.RespondOK(c, gin.H{
		"success": true,
		"type":    componentType,
		"props":   specs,
	})
}
