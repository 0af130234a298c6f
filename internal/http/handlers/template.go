package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/http/response"
	"github.com/shopcanvas/builder-backend/internal/services"
)

type TemplateHandler struct {
	templates services.TemplateService
}

func NewTemplateHandler(templates services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

type saveTemplateRequest struct {
	Name       string                     `json:"name"`
	DesignType string                     `json:"designType"`
	Data       []domain.ComponentInstance `json:"data"`
}

type templateView struct {
	ID         uuid.UUID                  `json:"id"`
	Name       string                     `json:"name"`
	DesignType domain.DesignType          `json:"designType"`
	Components []domain.ComponentInstance `json:"components"`
	UpdatedAt  string                     `json:"updatedAt"`
}

func toTemplateView(row *domain.Template) (templateView, error) {
	components, err := row.Components()
	if err != nil {
		return templateView{}, err
	}
	if components == nil {
		components = []domain.ComponentInstance{}
	}
	return templateView{
		ID:         row.ID,
		Name:       row.Name,
		DesignType: row.DesignType,
		Components: components,
		UpdatedAt:  row.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// GET /api/templates/load[?id=]
func (h *TemplateHandler) Load(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		rows, err := h.templates.List(c.Request.Context())
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		views := make([]templateView, 0, len(rows))
		for _, row := range rows {
			v, err := toTemplateView(row)
			if err != nil {
				response.RespondError(c, http.StatusInternalServerError, "persistence_error", err)
				return
			}
			views = append(views, v)
		}
		response.RespondOK(c, gin.H{"success": true, "templates": views})
		return
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", fmt.Errorf("invalid template id %q", raw))
		return
	}
	row, err := h.templates.Load(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	v, err := toTemplateView(row)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "persistence_error", err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "template": v})
}

// POST /api/templates/save
func (h *TemplateHandler) Save(c *gin.Context) {
	var req saveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	id, err := h.templates.Save(c.Request.Context(), req.Name, domain.DesignType(req.DesignType), req.Data)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success": true,
		"id":      id,
		"message": fmt.Sprintf("template %q saved", req.Name),
	})
}

// DELETE /api/templates/delete?id=
func (h *TemplateHandler) Delete(c *gin.Context) {
	raw := c.Query("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", fmt.Errorf("invalid template id %q", raw))
		return
	}
	name, err := h.templates.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success": true,
		"message": fmt.Sprintf("template %q deleted", name),
	})
}
