package project

import (
	"net/http"
	"strconv"

	"solartrack/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects", h.CreateProject)
	rg.GET("/projects", h.ListProjects)
	rg.GET("/projects/:id", h.GetProject)
	rg.PUT("/projects/:id", h.UpdateProject)
	rg.DELETE("/projects/:id", h.DeleteProject)
	rg.PATCH("/projects/:id/items/:itemID/complete", h.ToggleItem)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	p, err := h.service.CreateProject(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid project parameters")
		case ErrNameTaken:
			response.Error(c, http.StatusConflict, "NAME_TAKEN", "A project with this name already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create project")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"project":  p,
		"progress": progressOf(p.Items),
	})
}

func (h *Handler) ListProjects(c *gin.Context) {
	var q ListProjectsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	q.normalize()

	projects, total, err := h.service.ListProjects(c.Request.Context(), q)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid filter values")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list projects")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"projects": projects,
		"pagination": gin.H{
			"total": total,
			"page":  q.Page,
			"limit": q.Limit,
		},
	})
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get project")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"project":  p,
		"progress": progressOf(p.Items),
	})
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	p, err := h.service.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid project parameters")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		case ErrNameTaken:
			response.Error(c, http.StatusConflict, "NAME_TAKEN", "A project with this name already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update project")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"project":  p,
		"progress": progressOf(p.Items),
	})
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete project")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ToggleItem(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemID")
	if !ok {
		return
	}

	res, err := h.service.ToggleItem(c.Request.Context(), projectID, itemID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		case ErrItemNotFound:
			response.Error(c, http.StatusNotFound, "ITEM_NOT_FOUND", "Checklist item not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle item")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

// parseID reads a positive int64 path parameter and writes the error
// response itself when the value is malformed.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
