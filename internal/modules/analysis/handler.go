package analysis

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
	rg.POST("/projects/:id/analysis", h.AnalyzeProject)
	rg.POST("/projects/:id/report", h.BuildReport)
}

func (h *Handler) AnalyzeProject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	res, err := h.service.AnalyzeProject(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to analyze project")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"analysis": res})
}

func (h *Handler) BuildReport(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	res, err := h.service.BuildReport(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id parameter")
		return 0, false
	}
	return id, true
}
