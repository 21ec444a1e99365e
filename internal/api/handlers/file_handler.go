package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/admissions/internal/services"
	"github.com/yoockh/admissions/internal/utils"
)

type FileHandler struct {
	svc services.FileService
}

func NewFileHandler(svc services.FileService) *FileHandler {
	return &FileHandler{svc: svc}
}

func (h *FileHandler) Ingest(c *gin.Context) {
	var req services.FileMetadata
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "FileHandler.Ingest", "invalid request body", err))
		return
	}

	row, err := h.svc.Ingest(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusCreated, row)
}

func (h *FileHandler) ListByApplication(c *gin.Context) {
	rows, err := h.svc.ListByApplication(c.Request.Context(), c.Param("application_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusOK, rows)
}

func (h *FileHandler) ReviewQueue(c *gin.Context) {
	limit, ok := queryLimit(c, "FileHandler.ReviewQueue")
	if !ok {
		return
	}

	rows, err := h.svc.ReviewQueue(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusOK, rows)
}
