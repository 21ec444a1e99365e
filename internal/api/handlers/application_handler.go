package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/admissions/internal/models"
	"github.com/yoockh/admissions/internal/services"
	"github.com/yoockh/admissions/internal/utils"
)

type ApplicationHandler struct {
	svc   services.ApplicationService
	audit services.AuditService
}

func NewApplicationHandler(svc services.ApplicationService, audit services.AuditService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, audit: audit}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req services.ApplicationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Submit", "invalid request body", err))
		return
	}

	row, err := h.svc.Submit(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusCreated, row)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c, "ApplicationHandler.List")
	if !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), models.ApplicationStatus(c.Query("status")), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusOK, rows)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	row, err := h.svc.Get(c.Request.Context(), c.Param("application_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusOK, row)
}

func (h *ApplicationHandler) Events(c *gin.Context) {
	limit, ok := queryLimit(c, "ApplicationHandler.Events")
	if !ok {
		return
	}

	out, err := h.audit.History(c.Request.Context(), c.Param("application_id"), int64(limit))
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusOK, out)
}

// queryLimit parses ?limit=; absent means the service default.
func queryLimit(c *gin.Context, op string) (int, bool) {
	s := c.Query("limit")
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "limit must be a non-negative integer", err))
		return 0, false
	}
	return n, true
}
