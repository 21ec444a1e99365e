package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/admissions/internal/utils"
)

type APIResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type APIError struct {
	Success bool       `json:"success"`
	Code    utils.Code `json:"code"`
	Message string     `json:"error"`
	Detail  string     `json:"detail,omitempty"`
}

func writeOK(c *gin.Context, status int, data any) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	_ = c.Error(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		out := APIError{Code: ae.Code, Message: ae.Message}
		// store and storage messages are surfaced as-is
		if ae.Code == utils.CodeInternal {
			out.Detail = ae.Detail()
		}
		c.JSON(status, out)
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}
