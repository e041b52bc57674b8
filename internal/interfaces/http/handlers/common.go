// Package handlers implements the API's gin handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lohum/schemetrack/pkg/errors"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps application errors to their HTTP status. Internal errors
// are masked; the cause stays in the log, not the response.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	message := "internal server error"
	if status != http.StatusInternalServerError {
		if appErr := errors.AsAppError(err); appErr != nil {
			message = appErr.Message
		} else {
			message = err.Error()
		}
	}

	c.JSON(status, ErrorResponse{Code: string(code), Message: message})
}
