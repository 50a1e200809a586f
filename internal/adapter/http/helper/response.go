package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/model/response"
)

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError) {
	c.JSON(statusCode, response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	})
}

func SendValidationError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validation.FormatValidationErrors(err))
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	SendError(c, http.StatusBadRequest, "BAD_REQUEST", []response.ValidationError{
		{Field: field, Message: message},
	})
}

func SendNotFoundError(c *gin.Context) {
	SendError(c, http.StatusNotFound, "NOT_FOUND", []response.ValidationError{
		{Field: "resource", Message: "resource not found"},
	})
}

func SendUnauthorizedError(c *gin.Context, message string) {
	SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", []response.ValidationError{
		{Field: "auth", Message: message},
	})
}

func SendInternalError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", []response.ValidationError{
		{Field: "server", Message: message},
	})
}
