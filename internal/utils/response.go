package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const MessageInternalError = "Internal Server Error"

type MessageResponse struct {
	Message string `json:"message"`
}

// AppError is a failure the client is allowed to see. Anything else that
// reaches RespondError is reported as a generic 500.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func NewAuthError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}

func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: MessageInternalError})
		return
	}

	c.JSON(appErr.Status, MessageResponse{Message: appErr.Message})
}

func RespondValidationError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
}

func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
