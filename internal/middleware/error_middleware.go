package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/logger"
)

type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

var errorMappings = []errorMapping{
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
	{apperrors.ErrFileTooLarge, http.StatusRequestEntityTooLarge, dto.ErrorCodeFileTooLarge, "File too large"},
	{apperrors.ErrInvalidFile, http.StatusBadRequest, dto.ErrorCodeInvalidFile, "Invalid file"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},
	{apperrors.ErrRenderFailed, http.StatusInternalServerError, dto.ErrorCodeRenderFailed, "Report could not be generated"},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	if apperrors.IsNotFound(err) {
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.MessageOf(err, notFoundMessage(err)))
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
		return
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		detail := dto.NewErrorDetail(m.code, apperrors.MessageOf(err, m.message))
		// permission errors carry a message only
		if m.target != apperrors.ErrPermissionDenied {
			if details := apperrors.DetailsOf(err); len(details) > 0 {
				detail = detail.WithDetails(details)
			}
		}
		if m.status >= http.StatusInternalServerError {
			logRequestError(c, err)
		}
		c.JSON(m.status, dto.NewErrorResponse(detail))
		return
	}

	logRequestError(c, err)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
	))
}

func notFoundMessage(err error) string {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return "Resource not found"
	}
	// sentinel texts such as "news not found" are safe to expose
	for e := err; e != nil; e = errors.Unwrap(e) {
		if errors.Unwrap(e) == nil {
			return e.Error()
		}
	}
	return "Resource not found"
}

func logRequestError(c *gin.Context, err error) {
	logger.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Request failed")
}

// HandleBindingError responds 400 with per-field messages for a failed bind
func HandleBindingError(c *gin.Context, err error) {
	detail := dto.HandleValidationError(err)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
