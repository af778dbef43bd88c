package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func serveError(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"validation", apperrors.NewValidationError("Validation failed", map[string]string{"level": "bad"}), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"forbidden", apperrors.NewForbiddenError("nope"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"not found", fmt.Errorf("wrapped: %w", apperrors.ErrNewsNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"disabled", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeAccountDisabled},
		{"conflict", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"too large", apperrors.NewCustomError(apperrors.ErrFileTooLarge, "file exceeds 5 MB"), http.StatusRequestEntityTooLarge, dto.ErrorCodeFileTooLarge},
		{"invalid file", apperrors.ErrInvalidFile, http.StatusBadRequest, dto.ErrorCodeInvalidFile},
		{"unknown", errors.New("db exploded"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveError(tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Error.Code)
		})
	}
}

func TestHandleAPIErrorMessages(t *testing.T) {
	resp := decodeError(t, serveError(apperrors.NewValidationError("Validation failed", map[string]string{"level": "bad level"})))
	details, ok := resp.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "bad level", details["level"])

	resp = decodeError(t, serveError(apperrors.NewForbiddenError("you are not allowed to modify this record")))
	assert.Equal(t, "you are not allowed to modify this record", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)

	resp = decodeError(t, serveError(apperrors.ErrNewsNotFound))
	assert.Equal(t, "news not found", resp.Error.Message)

	resp = decodeError(t, serveError(errors.New("pq: secret table missing")))
	assert.Equal(t, "Internal server error", resp.Error.Message)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	m := NewAuthMiddleware(jwtSvc)

	r := gin.New()
	r.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": CurrentRole(c)})
	})
	r.GET("/staff", m.JWTAuth(), m.StaffOnly(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r, jwtSvc
}

func TestJWTAuth(t *testing.T) {
	r, jwtSvc := newAuthRouter(t)
	token, _, err := jwtSvc.GenerateAccessToken(7, "ana@example.com", string(models.RoleGraduate))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"role":"graduate"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?token="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, decodeError(t, w).Error.Code)
}

func TestStaffOnly(t *testing.T) {
	r, jwtSvc := newAuthRouter(t)

	for role, want := range map[models.RoleType]int{
		models.RoleGraduate:    http.StatusForbidden,
		models.RoleCoordinator: http.StatusNoContent,
		models.RoleAdmin:       http.StatusNoContent,
	} {
		token, _, err := jwtSvc.GenerateAccessToken(1, "x@example.com", string(role))
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, role)
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, decodeError(t, w).Error.Code)
}
