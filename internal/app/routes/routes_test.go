package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/egresados/internal/app/controllers"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/middleware"
	"github.com/yigit/egresados/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	nop := zerolog.Nop()
	c := &Controllers{
		Auth:       controllers.NewAuthController(nil, nop),
		Users:      controllers.NewUserController(nil, nop),
		Basic:      controllers.NewBasicInformationController(nil, nop),
		Academic:   controllers.NewAcademicInformationController(nil, nop),
		Employment: controllers.NewEmploymentInformationController(nil, nop),
		Profile:    controllers.NewProfileController(nil, nop),
		News:       controllers.NewNewsController(nil, nop),
		Location:   controllers.NewLocationController(nil, nop),
		Reports:    controllers.NewReportController(nil, nil, nop),
	}
	router := gin.New()
	SetupRouter(router, c, middleware.NewAuthMiddleware(jwtService))
	return router, jwtService
}

func TestRoutesRegistered(t *testing.T) {
	router, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /api/v1/auth/register",
		"GET /api/v1/auth/me",
		"POST /api/v1/basicInformation",
		"DELETE /api/v1/academicInformation",
		"GET /api/v1/academicInformation/:id/certificate",
		"PUT /api/v1/employmentInformation/:id",
		"POST /api/v1/myProfile",
		"GET /api/v1/locations",
		"GET /api/v1/graduateReports/export",
		"PATCH /api/v1/users/:id/status",
		"GET /api/v1/news/:id",
		"GET /api/v1/catalog",
		"GET /health",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestProtectedRoutes(t *testing.T) {
	router, jwtService := newTestRouter(t)

	graduateToken, _, err := jwtService.GenerateAccessToken(3, "g@example.com", string(models.RoleGraduate))
	require.NoError(t, err)
	coordinatorToken, _, err := jwtService.GenerateAccessToken(4, "c@example.com", string(models.RoleCoordinator))
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"no token", http.MethodGet, "/api/v1/basicInformation", "", http.StatusUnauthorized},
		{"graduate on reports", http.MethodGet, "/api/v1/graduateReports", graduateToken, http.StatusForbidden},
		{"coordinator on users", http.MethodGet, "/api/v1/users", coordinatorToken, http.StatusForbidden},
		{"graduate creating news", http.MethodPost, "/api/v1/news", graduateToken, http.StatusForbidden},
		{"bad id before service", http.MethodPut, "/api/v1/employmentInformation/abc", graduateToken, http.StatusBadRequest},
		{"public catalog", http.MethodGet, "/api/v1/catalog", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
