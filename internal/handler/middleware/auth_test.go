//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"vending-machine/internal/handler/middleware"
	"vending-machine/internal/pkg/cookie"
	"vending-machine/internal/pkg/jwt"
	"vending-machine/internal/usecase"
	"vending-machine/tests/common/httptest"
	usecasemock "vending-machine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	mw := middleware.NewAuthMiddleware(s.mockValidator)

	s.router.GET("/api/admin/ping", mw.RequireAdmin(), func(c *gin.Context) {
		id, _ := middleware.GetSessionID(c)
		c.JSON(http.StatusOK, gin.H{"session_id": id})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func maintenanceClaims(id string) *jwt.Claims {
	return &jwt.Claims{
		Role:             jwt.RoleMaintenance,
		RegisteredClaims: gojwt.RegisteredClaims{ID: id, Subject: "admin"},
	}
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	url := "/api/admin/ping"

	s.Run("success: bearer header", func() {
		s.mockValidator.EXPECT().ValidateToken("header-token").Return(maintenanceClaims("sess-1"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "header-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("sess-1", body["session_id"])
	})

	s.Run("success: cookie takes precedence over header", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(maintenanceClaims("sess-2"), nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, url, nil, cookies, "header-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 for rejected token", func() {
		s.mockValidator.EXPECT().ValidateToken("customer-token").Return(nil, usecase.ErrNotMaintenanceRole).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
