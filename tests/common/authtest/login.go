//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"vending-machine/internal/handler/dto/request"
	"vending-machine/internal/pkg/cookie"
	"vending-machine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginAdmin(t *testing.T, router *gin.Engine, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, tokenCookie, "admin token not found in cookies")
	require.NotEmpty(t, tokenCookie.Value, "admin token cookie is empty")

	return tokenCookie.Value
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
