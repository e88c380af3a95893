package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/princinho/amanatbackend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func gatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AdminAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func signClaims(t *testing.T, claims utils.AdminClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func adminClaims(isAdmin bool, typ string, ttl time.Duration) utils.AdminClaims {
	return utils.AdminClaims{
		IsAdmin: isAdmin,
		Type:    typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
}

func TestAdminAuth(t *testing.T) {
	r := gatedRouter()

	validToken, err := utils.GenerateAdminToken(testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
	}{
		{name: "no credentials", wantStatus: http.StatusUnauthorized},
		{name: "valid bearer header", header: "Bearer " + validToken, wantStatus: http.StatusOK},
		{name: "valid cookie", cookie: validToken, wantStatus: http.StatusOK},
		{name: "malformed token", header: "Bearer not.a.token", wantStatus: http.StatusUnauthorized},
		{name: "non-bearer header ignored, no cookie", header: validToken, wantStatus: http.StatusUnauthorized},
		{
			name:       "header takes precedence over valid cookie",
			header:     "Bearer not.a.token",
			cookie:     validToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer " + signClaims(t, adminClaims(true, "admin", -time.Minute)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing admin flag",
			header:     "Bearer " + signClaims(t, adminClaims(false, "admin", time.Hour)),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong token type",
			header:     "Bearer " + signClaims(t, adminClaims(true, "customer", time.Hour)),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
