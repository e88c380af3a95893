package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/princinho/amanatbackend/config"
	"github.com/princinho/amanatbackend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	app := &App{Cfg: &config.Config{
		AdminKey:  "silver-key",
		JWTSecret: "login-test-secret",
	}}
	r := gin.New()
	r.POST("/login", AdminLogin(app))
	return r
}

func postLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginSuccess(t *testing.T) {
	r := loginRouter()

	w := postLogin(t, r, `{"adminKey":"silver-key"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotEmpty(t, body.Token)

	claims, err := utils.ValidateAdminToken(body.Token, "login-test-secret")
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "admin", claims.Type)

	// the token also travels as a secure http-only cookie
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, body.Token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestAdminLoginRejections(t *testing.T) {
	r := loginRouter()

	t.Run("wrong key", func(t *testing.T) {
		w := postLogin(t, r, `{"adminKey":"bronze-key"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("missing key names the field", func(t *testing.T) {
		w := postLogin(t, r, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Admin key is required", body["error"])
	})

	t.Run("invalid json", func(t *testing.T) {
		w := postLogin(t, r, `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
