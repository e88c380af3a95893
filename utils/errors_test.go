package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorTypedFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "bad request", err: BadRequest("Name is required"), wantStatus: 400, wantError: "Name is required"},
		{name: "unauthorized", err: Unauthorized("Invalid admin key"), wantStatus: 401, wantError: "Invalid admin key"},
		{name: "forbidden", err: Forbidden("nope"), wantStatus: 403, wantError: "nope"},
		{name: "not found", err: NotFound("Product not found"), wantStatus: 404, wantError: "Product not found"},
		{name: "conflict", err: Conflict("slug taken"), wantStatus: 409, wantError: "slug taken"},
		{name: "internal errors stay generic", err: errors.New("mongo: socket closed"), wantStatus: 500, wantError: "something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestRespondEnvelopeShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondList(c, http.StatusOK, "products", []string{"a", "b"}, 2)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["results"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "products")
}
