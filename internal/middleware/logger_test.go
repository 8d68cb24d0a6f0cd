package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(buf)), Recovery())
	r.GET("/ok", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside")
		c.String(http.StatusOK, "ok")
	})
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})
	return r
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var m map[string]any
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestRequestLogger_PropagatesID(t *testing.T) {
	var buf bytes.Buffer
	r := setupRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	logs := lines(t, &buf)
	require.Len(t, logs, 2)
	assert.Equal(t, "inside", logs[0]["message"])
	assert.Equal(t, "abc-123", logs[0]["request_id"])
	assert.Equal(t, "request", logs[1]["message"])
	assert.Equal(t, float64(200), logs[1]["status"])
	assert.Equal(t, "/ok", logs[1]["path"])
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	r := setupRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := setupRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INTERNAL"`)
	assert.NotContains(t, w.Body.String(), "kaboom")

	logs := lines(t, &buf)
	require.Len(t, logs, 2)
	assert.Equal(t, "panic recovered", logs[0]["message"])
	assert.Equal(t, "kaboom", logs[0]["error"])
	assert.Equal(t, "error", logs[1]["level"])
}
