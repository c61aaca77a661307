//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	} {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, backend := range []string{"std", "zap"} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(config.LogConfig{Level: "info", Backend: backend, TimeFormat: "2006-01-02 15:04:05"}, &buf)

			router := gin.New()
			router.Use(logger.LoggingMiddleware())
			router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
			router.GET("/boom", func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("pool exhausted"), "Internal server error", nil)
			})

			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			req.Header.Set("X-Request-ID", "req-123")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
			assert.Contains(t, buf.String(), "Request completed")
			assert.Contains(t, buf.String(), "req-123")

			buf.Reset()
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			assert.Contains(t, buf.String(), "pool exhausted")
			assert.Contains(t, strings.ToLower(buf.String()), "error")
		})
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "The time slot for this room has been taken"
		_ = c.Error(gin.Error{Err: errors.New("taken"), Type: gin.ErrorTypePublic, Meta: resp})
		c.Abort()
	})
	router.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("driver: bad connection"))
		c.Abort()
	})
	router.GET("/clean", func(c *gin.Context) {})

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{path: "/public", status: http.StatusConflict, message: "The time slot for this room has been taken"},
		{path: "/private", status: http.StatusInternalServerError, message: "Internal server error"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

		require.Equal(t, tt.status, rec.Code, tt.path)
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tt.message, body.Error.Message)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clean", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	router := gin.New()
	router.Use(CustomRecovery(slog.New(slog.NewTextHandler(&buf, nil))))
	router.GET("/panic", func(c *gin.Context) { panic("nil room") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.Contains(t, buf.String(), "nil room")
}
