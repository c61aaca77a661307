//go:build unit

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAddRoutes_SharedMiddlewareKeepsEachHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	// Spare capacity lets a plain append write every route's handler into the same slot.
	shared := make([]gin.HandlerFunc, 1, 4)
	shared[0] = func(c *gin.Context) { c.Header("X-Checked", "yes") }
	reply := func(body string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, body) }
	}

	addRoutes(engine.Group("/rooms"), []route{
		{Method: http.MethodGet, Path: "/kauri", Handler: reply("kauri"), Mw: shared},
		{Method: http.MethodGet, Path: "/rimu", Handler: reply("rimu"), Mw: shared},
		{Method: http.MethodGet, Path: "/totara", Handler: reply("totara"), Mw: shared},
	})

	for _, name := range []string{"kauri", "rimu", "totara"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/"+name, nil))

		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.Equal(t, name, w.Body.String())
		assert.Equal(t, "yes", w.Header().Get("X-Checked"), name)
	}
	assert.Len(t, shared, 1)
}

func TestAddRoutes_MiddlewareAbortStopsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	deny := []gin.HandlerFunc{func(c *gin.Context) { c.AbortWithStatus(http.StatusForbidden) }}
	called := false

	addRoutes(engine.Group("/users"), []route{
		{Method: http.MethodDelete, Path: "/:id", Handler: func(c *gin.Context) { called = true }, Mw: deny},
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/42", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}
