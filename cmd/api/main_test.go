package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/accumedlab/accumed-api/internal/handlers"
	"github.com/accumedlab/accumed-api/internal/utils"
)

func TestRouterLiveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := utils.NewTokenService("test-secret")
	r := newRouter([]string{"*"}, &handlers.Handler{Tokens: tokens}, tokens, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accumed server is running", w.Body.String())
}

func TestRouterGuardsAdminRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := utils.NewTokenService("test-secret")
	r := newRouter([]string{"*"}, &handlers.Handler{Tokens: tokens}, tokens, nil)

	// no token: the auth guard answers before any handler or lookup runs
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access")
}
