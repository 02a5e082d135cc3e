package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accumedlab/accumed-api/internal/utils"
)

type fakeAdminChecker map[string]bool

func (f fakeAdminChecker) IsAdmin(_ context.Context, email string) (bool, error) {
	return f[email], nil
}

func authRouter(tokens *utils.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(EmailKey)})
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := authRouter(utils.NewTokenService("test-secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access")
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := authRouter(utils.NewTokenService("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	tokens := utils.NewTokenService("test-secret")
	r := authRouter(tokens)

	token, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := utils.NewTokenService("test-secret")
	checker := fakeAdminChecker{"admin@x.com": true}

	r := gin.New()
	r.GET("/admin", RequireAuth(tokens), RequireAdmin(checker), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"admin passes", "admin@x.com", http.StatusOK},
		{"non-admin rejected", "user@x.com", http.StatusForbidden},
		{"unknown user rejected", "ghost@x.com", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := tokens.Issue(tc.email)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}
