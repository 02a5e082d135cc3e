package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accumedlab/accumed-api/internal/middleware"
	"github.com/accumedlab/accumed-api/internal/repository"
)

// tokenRequest is the identity claim posted to /jwt. The email only needs to
// be present; its format is whatever the client's auth provider produced.
type tokenRequest struct {
	Email string `json:"email" binding:"required"`
}

// CreateToken signs a one-hour session token for the posted identity claim.
func (h *Handler) CreateToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		h.serverError(c, err, "could not generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// matchesCaller ensures the path email belongs to the authenticated identity,
// so one user cannot probe another's account flags. Answers 403 on mismatch.
func matchesCaller(c *gin.Context, email string) bool {
	if email != c.GetString(middleware.EmailKey) {
		fail(c, http.StatusForbidden, "forbidden access")
		return false
	}
	return true
}

// CheckAdmin reports whether the caller's own account has the admin role.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if !matchesCaller(c, email) {
		return
	}

	user, err := h.Store.UserByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.serverError(c, err, "failed to look up user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// CheckActive reports whether the caller's own account is active.
func (h *Handler) CheckActive(c *gin.Context) {
	email := c.Param("email")
	if !matchesCaller(c, email) {
		return
	}

	user, err := h.Store.UserByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.serverError(c, err, "failed to look up user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.IsActive()})
}
