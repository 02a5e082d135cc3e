package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/accumedlab/accumed-api/internal/models"
	"github.com/accumedlab/accumed-api/internal/repository"
)

// ListUsers returns every user. Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := repository.All[models.User](c.Request.Context(), h.Store.Users(), bson.M{})
	if err != nil {
		h.serverError(c, err, "failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetProfile returns the full user record for an email. An absent record
// yields a null body, not an error.
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.Store.UserByEmail(c.Request.Context(), c.Param("email"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		h.serverError(c, err, "failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser stores a new user document from the signup flow.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user.ID = primitive.NewObjectID()

	result, err := repository.InsertOne(c.Request.Context(), h.Store.Users(), user)
	if err != nil {
		h.serverError(c, err, "failed to create user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

// UpdateProfile applies a whitelisted partial update to the user identified by
// the path email. Unknown fields in the body are dropped; omitted fields keep
// their stored value.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	update := repository.AllowedUpdate(repository.KindUser, raw)
	if len(update) == 0 {
		fail(c, http.StatusBadRequest, "no update fields provided")
		return
	}

	result, err := h.Store.Users().UpdateOne(
		c.Request.Context(),
		bson.M{"email": c.Param("email")},
		bson.M{"$set": update},
	)
	if err != nil {
		h.serverError(c, err, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

// PromoteUser grants the admin role.
func (h *Handler) PromoteUser(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	result, err := repository.UpdateByID(c.Request.Context(), h.Store.Users(), id,
		bson.M{"$set": bson.M{"role": "admin"}})
	if err != nil {
		h.serverError(c, err, "failed to promote user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

// BlockUser sets the account status to "block".
func (h *Handler) BlockUser(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	result, err := repository.UpdateByID(c.Request.Context(), h.Store.Users(), id,
		bson.M{"$set": bson.M{"status": "block"}})
	if err != nil {
		h.serverError(c, err, "failed to block user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}
