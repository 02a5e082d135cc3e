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

// CreateTest stores a new diagnostic test.
func (h *Handler) CreateTest(c *gin.Context) {
	var test models.Test
	if err := c.ShouldBindJSON(&test); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	test.ID = primitive.NewObjectID()

	result, err := repository.InsertOne(c.Request.Context(), h.Store.Tests(), test)
	if err != nil {
		h.serverError(c, err, "failed to create test")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

// ListTests returns every test.
func (h *Handler) ListTests(c *gin.Context) {
	tests, err := repository.All[models.Test](c.Request.Context(), h.Store.Tests(), bson.M{})
	if err != nil {
		h.serverError(c, err, "failed to retrieve tests")
		return
	}
	c.JSON(http.StatusOK, tests)
}

// TestsByDate returns tests scheduled on or after the given date. Dates are
// stored as strings, so this is a lexical comparison, not a calendar-aware one.
func (h *Handler) TestsByDate(c *gin.Context) {
	filter := bson.M{"date": bson.M{"$gte": c.Param("date")}}
	tests, err := repository.All[models.Test](c.Request.Context(), h.Store.Tests(), filter)
	if err != nil {
		h.serverError(c, err, "failed to retrieve tests")
		return
	}
	c.JSON(http.StatusOK, tests)
}

// TestDetails returns a single test, or a null body when it does not exist.
func (h *Handler) TestDetails(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	test, err := repository.FindByID[models.Test](c.Request.Context(), h.Store.Tests(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		h.serverError(c, err, "failed to retrieve test")
		return
	}
	c.JSON(http.StatusOK, test)
}

// DeleteTest removes a test. Admin only.
func (h *Handler) DeleteTest(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	result, err := repository.DeleteByID(c.Request.Context(), h.Store.Tests(), id)
	if err != nil {
		h.serverError(c, err, "failed to delete test")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// UpdateTest applies a whitelisted partial update to a test.
func (h *Handler) UpdateTest(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	update := repository.AllowedUpdate(repository.KindTest, raw)
	if len(update) == 0 {
		fail(c, http.StatusBadRequest, "no update fields provided")
		return
	}

	result, err := repository.UpdateByID(c.Request.Context(), h.Store.Tests(), id, bson.M{"$set": update})
	if err != nil {
		h.serverError(c, err, "failed to update test")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

// DecrementSlots takes one slot off a test when a booking is made. There is no
// floor check: repeated calls can drive the count negative.
func (h *Handler) DecrementSlots(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	result, err := repository.IncByID(c.Request.Context(), h.Store.Tests(), id, "slots", -1)
	if err != nil {
		h.serverError(c, err, "failed to update slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}
