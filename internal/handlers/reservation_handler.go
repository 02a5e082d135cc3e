package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/accumedlab/accumed-api/internal/models"
	"github.com/accumedlab/accumed-api/internal/repository"
)

// ListReservations returns every pending reservation.
func (h *Handler) ListReservations(c *gin.Context) {
	reservations, err := repository.All[models.Reservation](c.Request.Context(), h.Store.Reservations(), bson.M{})
	if err != nil {
		h.serverError(c, err, "failed to retrieve reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// ReservationsByEmail returns the reservations owned by one user.
func (h *Handler) ReservationsByEmail(c *gin.Context) {
	filter := bson.M{"email": c.Param("email")}
	reservations, err := repository.All[models.Reservation](c.Request.Context(), h.Store.Reservations(), filter)
	if err != nil {
		h.serverError(c, err, "failed to retrieve reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// CreateReservation stores a new reservation.
func (h *Handler) CreateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := c.ShouldBindJSON(&reservation); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	reservation.ID = primitive.NewObjectID()

	result, err := repository.InsertOne(c.Request.Context(), h.Store.Reservations(), reservation)
	if err != nil {
		h.serverError(c, err, "failed to create reservation")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

// DeleteReservation removes one reservation directly, outside the payment flow.
func (h *Handler) DeleteReservation(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	result, err := repository.DeleteByID(c.Request.Context(), h.Store.Reservations(), id)
	if err != nil {
		h.serverError(c, err, "failed to delete reservation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// DeliverReservation marks a reservation's report as delivered.
func (h *Handler) DeliverReservation(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	result, err := repository.UpdateByID(c.Request.Context(), h.Store.Reservations(), id,
		bson.M{"$set": bson.M{"reportStatus": models.ReportDelivered}})
	if err != nil {
		h.serverError(c, err, "failed to update reservation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}
