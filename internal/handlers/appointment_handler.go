package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/accumedlab/accumed-api/internal/models"
	"github.com/accumedlab/accumed-api/internal/repository"
)

// AppointmentsByEmail returns the paid appointments owned by one user.
func (h *Handler) AppointmentsByEmail(c *gin.Context) {
	filter := bson.M{"email": c.Param("email")}
	appointments, err := repository.All[models.Appointment](c.Request.Context(), h.Store.Appointments(), filter)
	if err != nil {
		h.serverError(c, err, "failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// DeleteAppointment removes a paid appointment record.
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	result, err := repository.DeleteByID(c.Request.Context(), h.Store.Appointments(), id)
	if err != nil {
		h.serverError(c, err, "failed to delete appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// DeliverAppointment transitions the report status to delivered. Delivered is
// terminal; repeating the call rewrites the same value.
func (h *Handler) DeliverAppointment(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	result, err := repository.UpdateByID(c.Request.Context(), h.Store.Appointments(), id,
		bson.M{"$set": bson.M{"reportStatus": models.ReportDelivered}})
	if err != nil {
		h.serverError(c, err, "failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}
