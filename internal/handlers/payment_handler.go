package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/accumedlab/accumed-api/internal/models"
	"github.com/accumedlab/accumed-api/internal/repository"
)

type paymentIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// CreatePaymentIntent asks the provider for a client secret over the given
// price. Provider errors surface to the caller, not retried.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.serverError(c, err, "failed to create payment intent")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// PaymentsByEmail returns the payment records owned by one user.
func (h *Handler) PaymentsByEmail(c *gin.Context) {
	filter := bson.M{"email": c.Param("email")}
	payments, err := repository.All[models.Appointment](c.Request.Context(), h.Store.Appointments(), filter)
	if err != nil {
		h.serverError(c, err, "failed to retrieve payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CompletePayment records the paid appointment and clears the reservations the
// payment covered.
func (h *Handler) CompletePayment(c *gin.Context) {
	var apt models.Appointment
	if err := c.ShouldBindJSON(&apt); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Payments.Complete(c.Request.Context(), apt)
	if err != nil {
		h.serverError(c, err, "failed to complete payment")
		return
	}
	c.JSON(http.StatusCreated, created)
}
