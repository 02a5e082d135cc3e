package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/accumedlab/accumed-api/internal/models"
	"github.com/accumedlab/accumed-api/internal/repository"
)

// ListRatings returns every testimonial.
func (h *Handler) ListRatings(c *gin.Context) {
	ratings, err := repository.All[models.Rating](c.Request.Context(), h.Store.Ratings(), bson.M{})
	if err != nil {
		h.serverError(c, err, "failed to retrieve ratings")
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ListRecommendations returns the home-page slider items.
func (h *Handler) ListRecommendations(c *gin.Context) {
	items, err := repository.All[models.Recommendation](c.Request.Context(), h.Store.Recommends(), bson.M{})
	if err != nil {
		h.serverError(c, err, "failed to retrieve recommendations")
		return
	}
	c.JSON(http.StatusOK, items)
}
