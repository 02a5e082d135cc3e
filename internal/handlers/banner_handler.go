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

// ListBanners returns every banner, active or not.
func (h *Handler) ListBanners(c *gin.Context) {
	banners, err := repository.All[models.Banner](c.Request.Context(), h.Store.Banners(), bson.M{})
	if err != nil {
		h.serverError(c, err, "failed to retrieve banners")
		return
	}
	c.JSON(http.StatusOK, banners)
}

// CreateBanner stores a new banner. New banners start inactive.
func (h *Handler) CreateBanner(c *gin.Context) {
	var banner models.Banner
	if err := c.ShouldBindJSON(&banner); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	banner.ID = primitive.NewObjectID()
	if banner.IsActive == "" {
		banner.IsActive = "false"
	}

	result, err := repository.InsertOne(c.Request.Context(), h.Store.Banners(), banner)
	if err != nil {
		h.serverError(c, err, "failed to create banner")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

// ActivateBanner makes the targeted banner the only active one.
func (h *Handler) ActivateBanner(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	err := h.Banners.Activate(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		fail(c, http.StatusNotFound, "banner not found")
		return
	}
	if err != nil {
		h.serverError(c, err, "failed to update banner selection")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner selection updated successfully"})
}

// DeleteBanner removes a banner.
func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	result, err := repository.DeleteByID(c.Request.Context(), h.Store.Banners(), id)
	if err != nil {
		h.serverError(c, err, "failed to delete banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// PromoCode resolves a coupon code to its discount rate. A miss is an explicit
// 404 rather than an empty response.
func (h *Handler) PromoCode(c *gin.Context) {
	filter := bson.M{"coupon": c.Param("coupon")}
	banner, err := repository.FindOneBy[models.Banner](c.Request.Context(), h.Store.Banners(), filter)
	if errors.Is(err, repository.ErrNotFound) {
		fail(c, http.StatusNotFound, "coupon not found")
		return
	}
	if err != nil {
		h.serverError(c, err, "failed to look up coupon")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rate": banner.Rate})
}
