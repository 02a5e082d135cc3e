package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/accumedlab/accumed-api/internal/repository"
	"github.com/accumedlab/accumed-api/internal/services"
	"github.com/accumedlab/accumed-api/internal/utils"
)

// Handler holds every dependency the route handlers need. One instance is
// built at startup and shared across requests.
type Handler struct {
	Store    *repository.Store
	Tokens   *utils.TokenService
	Banners  *services.BannerService
	Payments *services.PaymentService
	Log      zerolog.Logger
}

func NewHandler(
	store *repository.Store,
	tokens *utils.TokenService,
	banners *services.BannerService,
	payments *services.PaymentService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		Store:    store,
		Tokens:   tokens,
		Banners:  banners,
		Payments: payments,
		Log:      logger,
	}
}

// fail is the uniform error shape: {message} plus a status.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func (h *Handler) serverError(c *gin.Context, err error, message string) {
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg(message)
	fail(c, http.StatusInternalServerError, message)
}

// objectID parses the :id path param, or answers 400 and reports false.
func objectID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}
