package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/accumedlab/accumed-api/internal/config"
	"github.com/accumedlab/accumed-api/internal/handlers"
	"github.com/accumedlab/accumed-api/internal/middleware"
	"github.com/accumedlab/accumed-api/internal/repository"
	"github.com/accumedlab/accumed-api/internal/services"
	"github.com/accumedlab/accumed-api/internal/utils"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found, relying on environment variables")
	}
	cfg := config.Load()

	// --- Database connection, one client for the process lifetime ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping MongoDB")
	}
	db := client.Database(cfg.Database)
	logger.Info().Str("database", cfg.Database).Msg("connected to MongoDB")

	// --- Services and handlers ---
	store := repository.NewStore(db, logger)
	tokens := utils.NewTokenService(cfg.JWTSecret)
	banners := services.NewBannerService(store, logger)
	payments := services.NewPaymentService(store, cfg.StripeSecretKey, logger)
	h := handlers.NewHandler(store, tokens, banners, payments, logger)

	r := newRouter(cfg.CORSOrigins, h, tokens, store)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("accumed server is running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// --- Graceful shutdown: stop accepting, drain, close the DB ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to close MongoDB connection")
	}
}

// newRouter builds the gin engine: recovery, CORS, then every route. Request
// logging stays on the injected zerolog logger rather than gin's own.
func newRouter(origins []string, h *handlers.Handler, tokens *utils.TokenService, store *repository.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	registerRoutes(r, h, tokens, store)
	return r
}

func registerRoutes(r *gin.Engine, h *handlers.Handler, tokens *utils.TokenService, store *repository.Store) {
	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin(store)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "accumed server is running")
	})

	// session tokens
	r.POST("/jwt", h.CreateToken)

	// users
	r.GET("/users", requireAuth, requireAdmin, h.ListUsers)
	r.GET("/users/:email", requireAuth, h.CheckActive)
	r.GET("/profile/:email", requireAuth, h.GetProfile)
	r.PATCH("/users/update/:email", h.UpdateProfile)
	r.GET("/user/admin/:email", requireAuth, h.CheckAdmin)
	r.POST("/users", h.CreateUser)
	r.PATCH("/users/admin/:id", h.PromoteUser)
	r.PATCH("/users/:id", h.BlockUser)

	// diagnostic tests
	r.POST("/test", h.CreateTest)
	r.GET("/test", h.ListTests)
	r.GET("/testDate/:date", h.TestsByDate)
	r.GET("/card/details/:id", h.TestDetails)
	r.DELETE("/test/:id", requireAuth, requireAdmin, h.DeleteTest)
	r.PATCH("/test/:id", h.UpdateTest)
	r.PATCH("/updateSlots/:id", h.DecrementSlots)

	// reservations
	r.GET("/reservations", h.ListReservations)
	r.POST("/reservations", h.CreateReservation)
	r.DELETE("/reservations/:id", h.DeleteReservation)
	r.PATCH("/reservations/:id", h.DeliverReservation)
	r.GET("/reservation/:email", h.ReservationsByEmail)

	// paid appointments
	r.GET("/appointmentResult/:email", h.AppointmentsByEmail)
	r.DELETE("/appointment/:id", h.DeleteAppointment)
	r.PATCH("/appointment/:id", h.DeliverAppointment)

	// banners
	r.GET("/banners", h.ListBanners)
	r.POST("/banners", h.CreateBanner)
	r.PUT("/banners/:id", h.ActivateBanner)
	r.DELETE("/banner/:id", h.DeleteBanner)
	r.POST("/banner/promo-code/:coupon", h.PromoCode)

	// payments
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
	r.GET("/payments/:email", requireAuth, h.PaymentsByEmail)
	r.POST("/payments", h.CompletePayment)

	// ratings and recommendations
	r.GET("/ratings", h.ListRatings)
	r.GET("/slider", h.ListRecommendations)
}
