package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/solvera/storefront-api/controllers"
	"github.com/solvera/storefront-api/database"
	"github.com/solvera/storefront-api/logger"
	"github.com/solvera/storefront-api/middleware"
	"github.com/solvera/storefront-api/repository"
	"github.com/solvera/storefront-api/routes"
	"github.com/solvera/storefront-api/services"
)

func main() {
	// Missing .env is fine in containers; configuration comes from the environment.
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	logger.Initialize(cfg.Env)
	log := zap.L()
	defer log.Sync()

	client, db, err := database.Connect(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer database.Close(client)

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Warn("failed to ensure user indexes", zap.Error(err))
	}
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogCache := repository.NewCatalogCache(redisClient, cfg.CacheTTL)

	catalogSvc := services.NewCatalogService(productRepo, catalogCache, log)
	cartSvc := services.NewCartService(cartRepo, productRepo, log)
	wishlistSvc := services.NewWishlistService(wishlistRepo, cartRepo, productRepo, log)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, log)
	profileSvc := services.NewProfileService(userRepo, log)
	orderSvc := services.NewOrderService(orderRepo, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.NewRateLimiter(20, 40).Middleware())
	router.Use(middleware.RequestTimeout(15 * time.Second))

	routes.Register(router, routes.Controllers{
		Catalog:  controllers.NewCatalogController(catalogSvc),
		Cart:     controllers.NewCartController(cartSvc),
		Wishlist: controllers.NewWishlistController(wishlistSvc),
		Auth:     controllers.NewAuthController(authSvc),
		Profile:  controllers.NewProfileController(profileSvc),
		Order:    controllers.NewOrderController(orderSvc),
	}, cfg.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("storefront API listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
