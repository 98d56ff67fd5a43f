package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexdraft/internal/cache"
	"lexdraft/internal/config"
	"lexdraft/internal/extract"
	"lexdraft/internal/flow"
	"lexdraft/internal/repository"
	"lexdraft/internal/service"
	"lexdraft/internal/transport/rest"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	aiConfig := config.DefaultAIConfig()
	log.Printf("Generation config:")
	log.Printf("  Deployment: %s", aiConfig.Deployment)
	log.Printf("  Timeout:    %dms", aiConfig.TimeoutMS)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:    configured")
	} else {
		log.Println("  API Key:    NOT SET (using local stub generator)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories and caches
	templateRepo := repository.NewTemplateRepo(db)
	flowCache := cache.NewFlowCache(rdb, cfg.FlowTTL())
	templateCache := cache.NewTemplateCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.SessionSecret, cfg.FlowTTL())
	engine := flow.NewEngine(flow.Config{BatchSize: flow.DefaultBatchSize})
	flowSvc := service.NewFlowService(engine, flowCache, authSvc)
	generator := service.NewGeneratorService(aiConfig)
	draftSvc := service.NewDraftService(flowSvc, generator)
	reviewSvc := service.NewReviewService(extract.NewPlainText(), generator)
	templateSvc := service.NewTemplateService(templateRepo, templateCache)

	// Create router with container
	container := &rest.Container{
		AuthService:     authSvc,
		FlowService:     flowSvc,
		DraftService:    draftSvc,
		ReviewService:   reviewSvc,
		TemplateService: templateSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/categories")
		log.Println("  GET  /v1/categories/{key}/questions")
		log.Println("  POST /v1/flows")
		log.Println("  GET  /v1/flows/{id}")
		log.Println("  POST /v1/flows/{id}/advance")
		log.Println("  POST /v1/flows/{id}/draft")
		log.Println("  POST /v1/reviews")
		log.Println("  POST /v1/render")
		log.Println("  GET  /v1/templates")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
