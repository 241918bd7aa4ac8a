package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/edumarket/tutoring-service/internal/db"
	"github.com/edumarket/tutoring-service/internal/handlers"
	"github.com/edumarket/tutoring-service/internal/repository"
	"github.com/edumarket/tutoring-service/internal/repository/memory"
	"github.com/edumarket/tutoring-service/internal/router"
	"github.com/edumarket/tutoring-service/internal/router/config"
	"github.com/edumarket/tutoring-service/internal/services"
	"github.com/edumarket/tutoring-service/internal/session"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	logger := log.New(os.Stdout, "INFO: ", log.LstdFlags)

	var (
		userRepo       repository.UserRepository
		assignmentRepo repository.AssignmentRepository
		bidRepo        repository.BidRepository
		paymentRepo    repository.PaymentRepository
	)

	if cfg.StorageBackend == "postgres" {
		runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

		dbPool, err := db.InitDb(cfg)
		if err != nil {
			log.Fatalf("error initializing database: %v", err)
		}
		defer dbPool.Close()

		userRepo = repository.NewPostgresUserRepository(dbPool)
		assignmentRepo = repository.NewPostgresAssignmentRepository(dbPool)
		bidRepo = repository.NewPostgresBidRepository(dbPool)
		paymentRepo = repository.NewPostgresPaymentRepository(dbPool)
	} else {
		store := memory.NewSeededStore(time.Duration(cfg.StoreLatencyMs) * time.Millisecond)
		userRepo = store.Users()
		assignmentRepo = store.Assignments()
		bidRepo = store.Bids()
		paymentRepo = store.Payments()
		logger.Println("using in-memory storage backend")
	}

	var sessions session.Store
	if cfg.SessionBackend == "redis" {
		redisStore := session.NewRedisStore(cfg.RedisAddress)
		if !redisStore.Healthy(context.Background()) {
			logger.Printf("warning: redis not reachable at %s", cfg.RedisAddress)
		}
		sessions = redisStore
	} else {
		sessions = session.NewMemoryStore()
	}

	authService := services.NewAuthService(userRepo, sessions)
	assignmentService := services.NewAssignmentService(assignmentRepo, bidRepo, userRepo)
	bidService := services.NewBidService(bidRepo, assignmentRepo, userRepo)
	analyticsService := services.NewAnalyticsService(userRepo, assignmentRepo, paymentRepo)

	authHandler := handlers.NewAuthHandler(authService, logger, 5*time.Second)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, authService, logger, 5*time.Second)
	bidHandler := handlers.NewBidHandler(bidService, authService, logger, 5*time.Second)
	adminHandler := handlers.NewAdminHandler(analyticsService, authService, logger, 5*time.Second)

	routes := router.InitRoutes(authHandler, assignmentHandler, bidHandler, adminHandler)

	log.Printf("server is listening on %s...", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, routes); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create a new migrate instance", err)
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("failed to run migrate up:", err)
	}
	log.Println("db migrated successfully")
}
