package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"recruitdash-cache-api/internal/cache"
	"recruitdash-cache-api/internal/config"
	"recruitdash-cache-api/internal/handler"
	"recruitdash-cache-api/internal/invalidation"
	"recruitdash-cache-api/internal/router"
	"recruitdash-cache-api/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting recruitdash cache service...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize durable storage medium based on config
	var medium storage.Medium
	var err error
	switch cfg.Storage.Type {
	case "sqlite":
		medium, err = storage.NewSQLiteMedium(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite medium: %v", err)
		}
		log.Println("SQLite storage medium initialized")
	case "mysql":
		medium, err = storage.NewMySQLMedium(cfg.Storage.MySQLDSN())
		if err != nil {
			log.Fatalf("Failed to initialize MySQL medium: %v", err)
		}
		log.Println("MySQL storage medium initialized")
	case "redis":
		medium, err = storage.NewRedisMedium(storage.RedisMediumConfig{
			Addr:     cfg.Storage.RedisAddress(),
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		if err != nil {
			log.Fatalf("Failed to initialize Redis medium: %v", err)
		}
		log.Println("Redis storage medium initialized")
	default: // memory
		medium = storage.NewMemoryMedium()
		log.Println("In-memory storage medium initialized")
	}
	defer medium.Close()

	// Initialize named cache instances
	caches := cache.NewGroup(groupConfig(cfg), medium)
	defer caches.Close()

	// Initialize invalidation coordinator
	invalidator := invalidation.NewCoordinator(caches)

	// Initialize handlers
	healthHandler := handler.New(cfg.App.Version)
	cacheHandler := handler.NewCacheHandler(caches, invalidator, cfg.Storage.Type)
	eventsHandler := handler.NewEventsHandler(invalidator)

	// Create router
	r := router.New(router.Config{
		Handler:       healthHandler,
		CacheHandler:  cacheHandler,
		EventsHandler: eventsHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

// groupConfig maps the environment configuration onto per-instance cache
// settings. All instances share the persistence switch and sweep interval.
func groupConfig(cfg *config.Config) cache.GroupConfig {
	gc := cache.DefaultGroupConfig()

	gc.API.DefaultTTL = cfg.Cache.APITTL
	gc.API.MaxSize = cfg.Cache.APIMaxSize
	gc.Jobs.DefaultTTL = cfg.Cache.JobsTTL
	gc.Jobs.MaxSize = cfg.Cache.JobsMaxSize
	gc.Comparisons.DefaultTTL = cfg.Cache.ComparisonsTTL
	gc.Comparisons.MaxSize = cfg.Cache.ComparisonsMaxSize
	gc.System.DefaultTTL = cfg.Cache.SystemTTL
	gc.System.MaxSize = cfg.Cache.SystemMaxSize

	for _, c := range []*cache.Config{&gc.API, &gc.Jobs, &gc.Comparisons, &gc.System} {
		c.Persist = cfg.Cache.Persist
		c.CleanupInterval = cfg.Cache.CleanupInterval
	}

	return gc
}
