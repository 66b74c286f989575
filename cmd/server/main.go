package main

import (
	"context"
	"net/http"
	"time"

	"auction-market/configs"
	"auction-market/internal/database"
	"auction-market/internal/handlers/api"
	"auction-market/internal/handlers/websocket"

	"github.com/charmbracelet/log"
)

func main() {
	// Load configurations
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	port := cfg.Server.Port
	if port == "" {
		port = "8080" // Default port if not specified
	}

	// Setup logger
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "debug" // Default log level if not specified
	}
	logLevel, err := log.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		log.Error("Invalid log level: ", err)
	}
	log.SetLevel(logLevel)

	// Initialize database service
	db, err := database.New(cfg)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Error applying schema: ", err)
	}

	sessionTTL, err := time.ParseDuration(cfg.Auth.SessionTTL)
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	// Setup routes
	mux := api.New(db, sessionTTL).Routes()

	bidFeed := websocket.NewBidFeed(db, cfg.WebSocket.RateLimit, cfg.WebSocket.RateBurst, cfg.WebSocket.MaxMessageSize)
	mux.HandleFunc("GET /ws/bids", bidFeed.HandleBidFeed)

	log.Infof("Server started on port %s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
