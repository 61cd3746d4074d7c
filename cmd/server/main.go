package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinabrahms/hotseat/internal/config"
	"github.com/justinabrahms/hotseat/internal/web"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Games untouched for this long are dropped
const idleTimeout = 2 * time.Hour

func main() {
	// Parse command line flags
	var (
		showHelp   bool
		configPath string
	)
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&showHelp, "h", false, "Show help information")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.Parse()

	if showHelp {
		showHelpMessage()
		return
	}

	// Setup logging
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load config
	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	setLogLevel(cfg.Development)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := web.NewHub()
	go hub.Run(ctx)

	service := web.NewService(cfg, hub)
	go pruneIdleGames(ctx, service.Store())

	// Create server
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      web.NewRouter(service),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Info().Str("addr", srv.Addr).Int("maxGames", cfg.Game.MaxSessions).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func setLogLevel(dev config.DevelopmentConfig) {
	level, err := zerolog.ParseLevel(dev.LogLevel)
	if err != nil {
		log.Warn().Str("level", dev.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	if dev.Debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

func pruneIdleGames(ctx context.Context, store *web.GameStore) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ids := store.Prune(time.Now().Add(-idleTimeout)); len(ids) > 0 {
				log.Info().Strs("gameIDs", ids).Msg("Dropped idle games")
			}
		}
	}
}

func showHelpMessage() {
	fmt.Println(`hotseat server

DESCRIPTION:
    Local chess server for two players sharing one browser. Every game
    lives in memory; moves are made by selecting a piece's square and then
    its destination square.

USAGE:
    hotseat-server [OPTIONS]

OPTIONS:
    -h, --help       Show this help message
    -config PATH     Read this config file instead of ./config.yaml

CONFIGURATION:
    Configured via config.yaml in the current directory or ./config, and
    HOTSEAT_* environment variables (HOTSEAT_SERVER_PORT=9090).

    Example config.yaml:
        server:
          host: localhost
          port: 8080
          static_dir: ./web/static/

        game:
          max_sessions: 64

        render:
          square_size: 64

        development:
          debug: true
          log_level: debug

API ENDPOINTS:
    GET    /api/health                  - Service health check
    GET    /api/games                   - List games in memory
    POST   /api/games                   - Start a new game
    GET    /api/games/{id}              - Current position
    POST   /api/games/{id}/select       - Select a square {"square": "e2"}
    POST   /api/games/{id}/cancel       - Drop the current selection
    POST   /api/games/{id}/undo         - Take back the last move
    DELETE /api/games/{id}              - End a game
    GET    /api/games/{id}/board.svg    - Board image
    GET    /ws?gameId={id}              - Live game updates

EXAMPLES:
    # Start with default configuration
    hotseat-server

    # Start a game and move a pawn
    curl -X POST http://localhost:8080/api/games
    curl -X POST http://localhost:8080/api/games/$ID/select -d '{"square": "e2"}'
    curl -X POST http://localhost:8080/api/games/$ID/select -d '{"square": "e4"}'`)
}
