package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoreboard/internal/config"
	"scoreboard/internal/handlers"
	"scoreboard/internal/logger"
	"scoreboard/internal/metrics"
	"scoreboard/internal/repository"
	"scoreboard/internal/repository/db"
	"scoreboard/internal/server"
	"scoreboard/internal/service"
	"scoreboard/internal/session"

	"golang.org/x/time/rate"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

// @title       House Scoreboard API
// @version     1.0
// @description Scores and events of the inter-house sports meet.
// @BasePath    /
func main() {
	// load configs/config.yml
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleFormat).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// open DB
	conn, err := db.Open(ctx, cfg.DB, cfg.Houses)
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()
	log.Infow("store ready", "driver", cfg.DB.Driver, "houses", cfg.Houses)

	sessions, err := openSessionStore(ctx, cfg.Session, log)
	if err != nil {
		log.Fatalw("failed to open session store", "backend", cfg.Session.Backend, "err", err)
	}

	codec, err := sessionCodec(cfg.Auth, log)
	if err != nil {
		log.Fatalw("failed to prepare session secret", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn, cfg.DB.QueryTimeout)
	services := service.NewService(repos, sessions, service.AuthOptions{
		BcryptCost: cfg.Auth.BcryptCost,
		SessionTTL: cfg.Auth.SessionTTL,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		Codec:          codec,
		CookieName:     cfg.Auth.CookieName,
		CookieSecure:   cfg.Auth.CookieSecure || cfg.TLS.Enabled(),
		Metrics:        metrics.New(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		LoginLimiter:   handlers.NewIPRateLimiter(rate.Limit(cfg.RateLimit.LoginPerSecond), cfg.RateLimit.LoginBurst),
		FeedInterval:   cfg.Feed.Interval,
		Ping:           pinger(conn, cfg.DB.QueryTimeout),
	})

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openSessionStore returns the configured backend. The memory store gets a
// sweeper bound to ctx.
func openSessionStore(ctx context.Context, cfg config.SessionConfig, log *logger.Logger) (session.Store, error) {
	if cfg.Backend == config.SessionRedis {
		client, err := session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		log.Infow("session store ready", "backend", cfg.Backend, "addr", cfg.RedisAddr)
		return session.NewRedisStore(client, cfg.KeyPrefix), nil
	}

	store := session.NewMemoryStore()
	go store.RunSweeper(ctx, sweepInterval)
	log.Infow("session store ready", "backend", config.SessionMemory)
	return store, nil
}

func sessionCodec(cfg config.AuthConfig, log *logger.Logger) (*session.Codec, error) {
	if cfg.SessionSecret != "" {
		return session.NewCodec([]byte(cfg.SessionSecret)), nil
	}
	secret, err := session.RandomSecret()
	if err != nil {
		return nil, err
	}
	log.Warnw("auth.session_secret not set; using a random secret, sessions end on restart")
	return session.NewCodec(secret), nil
}

func pinger(conn *sql.DB, timeout time.Duration) func(context.Context) error {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return conn.PingContext(ctx)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg *config.Config, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		var err error
		if cfg.TLS.Enabled() {
			log.Infow("listening", "port", cfg.Port, "tls", true)
			err = srv.RunTLS(cfg.Port, handler.InitRoutes(), cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			log.Infow("listening", "port", cfg.Port, "tls", false)
			err = srv.Run(cfg.Port, handler.InitRoutes())
		}
		if err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
