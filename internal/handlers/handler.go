package handlers

import (
	"context"
	"net/http"
	"time"

	_ "scoreboard/docs"
	"scoreboard/internal/logger"
	"scoreboard/internal/metrics"
	"scoreboard/internal/service"
	"scoreboard/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultCookieName = "scoreboard_session"

// Options carries the HTTP-layer collaborators. Zero values are usable in tests.
type Options struct {
	Codec          *session.Codec
	CookieName     string
	CookieSecure   bool
	Metrics        *metrics.Metrics
	AllowedOrigins []string
	LoginLimiter   *IPRateLimiter
	FeedInterval   time.Duration
	// Ping checks the backing store for /health; nil means always healthy.
	Ping func(ctx context.Context) error
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
	origins  map[string]struct{}
	upgrader websocket.Upgrader
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if opts.CookieName == "" {
		opts.CookieName = defaultCookieName
	}
	if opts.Codec == nil {
		secret, err := session.RandomSecret()
		if err != nil {
			panic(err)
		}
		opts.Codec = session.NewCodec(secret)
	}
	if opts.FeedInterval <= 0 {
		opts.FeedInterval = defaultInterval
	}
	h := &Handler{
		services: services,
		log:      log,
		opts:     opts,
		origins:  make(map[string]struct{}, len(opts.AllowedOrigins)),
	}
	for _, o := range opts.AllowedOrigins {
		h.origins[o] = struct{}{}
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.opts.Metrics.Middleware(), h.cors, h.sessionMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(h.opts.Metrics.Handler()))

	api := router.Group("/api")
	{
		h.registerAuthRoutes(api)
		h.registerScoreRoutes(api)
		h.registerEventRoutes(api)
		h.registerUserRoutes(api)
	}

	router.GET("/ws/scores", h.wsScores)

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/login", h.loginRateLimit, h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
	}
}

func (h *Handler) registerScoreRoutes(api *gin.RouterGroup) {
	scores := api.Group("/scores")
	{
		scores.GET("", h.listScores)
		scores.POST("", h.requireAdmin, h.updateScore)
	}
}

func (h *Handler) registerEventRoutes(api *gin.RouterGroup) {
	events := api.Group("/events")
	{
		events.GET("", h.listEvents)
		events.POST("", h.requireAdmin, h.createEvent)
		events.PUT("", h.requireAdmin, h.updateEvent)
		events.DELETE("/:id", h.requireAdmin, h.deleteEvent)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	api.PUT("/users/:username/role", h.requireAdmin, h.setRole)
}

// health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	if h.opts.Ping != nil {
		if err := h.opts.Ping(c.Request.Context()); err != nil {
			if h.log != nil {
				h.log.Errorw("health_ping_failed", "err", err)
			}
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
