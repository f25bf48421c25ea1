package handlers

import (
	"net/http"
	"sync"
	"time"

	"scoreboard/internal/metrics"
	"scoreboard/internal/models"
	"scoreboard/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const sessionKey = "session"

// sessionMiddleware resolves the session cookie, if any, and stores the
// session in the Gin context. It never rejects a request on its own.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	value, err := c.Cookie(h.opts.CookieName)
	if err != nil || value == "" {
		c.Next()
		return
	}

	sid, err := h.opts.Codec.Decode(value)
	if err != nil {
		if h.log != nil {
			h.log.Infow("session_cookie_rejected", "err", err)
		}
		c.Next()
		return
	}

	sess, err := h.services.Lookup(c.Request.Context(), sid)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("session_lookup_failed", "err", err)
		}
		c.Next()
		return
	}
	if sess != nil {
		c.Set(sessionKey, sess)
	}
	c.Next()
}

func currentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}

// requireAdmin rejects the request unless the session carries the admin role.
func (h *Handler) requireAdmin(c *gin.Context) {
	sess := currentSession(c)
	if !service.Admit(sess) {
		if h.log != nil {
			h.log.Infow("admin_access_denied", "path", c.FullPath(), "has_session", sess != nil)
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}
	c.Next()
}

// cors allows credentialed requests from the configured origins only.
func (h *Handler) cors(c *gin.Context) {
	if origin := c.GetHeader("Origin"); origin != "" {
		if _, ok := h.origins[origin]; ok {
			hdr := c.Writer.Header()
			hdr.Set("Access-Control-Allow-Origin", origin)
			hdr.Set("Access-Control-Allow-Credentials", "true")
			hdr.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			hdr.Set("Access-Control-Allow-Headers", "Content-Type")
			hdr.Add("Vary", "Origin")
		}
	}

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	_, ok := h.origins[origin]
	return ok
}

// loginRateLimit throttles login attempts per client IP.
func (h *Handler) loginRateLimit(c *gin.Context) {
	if h.opts.LoginLimiter == nil {
		c.Next()
		return
	}
	if !h.opts.LoginLimiter.GetLimiter(c.ClientIP()).Allow() {
		h.opts.Metrics.ObserveLogin(metrics.LoginLimited)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many login attempts, try again later"})
		return
	}
	c.Next()
}

const (
	// cleanupThreshold is the minimum map size before a cleanup pass runs.
	cleanupThreshold = 500
	// maxIdleAge is the duration after which an idle IP entry is eligible for cleanup.
	maxIdleAge = 10 * time.Minute
)

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP and prunes idle
// entries inline.
type IPRateLimiter struct {
	mu  sync.Mutex
	ips map[string]*ipEntry
	r   rate.Limit
	b   int
	now func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*ipEntry),
		r:   r,
		b:   b,
		now: time.Now,
	}
}

// GetLimiter returns the limiter for ip, creating it on first use.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if len(i.ips) > cleanupThreshold {
		cutoff := now.Add(-maxIdleAge)
		for k, e := range i.ips {
			if e.lastSeen.Before(cutoff) {
				delete(i.ips, k)
			}
		}
	}

	e, ok := i.ips[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (i *IPRateLimiter) size() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}
