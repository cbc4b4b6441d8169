package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	contextUserID  = "scrimhub.user_id"
	contextIsStaff = "scrimhub.is_staff"
	contextEmail   = "scrimhub.email"

	// WebhookTokenHeader carries the shared secret providers are configured with
	WebhookTokenHeader = "X-Webhook-Token"
)

// AuthMiddleware requires a valid access token in the Authorization header
func AuthMiddleware(tokens accounts.TokenIssuer) gin.HandlerFunc {
	return authenticate(tokens, false)
}

// WebsocketAuthMiddleware also accepts the access token as the token query parameter,
// since browsers cannot set headers on websocket upgrades
func WebsocketAuthMiddleware(tokens accounts.TokenIssuer) gin.HandlerFunc {
	return authenticate(tokens, true)
}

func authenticate(tokens accounts.TokenIssuer, allowQuery bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := bearerToken(ctx.GetHeader("Authorization"))
		if raw == "" && allowQuery {
			raw = ctx.Query("token")
		}
		if raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication credentials were not provided"})
			return
		}

		claims, err := tokens.Parse(raw, accounts.TokenPurposeAccess)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: accounts.ErrInvalidToken.Error()})
			return
		}

		ctx.Set(contextUserID, claims.UserID)
		ctx.Set(contextIsStaff, claims.IsStaff)
		ctx.Set(contextEmail, claims.Email)
		ctx.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// RequireStaff rejects authenticated callers without the staff flag
func RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !currentIsStaff(ctx) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "staff access required"})
			return
		}
		ctx.Next()
	}
}

// WebhookTokenMiddleware compares the shared webhook token in constant time.
// An empty expected token disables the check.
func WebhookTokenMiddleware(expected string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if expected == "" {
			ctx.Next()
			return
		}
		given := ctx.GetHeader(WebhookTokenHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(expected)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid webhook token"})
			return
		}
		ctx.Next()
	}
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rps      rate.Limit
	burst    int
	idleTTL  time.Duration
}

// NewIPRateLimiter allows rps requests per second with the given burst for every client IP
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*ipLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  10 * time.Minute,
	}
}

// Allow reports whether ip may make another request now
func (l *IPRateLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(l.rps, l.burst), lastSeen: now}
		l.limiters[ip] = entry
		l.evictIdle(now)
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (l *IPRateLimiter) evictIdle(now time.Time) {
	for ip, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > l.idleTTL {
			delete(l.limiters, ip)
		}
	}
}

// Middleware answers 429 once a client IP exhausts its bucket
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.Allow(ctx.ClientIP()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Message: accounts.ErrRateLimited.Error()})
			return
		}
		ctx.Next()
	}
}

func currentUserID(ctx *gin.Context) string {
	return ctx.GetString(contextUserID)
}

func currentIsStaff(ctx *gin.Context) bool {
	return ctx.GetBool(contextIsStaff)
}

func clientInfo(ctx *gin.Context) accounts.ClientInfo {
	return accounts.ClientInfo{IP: ctx.ClientIP(), UserAgent: ctx.Request.UserAgent()}
}
