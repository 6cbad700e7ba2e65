package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/princinho/storefront/store"
	"github.com/princinho/storefront/utils"
	"go.uber.org/zap"
)

const (
	SessionCookie = "cartSession"
	SessionHeader = "X-Cart-Session"

	cartKey      = "cart"
	sessionIDKey = "cartSessionID"
)

type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Secure bool
}

// CartSession resolves the shopper's session from the cookie or header and
// puts that session's cart on the context. Requests without a valid token
// start a new session and receive its token in both the cookie and header.
// A valid token past half its lifetime is reissued, so an active shopper
// keeps the same cart.
func CartSession(registry *store.CartRegistry, cfg SessionConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		reissue := false
		if tokenStr := sessionToken(c); tokenStr != "" {
			claims, err := utils.ValidateSessionToken(tokenStr, cfg.Secret)
			if err != nil {
				logger.Debug("discarding cart session token", zap.Error(err))
			} else {
				sessionID = claims.SessionID
				reissue = pastHalfLife(claims, cfg.TTL)
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			reissue = true
			logger.Info("cart session started", zap.String("session_id", sessionID))
		} else if _, ok := registry.Lookup(sessionID); !ok {
			logger.Info("cart session resumed with an empty cart", zap.String("session_id", sessionID))
		}

		if reissue {
			if err := issueSessionToken(c, sessionID, cfg); err != nil {
				logger.Error("issue cart session token", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to start cart session"})
				return
			}
		}

		c.Set(sessionIDKey, sessionID)
		c.Set(cartKey, registry.Open(sessionID))
		c.Next()
	}
}

func pastHalfLife(claims *utils.SessionClaims, ttl time.Duration) bool {
	if claims.IssuedAt == nil {
		return true
	}
	return time.Since(claims.IssuedAt.Time) >= ttl/2
}

func issueSessionToken(c *gin.Context, sessionID string, cfg SessionConfig) error {
	token, err := utils.GenerateSessionToken(sessionID, cfg.Secret, cfg.TTL)
	if err != nil {
		return err
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.Header(SessionHeader, token)
	return nil
}

func sessionToken(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader(SessionHeader)); h != "" {
		return h
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// CartFromContext returns the cart placed by CartSession.
func CartFromContext(c *gin.Context) (*store.CartStore, bool) {
	v, ok := c.Get(cartKey)
	if !ok {
		return nil, false
	}
	cart, ok := v.(*store.CartStore)
	return cart, ok
}

func SessionIDFromContext(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
