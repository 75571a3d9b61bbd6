package web

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"aqiform/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

const (
	// SessionCookie holds the signed token naming the visitor's page session
	SessionCookie = "aqiform_session"

	// sessionKey is the context key the session id is stored under
	sessionKey = "session_id"

	// sessionResumedKey is set when the session came from a valid cookie
	sessionResumedKey = "session_resumed"
)

// CorsMiddleware handles CORS headers for cross-origin requests
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers",
		"Content-Type, Accept, X-Requested-With, X-Body-Encoding, HX-Request, HX-Target, HX-Trigger, HX-Current-URL")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// SessionMiddleware resolves the visitor's page session from the signed
// cookie. A missing, expired or tampered cookie starts a new session.
// The cookie is reissued on every request so an active visitor keeps theirs.
func SessionMiddleware(app *App) rweb.Handler {
	return func(c rweb.Context) error {
		sessionID := ""
		if token, err := c.GetCookie(SessionCookie); err == nil && token != "" {
			if id, err := app.Signer.Verify(token); err == nil {
				sessionID = id
				c.Set(sessionResumedKey, true)
			} else {
				logger.Debug("Discarding invalid session cookie", "error", err.Error())
			}
		}
		if sessionID == "" {
			sessionID = models.NewSessionID()
		}

		token, err := app.Signer.Sign(sessionID)
		if err != nil {
			logger.LogErr(err, "failed to sign session cookie")
		} else if err = c.SetCookie(SessionCookie, token); err != nil {
			logger.LogErr(err, "failed to set session cookie")
		}

		c.Set(sessionKey, sessionID)
		return c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// htmx is the only script and comes from unpkg
	csp := []string{
		"default-src 'self'",
		"script-src 'self' https://unpkg.com",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// RateLimitMiddleware limits each visitor to requestsPerMinute form and API
// submissions (POST) in a fixed one minute window. Zero disables the limit.
// Visitors are told apart by their session cookie, falling back to the client
// address for requests without one. Forwarded headers are only believed when
// trustProxy is set.
func RateLimitMiddleware(requestsPerMinute int, trustProxy bool) rweb.Handler {
	type visitor struct {
		windowStart time.Time
		count       int
	}

	var mu sync.Mutex
	visitors := make(map[string]*visitor)

	return func(c rweb.Context) error {
		if requestsPerMinute <= 0 || c.Request().Method() != "POST" {
			return c.Next()
		}

		key := rateLimitKey(c, trustProxy)
		now := time.Now()

		mu.Lock()
		for k, v := range visitors {
			if now.Sub(v.windowStart) > time.Minute {
				delete(visitors, k)
			}
		}

		v, exists := visitors[key]
		if !exists {
			v = &visitor{windowStart: now}
			visitors[key] = v
		}
		v.count++
		over := v.count > requestsPerMinute
		mu.Unlock()

		if over {
			logger.Info("Rate limit exceeded", "visitor", key, "path", c.Request().Path())
			c.SetStatus(http.StatusTooManyRequests)
			return nil
		}
		return c.Next()
	}
}

// rateLimitKey names the bucket a request is counted in
func rateLimitKey(c rweb.Context, trustProxy bool) string {
	if resumed, _ := c.Get(sessionResumedKey).(bool); resumed {
		if id, _ := c.Get(sessionKey).(string); id != "" {
			return "session:" + id
		}
	}
	return "addr:" + clientIP(c, trustProxy)
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"ip", clientIP(c, false),
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start),
		"error", err,
	)

	return err
}

// clientIP is the peer address of the connection, or the first forwarded
// address when trustProxy is set and a proxy supplied one
func clientIP(c rweb.Context, trustProxy bool) string {
	if trustProxy {
		ip := c.Request().Header("X-Forwarded-For")
		if ip == "" {
			ip = c.Request().Header("X-Real-IP")
		}
		if i := strings.IndexByte(ip, ','); i >= 0 {
			ip = ip[:i]
		}
		if ip = strings.TrimSpace(ip); ip != "" {
			return ip
		}
	}

	conn := c.GetConn()
	if conn == nil || conn.RemoteAddr() == nil {
		return "unknown"
	}
	addr := conn.RemoteAddr().String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
