package web

import (
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates the rweb server for app. opts.Address defaults to the
// configured listen address.
func NewServer(app *App, opts rweb.ServerOptions) *rweb.Server {
	if opts.Address == "" {
		opts.Address = app.Config.Addr
	}
	s := rweb.NewServer(opts)

	// Apply middleware
	s.Use(rweb.RequestInfo)                                                 // Logs request info
	s.Use(CorsMiddleware)                                                   // CORS headers and preflight
	s.Use(SessionMiddleware(app))                                           // Signed page-session cookie
	s.Use(SecurityHeadersMiddleware)                                        // Security headers
	s.Use(RateLimitMiddleware(app.Config.RateLimit, app.Config.TrustProxy)) // Caps submissions per visitor
	s.Use(LoggingMiddleware)                                                // Request logging

	setupRoutes(s, app)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, addr string) error {
	logger.Info("AirCheck form server starting", "address", addr)
	return s.Run()
}
