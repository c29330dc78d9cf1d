package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/memberbar/internal/adminbar"
	"github.com/danmuck/memberbar/internal/auth"
	"github.com/danmuck/memberbar/internal/config"
	"github.com/danmuck/memberbar/internal/logging"
	"github.com/danmuck/memberbar/internal/observability"
	"github.com/danmuck/memberbar/internal/site"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server exposes toolbar previews over HTTP.
type Server struct {
	cfg       config.ServerConfig
	site      *site.Site
	directory *site.Directory
	composer  *adminbar.Composer
	validator auth.Validator
	router    *gin.Engine
	appeared  time.Time
}

// New builds the router. When cfg.AdminToken is empty the preview routes
// are open.
func New(cfg config.Config, composer *adminbar.Composer) *Server {
	s := &Server{
		cfg:       cfg.Server,
		site:      cfg.Site,
		directory: cfg.Directory,
		composer:  composer,
		appeared:  time.Now(),
	}
	if cfg.Server.AdminToken != "" {
		s.validator = auth.StaticToken{Token: cfg.Server.AdminToken}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestID())
	r.Use(observability.RequestLogger(observability.NewLogger("memberbar")))
	r.Use(observability.RequestMetricsMiddleware())
	if len(cfg.Server.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CorsOrigins,
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}))
	}
	s.router = r
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logging.Infof("server.Run listening addr=%q", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logging.Infof("server.Run shutting down addr=%q", s.cfg.Addr)
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.validator == nil {
			c.Next()
			return
		}
		token, _ := auth.BearerToken(c.GetHeader("Authorization"))
		if err := s.validator.Validate(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}
