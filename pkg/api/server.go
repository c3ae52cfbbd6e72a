// Package api is the HTTP edge: a gin router exposing the concierge chat,
// course views, the SSE event stream, deployment control, and the runner
// registry. Handlers bind and validate, call a service, and translate
// errors; business rules live below this layer.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oikos-sh/brigade/pkg/auth"
	"github.com/oikos-sh/brigade/pkg/config"
	"github.com/oikos-sh/brigade/pkg/database"
	"github.com/oikos-sh/brigade/pkg/deploy"
	"github.com/oikos-sh/brigade/pkg/dispatch"
	"github.com/oikos-sh/brigade/pkg/events"
	"github.com/oikos-sh/brigade/pkg/services"
)

// Server wires the services into an HTTP surface.
type Server struct {
	cfg         *config.Config
	db          *database.Client
	courses     *services.CourseService
	concierge   *services.ConciergeService
	timeline    *services.TimelineService
	eventsSvc   *services.EventService
	runners     *services.RunnerService
	users       *services.UserService
	deployments *deploy.Service
	broker      *events.Broker
	dispatcher  *dispatch.Dispatcher
	tokens      *auth.TokenManager

	httpServer *http.Server
}

// Deps bundles the server's collaborators.
type Deps struct {
	DB          *database.Client
	Courses     *services.CourseService
	Concierge   *services.ConciergeService
	Timeline    *services.TimelineService
	Events      *services.EventService
	Runners     *services.RunnerService
	Users       *services.UserService
	Deployments *deploy.Service
	Broker      *events.Broker
	Dispatcher  *dispatch.Dispatcher
	Tokens      *auth.TokenManager
}

// NewServer creates the HTTP server.
func NewServer(cfg *config.Config, deps Deps) *Server {
	return &Server{
		cfg:         cfg,
		db:          deps.DB,
		courses:     deps.Courses,
		concierge:   deps.Concierge,
		timeline:    deps.Timeline,
		eventsSvc:   deps.Events,
		runners:     deps.Runners,
		users:       deps.Users,
		deployments: deps.Deployments,
		broker:      deps.Broker,
		dispatcher:  deps.Dispatcher,
		tokens:      deps.Tokens,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.handleHealth)

	api := r.Group("/api")

	jarvis := api.Group("/jarvis", userAuth(s.tokens))
	jarvis.POST("/chat", s.handleChat)
	jarvis.GET("/courses", s.handleListCourses)
	jarvis.GET("/courses/active", s.handleActiveCourses)
	jarvis.GET("/courses/:id", s.handleGetCourse)
	jarvis.POST("/courses/:id/cancel", s.handleCancelCourse)
	jarvis.GET("/courses/:id/events", s.handleCourseEvents)
	jarvis.GET("/courses/:id/timeline", s.handleTimeline)
	jarvis.GET("/courses/:id/stream", s.handleStream)
	jarvis.PUT("/credentials", s.handleStoreCredentials)

	admin := api.Group("", adminAuth(s.tokens, s.cfg.AdminToken))
	admin.POST("/deployments", s.handleCreateDeployment)
	admin.GET("/deployments", s.handleListDeployments)
	admin.GET("/deployments/:id", s.handleGetDeployment)
	admin.POST("/deployments/:id/rollback", s.handleRollbackDeployment)
	admin.POST("/instances/:id/deprovision", s.handleDeprovisionInstance)
	admin.POST("/runners/enroll-token", s.handleMintEnrollToken)
	admin.GET("/runners", s.handleListRunners)
	admin.POST("/runners/:id/rotate-secret", s.handleRotateSecret)
	admin.POST("/runners/:id/revoke", s.handleRevokeRunner)
	admin.POST("/users/token", s.handleMintUserToken)

	// Registration authenticates with the single-use enroll token in the body.
	api.POST("/runners/register", s.handleRegisterRunner)

	return r
}

// Start begins serving on the configured listen address. Blocks until the
// listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", s.cfg.ListenAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
