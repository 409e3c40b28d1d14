package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riskdesk/riskdesk/pkg/usecase"
	"github.com/riskdesk/riskdesk/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	authUC AuthUseCase
}

type Options func(*Server)

// WithAuth sets the authentication use case implementation. When unset,
// the use case aggregate's default is applied.
func WithAuth(authUC AuthUseCase) Options {
	return func(s *Server) {
		s.authUC = authUC
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.authUC == nil {
		s.authUC = uc.Auth
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	// Auth endpoints (no auth middleware; login must be reachable)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", authLoginHandler(s.authUC))
		r.Post("/logout", authLogoutHandler(s.authUC))
		r.Get("/me", authMeHandler(s.authUC))
	})

	// API endpoints
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware(s.authUC))

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", listProjectsHandler(uc))
			r.Post("/", createProjectHandler(uc))
			r.Get("/{projectID}", getProjectHandler(uc))
			r.Patch("/{projectID}", updateProjectHandler(uc))
			r.Delete("/{projectID}", deleteProjectHandler(uc))
			r.Get("/{projectID}/risks", listProjectRisksHandler(uc))
		})

		r.Route("/risks", func(r chi.Router) {
			r.Get("/", listRisksHandler(uc))
			r.Post("/", createRiskHandler(uc))
			r.Get("/{riskID}", getRiskHandler(uc))
			r.Patch("/{riskID}", updateRiskHandler(uc))
			r.Delete("/{riskID}", deleteRiskHandler(uc))
			r.Post("/{riskID}/comments", addCommentHandler(uc))
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/distribution", distributionHandler(uc))
			r.Get("/top-risks", topRisksHandler(uc))
			r.Get("/by-category", byCategoryHandler(uc))
			r.Get("/by-type", byTypeHandler(uc))
			r.Get("/mitigation", mitigationProgressHandler(uc))
			r.Get("/trends", trendsHandler(uc))
			r.Get("/heatmap", heatmapHandler(uc))
			r.Get("/insights", insightsHandler(uc))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", listUsersHandler(uc))
			r.Get("/{userID}", getUserHandler(uc))
		})

		r.Get("/meta", metaHandler(uc))

		r.Get("/settings", getSettingsHandler(uc))
		r.Patch("/settings", updateSettingsHandler(uc))

		r.Get("/export", exportHandler(uc))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
