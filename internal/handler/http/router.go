package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/middleware"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Env            string
	AllowedOrigins []string
	// UploadDir is served read-only under /uploads.
	UploadDir string
}

func NewRouter(
	JWTService jwt.Service,
	opts RouterOptions,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	userHandler UserHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tnstc-leave"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.UploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir))))
	}

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth/google", func(r chi.Router) {
			r.Post("/", authHandler.GoogleLogin)
			r.Get("/login", authHandler.LoginWithGoogle)
			r.Get("/callback", authHandler.OAuthCallbackGoogle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/leave", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/all", leaveHandler.ListAll)
					r.Get("/summary", leaveHandler.Summary)
					r.Get("/monthly-stats", leaveHandler.MonthlyStats)
					r.Get("/relievers", leaveHandler.Relievers)
					r.Get("/report", reportHandler.GetLeaveReport)
					r.Patch("/{id}/status", leaveHandler.UpdateStatus)
				})

				r.With(middleware.RequireStaff).Post("/apply", leaveHandler.Apply)

				// Self or admin, checked by the service
				r.Get("/user/{userId}", leaveHandler.ListByUser)
				r.Get("/user/{userId}/filter", leaveHandler.FilterByUser)

				// Owner only, checked by the service
				r.Patch("/{id}/cancel", leaveHandler.Cancel)
			})

			r.Post("/upload/profile-photo", userHandler.UploadProfilePhoto)
			r.Patch("/user/{id}/profile-photo", userHandler.UpdateProfilePhoto)
		})
	})
	return r
}
