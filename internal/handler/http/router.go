package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	AllowedOrigins []string
	AppName        string
	Environment    string
	LogLevel       slog.Level
}

func NewRouter(
	cfg RouterConfig,
	personnelHandler PersonnelHandler,
	userHandler UserHandler,
	movementHandler MovementHandler,
	attendanceHandler AttendanceHandler,
	authorizationHandler AuthorizationHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/personnel", func(r chi.Router) {
			r.Get("/", personnelHandler.List)
			r.Post("/", personnelHandler.Create)
			r.Get("/{id}", personnelHandler.Get)
			r.Put("/{id}", personnelHandler.Update)
			r.Delete("/{id}", personnelHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/movements", func(r chi.Router) {
			r.Get("/", movementHandler.List)
			r.Post("/", movementHandler.Create)
			r.Delete("/{id}", movementHandler.Deactivate)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Mark)
			r.Get("/{id}", attendanceHandler.Get)
			r.Delete("/{id}", attendanceHandler.Delete)
		})

		r.Route("/authorizations", func(r chi.Router) {
			r.Get("/", authorizationHandler.List)
			r.Post("/", authorizationHandler.Create)
			r.Get("/{id}", authorizationHandler.Get)
			r.Put("/{id}/approve", authorizationHandler.Approve)
			r.Put("/{id}/reject", authorizationHandler.Reject)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/attendance", reportHandler.Attendance)
			r.Get("/attendance/export/csv", reportHandler.ExportCSV)
			r.Get("/attendance/export/xlsx", reportHandler.ExportXLSX)
		})
	})

	return r
}
