package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/punchdesk/attendance-backend-go/internal/config"
	"github.com/punchdesk/attendance-backend-go/internal/domain/employee"
	"github.com/punchdesk/attendance-backend-go/internal/handler/http/middleware"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	employeeRepo employee.EmployeeRepository,
	attendanceHandler AttendanceHandler,
	holidayHandler HolidayHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			adminOnly := middleware.AdminOnly(employeeRepo)

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/punch-in", attendanceHandler.PunchIn)
				r.Post("/punch-out", attendanceHandler.PunchOut)
				r.Get("/my", attendanceHandler.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(adminOnly)
					r.Get("/", attendanceHandler.List)

					r.Route("/{uid}/{date}", func(r chi.Router) {
						r.Get("/", attendanceHandler.Get)
						r.Put("/", attendanceHandler.Update)
						r.Delete("/", attendanceHandler.Delete)
						r.Post("/overtime", attendanceHandler.DecideOvertime)
					})
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(adminOnly)
					r.Put("/{date}", holidayHandler.Upsert)
					r.Delete("/{date}", holidayHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/my", employeeHandler.GetMyProfile)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(adminOnly)
					r.Get("/", employeeHandler.List)
				})
			})

			// Admin only
			r.Route("/reports", func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/monthly", reportHandler.GetMonthly)
				r.Get("/monthly/xlsx", reportHandler.DownloadMonthly)
			})
		})
	})

	return r
}
