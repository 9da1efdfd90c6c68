package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/zenhr/zenhr-backend-go/internal/handler/http/middleware"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Shift        ShiftHandler
	Announcement AnnouncementHandler
	OrgChart     OrgChartHandler
	Onboarding   OnboardingHandler
	Payroll      PayrollHandler
	Dashboard    DashboardHandler
	Sync         SyncHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, frontendURL string, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "zenhr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.Post("/{id}/documents", h.Employee.AddDocument)
				r.Delete("/{id}/documents/{documentId}", h.Employee.RemoveDocument)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Post("/break", h.Attendance.ToggleBreak)
				r.Get("/open", h.Attendance.OpenSession)
				r.Get("/my", h.Attendance.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", h.Attendance.ListAll)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/requests", h.Leave.CreateRequest)
				r.Get("/requests/my", h.Leave.GetMyRequests)
				r.Get("/balance", h.Leave.GetMyBalance)
				r.Get("/policies", h.Leave.ListPolicies)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/requests", h.Leave.ListRequests)
					r.Post("/requests/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/requests/{id}/reject", h.Leave.RejectRequest)
					r.Put("/policies", h.Leave.SavePolicy)
					r.Delete("/policies/{id}", h.Leave.DeletePolicy)
					r.Post("/policies/sync", h.Leave.SyncQuotas)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/my", h.Shift.ListMine)
				r.Get("/", h.Shift.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Put("/", h.Shift.Assign)
					r.Delete("/{id}", h.Shift.Delete)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Announcement.Create)
					r.Delete("/{id}", h.Announcement.Delete)
				})
			})

			r.Get("/org-chart", h.OrgChart.Get)

			r.Route("/onboarding", func(r chi.Router) {
				r.Post("/complete-profile", h.Onboarding.CompleteProfile)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/plan", h.Onboarding.GeneratePlan)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", h.Payroll.MyEntry)
				r.Get("/my/payslip", h.Payroll.DownloadPayslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", h.Payroll.Summary)
					r.Get("/{id}/payslip", h.Payroll.DownloadPayslip)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/dashboard", h.Dashboard.Stats)
			})

			r.Route("/sync", func(r chi.Router) {
				r.Get("/status", h.Sync.Status)
				r.Get("/events", h.Sync.Stream)
			})
		})
	})
	return r
}
