package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zenhr/zenhr-backend-go/internal/config"
	"github.com/zenhr/zenhr-backend-go/internal/fixtures"
	appHTTP "github.com/zenhr/zenhr-backend-go/internal/handler/http"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/database"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/jwt"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/oauth"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/snapshot"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/sse"
	"github.com/zenhr/zenhr-backend-go/internal/repository/memstore"
	announcementService "github.com/zenhr/zenhr-backend-go/internal/service/announcement"
	attendanceService "github.com/zenhr/zenhr-backend-go/internal/service/attendance"
	authService "github.com/zenhr/zenhr-backend-go/internal/service/auth"
	dashboardService "github.com/zenhr/zenhr-backend-go/internal/service/dashboard"
	employeeService "github.com/zenhr/zenhr-backend-go/internal/service/employee"
	leaveService "github.com/zenhr/zenhr-backend-go/internal/service/leave"
	onboardingService "github.com/zenhr/zenhr-backend-go/internal/service/onboarding"
	orgchartService "github.com/zenhr/zenhr-backend-go/internal/service/orgchart"
	payrollService "github.com/zenhr/zenhr-backend-go/internal/service/payroll"
	shiftService "github.com/zenhr/zenhr-backend-go/internal/service/shift"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize snapshot backend", "error", err)
		os.Exit(1)
	}

	store := state.NewStore()
	hub := sse.NewHub()
	saver := snapshot.NewSaver(store, backend, hub, logger, cfg.Snapshot.Debounce)

	// Hydrate from the backend; seed on a fresh backend. A load FAILURE also
	// falls back to the seed, but marks the saver degraded so the console can
	// warn that the server copy was not reachable.
	doc, err := snapshot.LoadDocument(ctx, backend)
	switch {
	case errors.Is(err, snapshot.ErrNoSnapshot):
		logger.Info("no snapshot found, seeding initial document", "mode", backend.Mode())
		doc, err = fixtures.SeedDocument()
		if err != nil {
			logger.Error("failed to build seed document", "error", err)
			os.Exit(1)
		}
	case err != nil:
		logger.Warn("snapshot load failed, starting from seed", "error", err)
		saver.MarkDegraded(err.Error())
		doc, err = fixtures.SeedDocument()
		if err != nil {
			logger.Error("failed to build seed document", "error", err)
			os.Exit(1)
		}
	}
	store.Hydrate(doc)

	employeeRepo := memstore.NewEmployeeRepository(store)
	attendanceRepo := memstore.NewAttendanceRepository(store)
	leaveRequestRepo := memstore.NewLeaveRequestRepository(store)
	leavePolicyRepo := memstore.NewLeavePolicyRepository(store)
	shiftRepo := memstore.NewShiftRepository(store)
	announcementRepo := memstore.NewAnnouncementRepository(store)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	authSvc := authService.NewService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewService(employeeRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewService(leaveRequestRepo, leavePolicyRepo, employeeRepo)
	shiftSvc := shiftService.NewService(shiftRepo, employeeRepo)
	announcementSvc := announcementService.NewService(announcementRepo)
	orgChartSvc := orgchartService.NewService(employeeRepo)
	onboardingSvc := onboardingService.NewService(employeeRepo)
	payrollSvc := payrollService.NewService(employeeRepo)
	dashboardSvc := dashboardService.NewService(employeeRepo, attendanceRepo, leaveRequestRepo, announcementRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService, googleService, cfg.App.FrontendURL),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Shift:        appHTTP.NewShiftHandler(shiftSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		OrgChart:     appHTTP.NewOrgChartHandler(orgChartSvc),
		Onboarding:   appHTTP.NewOnboardingHandler(onboardingSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Sync:         appHTTP.NewSyncHandler(saver, hub),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.FrontendURL, cfg.App.Env)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	saverDone := make(chan struct{})
	go func() {
		defer close(saverDone)
		saver.Run(ctx)
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("starting server", "port", cfg.App.Port, "mode", backend.Mode())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
	}

	// Wait for the saver's final flush before exiting.
	<-saverDone
}

// newBackend selects the snapshot backend. DATABASE_URL set means the
// document lives in Postgres; otherwise it goes to a local file, which is
// the silent default rather than an error.
func newBackend(ctx context.Context, cfg *config.Config) (snapshot.Backend, error) {
	if cfg.Snapshot.DatabaseURL == "" {
		return snapshot.NewFileBackend(cfg.Snapshot.FilePath)
	}
	db, err := database.NewPostgreSQLDB(cfg.Snapshot.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return snapshot.NewPostgresBackend(ctx, db)
}
