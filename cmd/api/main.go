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

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/service/leave"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/service/master"
	messageService "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/message"
	payrollService "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/payroll"
	performanceService "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/performance"
	"github.com/cmlabs-hris/hris-timekeeping-go/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := appHTTP.NewLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk, err := clock.New(cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("error loading timezone: %w", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		return err
	}

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	gradeRepo := postgresql.NewGradeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	messageRepo := postgresql.NewMessageRepository(db)
	faqRepo := postgresql.NewFAQRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err := restoreRevokedTokens(ctx, JWTRepository, JWTService); err != nil {
		return err
	}

	authService := serviceAuth.NewAuthService(userRepo, JWTService, JWTRepository)
	if cfg.Seed.AdminUsername != "" {
		created, err := authService.EnsureAdmin(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword)
		if err != nil {
			return fmt.Errorf("error bootstrapping admin: %w", err)
		}
		if created {
			slog.Info("bootstrap admin account created", "username", cfg.Seed.AdminUsername)
		}
	}

	leaveService := leave.NewLeaveService(employeeRepo, attendanceRepo, leave.NewQuotaCalculator(), clk)
	masterService := master.NewMasterService(gradeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, employeeRepo, clk, cfg.QR)
	employeeSvc := employeeService.NewEmployeeService(tx, employeeRepo, userRepo, attendanceRepo, clk)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, attendanceRepo, payrollService.NewRateResolver(gradeRepo), clk, cfg.App.Name)
	messageSvc := messageService.NewMessageService(messageRepo, faqRepo, announcementRepo, employeeRepo, clk)
	performanceSvc := performanceService.NewPerformanceService(tx, performanceRepo, employeeRepo, clk)
	dashboardSvc := dashboardService.NewDashboardService(
		dashboardRepo,
		employeeRepo,
		attendanceRepo,
		messageRepo,
		announcementRepo,
		performanceRepo,
		leaveService,
		clk,
	)

	router := appHTTP.NewRouter(
		logger,
		cfg.App.CORSOrigins,
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewMasterHandler(masterService),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewLeaveHandler(leaveService),
		appHTTP.NewMessageHandler(messageSvc),
		appHTTP.NewPerformanceHandler(performanceSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", srv.Addr, "timezone", cfg.App.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(ctx context.Context, db *database.DB) error {
	runner, err := migrations.NewRunner(db)
	if err != nil {
		return fmt.Errorf("error preparing migrations: %w", err)
	}
	defer runner.Close()

	results, err := runner.Up(ctx)
	if err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}

// restoreRevokedTokens reloads logouts that outlived the previous process.
func restoreRevokedTokens(ctx context.Context, repo postgresql.JWTRepository, svc jwt.Service) error {
	purged, err := repo.PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("error purging revoked tokens: %w", err)
	}

	revoked, err := repo.ListActiveRevoked(ctx)
	if err != nil {
		return fmt.Errorf("error loading revoked tokens: %w", err)
	}
	for hash, exp := range revoked {
		svc.RestoreRevoked(hash, exp)
	}
	slog.Debug("revoked tokens restored", "active", len(revoked), "purged", purged)
	return nil
}
