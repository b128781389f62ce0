package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/config"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// NewLogger builds the ECS-formatted JSON logger shared by the request log
// and the process.
func NewLogger(app config.AppConfig) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(app.Env != "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLevel(app.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app.Name),
		slog.String("env", app.Env),
	)
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func NewRouter(
	logger *slog.Logger,
	corsOrigins []string,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	leaveHandler LeaveHandler,
	messageHandler MessageHandler,
	performanceHandler PerformanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/admin/login", authHandler.AdminLogin)
			r.Post("/employee/login", authHandler.EmployeeLogin)
		})

		r.Get("/announcements/latest", messageHandler.LatestAnnouncements)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/announcements", messageHandler.ListAnnouncements)
			r.Get("/help/faqs", messageHandler.GetHelp)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/dashboard", func(r chi.Router) {
					r.Get("/", dashboardHandler.GetAdminDashboard)
					r.Get("/time-tracking", dashboardHandler.GetTimeTracking)
				})

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.ListEmployees)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Get("/next-id", employeeHandler.NextEmployeeID)
					r.Get("/departments", employeeHandler.ListDepartments)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", employeeHandler.GetEmployee)
						r.Put("/", employeeHandler.UpdateEmployee)
						r.Delete("/", employeeHandler.DeleteEmployee)
						r.Post("/archive", employeeHandler.ArchiveEmployee)
						r.Post("/recover", employeeHandler.RecoverEmployee)
						r.Post("/reset-password", employeeHandler.ResetPassword)
						r.Post("/attendance/toggle", attendanceHandler.Toggle)
						r.Get("/payslip", payrollHandler.GetPayslip)
						r.Get("/payslip.pdf", payrollHandler.GetPayslipPDF)
						r.Get("/leave", leaveHandler.GetBalance)
						r.Get("/performance", performanceHandler.GetOverview)
					})
				})

				r.Route("/salary-grades", func(r chi.Router) {
					r.Get("/", masterHandler.ListGrades)
					r.Post("/", masterHandler.UpsertGrade)
					r.Get("/{grade}", masterHandler.GetGrade)
					r.Put("/{grade}", masterHandler.UpsertGrade)
					r.Delete("/{grade}", masterHandler.DeleteGrade)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.List)
					r.Post("/status", attendanceHandler.MarkStatus)
					r.Get("/export", attendanceHandler.Export)
					r.Get("/qr", attendanceHandler.QRCode)
					r.Get("/qr.png", attendanceHandler.QRCodeImage)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/register", payrollHandler.GetRegister)
					r.Get("/register/export", payrollHandler.ExportRegister)
				})

				r.Get("/board", messageHandler.GetBoard)
				r.Route("/messages", func(r chi.Router) {
					r.Get("/", messageHandler.ListMessages)
					r.Post("/{id}/status", messageHandler.UpdateMessageStatus)
				})
				r.Route("/faqs", func(r chi.Router) {
					r.Post("/", messageHandler.CreateFAQ)
					r.Delete("/{id}", messageHandler.DeactivateFAQ)
				})
				r.Post("/announcements", messageHandler.CreateAnnouncement)
				r.Delete("/announcements/{id}", messageHandler.DeactivateAnnouncement)

				r.Route("/performance", func(r chi.Router) {
					r.Post("/objectives", performanceHandler.CreateObjective)
					r.Put("/objectives/{id}", performanceHandler.UpdateObjective)
					r.Post("/summaries", performanceHandler.CreateSummary)
					r.Post("/summaries/{id}/activities", performanceHandler.AddActivity)
					r.Put("/activities/{id}", performanceHandler.SetActivityDone)
				})
			})

			// Employee self-service
			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.EmployeeOnly)

				r.Get("/", employeeHandler.GetMyProfile)
				r.Put("/contact", employeeHandler.UpdateMyContact)
				r.Put("/password", authHandler.ChangePassword)
				r.Get("/dashboard", dashboardHandler.GetEmployeeDashboard)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.GetMyAttendance)
					r.Get("/today", attendanceHandler.GetToday)
					r.Post("/scan", attendanceHandler.Scan)
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/check-out", attendanceHandler.CheckOut)
				})

				r.Get("/payslip", payrollHandler.GetMyPayslip)
				r.Get("/payslip.pdf", payrollHandler.GetMyPayslipPDF)
				r.Get("/leave", leaveHandler.GetMyBalance)
				r.Get("/performance", performanceHandler.GetMyOverview)
				r.Post("/messages", messageHandler.SendMessage)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	return r
}
