package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/attendance"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/employee"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/leave"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/payroll"
	"github.com/KevinGeorge100/koco-payroll/internal/platform/config"
	"github.com/KevinGeorge100/koco-payroll/internal/platform/db"
	attendancehandler "github.com/KevinGeorge100/koco-payroll/internal/transport/http/handlers/attendance"
	employeehandler "github.com/KevinGeorge100/koco-payroll/internal/transport/http/handlers/employee"
	leavehandler "github.com/KevinGeorge100/koco-payroll/internal/transport/http/handlers/leave"
	payrollhandler "github.com/KevinGeorge100/koco-payroll/internal/transport/http/handlers/payroll"
	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *db.Pool
	Router http.Handler
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	app, err := New(ctx, cfg)
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer app.Close()

	slog.Info("payroll server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}

	employeeStore := employee.NewStore(pool)
	attendanceStore := attendance.NewStore(pool)
	leaveStore := leave.NewStore(pool)

	leaveService := leave.NewService(leaveStore)
	payrollService := payroll.NewService(
		payroll.NewStore(employeeStore, attendanceStore, leaveStore),
		payrollPolicyFromConfig(cfg.Payroll),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		employeehandler.NewHandler(employeeStore).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceStore).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService).RegisterRoutes(r)
	})

	return &App{Config: cfg, Pool: pool, Router: router}, nil
}

func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}

func payrollPolicyFromConfig(p config.PayrollPolicy) payroll.Policy {
	return payroll.Policy{
		HRARate:              p.HRARate,
		DARate:               p.DARate,
		MedicalAllowance:     p.MedicalAllowance,
		ConveyanceAllowance:  p.ConveyanceAllowance,
		PFRate:               p.PFRate,
		StateInsuranceRate:   p.StateInsuranceRate,
		ProfessionalTax:      p.ProfessionalTax,
		ProfessionalTaxFloor: p.ProfessionalTaxFloor,
		HalfDayWeight:        p.HalfDayWeight,
	}
}
