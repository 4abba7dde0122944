package payrollhandler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/auth"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/employee"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/payroll"
	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/api"
	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/middleware"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.With(middleware.RequireAuth).Get("/payslips/{employeeID}", h.handleComputePayslip)
		r.With(middleware.RequireAuth).Get("/payslips/{employeeID}/available", h.handleAvailablePayslips)
	})
}

func (h *Handler) handleComputePayslip(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	employeeID := chi.URLParam(r, "employeeID")
	if user.Role == auth.RoleEmployee && user.UserID != employeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
		return
	}

	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "year and month query parameters are required", middleware.GetRequestID(r.Context()))
		return
	}

	slip, err := h.Service.ComputePayslip(r.Context(), employeeID, year, time.Month(month))
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		switch {
		case errors.Is(err, payroll.ErrInvalidPeriod):
			api.Fail(w, http.StatusBadRequest, "invalid_period", "invalid pay period", requestID)
		case errors.Is(err, employee.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		case errors.Is(err, employee.ErrMissingCompensation):
			api.Fail(w, http.StatusUnprocessableEntity, "missing_compensation", "employee has no base salary configured", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to compute payslip", requestID)
		}
		return
	}
	api.Success(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAvailablePayslips(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	employeeID := chi.URLParam(r, "employeeID")
	if user.Role == auth.RoleEmployee && user.UserID != employeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	months, err := h.Service.AvailablePayslips(r.Context(), employeeID, limit)
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "payslip_list_failed", "failed to list payslips", requestID)
		return
	}
	api.Success(w, months, middleware.GetRequestID(r.Context()))
}
