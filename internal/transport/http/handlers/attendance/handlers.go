package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/attendance"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/auth"
	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/api"
	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/middleware"
	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/shared"
)

type Handler struct {
	Store *attendance.Store
}

const maxBulkImportRecords = 1000

func NewHandler(store *attendance.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.With(middleware.RequireManager).Post("/records", h.handleCreateRecord)
		r.With(middleware.RequireManager).Patch("/records/{recordID}/status", h.handleUpdateStatus)
		r.With(middleware.RequireManager).Post("/records/bulk", h.handleBulkImport)
		r.With(middleware.RequireAuth).Get("/{employeeID}/records", h.handleListRecords)
		r.With(middleware.RequireAuth).Get("/{employeeID}/summary", h.handleMonthSummary)
	})
}

type recordPayload struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
}

func (p recordPayload) toRecord(v *shared.Validator) attendance.Record {
	v.Required("employeeId", p.EmployeeID, "employee id required")
	v.Enum("status", p.Status, attendance.Statuses(), "unknown attendance status")
	v.Required("status", p.Status, "status required")

	record := attendance.Record{EmployeeID: p.EmployeeID, Status: p.Status}
	if date, ok := v.Date("date", p.Date); ok {
		record.Date = date
	}
	if p.CheckIn != "" {
		if t, err := time.Parse(time.RFC3339, p.CheckIn); err == nil {
			record.CheckIn = &t
		} else {
			v.Add("checkIn", "invalid timestamp")
		}
	}
	if p.CheckOut != "" {
		if t, err := time.Parse(time.RFC3339, p.CheckOut); err == nil {
			record.CheckOut = &t
		} else {
			v.Add("checkOut", "invalid timestamp")
		}
	}
	return record
}

func (h *Handler) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	record := payload.toRecord(v)
	if !v.Ok() {
		v.Fail(w, middleware.GetRequestID(r.Context()))
		return
	}

	created, err := h.Store.Create(r.Context(), record)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicate) {
			api.Fail(w, http.StatusConflict, "duplicate_record", "attendance already recorded for this date", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "attendance_create_failed", "failed to create attendance record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

type statusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if !attendance.ValidStatus(payload.Status) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "unknown attendance status", middleware.GetRequestID(r.Context()))
		return
	}

	recordID := chi.URLParam(r, "recordID")
	updated, err := h.Store.UpdateStatus(r.Context(), recordID, payload.Status)
	if err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "attendance record not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "attendance_update_failed", "failed to update attendance record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

type bulkImportPayload struct {
	Records []recordPayload `json:"records"`
}

func (h *Handler) handleBulkImport(w http.ResponseWriter, r *http.Request) {
	var payload bulkImportPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if len(payload.Records) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "at least one record is required", middleware.GetRequestID(r.Context()))
		return
	}
	if len(payload.Records) > maxBulkImportRecords {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "too many records", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	records := make([]attendance.Record, 0, len(payload.Records))
	for _, item := range payload.Records {
		records = append(records, item.toRecord(v))
	}
	if !v.Ok() {
		v.Fail(w, middleware.GetRequestID(r.Context()))
		return
	}

	inserted, err := h.Store.BulkImport(r.Context(), records)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_import_failed", "failed to import attendance records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]int{"inserted": inserted, "skipped": len(records) - inserted}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := h.monthScope(w, r)
	if !ok {
		return
	}

	records, err := h.Store.ForMonth(r.Context(), employeeID, year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMonthSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := h.monthScope(w, r)
	if !ok {
		return
	}

	records, err := h.Store.ForMonth(r.Context(), employeeID, year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_summary_failed", "failed to load attendance summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, attendance.Summarize(year, month, records), middleware.GetRequestID(r.Context()))
}

// monthScope resolves the employee and month from the request and enforces
// that employees only read their own records.
func (h *Handler) monthScope(w http.ResponseWriter, r *http.Request) (string, int, time.Month, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return "", 0, 0, false
	}

	employeeID := chi.URLParam(r, "employeeID")
	if user.Role == auth.RoleEmployee && user.UserID != employeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
		return "", 0, 0, false
	}

	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	monthNum, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil || monthNum < 1 || monthNum > 12 {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "year and month query parameters are required", middleware.GetRequestID(r.Context()))
		return "", 0, 0, false
	}

	return employeeID, year, time.Month(monthNum), true
}
