package leavehandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/auth"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/leave"
	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/api"
	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/middleware"
	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequireAuth).Get("/types", h.handleListTypes)
		r.With(middleware.RequireAuth).Get("/requests", h.handleListRequests)
		r.With(middleware.RequireAuth).Post("/requests", h.handleSubmitRequest)
		r.With(middleware.RequireAuth).Get("/requests/{requestID}", h.handleGetRequest)
		r.With(middleware.RequireManager).Post("/requests/{requestID}/approve", h.handleApproveRequest)
		r.With(middleware.RequireManager).Post("/requests/{requestID}/reject", h.handleRejectRequest)
		r.With(middleware.RequireAuth).Delete("/requests/{requestID}", h.handleDeleteRequest)
		r.With(middleware.RequireAuth).Get("/conflicts", h.handleCheckConflict)
		r.With(middleware.RequireManager).Get("/summary", h.handleSummary)
	})
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	api.Success(w, leave.Types(), middleware.GetRequestID(r.Context()))
}

type submitPayload struct {
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	LeaveType  string `json:"leaveType"`
	Reason     string `json:"reason"`
}

func (h *Handler) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	// Employees submit for themselves; managers may submit on behalf of
	// someone else.
	if user.Role == auth.RoleEmployee || payload.EmployeeID == "" {
		payload.EmployeeID = user.UserID
	}

	v := shared.NewValidator()
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if !startOK || !endOK {
		v.Fail(w, middleware.GetRequestID(r.Context()))
		return
	}

	created, err := h.Service.Submit(r.Context(), payload.EmployeeID, start, end, payload.LeaveType, payload.Reason)
	if err != nil {
		h.failFromError(w, r, err, "leave_submit_failed", "failed to submit leave request")
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	filter := leave.ListFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Status:     r.URL.Query().Get("status"),
		Type:       r.URL.Query().Get("leaveType"),
	}
	if user.Role == auth.RoleEmployee {
		filter.EmployeeID = user.UserID
	}

	page := shared.ParsePagination(r, 20, 100)
	filter.Limit = page.Limit
	filter.Offset = page.Offset

	result, err := h.Service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_list_failed", "failed to list leave requests", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(result.Total))
	api.Success(w, result.Requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	requestID := chi.URLParam(r, "requestID")
	req, err := h.Service.Get(r.Context(), requestID)
	if err != nil {
		h.failFromError(w, r, err, "leave_get_failed", "failed to load leave request")
		return
	}
	if user.Role == auth.RoleEmployee && req.EmployeeID != user.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

type decisionPayload struct {
	Notes string `json:"notes"`
}

func (h *Handler) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	// Approval notes are optional; an empty body is fine.
	var payload decisionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	requestID := chi.URLParam(r, "requestID")
	updated, err := h.Service.Approve(r.Context(), requestID, user.UserID, payload.Notes)
	if err != nil {
		h.failFromError(w, r, err, "leave_approve_failed", "failed to approve leave request")
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload decisionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	requestID := chi.URLParam(r, "requestID")
	updated, err := h.Service.Reject(r.Context(), requestID, user.UserID, payload.Notes)
	if err != nil {
		h.failFromError(w, r, err, "leave_reject_failed", "failed to reject leave request")
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	if user.Role != auth.RoleAdmin {
		api.Fail(w, http.StatusForbidden, "forbidden", "admin role required", middleware.GetRequestID(r.Context()))
		return
	}

	requestID := chi.URLParam(r, "requestID")
	if err := h.Service.Delete(r.Context(), requestID); err != nil {
		h.failFromError(w, r, err, "leave_delete_failed", "failed to delete leave request")
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCheckConflict(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	employeeID := r.URL.Query().Get("employeeId")
	if user.Role == auth.RoleEmployee || employeeID == "" {
		employeeID = user.UserID
	}

	v := shared.NewValidator()
	start, startOK := v.Date("startDate", r.URL.Query().Get("startDate"))
	end, endOK := v.Date("endDate", r.URL.Query().Get("endDate"))
	if !startOK || !endOK {
		v.Fail(w, middleware.GetRequestID(r.Context()))
		return
	}

	hasConflict, conflicts, err := h.Service.CheckConflict(r.Context(), employeeID, start, end)
	if err != nil {
		h.failFromError(w, r, err, "leave_conflict_failed", "failed to check conflicts")
		return
	}
	api.Success(w, map[string]any{"hasConflict": hasConflict, "conflicts": conflicts}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Summary(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_summary_failed", "failed to load leave summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failFromError(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, leave.ErrValidation):
		api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
	case errors.Is(err, leave.ErrOverlap):
		api.Fail(w, http.StatusConflict, "leave_overlap", "overlapping approved leave exists", requestID)
	case errors.Is(err, leave.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", "leave request was already decided", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, requestID)
	}
}
