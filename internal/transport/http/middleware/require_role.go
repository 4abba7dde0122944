package middleware

import (
	"net/http"

	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/api"
)

// RequireAuth rejects requests that carry no verified actor.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireManager limits a route to actors who can approve and correct
// records on behalf of others.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if !user.CanManage() {
			api.Fail(w, http.StatusForbidden, "forbidden", "admin or hr role required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
