package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/auth"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, userID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func actorEcho() (http.Handler, *auth.Actor, *bool) {
	var got auth.Actor
	var found bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return handler, &got, &found
}

func TestAuthAttachesActor(t *testing.T) {
	handler, actor, found := actorEcho()
	wrapped := Auth(testSecret)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", auth.RoleHR))
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	if !*found {
		t.Fatal("expected actor in context")
	}
	if actor.UserID != "user-1" || actor.Role != auth.RoleHR {
		t.Errorf("actor = %+v, want user-1/hr", *actor)
	}
}

func TestAuthIgnoresInvalidToken(t *testing.T) {
	handler, _, found := actorEcho()
	wrapped := Auth(testSecret)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "user-1", auth.RoleHR))
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	if *found {
		t.Fatal("token signed with wrong secret must not attach an actor")
	}
}

func TestAuthIgnoresMissingHeader(t *testing.T) {
	handler, _, found := actorEcho()
	wrapped := Auth(testSecret)(handler)

	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if *found {
		t.Fatal("anonymous request must not attach an actor")
	}
}

func TestRequireManager(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := Auth(testSecret)(RequireManager(next))

	cases := []struct {
		name   string
		role   string
		status int
	}{
		{"admin allowed", auth.RoleAdmin, http.StatusOK},
		{"hr allowed", auth.RoleHR, http.StatusOK},
		{"employee forbidden", auth.RoleEmployee, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", tc.role))
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
		})
	}

	t.Run("anonymous unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})
}
