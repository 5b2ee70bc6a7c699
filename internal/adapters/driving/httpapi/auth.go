package httpapi

import (
	"context"
	"net/http"
	"strings"
)

// adminContextKey carries the authenticated admin email.
type adminContextKey struct{}

// loginRequest is the admin login payload.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginResponse carries the session token.
type loginResponse struct {
	Token string `json:"token"`
}

// handleLogin authenticates an admin and issues a session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// requireAuth guards dashboard routes with a bearer session token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		email, err := s.auth.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey{}, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminFromContext returns the authenticated admin email, if any.
func adminFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(adminContextKey{}).(string)
	return email, ok
}
