package middleware

import (
	"net/http"

	"github.com/officetrack/attendance-tracker-go/internal/domain/session"
	"github.com/officetrack/attendance-tracker-go/internal/handler/http/response"
)

// RequirePermission rejects the request with 403 unless the current user's
// role grants the action.
func RequirePermission(sessionService session.SessionService, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessionService.HasPermission(r.Context(), action) {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
