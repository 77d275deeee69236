package middleware

import (
	"net/http"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/registry"
	"github.com/breakdesk/breakdesk-backend-go/internal/handler/http/response"
)

// AdminOnly gates the management and analytics surfaces. The client
// that performed PIN verification passes the admin capability along as
// the X-Employee-ID header; this is authorization by convention for a
// cooperative client, not a security boundary.
func AdminOnly(registryService registry.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			employeeID := r.Header.Get("X-Employee-ID")
			if !registryService.IsAdmin(employeeID) {
				response.Forbidden(w, "Доступ запрещен")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
