package http

import (
	"net/http"

	"github.com/moviereview/go-movie-review/internal/logger"
	"github.com/moviereview/go-movie-review/internal/utils"
	"github.com/moviereview/go-movie-review/models"
)

// requireAdmin gates a route group behind the admin role. It must be mounted
// after the auth middleware: the role is read from the request context, where
// auth stored it from the verified token's role claim.
//
// Requests without a role in context are rejected with 401; authenticated
// non-admin requests with 403.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		role, ok := utils.GetUserRoleFromContext(r.Context())
		if !ok {
			log.Error().Msg("no user role in request context")
			utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if role != models.RoleAdmin {
			log.Error().Str("role", string(role)).Msg("admin route denied")
			utils.WriteJSONError(w, ErrAdminRoleRequired.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
