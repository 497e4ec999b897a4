package http

import (
	"net/http"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/models"
)

// requireRoles returns a middleware that admits only principals whose role
// is listed in roles. It must be mounted after [Handler.auth], which puts
// the principal into the request context.
//
// Requests without a principal are rejected with 401; authenticated requests
// with a disallowed role with 403. Declaring the allowed roles per route
// keeps the authorization table readable in one place (see routes.go).
func (h *Handler) requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				log.Error().Msg("no principal in context on protected route")
				writeUnauthorized(w, "authentication required")
				return
			}

			if _, ok := allowed[principal.Role]; !ok {
				log.Warn().
					Str("user_id", principal.UserID).
					Str("role", string(principal.Role)).
					Str("uri", r.RequestURI).
					Msg("role not allowed for route")
				utils.WriteJSON(w, models.ErrorResponse{Error: "access denied", Code: "access_denied"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// adminRoles is the role set shared by every brokering route.
var adminRoles = []models.Role{models.RoleAdmin, models.RoleSuperadmin}

// anyRole admits every authenticated principal.
var anyRole = []models.Role{models.RoleCustomer, models.RoleShipper, models.RoleAdmin, models.RoleSuperadmin}
