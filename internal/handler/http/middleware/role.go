package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/zenhr/zenhr-backend-go/internal/domain/auth"
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/handler/http/response"
)

// ManagerOnly requires the Admin or HR access role.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrManagerRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrManagerRequired)
			return
		}

		if !employee.AccessRole(roleStr).IsManager() {
			response.HandleError(w, auth.ErrManagerRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
