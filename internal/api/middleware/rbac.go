package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control. The role model is a single flat
// tier: membership is an exact string match, so a missing or empty role is
// always denied. The guarded handler never runs on denial, so no store access
// can happen.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"status":  http.StatusBadRequest,
					"message": "Admin Access Only",
				})
			}
			return next(c)
		}
	}
}
