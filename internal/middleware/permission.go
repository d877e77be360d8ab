package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/permission"
)

// RequirePermission returns middleware enforcing that the staff
// session's position may perform action on resource. It assumes
// SessionAuth and RequireStaff ran earlier in the chain. This is
// the UI-side gate only; the backend enforces authorization
// independently.
func RequirePermission(resource string, action permission.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if !permission.Can(sess.Identity.Position(), resource, action) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "bạn không có quyền truy cập mục này"})
			}
			return next(c)
		}
	}
}
