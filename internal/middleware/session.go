package middleware // reusable HTTP middleware shared by both applications

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/session"
)

// sessionContextKey is where the restored session lives in the
// Echo context.
const sessionContextKey = "session"

// CookieName is the session cookie both apps set on login.
const CookieName = "session"

// SessionAuth returns middleware that resolves the caller's
// session. The browser carries a signed JWT (cookie or bearer
// header) whose "sid" claim keys the persisted session; the
// middleware restores it and injects it into the context. Requests
// without a valid token still pass through with an empty session,
// so public routes can share the chain; route guards that need an
// identity sit behind RequireCustomer/RequireStaff.
func SessionAuth(secret string, mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFrom(c)
			if raw == "" {
				c.Set(sessionContextKey, &model.Session{ID: mgr.NewID()})
				return next(c)
			}
			sid, ok := parseSID(raw, secret)
			if !ok {
				// invalid or expired cookie: start over unauthenticated
				c.Set(sessionContextKey, &model.Session{ID: mgr.NewID()})
				return next(c)
			}
			sess, err := mgr.Restore(c.Request().Context(), sid)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session store unavailable"})
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// tokenFrom reads the session token from the cookie or, for API
// clients, the Authorization header.
func tokenFrom(c echo.Context) string {
	if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// parseSID validates the signed token and extracts the session ID.
func parseSID(raw, secret string) (string, bool) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	return sid, ok && sid != ""
}

// CurrentSession returns the session injected by SessionAuth. It
// is never nil behind that middleware.
func CurrentSession(c echo.Context) *model.Session {
	if s, ok := c.Get(sessionContextKey).(*model.Session); ok {
		return s
	}
	return &model.Session{}
}

// RequireCustomer aborts with 401 unless the session carries a
// customer identity. The response includes the login route so the
// browser can redirect.
func RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := CurrentSession(c)
		if !sess.IsAuthenticated() || sess.Identity.Kind != model.KindCustomer {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "vui lòng đăng nhập", "redirect": "/login"})
		}
		return next(c)
	}
}

// RequireStaff aborts with 401 unless the session carries a staff
// identity.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := CurrentSession(c)
		if !sess.IsAuthenticated() || sess.Identity.Kind != model.KindStaff {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "vui lòng đăng nhập", "redirect": "/login"})
		}
		return next(c)
	}
}
