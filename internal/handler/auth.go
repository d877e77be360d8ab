package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/config"
	"github.com/minhvo/retail-suite/internal/middleware"
	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/session"
	"github.com/minhvo/retail-suite/internal/utils"
)

// AuthHandler bundles dependencies for login, registration and
// logout. The backend performs the actual credential check; this
// handler only caches its result in the session and issues the
// signed session cookie.
type AuthHandler struct {
	Cfg      config.Config
	API      *api.Client
	Sessions *session.Manager
}

func NewAuthHandler(cfg config.Config, client *api.Client, mgr *session.Manager) *AuthHandler {
	if client == nil || mgr == nil {
		panic("nil dependency passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, API: client, Sessions: mgr}
}

// ----- DTOs -----

type credentialsReq struct {
	Identifier string `json:"identifier"` // email or phone number
	Password   string `json:"password"`
}

// CustomerLogin handles POST /auth/login for the storefront.
func (h *AuthHandler) CustomerLogin(c echo.Context) error {
	return h.login(c, model.KindCustomer)
}

// StaffLogin handles POST /auth/login for the console.
func (h *AuthHandler) StaffLogin(c echo.Context) error {
	return h.login(c, model.KindStaff)
}

func (h *AuthHandler) login(c echo.Context, kind model.IdentityKind) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	req.Identifier = strings.TrimSpace(req.Identifier)
	if req.Identifier == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vui lòng nhập đầy đủ thông tin đăng nhập"})
	}

	ctx := c.Request().Context()
	creds := api.Credentials{Identifier: req.Identifier, Password: req.Password}

	var rec model.Record
	var err error
	if kind == model.KindCustomer {
		rec, err = h.API.LoginCustomer(ctx, creds)
	} else {
		rec, err = h.API.LoginStaff(ctx, creds)
	}
	if err != nil {
		return writeError(c, err)
	}

	sess := middleware.CurrentSession(c)
	if err := h.Sessions.Login(ctx, sess, model.Identity{Kind: kind, Record: rec}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "không thể khởi tạo phiên làm việc"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, sess.ID, h.Cfg.SessionTTL())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "không thể khởi tạo phiên làm việc"})
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if kind == model.KindCustomer {
		return c.JSON(http.StatusOK, echo.Map{"customer": rec})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": rec, "position": sess.Identity.Position()})
}

// CustomerRegister handles POST /auth/register on the storefront.
// The payload is forwarded as-is; the backend validates it and
// answers 422 with per-field details on bad input.
func (h *AuthHandler) CustomerRegister(c echo.Context) error {
	var rec model.Record
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	if err := h.API.RegisterCustomer(c.Request().Context(), rec); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "đăng ký thành công, vui lòng đăng nhập"})
}

// StaffRegister handles POST /auth/register on the console. Only
// admins may create staff accounts; the permission middleware on
// the route enforces that.
func (h *AuthHandler) StaffRegister(c echo.Context) error {
	var rec model.Record
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	if err := h.API.RegisterStaff(c.Request().Context(), rec); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "tạo tài khoản thành công"})
}

// Logout handles POST /auth/logout for both apps: drop the
// persisted session and expire the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.Sessions.Logout(c.Request().Context(), sess); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "không thể đăng xuất"})
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "đã đăng xuất", "redirect": "/login"})
}

// Me handles GET /auth/me and returns the identity bound to the
// session, so a reloaded page can restore its signed-in state.
func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if !sess.IsAuthenticated() {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "vui lòng đăng nhập", "redirect": "/login"})
	}
	resp := echo.Map{"kind": sess.Identity.Kind, "record": sess.Identity.Record}
	if sess.Identity.Kind == model.KindStaff {
		resp["position"] = sess.Identity.Position()
	}
	return c.JSON(http.StatusOK, resp)
}
