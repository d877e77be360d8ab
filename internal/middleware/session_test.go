package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/permission"
	"github.com/minhvo/retail-suite/internal/session"
	"github.com/minhvo/retail-suite/internal/utils"
)

const testSecret = "test-secret"

func echoRequest(t *testing.T, mw echo.MiddlewareFunc, cookie string) (*model.Session, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *model.Session
	h := mw(func(c echo.Context) error {
		got = CurrentSession(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return got, rec
}

func TestSessionAuthWithoutCookie(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore())
	sess, _ := echoRequest(t, SessionAuth(testSecret, mgr), "")
	require.NotNil(t, sess)
	assert.False(t, sess.IsAuthenticated())
	assert.NotEmpty(t, sess.ID, "even anonymous requests get a session ID")
}

func TestSessionAuthRestoresIdentity(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore())
	seed := &model.Session{ID: mgr.NewID()}
	id := model.Identity{Kind: model.KindStaff, Record: model.Record{"staffID": "2", "position": "Manager"}}
	require.NoError(t, mgr.Login(context.Background(), seed, id))

	tok, err := utils.NewSessionToken(testSecret, seed.ID, time.Minute)
	require.NoError(t, err)

	sess, _ := echoRequest(t, SessionAuth(testSecret, mgr), tok.Token)
	require.True(t, sess.IsAuthenticated())
	assert.Equal(t, "Manager", sess.Identity.Position())
	assert.Equal(t, seed.ID, sess.ID)
}

func TestSessionAuthRejectsForgedToken(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore())
	tok, err := utils.NewSessionToken("other-secret", "sid", time.Minute)
	require.NoError(t, err)

	sess, _ := echoRequest(t, SessionAuth(testSecret, mgr), tok.Token)
	require.NotNil(t, sess)
	assert.False(t, sess.IsAuthenticated(), "a token signed with the wrong secret starts a fresh session")
	assert.NotEqual(t, "sid", sess.ID)
}

func TestSessionAuthExpiredToken(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore())
	tok, err := utils.NewSessionToken(testSecret, "sid", -time.Minute)
	require.NoError(t, err)

	sess, _ := echoRequest(t, SessionAuth(testSecret, mgr), tok.Token)
	assert.False(t, sess.IsAuthenticated())
}

func guardStatus(t *testing.T, guard echo.MiddlewareFunc, sess *model.Session) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(sessionContextKey, sess)

	h := guard(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	return rec.Code
}

func TestRequireCustomer(t *testing.T) {
	anon := &model.Session{ID: "s"}
	assert.Equal(t, http.StatusUnauthorized, guardStatus(t, RequireCustomer, anon))

	staff := &model.Session{ID: "s", Identity: &model.Identity{Kind: model.KindStaff, Record: model.Record{}}}
	assert.Equal(t, http.StatusUnauthorized, guardStatus(t, RequireCustomer, staff))

	cust := &model.Session{ID: "s", Identity: &model.Identity{Kind: model.KindCustomer, Record: model.Record{}}}
	assert.Equal(t, http.StatusOK, guardStatus(t, RequireCustomer, cust))
}

func TestRequireStaff(t *testing.T) {
	cust := &model.Session{ID: "s", Identity: &model.Identity{Kind: model.KindCustomer, Record: model.Record{}}}
	assert.Equal(t, http.StatusUnauthorized, guardStatus(t, RequireStaff, cust))

	staff := &model.Session{ID: "s", Identity: &model.Identity{Kind: model.KindStaff, Record: model.Record{}}}
	assert.Equal(t, http.StatusOK, guardStatus(t, RequireStaff, staff))
}

func TestRequirePermission(t *testing.T) {
	sales := &model.Session{ID: "s", Identity: &model.Identity{Kind: model.KindStaff, Record: model.Record{"position": "Sales"}}}
	admin := &model.Session{ID: "s", Identity: &model.Identity{Kind: model.KindStaff, Record: model.Record{"position": "Admin"}}}

	guard := RequirePermission("staffs", permission.ActionCreate)
	assert.Equal(t, http.StatusForbidden, guardStatus(t, guard, sales))
	assert.Equal(t, http.StatusOK, guardStatus(t, guard, admin))
}
