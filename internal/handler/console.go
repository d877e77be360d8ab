package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/config"
	"github.com/minhvo/retail-suite/internal/middleware"
	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/permission"
	"github.com/minhvo/retail-suite/internal/registry"
	"github.com/minhvo/retail-suite/internal/session"
	"github.com/minhvo/retail-suite/internal/view"
)

// ConsoleHandler serves the back-office resource screens. One
// generic set of endpoints covers every registered resource; the
// resource name in the path selects the descriptor and the staff
// position from the session drives the permission gate.
type ConsoleHandler struct {
	Cfg      config.Config
	API      *api.Client
	Sessions *session.Manager
}

func NewConsoleHandler(cfg config.Config, client *api.Client, mgr *session.Manager) *ConsoleHandler {
	if client == nil || mgr == nil {
		panic("nil dependency passed to NewConsoleHandler")
	}
	return &ConsoleHandler{Cfg: cfg, API: client, Sessions: mgr}
}

func position(c echo.Context) string {
	return middleware.CurrentSession(c).Identity.Position()
}

// Tabs handles GET /resources and lists the resource tabs the
// signed-in position may at least view.
func (h *ConsoleHandler) Tabs(c echo.Context) error {
	pos := position(c)
	type tab struct {
		Name    string              `json:"name"`
		Label   string              `json:"label"`
		Actions []permission.Action `json:"actions"`
	}
	var tabs []tab
	for _, name := range registry.ConsoleResources() {
		if !permission.Can(pos, name, permission.ActionView) {
			continue
		}
		desc, _ := registry.Describe(name)
		tabs = append(tabs, tab{Name: name, Label: desc.Label, Actions: permission.ActionsFor(pos, name)})
	}
	return c.JSON(http.StatusOK, echo.Map{"tabs": tabs, "position": pos})
}

// List handles GET /resources/:resource.
func (h *ConsoleHandler) List(c echo.Context) error {
	desc, err := registry.Describe(c.Param("resource"))
	if err != nil {
		return writeError(c, err)
	}
	sess := middleware.CurrentSession(c)
	v := view.NewListView(h.API, desc, position(c))
	f := api.Filters{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
	}
	if err := v.Load(c.Request().Context(), f, sessionToken(sess)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v.Table())
}

// CreateForm handles GET /resources/:resource/new and returns the
// blank creation fields with their widgets and defaults.
func (h *ConsoleHandler) CreateForm(c echo.Context) error {
	desc, err := registry.Describe(c.Param("resource"))
	if err != nil {
		return writeError(c, err)
	}
	form := view.NewCreateForm(h.API, desc, position(c), true, nil)
	return c.JSON(http.StatusOK, echo.Map{"fields": form.Fields()})
}

// Create handles POST /resources/:resource.
func (h *ConsoleHandler) Create(c echo.Context) error {
	desc, err := registry.Describe(c.Param("resource"))
	if err != nil {
		return writeError(c, err)
	}
	var values map[string]any
	if err := c.Bind(&values); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	sess := middleware.CurrentSession(c)
	form := view.NewCreateForm(h.API, desc, position(c), true, nil)
	form.Apply(values)
	if err := form.Submit(c.Request().Context(), sessionToken(sess)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "tạo mới thành công"})
}

// EditForm handles GET /resources/:resource/:id and returns the
// record's editable fields.
func (h *ConsoleHandler) EditForm(c echo.Context) error {
	desc, err := registry.Describe(c.Param("resource"))
	if err != nil {
		return writeError(c, err)
	}
	sess := middleware.CurrentSession(c)
	rec, err := h.API.Get(c.Request().Context(), desc, c.Param("id"), sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}
	form := view.NewEditForm(h.API, desc, position(c), true, rec, nil, false)
	return c.JSON(http.StatusOK, echo.Map{"fields": form.Fields()})
}

// Update handles PUT /resources/:resource/:id.
func (h *ConsoleHandler) Update(c echo.Context) error {
	desc, err := registry.Describe(c.Param("resource"))
	if err != nil {
		return writeError(c, err)
	}
	var values map[string]any
	if err := c.Bind(&values); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	sess := middleware.CurrentSession(c)
	rec, err := h.API.Get(c.Request().Context(), desc, c.Param("id"), sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}
	form := view.NewEditForm(h.API, desc, position(c), true, rec, nil, false)
	form.Apply(values)
	if err := form.Submit(c.Request().Context(), sessionToken(sess)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cập nhật thành công"})
}

// Delete handles DELETE /resources/:resource/:id.
func (h *ConsoleHandler) Delete(c echo.Context) error {
	desc, err := registry.Describe(c.Param("resource"))
	if err != nil {
		return writeError(c, err)
	}
	sess := middleware.CurrentSession(c)
	v := view.NewListView(h.API, desc, position(c))
	if err := v.Delete(c.Request().Context(), c.Param("id"), sessionToken(sess)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "đã xoá"})
}

// BulkDelete handles POST /resources/:resource/delete with a list
// of primary keys. Deletion is best-effort per key; the client
// reloads the list afterwards to see what remains.
func (h *ConsoleHandler) BulkDelete(c echo.Context) error {
	desc, err := registry.Describe(c.Param("resource"))
	if err != nil {
		return writeError(c, err)
	}
	var req struct {
		Keys []string `json:"keys"`
	}
	if err := c.Bind(&req); err != nil || len(req.Keys) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "chưa chọn bản ghi nào"})
	}
	sess := middleware.CurrentSession(c)
	v := view.NewListView(h.API, desc, position(c))
	for _, k := range req.Keys {
		v.Select(k, true)
	}
	if err := v.DeleteSelected(c.Request().Context(), sessionToken(sess)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "đã xoá các bản ghi đã chọn"})
}

// Relations handles GET /resources/:resource/:id/relations: the
// drill-down into a parent record's dependent rows. When the
// parent has no relation rule, or no children exist, the response
// carries the parent's edit form instead.
func (h *ConsoleHandler) Relations(c echo.Context) error {
	desc, err := registry.Describe(c.Param("resource"))
	if err != nil {
		return writeError(c, err)
	}
	sess := middleware.CurrentSession(c)
	parent, err := h.API.Get(c.Request().Context(), desc, c.Param("id"), sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}
	res, err := view.LoadRelations(c.Request().Context(), h.API, desc, position(c), true, parent, nil, sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}
	if res.Fallback != nil {
		return c.JSON(http.StatusOK, echo.Map{"form": res.Fallback.Fields()})
	}
	return c.JSON(http.StatusOK, echo.Map{"table": res.Table})
}

// UpdateChild handles PUT /children/:resource/:id: editing one row
// of a drill-down table against the child resource's own endpoint.
// Child rows have no single-row fetch, the backend keys them per
// parent, so the row's current values arrive in the request body.
// The path key overrides whatever key the body claims.
func (h *ConsoleHandler) UpdateChild(c echo.Context) error {
	var values map[string]any
	if err := c.Bind(&values); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	childDesc, err := registry.Describe(c.Param("resource"))
	if err != nil {
		return writeError(c, err)
	}
	rec := make(model.Record, len(values)+1)
	for k, v := range values {
		rec[k] = v
	}
	rec[childDesc.PrimaryKey] = c.Param("id")
	form, err := view.EditChild(h.API, childDesc.Name, position(c), true, rec)
	if err != nil {
		return writeError(c, err)
	}
	sess := middleware.CurrentSession(c)
	if err := form.Submit(c.Request().Context(), sessionToken(sess)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cập nhật thành công"})
}

// Options handles GET /options/:field and returns the select
// choices for a field, so forms render dropdowns without
// hardcoding the lists client-side.
func (h *ConsoleHandler) Options(c echo.Context) error {
	opts := registry.SelectOptions(c.Param("field"))
	if opts == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "trường này không có danh sách lựa chọn"})
	}
	return c.JSON(http.StatusOK, echo.Map{"options": opts})
}
