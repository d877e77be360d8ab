package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/cart"
	"github.com/minhvo/retail-suite/internal/config"
	"github.com/minhvo/retail-suite/internal/middleware"
	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/queue"
	"github.com/minhvo/retail-suite/internal/registry"
	"github.com/minhvo/retail-suite/internal/schema"
	"github.com/minhvo/retail-suite/internal/session"
	queue_publisher "github.com/minhvo/retail-suite/internal/service"
	"github.com/minhvo/retail-suite/internal/view"
)

// StorefrontHandler serves the customer-facing views: the product
// catalog, the cart and checkout, past orders and account editing.
// Catalog browsing is public; everything else sits behind
// RequireCustomer.
type StorefrontHandler struct {
	Cfg      config.Config
	API      *api.Client
	Sessions *session.Manager
}

func NewStorefrontHandler(cfg config.Config, client *api.Client, mgr *session.Manager) *StorefrontHandler {
	if client == nil || mgr == nil {
		panic("nil dependency passed to NewStorefrontHandler")
	}
	return &StorefrontHandler{Cfg: cfg, API: client, Sessions: mgr}
}

func sessionToken(sess *model.Session) string {
	if sess.IsAuthenticated() {
		return sess.Identity.Token
	}
	return ""
}

// Products handles GET /products: the public catalog listing with
// search and category filters.
func (h *StorefrontHandler) Products(c echo.Context) error {
	desc, _ := registry.Describe("products")
	v := view.NewUngatedListView(h.API, desc)
	f := api.Filters{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}
	if err := v.Load(c.Request().Context(), f, ""); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"table":      v.Table(),
		"records":    v.Records(),
		"categories": registry.ProductCategories,
	})
}

// Product handles GET /products/:id and returns one product
// record.
func (h *StorefrontHandler) Product(c echo.Context) error {
	desc, _ := registry.Describe("products")
	rec, err := h.API.Get(c.Request().Context(), desc, c.Param("id"), "")
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// ----- cart -----

type cartLineResp struct {
	ProductID string       `json:"productID"`
	Product   model.Record `json:"product"`
	Quantity  int          `json:"quantity"`
	PriceEach string       `json:"priceEach"`
	Subtotal  string       `json:"subtotal"`
}

func renderCart(lines []model.CartLine) echo.Map {
	out := make([]cartLineResp, 0, len(lines))
	for _, l := range lines {
		out = append(out, cartLineResp{
			ProductID: l.ProductKey(),
			Product:   l.Product,
			Quantity:  l.Quantity,
			PriceEach: schema.FormatCurrency(l.PriceEach()) + schema.CurrencySuffix,
			Subtotal:  schema.FormatCurrency(l.Subtotal()) + schema.CurrencySuffix,
		})
	}
	return echo.Map{
		"items": out,
		"total": schema.FormatCurrency(cart.Total(lines)) + schema.CurrencySuffix,
	}
}

// Cart handles GET /cart.
func (h *StorefrontHandler) Cart(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return c.JSON(http.StatusOK, renderCart(sess.Cart))
}

// CartAdd handles POST /cart/items. The product is fetched fresh
// so the cart carries current prices, not whatever the browser
// claims.
func (h *StorefrontHandler) CartAdd(c echo.Context) error {
	var req struct {
		ProductID string `json:"productID"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil || req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	sess := middleware.CurrentSession(c)
	desc, _ := registry.Describe("products")
	product, err := h.API.Get(c.Request().Context(), desc, req.ProductID, sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}
	sess.Cart = cart.Add(sess.Cart, product, req.Quantity)
	if err := h.Sessions.SaveCart(c.Request().Context(), sess); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "không thể lưu giỏ hàng"})
	}
	return c.JSON(http.StatusOK, renderCart(sess.Cart))
}

// CartSetQuantity handles PUT /cart/items/:id.
func (h *StorefrontHandler) CartSetQuantity(c echo.Context) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	sess := middleware.CurrentSession(c)
	if _, ok := cart.Find(sess.Cart, c.Param("id")); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "sản phẩm không có trong giỏ hàng"})
	}
	sess.Cart = cart.SetQuantity(sess.Cart, c.Param("id"), req.Quantity)
	if err := h.Sessions.SaveCart(c.Request().Context(), sess); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "không thể lưu giỏ hàng"})
	}
	return c.JSON(http.StatusOK, renderCart(sess.Cart))
}

// CartRemove handles DELETE /cart/items/:id.
func (h *StorefrontHandler) CartRemove(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	sess.Cart = cart.Remove(sess.Cart, c.Param("id"))
	if err := h.Sessions.SaveCart(c.Request().Context(), sess); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "không thể lưu giỏ hàng"})
	}
	return c.JSON(http.StatusOK, renderCart(sess.Cart))
}

// CheckoutOptions handles GET /checkout and returns the payment
// method choices plus the current cart summary.
func (h *StorefrontHandler) CheckoutOptions(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	resp := renderCart(sess.Cart)
	resp["paymentMethods"] = cart.PaymentMethods
	return c.JSON(http.StatusOK, resp)
}

// Checkout handles POST /checkout. On success the ordered
// quantities leave the cart; on failure the cart stays untouched
// so the customer can retry.
func (h *StorefrontHandler) Checkout(c echo.Context) error {
	var req struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	sess := middleware.CurrentSession(c)
	payload, err := cart.BuildCheckout(sess.Identity.Record["customerID"], sess.Cart, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, cart.ErrNoPaymentMethod) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "vui lòng chọn phương thức thanh toán"})
		}
		if errors.Is(err, cart.ErrEmptyOrder) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "giỏ hàng đang trống"})
		}
		return writeError(c, err)
	}

	ordered := cart.OrderedQuantities(sess.Cart)
	res, err := h.API.Checkout(c.Request().Context(), payload, sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}

	sess.Cart = cart.Reduce(sess.Cart, ordered)
	if err := h.Sessions.SaveCart(c.Request().Context(), sess); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "không thể lưu giỏ hàng"})
	}

	h.publishOrderPlaced(payload, res)

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "đặt hàng thành công",
		"orderID": res.OrderID,
		"cart":    renderCart(sess.Cart),
	})
}

// publishOrderPlaced emits the order event for downstream
// consumers. The order already exists on the backend, so a broker
// outage must not fail the request.
func (h *StorefrontHandler) publishOrderPlaced(payload api.CheckoutRequest, res api.CheckoutResult) {
	ev := queue.OrderPlacedEvent{
		OrderID:       res.OrderID,
		CustomerID:    model.Record{"customerID": payload.CustomerID}.String("customerID"),
		PaymentMethod: payload.PaymentMethod,
		PickupMethod:  payload.PickupMethod,
		PaymentStatus: payload.PaymentStatus,
		PlacedAt:      nowUTC(),
	}
	for _, it := range payload.Products {
		ev.Items = append(ev.Items, queue.OrderItem{
			ProductID: model.Record{"productID": it.ProductID}.String("productID"),
			Quantity:  it.Quantity,
			PriceEach: it.PriceEach,
		})
		ev.TotalAmount += float64(it.Quantity) * it.PriceEach
	}
	// fire and forget; the publisher logs its own failures
	go func() {
		_ = queue_publisher.PublishOrderPlaced(context.Background(), ev)
	}()
}

// ----- orders -----

// Orders handles GET /orders: the customer's order history.
func (h *StorefrontHandler) Orders(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	records, columns, err := h.API.CustomerOrders(c.Request().Context(), sess.Identity.Key(), sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": records, "columns": columns})
}

// OrderItems handles GET /orders/:id/items and returns the line
// items of one past order, fetched per order on demand.
func (h *StorefrontHandler) OrderItems(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	rel, _ := registry.RelationFor("orders")
	records, columns, err := h.API.Relations(c.Request().Context(), rel, c.Param("id"), sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": records, "columns": columns})
}

// ----- account -----

// Account handles GET /account.
func (h *StorefrontHandler) Account(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	desc, _ := registry.Describe("customers")
	form := view.NewEditForm(h.API, desc, "", false, sess.Identity.Record, nil, false)
	return c.JSON(http.StatusOK, echo.Map{"fields": form.Fields()})
}

// AccountUpdate handles PUT /account: the customer edits their own
// record through the same form machinery the console uses, then
// the session identity is refreshed with the saved values.
func (h *StorefrontHandler) AccountUpdate(c echo.Context) error {
	var values map[string]any
	if err := c.Bind(&values); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dữ liệu gửi lên không hợp lệ"})
	}
	sess := middleware.CurrentSession(c)
	desc, _ := registry.Describe("customers")
	form := view.NewEditForm(h.API, desc, "", false, sess.Identity.Record, nil, false)
	form.Apply(values)
	if err := form.Submit(c.Request().Context(), sessionToken(sess)); err != nil {
		return writeError(c, err)
	}

	id := model.Identity{Kind: model.KindCustomer, Record: form.Draft(), Token: sess.Identity.Token}
	if err := h.Sessions.Login(c.Request().Context(), sess, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "không thể cập nhật phiên làm việc"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cập nhật thành công", "customer": sess.Identity.Record})
}
