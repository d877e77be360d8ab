// Package registry is the static table of backend resources the
// suite works with: their collection endpoints, primary-key
// fields, display labels and companion lookups (select options,
// relation rules). Defined at startup, immutable thereafter.
package registry

import "errors"

// ErrUnknownResource is returned when a resource name has no
// registry entry.
var ErrUnknownResource = errors.New("registry: unknown resource")

// Descriptor describes one backend collection.
type Descriptor struct {
	Name       string // logical resource name, e.g. "customers"
	Endpoint   string // collection path on the backend, e.g. "/customers"
	PrimaryKey string // primary-key field of the resource's records
	Label      string // display label for tabs and headings
}

// resources maps logical names to descriptors. The console offers
// these as tabs; the storefront only touches products and orders.
var resources = map[string]Descriptor{
	"customers":   {Name: "customers", Endpoint: "/customers", PrimaryKey: "customerID", Label: "Khách hàng"},
	"products":    {Name: "products", Endpoint: "/products", PrimaryKey: "productID", Label: "Sản phẩm"},
	"orders":      {Name: "orders", Endpoint: "/orders", PrimaryKey: "orderID", Label: "Đơn hàng"},
	"payments":    {Name: "payments", Endpoint: "/payments", PrimaryKey: "paymentID", Label: "Thanh toán"},
	"staffs":      {Name: "staffs", Endpoint: "/staffs", PrimaryKey: "staffID", Label: "Nhân viên"},
	"vendors":     {Name: "vendors", Endpoint: "/vendors", PrimaryKey: "vendorID", Label: "Nhà cung cấp"},
	"inventories": {Name: "inventories", Endpoint: "/inventories", PrimaryKey: "inventoryID", Label: "Kho"},
	"supplies":    {Name: "supplies", Endpoint: "/supplies", PrimaryKey: "productID", Label: "Cung cấp"},
	"requests":    {Name: "requests", Endpoint: "/requests", PrimaryKey: "orderID", Label: "Chi tiết đơn"},
	"stores":      {Name: "stores", Endpoint: "/stores", PrimaryKey: "productID", Label: "Lưu kho"},
}

// Describe resolves a resource name.
func Describe(name string) (Descriptor, error) {
	d, ok := resources[name]
	if !ok {
		return Descriptor{}, ErrUnknownResource
	}
	return d, nil
}

// ConsoleResources lists the resources the console offers as tabs,
// in a fixed order.
func ConsoleResources() []string {
	return []string{"customers", "products", "orders", "payments", "staffs", "vendors", "inventories"}
}

// ProductCategories are the category filter choices for product
// listings.
var ProductCategories = []string{
	"CPU", "GPU", "RAM", "Mainboard", "Storage", "PSU", "Case", "Cooling",
	"Monitor", "Mouse", "Keyboard", "Headset", "Speaker", "Accessory",
}

// OrderStatuses are the status filter choices for order listings.
var OrderStatuses = []string{"Pending", "Confirmed", "Shipped", "Delivered", "Cancelled"}
