package registry

import (
	"fmt"

	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/schema"
)

// RelationColumn is one explicit column of a drill-down table.
type RelationColumn struct {
	Key      string
	Label    string
	Currency bool // render with decimal grouping
	Date     bool // render as a localized date
}

// ExtensionColumn is an optional computed column appended to a
// drill-down table, e.g. a line-item subtotal.
type ExtensionColumn struct {
	Label   string
	Compute func(model.Record) string
}

// Relation is the child-fetch rule for a parent resource: which
// child resource to load, how to build the scoped endpoint from
// the parent key, and the column template to render with.
type Relation struct {
	Child        string // child resource name in the registry
	RowKey       string // field that identifies one line within the drill-down
	Columns      []RelationColumn
	Extension    *ExtensionColumn
	EmptyMessage string

	endpoint string // fmt pattern with one %s for the parent key
}

// ChildEndpoint builds the scoped fetch path for a parent key.
func (r Relation) ChildEndpoint(parentKey string) string {
	return fmt.Sprintf(r.endpoint, parentKey)
}

// relations maps parent resource name to its drill-down rule.
// Resources without an entry have no dependent children; viewing
// them opens the edit form directly.
var relations = map[string]Relation{
	"orders": {
		Child:    "requests",
		RowKey:   "productID",
		endpoint: "/requests/%s",
		Columns: []RelationColumn{
			{Key: "orderID", Label: "Mã đơn"},
			{Key: "productID", Label: "Mã sản phẩm"},
			{Key: "quantityOrdered", Label: "Số lượng đặt"},
			{Key: "discount", Label: "Giảm giá"},
			{Key: "note", Label: "Ghi chú"},
		},
		Extension: &ExtensionColumn{
			Label: "Thành tiền",
			// subtotal = quantity x unit price, when the backend
			// joined the unit price onto the line item
			Compute: func(rec model.Record) string {
				qty, ok1 := rec.Number("quantityOrdered")
				price, ok2 := rec.Number("priceEach")
				if !ok1 || !ok2 {
					return ""
				}
				return schema.FormatCurrency(qty*price) + schema.CurrencySuffix
			},
		},
		EmptyMessage: "Đơn hàng này chưa có yêu cầu chi tiết",
	},
	"vendors": {
		Child:    "supplies",
		RowKey:   "productID",
		endpoint: "/supplies/%s",
		Columns: []RelationColumn{
			{Key: "productID", Label: "Mã sản phẩm"},
			{Key: "quantitySupplier", Label: "SL cung cấp"},
			{Key: "supplyDate", Label: "Ngày cung cấp", Date: true},
			{Key: "handledBy", Label: "Người phụ trách"},
		},
		EmptyMessage: "Nhà cung cấp này chưa cung cấp sản phẩm nào",
	},
	"inventories": {
		Child:    "stores",
		RowKey:   "productID",
		endpoint: "/stores/inventory/%s",
		Columns: []RelationColumn{
			{Key: "productID", Label: "Mã sản phẩm"},
			{Key: "quantityStore", Label: "Số lượng"},
			{Key: "storeDate", Label: "Ngày nhập kho", Date: true},
			{Key: "roleStore", Label: "Loại giao dịch"},
		},
		EmptyMessage: "Kho này chưa có lịch sử lưu trữ",
	},
}

// RelationFor returns the drill-down rule for a parent resource.
func RelationFor(parent string) (Relation, bool) {
	r, ok := relations[parent]
	return r, ok
}

// HasRelations reports whether viewing a record of this resource
// drills into child records instead of opening its edit form.
func HasRelations(parent string) bool {
	_, ok := relations[parent]
	return ok
}

// ParentOf returns the parent resource whose drill-down rule
// produces this child. Permission gates check the parent: the
// static table only lists top-level resources, and a child row is
// only reachable through its parent's screen.
func ParentOf(child string) (string, bool) {
	for parent, rel := range relations {
		if rel.Child == child {
			return parent, true
		}
	}
	return "", false
}
