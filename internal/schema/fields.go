package schema

import "strings"

// FieldDescriptor fixes the contract of one field: its backend
// name, the widget it edits with, a display label and the default
// value used when creating a record from the resource's skeleton.
type FieldDescriptor struct {
	Name    string
	Widget  Widget
	Label   string
	Default any
}

// resourceFields lists the creation skeletons of the resources the
// backend is known to serve. Names and defaults mirror the backend
// schemas; anything not listed here falls back to inference from a
// listed record's keys.
var resourceFields = map[string][]FieldDescriptor{
	"customers": {
		{Name: "customerID", Default: ""},
		{Name: "customerName", Default: ""},
		{Name: "customerType", Default: "Individual"},
		{Name: "phone", Default: ""},
		{Name: "email", Default: ""},
		{Name: "address", Default: ""},
		{Name: "postalCode", Default: ""},
		{Name: "loyalLevel", Default: "New"},
		{Name: "loyalPoint", Default: 0},
	},
	"products": {
		{Name: "productID", Default: ""},
		{Name: "productName", Default: ""},
		{Name: "priceEach", Default: ""},
		{Name: "productLine", Default: ""},
		{Name: "productScale", Default: ""},
		{Name: "productBrand", Default: ""},
		{Name: "productDescription", Default: ""},
		{Name: "warrantyPeriod", Default: ""},
		{Name: "MSRP", Default: ""},
	},
	"orders": {
		{Name: "orderID", Default: ""},
		{Name: "orderDate", Default: ""},
		{Name: "totalAmount", Default: ""},
		{Name: "orderStatus", Default: "Pending"},
		{Name: "paymentStatus", Default: "Unpaid"},
		{Name: "pickupMethod", Default: ""},
		{Name: "customerID", Default: ""},
		{Name: "staffID", Default: ""},
	},
	"payments": {
		{Name: "paymentID", Default: ""},
		{Name: "orderID", Default: ""},
		{Name: "paymentDate", Default: ""},
		{Name: "paymentAmount", Default: ""},
		{Name: "paymentMethod", Default: ""},
		{Name: "paymentStatus", Default: "Pending"},
		{Name: "transactionID", Default: ""},
		{Name: "customerID", Default: ""},
		{Name: "note", Default: ""},
	},
	"staffs": {
		{Name: "staffID", Default: ""},
		{Name: "staffName", Default: ""},
		{Name: "position", Default: ""},
		{Name: "password", Default: ""},
		{Name: "phone", Default: ""},
		{Name: "email", Default: ""},
		{Name: "address", Default: ""},
		{Name: "managerID", Default: ""},
		{Name: "salary", Default: ""},
	},
	"inventories": {
		{Name: "inventoryID", Default: ""},
		{Name: "warehouse", Default: ""},
		{Name: "productID", Default: ""},
		{Name: "maxStockLevel", Default: ""},
		{Name: "stockQuantity", Default: ""},
		{Name: "unitCost", Default: ""},
		{Name: "inventoryNote", Default: ""},
		{Name: "inventoryStatus", Default: "Active"},
	},
	"vendors": {
		{Name: "vendorID", Default: ""},
		{Name: "vendorName", Default: ""},
		{Name: "contactName", Default: ""},
		{Name: "phone", Default: ""},
		{Name: "email", Default: ""},
		{Name: "address", Default: ""},
		{Name: "vendorType", Default: ""},
		{Name: "paymentTerms", Default: ""},
		{Name: "vendorStatus", Default: "Active"},
	},
}

// Fields resolves a resource's field descriptors. Known resources
// come from the static table; unknown ones are inferred from the
// given column order with blank defaults, which preserves the
// works-for-any-shape behavior for resources the table has never
// heard of. Widgets and labels are filled in either way.
func Fields(resource string, columns []string) []FieldDescriptor {
	if fds, ok := resourceFields[resource]; ok {
		out := make([]FieldDescriptor, len(fds))
		for i, fd := range fds {
			fd.Widget = InferWidget(fd.Name)
			fd.Label = Label(fd.Name)
			out[i] = fd
		}
		return out
	}
	out := make([]FieldDescriptor, 0, len(columns))
	for _, c := range columns {
		out = append(out, FieldDescriptor{
			Name:    c,
			Widget:  InferWidget(c),
			Label:   Label(c),
			Default: "",
		})
	}
	return out
}

// fieldLabels maps backend field names to their display labels.
// The suite serves a Vietnamese shop, so the labels are Vietnamese
// like the rest of the operator-facing text.
var fieldLabels = map[string]string{
	"customerID":      "Mã KH",
	"customerName":    "Tên khách hàng",
	"customerType":    "Loại KH",
	"phone":           "Điện thoại",
	"email":           "Email",
	"address":         "Địa chỉ",
	"postalCode":      "Mã bưu chính",
	"loyalLevel":      "Cấp độ",
	"loyalPoint":      "Điểm tích lũy",
	"staffID":         "Mã NV",
	"staffName":       "Tên nhân viên",
	"position":        "Chức vụ",
	"managerID":       "Mã người quản lý",
	"salary":          "Lương",
	"productID":       "Mã sản phẩm",
	"productName":     "Tên sản phẩm",
	"priceEach":       "Giá nhập",
	"productLine":     "Dòng sản phẩm",
	"productScale":    "Quy mô",
	"productBrand":    "Thương hiệu",
	"warrantyPeriod":  "Thời gian bảo hành",
	"MSRP":            "Giá đề xuất",
	"orderID":         "Mã đơn",
	"orderDate":       "Ngày đặt",
	"totalAmount":     "Tổng tiền",
	"orderStatus":     "Trạng thái đơn hàng",
	"paymentStatus":   "Trạng thái thanh toán",
	"pickupMethod":    "Phương thức nhận hàng",
	"shippedDate":     "Ngày giao hàng",
	"shippedStatus":   "Trạng thái giao hàng",
	"paymentID":       "Mã TT",
	"transactionAmount": "Số tiền",
	"paymentMethod":   "Phương thức",
	"transactionDate": "Ngày giao dịch",
	"transactionStatus": "Trạng thái giao dịch",
	"inventoryID":     "Mã kho",
	"warehouse":       "Kho",
	"warehouseID":     "Mã kho chứa",
	"maxStockLevel":   "Tồn tối đa",
	"stockQuantity":   "Số lượng",
	"unitCost":        "Đơn giá",
	"lastedUpdate":    "Cập nhật",
	"inventoryNote":   "Ghi chú",
	"inventoryStatus": "Trạng thái",
	"vendorID":        "Mã NCC",
	"vendorName":      "Tên NCC",
	"contactName":     "Người liên hệ",
	"vendorType":      "Loại NCC",
	"paymentTerms":    "Điều khoản TT",
	"vendorStatus":    "Trạng thái",
}

// Label returns the display label for a field, falling back to the
// field name split on its camel-case humps.
func Label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	var b strings.Builder
	for i, r := range field {
		if i == 0 && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 32)
			continue
		}
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
