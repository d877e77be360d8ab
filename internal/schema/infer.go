// Package schema turns field names into rendering and editing
// metadata. Resource schemas are backend-owned; everything here is
// heuristic configuration over field names, kept as data tables so
// a new field can be special-cased without touching control flow.
package schema

import (
	"strconv"
	"strings"
)

// Widget is the input kind a form renders for a field.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetPassword Widget = "password"
	WidgetEmail    Widget = "email"
	WidgetTel      Widget = "tel"
	WidgetDate     Widget = "date"
	WidgetSelect   Widget = "select"
	WidgetNumber   Widget = "number"
)

// widgetRule matches a field name either exactly or by substring.
// Rules are evaluated in order; the first match wins.
type widgetRule struct {
	exact    string
	contains []string
	widget   Widget
}

var widgetRules = []widgetRule{
	{exact: "password", widget: WidgetPassword},
	{contains: []string{"email"}, widget: WidgetEmail},
	{contains: []string{"phone"}, widget: WidgetTel},
	{contains: []string{"date"}, widget: WidgetDate},
	{exact: "position", widget: WidgetSelect},
	{contains: []string{"status", "method", "type"}, widget: WidgetSelect},
	{contains: []string{"point", "quantity", "warranty"}, widget: WidgetNumber},
	{contains: []string{"price", "amount", "cost", "salary"}, widget: WidgetNumber},
}

// InferWidget maps a field name to its input widget. Matching is
// case-insensitive and falls through to plain text.
func InferWidget(field string) Widget {
	k := strings.ToLower(field)
	for _, rule := range widgetRules {
		if rule.exact != "" {
			if k == rule.exact {
				return rule.widget
			}
			continue
		}
		for _, sub := range rule.contains {
			if strings.Contains(k, sub) {
				return rule.widget
			}
		}
	}
	return WidgetText
}

// currencyFields are the known financial field names rendered with
// decimal grouping and a currency suffix.
var currencyFields = map[string]bool{
	"priceEach":           true,
	"MSRP":                true,
	"totalAmount":         true,
	"salary":              true,
	"transactionAmount":   true,
	"unitCost":            true,
	"paidAmount":          true,
	"unpaidAmount":        true,
	"debtAmount":          true,
	"totalDebt":           true,
	"totalRevenue":        true,
	"totalValue":          true,
	"totalInventoryValue": true,
	"paymentAmount":       true,
}

var currencySubstrings = []string{"price", "amount", "cost", "salary", "revenue", "value"}

// IsCurrencyField reports whether a column holds money. The
// substring match is intentionally inclusive; a non-money numeric
// field that happens to match is an accepted limitation.
func IsCurrencyField(field string) bool {
	if currencyFields[field] {
		return true
	}
	k := strings.ToLower(field)
	for _, sub := range currencySubstrings {
		if strings.Contains(k, sub) {
			return true
		}
	}
	return false
}

// hiddenFields are system-assigned date stamps that must never be
// client-writable, so forms drop them from the editable field set.
var hiddenFields = map[string]bool{
	"lastedUpdate": true,
	"orderDate":    true,
	"shippedDate":  true,
	"paymentDate":  true,
}

// IsHiddenField reports whether a field is excluded from editing.
func IsHiddenField(field string) bool {
	return hiddenFields[field]
}

// IsKeyField reports whether a field name ends in "id",
// case-insensitive. Key fields stay editable in root create/edit
// forms (operators may assign keys at creation time) but are
// read-only in drill-down child forms, where identity comes from
// the parent context.
func IsKeyField(field string) bool {
	return strings.HasSuffix(strings.ToLower(field), "id")
}

// numericSubstrings marks fields coerced from string to number on
// submit. The backend rejects numeric-typed columns submitted as
// strings (422), so the coercion is not optional.
var numericSubstrings = []string{"id", "price", "cost", "amount", "quantity", "stock", "point"}

func isNumericField(field string) bool {
	k := strings.ToLower(field)
	for _, sub := range numericSubstrings {
		if strings.Contains(k, sub) {
			return true
		}
	}
	return false
}

// CoerceNumbers returns a copy of the draft in which every numeric
// field holding a non-empty string is converted to a number, and
// empty strings on numeric fields become nil. Unparsable strings
// are left alone so the backend can report them per-field.
func CoerceNumbers(draft map[string]any) map[string]any {
	out := make(map[string]any, len(draft))
	for key, v := range draft {
		if !isNumericField(key) {
			out[key] = v
			continue
		}
		s, ok := v.(string)
		if !ok {
			out[key] = v
			continue
		}
		if s == "" {
			out[key] = nil
			continue
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			out[key] = n
		} else {
			out[key] = v
		}
	}
	return out
}
