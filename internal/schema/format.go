package schema

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySuffix is appended to formatted money cells.
const CurrencySuffix = "₫"

// vi groups decimals with dots, e.g. 1234567 -> "1.234.567".
var vi = message.NewPrinter(language.Vietnamese)

// FormatCurrency renders a money value with Vietnamese decimal
// grouping. Nil and empty values render empty; strings that do not
// parse as numbers are passed through unchanged.
func FormatCurrency(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return vi.Sprint(number.Decimal(t))
	case int:
		return vi.Sprint(number.Decimal(t))
	case int64:
		return vi.Sprint(number.Decimal(t))
	case string:
		if t == "" {
			return ""
		}
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return vi.Sprint(number.Decimal(f))
		}
		return t
	default:
		return vi.Sprintf("%v", t)
	}
}

// FormatCell renders one table cell: currency columns get grouped
// digits and the currency suffix, everything else the plain value.
func FormatCell(field string, v any) string {
	if IsCurrencyField(field) {
		s := FormatCurrency(v)
		if s == "" {
			return ""
		}
		return s + CurrencySuffix
	}
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return vi.Sprintf("%v", t)
	}
}
