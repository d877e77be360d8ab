package registry

import "github.com/minhvo/retail-suite/internal/permission"

// selectOptions fixes the closed choice list per select field,
// keyed by exact field name. Fields inferred as selects but absent
// here render an empty option list.
var selectOptions = map[string][]string{
	"orderStatus":       {"Pending", "Confirmed", "Shipped", "Delivered", "Cancelled"},
	"pickupMethod":      {"Ship", "StorePickup"},
	"shippedStatus":     {"Shipped", "Cancelled", "On Hold", "In Process"},
	"paymentStatus":     {"Unpaid", "Partial", "Paid", "Refunded"},
	"paymentMethod":     {"Cash", "Credit Card", "Bank Transfer", "E-Wallet", "Check"},
	"customerType":      {"Individual", "Corporate", "Partner", "Reseller"},
	"loyalLevel":        {"New", "Bronze", "Silver", "Gold", "Platinum"},
	"inventoryStatus":   {"Active", "Inactive", "Low Stock", "Out of Stock"},
	"roleStore":         {"Import", "Export", "Stocktaking", "Manual", "Initial", "Update"},
	"vendorStatus":      {"Active", "Inactive", "Pending", "Blacklisted"},
	"transactionStatus": {"Pending", "Completed", "Failed", "Refunded"},
}

// SelectOptions returns the option list for a select field. The
// staff position field gets the assignable positions; Admin is not
// assignable through the form.
func SelectOptions(field string) []string {
	if field == "position" {
		return []string{permission.PositionManager, permission.PositionSales, permission.PositionInventory}
	}
	return selectOptions[field]
}
