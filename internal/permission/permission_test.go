package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	cases := []struct {
		position, resource string
		action             Action
		want               bool
	}{
		{PositionAdmin, "staffs", ActionDelete, true},
		{PositionAdmin, "reports", ActionView, true},
		{PositionAdmin, "reports", ActionEdit, false},
		{PositionManager, "vendors", ActionCreate, true},
		{PositionSales, "customers", ActionEdit, true},
		{PositionSales, "customers", ActionDelete, false},
		{PositionSales, "products", ActionView, true},
		{PositionSales, "products", ActionEdit, false},
		{PositionSales, "reports", ActionView, false},
		{PositionInventory, "inventories", ActionCreate, true},
		{PositionInventory, "products", ActionEdit, true},
		{PositionInventory, "customers", ActionView, false},
		{PositionInventory, "staffs", ActionView, false},
		{PositionCashier, "payments", ActionEdit, true},
		{PositionCashier, "payments", ActionDelete, false},
		{PositionCashier, "orders", ActionView, true},
		{PositionCashier, "vendors", ActionView, false},
		// unknown positions and resources always answer false
		{"Intern", "products", ActionView, false},
		{PositionAdmin, "unicorns", ActionView, false},
		{"", "products", ActionView, false},
	}
	for _, tc := range cases {
		got := Can(tc.position, tc.resource, tc.action)
		assert.Equal(t, tc.want, got, "%s %s %s", tc.position, tc.resource, tc.action)
	}
}

func TestActionsFor(t *testing.T) {
	assert.Equal(t,
		[]Action{ActionView, ActionCreate, ActionEdit, ActionDelete},
		ActionsFor(PositionAdmin, "products"))
	assert.Equal(t, []Action{ActionView}, ActionsFor(PositionSales, "vendors"))
	assert.Nil(t, ActionsFor(PositionCashier, "vendors"))
	assert.Nil(t, ActionsFor("Intern", "products"))
}

func TestPositions(t *testing.T) {
	assert.Equal(t, []string{PositionAdmin, PositionManager, PositionSales, PositionInventory, PositionCashier}, Positions())
}
