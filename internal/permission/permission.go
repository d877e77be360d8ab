// Package permission holds the static client-side permission table
// for the management console. It governs what the UI offers, not
// true authorization: the backend must enforce the same rules
// independently, and a bypass of this gate is not a security hole
// in the client alone.
package permission

// Action is one of the four things a console view can do with a
// resource.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Staff positions. Position is the staff classification carried on
// the staff record and used to gate console actions.
const (
	PositionAdmin     = "Admin"
	PositionManager   = "Manager"
	PositionSales     = "Sales"
	PositionInventory = "Inventory"
	PositionCashier   = "Cashier"
)

// table maps position -> resource -> permitted actions. Static and
// immutable after startup.
var table = map[string]map[string][]Action{
	PositionAdmin: {
		"customers":   {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"products":    {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"orders":      {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"payments":    {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"staffs":      {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"vendors":     {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"inventories": {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"reports":     {ActionView},
	},
	PositionManager: {
		"customers":   {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"products":    {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"orders":      {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"payments":    {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"staffs":      {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"vendors":     {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"inventories": {ActionView, ActionCreate, ActionEdit, ActionDelete},
		"reports":     {ActionView},
	},
	PositionSales: {
		"customers":   {ActionView, ActionCreate, ActionEdit},
		"products":    {ActionView},
		"orders":      {ActionView, ActionCreate},
		"payments":    {ActionView, ActionCreate},
		"staffs":      {ActionView},
		"vendors":     {ActionView},
		"inventories": {ActionView},
	},
	PositionInventory: {
		"products":    {ActionView, ActionEdit},
		"orders":      {ActionView},
		"vendors":     {ActionView},
		"inventories": {ActionView, ActionCreate, ActionEdit},
	},
	PositionCashier: {
		"customers": {ActionView},
		"orders":    {ActionView},
		"payments":  {ActionView, ActionCreate, ActionEdit},
		"products":  {ActionView},
	},
}

// Can reports whether a position may perform action on resource.
// Unknown positions, resources the position has no entry for, and
// actions missing from the entry all answer false.
func Can(position, resource string, action Action) bool {
	grants, ok := table[position]
	if !ok {
		return false
	}
	actions, ok := grants[resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// ActionsFor lists the actions a position may perform on resource,
// in table order. Used to decide which affordances a listing
// renders.
func ActionsFor(position, resource string) []Action {
	grants, ok := table[position]
	if !ok {
		return nil
	}
	return grants[resource]
}

// Positions returns the known staff positions. The order is fixed
// so option lists render deterministically.
func Positions() []string {
	return []string{PositionAdmin, PositionManager, PositionSales, PositionInventory, PositionCashier}
}
