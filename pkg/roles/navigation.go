package roles

// MenuItem is one navigation destination in the console sidebar.
type MenuItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// menus maps each role to its ordered destinations. The table is the union
// of every capability the evolving sidebar ever granted a role name, so a
// link once given is never silently lost between versions.
var menus = map[Role][]MenuItem{
	Admin: {
		{Path: "/manage-users", Label: "Manage Users"},
		{Path: "/clients", Label: "Clients/Vendors"},
		{Path: "/warehouse", Label: "Warehouse"},
		{Path: "/finance", Label: "Finance"},
		{Path: "/all-receipts", Label: "All Receipts"},
		{Path: "/financebalance", Label: "Balance"},
		{Path: "/excel-import", Label: "CSV Import"},
		{Path: "/designer-team", Label: "Designer Team"},
		{Path: "/designer-manager", Label: "Designer Manager"},
		{Path: "/designer-manager-approval", Label: "Design Approvals"},
		{Path: "/create-order", Label: "Manage Orders"},
		{Path: "/order-list", Label: "Order List"},
	},
	AccountManager: {
		{Path: "/create-order", Label: "Manage Orders"},
		{Path: "/clients", Label: "Clients"},
		{Path: "/order-list", Label: "Order List"},
	},
	DesignerManager: {
		{Path: "/designer-manager", Label: "Designer Manager"},
		{Path: "/designer-manager-approval", Label: "Design Approvals"},
	},
	Designer: {
		{Path: "/designer-team", Label: "Designer Team"},
	},
	Finance: {
		{Path: "/finance", Label: "Finance"},
		{Path: "/all-receipts", Label: "All Receipts"},
		{Path: "/warehouse", Label: "Warehouse"},
		{Path: "/financebalance", Label: "Balance"},
		{Path: "/excel-import", Label: "CSV Import"},
	},
}

// MenuFor returns the destinations a role may navigate to. Unknown or
// empty roles get an empty menu, never a default and never an error.
func MenuFor(r Role) []MenuItem {
	items, ok := menus[r]
	if !ok {
		return []MenuItem{}
	}
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}
