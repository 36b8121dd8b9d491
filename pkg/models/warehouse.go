package models

import "github.com/shopspring/decimal"

// WarehouseItem is a stock record from warehouse_get_items.php. Quantity is
// a running level maintained by the backend; it only ever changes through
// IN/OUT movements.
type WarehouseItem struct {
	ItemID        FlexInt         `json:"item_id"`
	ItemCode      string          `json:"item_code"`
	ItemName      string          `json:"item_name"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	SupplierID    FlexInt         `json:"supplier_id,omitempty"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
	Location      string          `json:"location,omitempty"`

	// Derived by the console for list views.
	LowStock   bool            `json:"low_stock"`
	StockValue decimal.Decimal `json:"stock_value"`
}

// Annotate fills the console-derived display fields.
func (w *WarehouseItem) Annotate() {
	w.LowStock = w.Quantity.LessThanOrEqual(w.ReorderLevel)
	w.StockValue = w.Quantity.Mul(w.PurchasePrice)
}

// StockMovementIn is an immutable ledger entry from warehouse_get_in.php.
type StockMovementIn struct {
	ID         FlexInt             `json:"id"`
	ItemID     FlexInt             `json:"item_id"`
	ItemCode   string              `json:"item_code,omitempty"`
	ItemName   string              `json:"item_name,omitempty"`
	Qty        decimal.Decimal     `json:"qty"`
	UnitCost   decimal.NullDecimal `json:"unit_cost"`
	TotalCost  decimal.NullDecimal `json:"total_cost"`
	SupplierID FlexInt             `json:"supplier_id,omitempty"`
	PONumber   string              `json:"po_number,omitempty"`
	Note       string              `json:"note,omitempty"`
	ReceivedBy string              `json:"received_by,omitempty"`
	ReceivedAt string              `json:"received_at,omitempty"`
}

// StockMovementOut is an immutable ledger entry from warehouse_get_out.php.
type StockMovementOut struct {
	ID       FlexInt         `json:"id"`
	ItemID   FlexInt         `json:"item_id"`
	ItemCode string          `json:"item_code,omitempty"`
	ItemName string          `json:"item_name,omitempty"`
	Qty      decimal.Decimal `json:"qty"`
	Reason   string          `json:"reason"`
	OrderID  FlexInt         `json:"order_id,omitempty"`
	Note     string          `json:"note,omitempty"`
	IssuedBy string          `json:"issued_by,omitempty"`
	IssuedAt string          `json:"issued_at,omitempty"`
}

// OutReasons are the accepted stock OUT categories.
var OutReasons = []string{"usage", "production", "sale", "adjustment", "transfer"}

func ValidOutReason(reason string) bool {
	for _, r := range OutReasons {
		if r == reason {
			return true
		}
	}
	return false
}
