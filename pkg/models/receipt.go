package models

import "github.com/shopspring/decimal"

// PartyReceipt is one money receipt against a client or vendor, from
// party_receipts.php. Posting one also books a finance transaction on the
// backend; the console never mirrors that bookkeeping.
type PartyReceipt struct {
	ID        FlexInt         `json:"id"`
	PartyType string          `json:"party_type"`
	PartyID   FlexInt         `json:"party_id"`
	PartyName string          `json:"party_name,omitempty"`
	Direction string          `json:"direction"`
	Account   string          `json:"account"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method,omitempty"`
	Reference string          `json:"reference,omitempty"`
	Note      string          `json:"note,omitempty"`
	TxnDate   string          `json:"txn_date"`
	CreatedBy string          `json:"created_by,omitempty"`
	CreatedAt string          `json:"created_at,omitempty"`
}

// PurchaseReceiptItem is a line on a vendor purchase receipt.
type PurchaseReceiptItem struct {
	ItemName    string          `json:"item_name"`
	ItemCode    string          `json:"item_code,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Qty         decimal.Decimal `json:"qty"`
	Discount    decimal.Decimal `json:"discount"`
	Tax         decimal.Decimal `json:"tax"`
}
