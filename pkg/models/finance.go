package models

import "github.com/shopspring/decimal"

const (
	AccountBank = "bank"
	AccountCash = "cash"

	DirectionIn  = "in"
	DirectionOut = "out"
)

// FinanceTransaction is one row from finance_get_transactions.php. The
// *_balance_after fields are derived by the console's ledger and are never
// sent back to the backend; only the field matching the transaction's own
// account is filled, the other stays null.
type FinanceTransaction struct {
	ID         FlexInt         `json:"id"`
	TxnDate    string          `json:"txn_date"`
	CategoryID FlexInt         `json:"category_id"`
	Category   string          `json:"category,omitempty"`
	Kind       string          `json:"kind,omitempty"`
	Account    string          `json:"account"`
	Direction  string          `json:"direction"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	PartyType  string          `json:"party_type,omitempty"`
	PartyID    FlexInt         `json:"party_id,omitempty"`
	CreatedBy  string          `json:"created_by,omitempty"`

	CashBalanceAfter *decimal.Decimal `json:"cash_balance_after"`
	BankBalanceAfter *decimal.Decimal `json:"bank_balance_after"`
}

// FinanceCategory comes embedded in the summary payload.
type FinanceCategory struct {
	ID   FlexInt `json:"id"`
	Name string  `json:"name"`
	Kind string  `json:"kind"`
}

// FinanceSummary is the authoritative balance sheet from
// finance_get_summary.php. The console passes it through untouched; running
// balances computed locally are display-only and must never replace these.
type FinanceSummary struct {
	Balances struct {
		Bank decimal.Decimal `json:"bank"`
		Cash decimal.Decimal `json:"cash"`
	} `json:"balances"`
	Totals struct {
		InAllTime  decimal.Decimal `json:"in_all_time"`
		OutAllTime decimal.Decimal `json:"out_all_time"`
	} `json:"totals"`
	Warehouse struct {
		TotalValue decimal.Decimal `json:"total_value"`
	} `json:"warehouse"`
	Receipts struct {
		In  decimal.Decimal `json:"in"`
		Out decimal.Decimal `json:"out"`
	} `json:"receipts"`
	Categories  []FinanceCategory `json:"categories"`
	Diagnostics []string          `json:"diagnostics,omitempty"`
}
