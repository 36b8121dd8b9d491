// Package ledger derives display-only running balances for the finance
// screen. The authoritative balances always come from the backend summary
// endpoint; this package only annotates a transaction list for rendering.
package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mEdHaT33/Arkan/pkg/models"
)

// WithRunningBalances replays the transactions in chronological order,
// keeping one running sum per account, and annotates each transaction with
// the post-transaction balance of its own account (the other account's
// field stays null). The returned slice is ordered newest-first for
// presentation; the input is left untouched.
//
// Ordering is (txn_date, id): txn_date values are ISO dates so a plain
// string compare is chronological, and the id tie-break makes the result
// deterministic when several transactions share a date.
func WithRunningBalances(txns []models.FinanceTransaction) []models.FinanceTransaction {
	out := make([]models.FinanceTransaction, len(txns))
	copy(out, txns)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TxnDate != out[j].TxnDate {
			return out[i].TxnDate < out[j].TxnDate
		}
		return out[i].ID < out[j].ID
	})

	cash := decimal.Zero
	bank := decimal.Zero

	for i := range out {
		t := &out[i]
		amount := t.Amount
		if strings.ToLower(t.Direction) != models.DirectionIn {
			amount = amount.Neg()
		}

		t.CashBalanceAfter = nil
		t.BankBalanceAfter = nil

		switch strings.ToLower(t.Account) {
		case models.AccountCash:
			cash = cash.Add(amount)
			after := cash
			t.CashBalanceAfter = &after
		case models.AccountBank:
			bank = bank.Add(amount)
			after := bank
			t.BankBalanceAfter = &after
		}
	}

	// Computation ran oldest-first; the table shows newest-first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Totals sums the in and out amounts of the given transactions, optionally
// restricted to one account. Used for the table footer.
func Totals(txns []models.FinanceTransaction, account string) (in, out decimal.Decimal) {
	account = strings.ToLower(account)
	for _, t := range txns {
		if account != "" && strings.ToLower(t.Account) != account {
			continue
		}
		switch strings.ToLower(t.Direction) {
		case models.DirectionIn:
			in = in.Add(t.Amount)
		case models.DirectionOut:
			out = out.Add(t.Amount)
		}
	}
	return in, out
}
