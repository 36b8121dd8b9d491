package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mEdHaT33/Arkan/pkg/models"
)

func txn(id int, date, account, direction string, amount string) models.FinanceTransaction {
	return models.FinanceTransaction{
		ID:        models.FlexInt(id),
		TxnDate:   date,
		Account:   account,
		Direction: direction,
		Amount:    decimal.RequireFromString(amount),
	}
}

func TestRunningBalanceCashSequence(t *testing.T) {
	input := []models.FinanceTransaction{
		txn(1, "2024-01-01", "cash", "in", "100"),
		txn(2, "2024-01-02", "cash", "out", "30"),
	}

	out := WithRunningBalances(input)
	require.Len(t, out, 2)

	// Presented newest-first: id 2 then id 1.
	assert.Equal(t, 2, out[0].ID.Int())
	assert.Equal(t, 1, out[1].ID.Int())

	require.NotNil(t, out[0].CashBalanceAfter)
	require.NotNil(t, out[1].CashBalanceAfter)
	assert.True(t, out[0].CashBalanceAfter.Equal(decimal.NewFromInt(70)))
	assert.True(t, out[1].CashBalanceAfter.Equal(decimal.NewFromInt(100)))

	// Cash transactions never carry a bank annotation.
	assert.Nil(t, out[0].BankBalanceAfter)
	assert.Nil(t, out[1].BankBalanceAfter)
}

func TestRunningBalanceAccountsAreIndependent(t *testing.T) {
	input := []models.FinanceTransaction{
		txn(1, "2024-03-01", "bank", "in", "1000"),
		txn(2, "2024-03-02", "cash", "in", "50"),
		txn(3, "2024-03-03", "bank", "out", "400.50"),
		txn(4, "2024-03-04", "cash", "out", "20"),
	}

	out := WithRunningBalances(input)
	require.Len(t, out, 4)

	// Newest first: ids 4, 3, 2, 1.
	require.NotNil(t, out[0].CashBalanceAfter)
	assert.True(t, out[0].CashBalanceAfter.Equal(decimal.NewFromInt(30)))
	require.NotNil(t, out[1].BankBalanceAfter)
	assert.True(t, out[1].BankBalanceAfter.Equal(decimal.RequireFromString("599.50")))
	require.NotNil(t, out[2].CashBalanceAfter)
	assert.True(t, out[2].CashBalanceAfter.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, out[3].BankBalanceAfter)
	assert.True(t, out[3].BankBalanceAfter.Equal(decimal.NewFromInt(1000)))
}

func TestRunningBalanceTieBreakById(t *testing.T) {
	// Same date: creation id decides the replay order.
	input := []models.FinanceTransaction{
		txn(7, "2024-05-01", "cash", "out", "10"),
		txn(5, "2024-05-01", "cash", "in", "100"),
	}

	out := WithRunningBalances(input)
	require.Len(t, out, 2)
	assert.Equal(t, 7, out[0].ID.Int())
	assert.True(t, out[0].CashBalanceAfter.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, 5, out[1].ID.Int())
	assert.True(t, out[1].CashBalanceAfter.Equal(decimal.NewFromInt(100)))
}

func TestRunningBalanceIdempotentOverShuffledInput(t *testing.T) {
	a := []models.FinanceTransaction{
		txn(3, "2024-02-03", "bank", "out", "25"),
		txn(1, "2024-02-01", "bank", "in", "200"),
		txn(2, "2024-02-02", "cash", "in", "75"),
	}
	b := []models.FinanceTransaction{a[1], a[2], a[0]}

	first := WithRunningBalances(a)
	second := WithRunningBalances(b)
	third := WithRunningBalances(first)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].ID, third[i].ID)
	}

	// Input order must not have been disturbed.
	assert.Equal(t, 3, a[0].ID.Int())
}

func TestFinalBalanceEqualsNetOfAllAmounts(t *testing.T) {
	input := []models.FinanceTransaction{
		txn(1, "2024-01-01", "cash", "in", "100.10"),
		txn(2, "2024-01-02", "cash", "out", "40.05"),
		txn(3, "2024-01-03", "cash", "in", "9.95"),
	}

	out := WithRunningBalances(input)
	in, outSum := Totals(input, "cash")
	net := in.Sub(outSum)

	// out[0] is the newest transaction, holding the final running balance.
	require.NotNil(t, out[0].CashBalanceAfter)
	assert.True(t, out[0].CashBalanceAfter.Equal(net))
	assert.True(t, net.Equal(decimal.RequireFromString("70.00")))
}

func TestTotalsFiltersByAccount(t *testing.T) {
	input := []models.FinanceTransaction{
		txn(1, "2024-01-01", "bank", "in", "10"),
		txn(2, "2024-01-01", "cash", "in", "20"),
		txn(3, "2024-01-02", "bank", "out", "4"),
	}

	in, out := Totals(input, "bank")
	assert.True(t, in.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.Equal(decimal.NewFromInt(4)))

	in, out = Totals(input, "")
	assert.True(t, in.Equal(decimal.NewFromInt(30)))
	assert.True(t, out.Equal(decimal.NewFromInt(4)))
}
