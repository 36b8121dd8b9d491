package remote

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/mEdHaT33/Arkan/pkg/models"
)

type FinanceService struct {
	client *Client
}

func NewFinanceService(client *Client) *FinanceService {
	return &FinanceService{client: client}
}

// TransactionFilter narrows the ledger query. Zero values mean no filter.
type TransactionFilter struct {
	Account  string
	Category string
	DateFrom string
	DateTo   string
}

// TransactionInput is a new ledger entry. Amount is kept as a decimal all
// the way to the wire.
type TransactionInput struct {
	TxnDate    string          `json:"txn_date"`
	Account    string          `json:"account"`
	Direction  string          `json:"direction"`
	CategoryID int             `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	PartyType  string          `json:"party_type,omitempty"`
	PartyID    int             `json:"party_id,omitempty"`
	CreatedBy  string          `json:"created_by"`
}

func (s *FinanceService) Summary(ctx context.Context) (models.FinanceSummary, error) {
	var out models.FinanceSummary
	if err := s.client.getJSON(ctx, "finance_get_summary.php", nil, &out); err != nil {
		return models.FinanceSummary{}, err
	}
	return out, nil
}

func (s *FinanceService) Transactions(ctx context.Context, filter TransactionFilter) ([]models.FinanceTransaction, error) {
	query := url.Values{}
	if filter.Account != "" {
		query.Set("account", filter.Account)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.DateFrom != "" {
		query.Set("date_from", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query.Set("date_to", filter.DateTo)
	}

	var out struct {
		Transactions []models.FinanceTransaction `json:"transactions"`
	}
	if err := s.client.getJSON(ctx, "finance_get_transactions.php", query, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

func (s *FinanceService) AddTransaction(ctx context.Context, input TransactionInput) error {
	return s.client.postJSON(ctx, "finance_add_transaction.php", input, nil)
}
