package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mEdHaT33/Arkan/pkg/models"
)

type ReceiptsService struct {
	client *Client
}

func NewReceiptsService(client *Client) *ReceiptsService {
	return &ReceiptsService{client: client}
}

type ReceiptFilter struct {
	PartyID   int
	PartyType string
}

// ReceiptInput records a payment against a party. Reference is generated
// by the caller when the operator leaves it blank.
type ReceiptInput struct {
	PartyType string          `json:"party_type"`
	PartyID   int             `json:"party_id"`
	Direction string          `json:"direction"`
	Account   string          `json:"account"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method,omitempty"`
	Reference string          `json:"reference"`
	Note      string          `json:"note,omitempty"`
	TxnDate   string          `json:"txn_date"`
	CreatedBy string          `json:"created_by"`
}

// PurchaseInput is a vendor purchase receipt with its line items; the
// backend books the stock movements and the payable in one shot.
type PurchaseInput struct {
	VendorID  int                          `json:"vendor_id"`
	Date      string                       `json:"date"`
	Account   string                       `json:"account"`
	Notes     string                       `json:"notes"`
	CreatedBy string                       `json:"created_by"`
	Items     []models.PurchaseReceiptItem `json:"items"`
}

func (s *ReceiptsService) List(ctx context.Context, filter ReceiptFilter) ([]models.PartyReceipt, error) {
	query := url.Values{}
	if filter.PartyID > 0 {
		query.Set("party_id", strconv.Itoa(filter.PartyID))
	}
	if filter.PartyType != "" {
		query.Set("party_type", filter.PartyType)
	}

	var out struct {
		Receipts []models.PartyReceipt `json:"receipts"`
	}
	if err := s.client.getJSON(ctx, "party_receipts.php", query, &out); err != nil {
		return nil, err
	}
	return out.Receipts, nil
}

// Create posts the receipt and returns the party record with its balance
// already adjusted by the backend.
func (s *ReceiptsService) Create(ctx context.Context, input ReceiptInput) (*models.Party, error) {
	var out struct {
		Party *models.Party `json:"party"`
	}
	if err := s.client.postJSON(ctx, "party_receipts.php", input, &out); err != nil {
		return nil, err
	}
	if out.Party != nil {
		out.Party.Normalize()
	}
	return out.Party, nil
}

func (s *ReceiptsService) SubmitPurchase(ctx context.Context, input PurchaseInput) (int, error) {
	var out struct {
		ReceiptID models.FlexInt `json:"receipt_id"`
	}
	if err := s.client.postJSON(ctx, "submit_purchase_receipt.php", input, &out); err != nil {
		return 0, err
	}
	return out.ReceiptID.Int(), nil
}
