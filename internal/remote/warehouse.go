package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mEdHaT33/Arkan/pkg/models"
)

type WarehouseService struct {
	client *Client
}

func NewWarehouseService(client *Client) *WarehouseService {
	return &WarehouseService{client: client}
}

type ItemInput struct {
	ItemCode      string          `json:"item_code"`
	ItemName      string          `json:"item_name"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	Unit          string          `json:"unit"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
	Location      string          `json:"location,omitempty"`
	OpeningQty    decimal.Decimal `json:"opening_qty"`
}

type MovementInInput struct {
	ItemID     int                 `json:"item_id"`
	Qty        decimal.Decimal     `json:"qty"`
	UnitCost   decimal.NullDecimal `json:"unit_cost"`
	SupplierID int                 `json:"supplier_id,omitempty"`
	PONumber   string              `json:"po_number,omitempty"`
	Note       string              `json:"note,omitempty"`
	ReceivedBy string              `json:"received_by"`
}

type MovementOutInput struct {
	ItemID   int             `json:"item_id"`
	Qty      decimal.Decimal `json:"qty"`
	Reason   string          `json:"reason"`
	OrderID  int             `json:"order_id,omitempty"`
	Note     string          `json:"note,omitempty"`
	IssuedBy string          `json:"issued_by"`
}

type MovementFilter struct {
	ItemID   int
	DateFrom string
	DateTo   string
}

func (f MovementFilter) query() url.Values {
	query := url.Values{}
	if f.ItemID > 0 {
		query.Set("item_id", strconv.Itoa(f.ItemID))
	}
	if f.DateFrom != "" {
		query.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		query.Set("date_to", f.DateTo)
	}
	return query
}

func (s *WarehouseService) Items(ctx context.Context) ([]models.WarehouseItem, error) {
	var out struct {
		Items []models.WarehouseItem `json:"items"`
	}
	if err := s.client.getJSON(ctx, "warehouse_get_items.php", nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Items {
		out.Items[i].Annotate()
	}
	return out.Items, nil
}

func (s *WarehouseService) AddItem(ctx context.Context, input ItemInput) error {
	return s.client.postJSON(ctx, "warehouse_add_item.php", input, nil)
}

func (s *WarehouseService) AddIn(ctx context.Context, input MovementInInput) error {
	return s.client.postJSON(ctx, "warehouse_add_in.php", input, nil)
}

func (s *WarehouseService) AddOut(ctx context.Context, input MovementOutInput) error {
	return s.client.postJSON(ctx, "warehouse_add_out.php", input, nil)
}

func (s *WarehouseService) MovementsIn(ctx context.Context, filter MovementFilter) ([]models.StockMovementIn, error) {
	var out struct {
		Items []models.StockMovementIn `json:"items"`
	}
	if err := s.client.getJSON(ctx, "warehouse_get_in.php", filter.query(), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *WarehouseService) MovementsOut(ctx context.Context, filter MovementFilter) ([]models.StockMovementOut, error) {
	var out struct {
		Items []models.StockMovementOut `json:"items"`
	}
	if err := s.client.getJSON(ctx, "warehouse_get_out.php", filter.query(), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
