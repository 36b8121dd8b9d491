package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mEdHaT33/Arkan/pkg/models"
	"github.com/mEdHaT33/Arkan/pkg/pipeline"
)

type OrdersService struct {
	client *Client
}

func NewOrdersService(client *Client) *OrdersService {
	return &OrdersService{client: client}
}

// CreateOrderInput carries everything create_order.php accepts. Files is
// keyed by file field name; only brief and quotation make sense at
// creation time but the backend decides.
type CreateOrderInput struct {
	ClientID  int
	Has3D     bool
	CreatedBy string
	Files     map[pipeline.FileField]FileUpload
}

func (s *OrdersService) ListByStatus(ctx context.Context, status pipeline.Status) ([]models.Order, error) {
	query := url.Values{}
	if status != pipeline.StatusUnknown {
		query.Set("status", status.String())
	}

	var out struct {
		Orders []models.Order `json:"orders"`
	}
	if err := s.client.getJSON(ctx, "get_orders_by_status.php", query, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// DesignerTeamOrders returns the orders visible to one designer across the
// design stages, grouped by status on the backend side.
func (s *OrdersService) DesignerTeamOrders(ctx context.Context, username string) ([]models.Order, error) {
	query := url.Values{"username": {username}}

	var out struct {
		Orders []models.Order `json:"orders"`
	}
	if err := s.client.getJSON(ctx, "get_designer_team_orders.php", query, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// DesignerQueue is the design-manager view of a single stage.
func (s *OrdersService) DesignerQueue(ctx context.Context, status pipeline.Status) ([]models.Order, error) {
	query := url.Values{"status": {status.String()}}

	var out struct {
		Orders []models.Order `json:"orders"`
	}
	if err := s.client.getJSON(ctx, "get_designer_orders.php", query, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (s *OrdersService) Designers(ctx context.Context) ([]models.Designer, error) {
	var out struct {
		Users []models.Designer `json:"users"`
	}
	if err := s.client.getJSON(ctx, "get_designers.php", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (s *OrdersService) AssignDesigner(ctx context.Context, orderID int, designer string) error {
	return s.client.postJSON(ctx, "assign_designer.php", map[string]interface{}{
		"order_id":    orderID,
		"assigned_to": designer,
	}, nil)
}

// Create opens an order and returns the status string exactly as the
// backend reported it. Callers parse it only when they need the resolver.
func (s *OrdersService) Create(ctx context.Context, input CreateOrderInput) (string, error) {
	fields := map[string]string{
		"client_id":  strconv.Itoa(input.ClientID),
		"has_3d":     "0",
		"created_by": input.CreatedBy,
	}
	if input.Has3D {
		fields["has_3d"] = "1"
	}

	files := make(map[string]FileUpload, len(input.Files))
	for field, file := range input.Files {
		files[field.String()] = file
	}

	var out struct {
		Status string `json:"status"`
	}
	if err := s.client.postMultipart(ctx, "create_order.php", fields, files, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// UploadFile sends one stage file; the backend advances the order status
// and reports where it landed. The reported status comes back verbatim,
// even when it is not one the pipeline recognizes.
func (s *OrdersService) UploadFile(ctx context.Context, orderID int, field pipeline.FileField, uploadedBy string, file FileUpload) (string, error) {
	fields := map[string]string{
		"order_id":    strconv.Itoa(orderID),
		"field":       field.String(),
		"assigned_to": uploadedBy,
	}

	var out struct {
		NewStatus string `json:"new_status"`
	}
	err := s.client.postMultipart(ctx, "upload_order_file.php", fields, map[string]FileUpload{"file": file}, &out)
	if err != nil {
		return "", err
	}
	return out.NewStatus, nil
}

// Review resolves a holding status. The backend speaks an older action
// vocabulary, accept and edit, so the translation lives here and nowhere
// else.
func (s *OrdersService) Review(ctx context.Context, orderID int, action pipeline.Action) error {
	wire := "accept"
	if action == pipeline.ActionNeedsEdit {
		wire = "edit"
	}

	form := url.Values{
		"order_id": {strconv.Itoa(orderID)},
		"action":   {wire},
	}
	return s.client.postForm(ctx, "update_order_status.php", form, nil)
}

func (s *OrdersService) ApproveProva(ctx context.Context, orderID int, approvedBy string) error {
	return s.client.postJSON(ctx, "approve_prova.php", map[string]interface{}{
		"order_id":    orderID,
		"approved_by": approvedBy,
	}, nil)
}
