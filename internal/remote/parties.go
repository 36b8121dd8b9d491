package remote

import (
	"context"

	"github.com/mEdHaT33/Arkan/pkg/models"
)

type PartiesService struct {
	client *Client
}

func NewPartiesService(client *Client) *PartiesService {
	return &PartiesService{client: client}
}

// PartyInput is the editable subset of a party record.
type PartyInput struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// List returns clients and vendors together; the backend keeps both in one
// table and the console filters by type where a page needs to.
func (s *PartiesService) List(ctx context.Context) ([]models.Party, error) {
	var out struct {
		Clients []models.Party `json:"clients"`
	}
	if err := s.client.getJSON(ctx, "get_clients.php", nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Clients {
		out.Clients[i].Normalize()
	}
	return out.Clients, nil
}

func (s *PartiesService) Vendors(ctx context.Context) ([]models.Party, error) {
	var out struct {
		Vendors []models.Party `json:"vendors"`
	}
	if err := s.client.getJSON(ctx, "get_vendors.php", nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Vendors {
		out.Vendors[i].Normalize()
	}
	return out.Vendors, nil
}

func (s *PartiesService) Add(ctx context.Context, input PartyInput) error {
	return s.client.postJSON(ctx, "add_client.php", input, nil)
}

func (s *PartiesService) Update(ctx context.Context, input PartyInput) error {
	return s.client.postJSON(ctx, "edit_client.php", input, nil)
}
