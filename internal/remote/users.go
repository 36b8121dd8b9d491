package remote

import (
	"context"

	"github.com/mEdHaT33/Arkan/pkg/models"
)

type UsersService struct {
	client *Client
}

func NewUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

// UserInput covers create and update. Password is forwarded as given, the
// backend owns hashing and never echoes it back.
type UserInput struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	var out struct {
		Users []models.User `json:"users"`
	}
	if err := s.client.getJSON(ctx, "users_list.php", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (s *UsersService) Create(ctx context.Context, input UserInput) error {
	return s.client.postJSON(ctx, "users_create.php", input, nil)
}

func (s *UsersService) Update(ctx context.Context, input UserInput) error {
	return s.client.postJSON(ctx, "users_update.php", input, nil)
}

func (s *UsersService) Delete(ctx context.Context, id int) error {
	return s.client.postJSON(ctx, "users_delete.php", map[string]int{"id": id}, nil)
}
