package remote

import "context"

type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// LoginResult is what login.php reports about an authenticated user.
type LoginResult struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login checks the credentials against the backend. A wrong password comes
// back as a RemoteError carrying the backend's own message.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var out LoginResult
	err := s.client.postJSON(ctx, "login.php", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	if err != nil {
		return LoginResult{}, err
	}
	if out.Username == "" {
		out.Username = username
	}
	return out, nil
}
