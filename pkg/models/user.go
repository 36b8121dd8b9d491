package models

// User is an operator account from users_list.php. Password handling lives
// entirely on the backend; the console only carries the plaintext through on
// create/update and never sees a hash.
type User struct {
	ID       FlexInt `json:"id"`
	Username string  `json:"username"`
	Fullname string  `json:"fullname,omitempty"`
	Role     string  `json:"role"`
	Email    string  `json:"email,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Status   string  `json:"status,omitempty"`
}
