package security

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mEdHaT33/Arkan/pkg/roles"
)

// The console session token replaces the old browser localStorage blob: it
// carries exactly {username, role} and nothing the backend would trust.
// Authority over data stays with the remote service and its own cookie.

var (
	jwtSecret     []byte
	jwtSecretOnce sync.Once
)

const tokenTTL = 120 * time.Hour // 5 days, one work week

func secret() []byte {
	jwtSecretOnce.Do(func() {
		jwtSecret = []byte(os.Getenv("JWT_SECRET"))
	})
	return jwtSecret
}

// GenerateToken issues a signed console session token for the operator.
func GenerateToken(username string, role roles.Role) (string, error) {
	if len(secret()) == 0 {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	claims := jwt.MapClaims{
		"username": username,
		"role":     role.String(),
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ParseToken validates a session token and returns its username and role.
func ParseToken(tokenString string) (string, roles.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid claims")
	}

	username, _ := claims["username"].(string)
	roleClaim, _ := claims["role"].(string)
	if username == "" {
		return "", "", fmt.Errorf("token has no username")
	}

	return username, roles.Parse(roleClaim), nil
}
