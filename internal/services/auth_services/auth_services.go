package auth_services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Capabilities carried in the token's permissions claim, one per entity
// group. Tokens are minted out of band; there is no login flow here.
const (
	PermGetBoards     = "getBoards"
	PermGetCards      = "getCards"
	PermGetChecklists = "getChecklists"
	PermGetToDoLists  = "getToDoLists"
)

var ErrInvalidToken = errors.New("invalid token")

type AccessClaims struct {
	UserID      string
	Permissions []string
}

func (c *AccessClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

type AuthService struct {
	secret []byte
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

func (s *AuthService) NewAccessToken(userID string, permissions []string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":         userID,
		"permissions": permissions,
		"exp":         time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) ParseAccessToken(tokenStr string) (*AccessClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	access := &AccessClaims{UserID: sub}
	if raw, ok := claims["permissions"].([]any); ok {
		for _, p := range raw {
			if perm, ok := p.(string); ok {
				access.Permissions = append(access.Permissions, perm)
			}
		}
	}
	return access, nil
}
