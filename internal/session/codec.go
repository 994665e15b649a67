package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/systemdesignlab/content-api/internal/domain"
)

// TTL is how long an admin session stays valid after login. There is no
// refresh or rotation; a near-expiry token is accepted until the exact
// expiry instant.
const TTL = 7 * 24 * time.Hour

// Codec signs and verifies admin session tokens with a single symmetric
// secret. Tokens carry only the username claim plus issued-at and expiry.
type Codec struct {
	secret string
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: secret}
}

func (c *Codec) Sign(identity domain.AdminIdentity) (string, error) {
	if c.secret == "" {
		return "", fmt.Errorf("session signing secret: %w", domain.ErrNotConfigured)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"username": identity.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(TTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.secret))
}

func (c *Codec) Verify(tokenString string) (domain.AdminIdentity, error) {
	if c.secret == "" {
		return domain.AdminIdentity{}, fmt.Errorf("session signing secret: %w", domain.ErrNotConfigured)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC to prevent algorithm-confusion attacks.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(c.secret), nil
	})
	if err != nil || !token.Valid {
		return domain.AdminIdentity{}, domain.ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.AdminIdentity{}, domain.ErrInvalidSession
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return domain.AdminIdentity{}, domain.ErrInvalidSession
	}

	return domain.AdminIdentity{Username: username}, nil
}
