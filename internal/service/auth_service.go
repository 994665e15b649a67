package service

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/systemdesignlab/content-api/internal/config"
	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks submitted admin credentials against the configured pair
// and issues session tokens. There is a single admin identity; no user table
// backs it.
type AuthService struct {
	cfg   *config.Config
	codec *session.Codec
}

func NewAuthService(cfg *config.Config, codec *session.Codec) *AuthService {
	return &AuthService{cfg: cfg, codec: codec}
}

type LoginInput struct {
	Username string
	Password string
}

// Login validates credentials and returns a signed session token. A
// username mismatch and a password mismatch are indistinguishable to the
// caller, and both comparisons always run so the check does not leak which
// field was wrong through timing.
func (s *AuthService) Login(input LoginInput) (string, domain.AdminIdentity, error) {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPassword == "" {
		return "", domain.AdminIdentity{}, fmt.Errorf("admin credentials: %w", domain.ErrNotConfigured)
	}

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.cfg.AdminUsername)) == 1
	passOK := s.passwordMatches(input.Password)
	if !userOK || !passOK {
		return "", domain.AdminIdentity{}, domain.ErrInvalidCredentials
	}

	identity := domain.AdminIdentity{Username: input.Username}
	token, err := s.codec.Sign(identity)
	if err != nil {
		return "", domain.AdminIdentity{}, err
	}
	return token, identity, nil
}

// ADMIN_PASSWORD may hold either the plain password or a bcrypt hash of it.
func (s *AuthService) passwordMatches(submitted string) bool {
	if strings.HasPrefix(s.cfg.AdminPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPassword), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(s.cfg.AdminPassword)) == 1
}

// Identify resolves a session token to an identity. Absent, malformed,
// expired and forged tokens are all reported the same way.
func (s *AuthService) Identify(token string) (domain.AdminIdentity, bool) {
	if token == "" {
		return domain.AdminIdentity{}, false
	}
	identity, err := s.codec.Verify(token)
	if err != nil {
		return domain.AdminIdentity{}, false
	}
	return identity, true
}
