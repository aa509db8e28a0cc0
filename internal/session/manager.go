// Package session issues and verifies the bearer tokens that authorize calls to
// the accounting gRPC service.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	"github.com/vysogota0399/bank_simulator/internal/config"
)

var ErrInvalidToken = errors.New("session: invalid token")

type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		secret: []byte(cfg.SessionSecret),
		issuer: cfg.SessionIssuer,
		ttl:    time.Duration(cfg.SessionTTL) * time.Second,
		now:    time.Now,
	}
}

// Issue signs a token whose subject is the account number.
func (m *Manager) Issue(accountNumber string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   accountNumber,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        ulid.Make().String(),
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("session/manager: sign token error %w", err)
	}

	return signed, expiresAt, nil
}

// Verify returns the account number carried by a valid token.
func (m *Manager) Verify(token string) (string, error) {
	claims := new(jwt.RegisteredClaims)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
