package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"devevents/internal/domain"
)

// ErrMissingRole is returned for a valid token that lacks the organizer role.
var ErrMissingRole = errors.New("token lacks organizer role")

type organizerClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// Organizer signs and verifies HS256 organizer tokens with a shared secret.
type Organizer struct {
	secret []byte
	now    func() time.Time
}

var (
	_ domain.TokenIssuer   = (*Organizer)(nil)
	_ domain.TokenVerifier = (*Organizer)(nil)
)

// NewOrganizer returns an issuer/verifier for secret.
func NewOrganizer(secret string) *Organizer {
	return &Organizer{secret: []byte(secret), now: time.Now}
}

func (o *Organizer) Issue(subject string, roles []string, expiry time.Duration) (string, error) {
	now := o.now()
	claims := organizerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Roles: roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(o.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (o *Organizer) Verify(tokenString string) (string, error) {
	claims := &organizerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return o.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(o.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !slices.Contains(claims.Roles, domain.OrganizerRole) {
		return "", ErrMissingRole
	}
	return claims.Subject, nil
}
