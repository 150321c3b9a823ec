// Package jwtauth implementa auth.Verifier validando JWT HS256 firmados
// con el secret compartido de la plataforma.
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"vetd/internal/ports/auth"
)

var (
	ErrTokenEmpty  = errors.New("token is empty")
	ErrNoSecret    = errors.New("jwt secret is not configured")
	ErrMissingUser = errors.New("token claims missing user id")
)

type tokenClaims struct {
	Email    string `json:"email,omitempty"`
	ClinicID string `json:"clinic_id,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNoSecret
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwt verify failed: %w", err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, errors.New("invalid token claims")
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return auth.Claims{}, ErrMissingUser
	}

	return auth.Claims{
		UserID:   userID,
		Email:    claims.Email,
		ClinicID: claims.ClinicID,
	}, nil
}
