// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type purposeTokenProvider struct {
	signKey  string
	lifespan time.Duration
	now      func() time.Time
}

// NewTokenProvider returns a TokenProvider issuing HS256 JWTs.
//
// Each purpose signs with its own key, HMAC-SHA256(signKey, "purpose:"+purpose),
// so a token minted for one purpose (or a session token signed with signKey
// itself) never verifies for another.
func NewTokenProvider(signKey string, lifespan time.Duration) TokenProvider {
	return &purposeTokenProvider{
		signKey:  signKey,
		lifespan: lifespan,
		now:      time.Now,
	}
}

func (p *purposeTokenProvider) Generate(purpose models.Purpose, user models.User) (string, error) {
	if err := checkPurpose(purpose); err != nil {
		return "", err
	}
	if user.ID == "" || user.SecurityStamp == "" {
		return "", ErrEmptyTokenInput
	}

	now := p.now()
	claims := &models.PurposeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Audience:  jwt.ClaimStrings{string(purpose)},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.lifespan)),
		},
		SecurityStamp: user.SecurityStamp,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.keyFor(purpose))
	if err != nil {
		return "", fmt.Errorf("error signing %s token: %w", purpose, err)
	}

	return signed, nil
}

func (p *purposeTokenProvider) Validate(purpose models.Purpose, token string, user models.User) error {
	if err := checkPurpose(purpose); err != nil {
		return err
	}
	if token == "" || user.ID == "" {
		return ErrInvalidToken
	}

	claims := &models.PurposeClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return p.keyFor(purpose), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(string(purpose)),
		jwt.WithSubject(user.ID),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}

	if claims.SecurityStamp == "" || claims.SecurityStamp != user.SecurityStamp {
		return fmt.Errorf("%w: security stamp changed", ErrInvalidToken)
	}

	return nil
}

func (p *purposeTokenProvider) keyFor(purpose models.Purpose) []byte {
	return utils.DeriveKey(p.signKey, "purpose:"+string(purpose))
}

func checkPurpose(purpose models.Purpose) error {
	switch purpose {
	case models.PurposeEmailConfirmation, models.PurposePasswordReset:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPurpose, purpose)
	}
}
