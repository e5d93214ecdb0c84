package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
)

// Identity is the resolved subject attached to a request after the bearer
// credential has been verified against the identity provider.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	ProviderID  string `json:"providerId,omitempty"`
}

// Verifier validates an opaque bearer credential and resolves it to an
// identity. Implementations must return apperrors.ErrUnauthenticated (or an
// error wrapping it) for any credential that cannot be verified.
type Verifier interface {
	Verify(ctx context.Context, credential string) (*Identity, error)
}

// Config defines the identity provider settings.
type Config struct {
	// Secret is the shared HMAC key the provider signs ID tokens with.
	Secret string
	// Issuer and Audience are enforced on every token.
	Issuer   string
	Audience string
}

// Claims defines the ID token content issued by the identity provider.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Service verifies ID tokens locally and resolves profiles through the
// provider's account API.
type Service struct {
	config  Config
	profile *Client
}

// NewService creates an identity verification service.
func NewService(config Config, profile *Client) *Service {
	return &Service{
		config:  config,
		profile: profile,
	}
}

// Verify decodes and validates the credential, then resolves the subject's
// profile. The first linked provider's email wins over the token's own
// email claim, matching what the provider reports as the account email.
func (s *Service) Verify(ctx context.Context, credential string) (*Identity, error) {
	if credential == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, err := s.validateToken(credential)
	if err != nil {
		return nil, err
	}

	ident := &Identity{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}

	account, err := s.profile.GetAccount(ctx, claims.Subject)
	if err != nil {
		// The provider is the source of truth for the subject; if it cannot
		// confirm the account the credential is not accepted.
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthenticated, err)
	}

	if account.DisplayName != "" {
		ident.DisplayName = account.DisplayName
	}
	if len(account.ProviderData) > 0 {
		ident.ProviderID = account.ProviderData[0].ProviderID
		if account.ProviderData[0].Email != "" {
			ident.Email = account.ProviderData[0].Email
		}
	}

	if ident.UID == "" || ident.Email == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	return ident, nil
}

// validateToken parses and validates the raw ID token.
func (s *Service) validateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithAudience(s.config.Audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}
