//go:build unit

package jwt_test

import (
	"testing"
	"time"

	appjwt "hotel-core/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret = "front-desk-signing-key"
	issuer = "hotel-identity"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims appjwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(actorID uuid.UUID, iss string, expiresIn time.Duration) appjwt.Claims {
	now := time.Now()
	return appjwt.Claims{
		ActorID: actorID,
		Role:    "front_desk",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    iss,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
}

func TestVerifier_Verify(t *testing.T) {
	actorID := uuid.New()
	verifier := appjwt.NewVerifier(secret, issuer)

	t.Run("success: valid token yields its claims", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(actorID, issuer, time.Hour))

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, actorID, claims.ActorID)
		assert.Equal(t, "front_desk", claims.Role)
	})

	t.Run("success: issuer is not checked when unset", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(actorID, "someone-else", time.Hour))

		_, err := appjwt.NewVerifier(secret, "").Verify(token)
		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(actorID, issuer, -time.Minute))
			},
			wantErr: appjwt.ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("other-key"), claimsFor(actorID, issuer, time.Hour))
			},
			wantErr: appjwt.ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(actorID, "rogue", time.Hour))
			},
			wantErr: appjwt.ErrInvalidToken,
		},
		{
			name: "other HMAC algorithm",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, []byte(secret), claimsFor(actorID, issuer, time.Hour))
			},
			wantErr: appjwt.ErrInvalidToken,
		},
		{
			name: "missing actor",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(uuid.Nil, issuer, time.Hour))
			},
			wantErr: appjwt.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not.a.jwt" },
			wantErr: appjwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run("failure: "+tt.name, func(t *testing.T) {
			claims, err := verifier.Verify(tt.token(t))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}
