package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cosmetics-portal-api/internal/config"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
	"github.com/vfg2006/cosmetics-portal-api/pkg/apiErrors"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims domain.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() domain.Claims {
	return domain.Claims{
		UserID:     42,
		UserName:   "Maria",
		UserActive: true,
		UserRoleID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(&config.Config{SecretKey: testSecret})

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	disabled := validClaims()
	disabled.UserActive = false

	tests := []struct {
		name         string
		token        string
		expectedErr  error
		expectedCode string
	}{
		{
			name:  "token válido",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()),
		},
		{
			name:         "token expirado",
			token:        signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
			expectedErr:  ErrExpiredToken,
			expectedCode: apiErrors.ErrExpiredToken,
		},
		{
			name:         "assinatura com outra chave",
			token:        signToken(t, jwt.SigningMethodHS256, []byte("outra-chave"), validClaims()),
			expectedErr:  ErrInvalidToken,
			expectedCode: apiErrors.ErrInvalidToken,
		},
		{
			name:         "token malformado",
			token:        "abc.def",
			expectedErr:  ErrInvalidToken,
			expectedCode: apiErrors.ErrInvalidToken,
		},
		{
			name:         "usuário desativado",
			token:        signToken(t, jwt.SigningMethodHS256, []byte(testSecret), disabled),
			expectedErr:  ErrUserDisabled,
			expectedCode: apiErrors.ErrInsufficientPrivilege,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, 42, claims.UserID)
				assert.Equal(t, 1, claims.UserRoleID)
				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, claims)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.expectedCode, authErr.Code)
		})
	}
}
