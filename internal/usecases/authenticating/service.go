package authenticating

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/cosmetics-portal-api/internal/config"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
	"github.com/vfg2006/cosmetics-portal-api/pkg/apiErrors"
)

// TokenValidator valida os tokens emitidos pelo serviço de autenticação do portal
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey []byte
}

func NewService(cfg *config.Config) TokenValidator {
	return &Service{
		secretKey: []byte(cfg.SecretKey),
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if !claims.UserActive {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrInsufficientPrivilege, claims.UserID, "")
	}

	return claims, nil
}
