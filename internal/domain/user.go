package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são emitidas pelo serviço de autenticação do portal
type Claims struct {
	UserID       int
	UserName     string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	UserVendorID string // Preenchido para usuários do perfil comercial
	jwt.RegisteredClaims
}
