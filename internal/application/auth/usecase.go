// Package auth autentica al operador único del inventario.
package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Operator credenciales configuradas (ADMIN_USERNAME / ADMIN_PASSWORD_HASH).
type Operator struct {
	Username     string
	PasswordHash string
}

// AuthUseCase login del operador.
type AuthUseCase struct {
	operator Operator
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(operator Operator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{operator: operator, jwtCfg: jwtCfg}
}

// Login verifica usuario y password (bcrypt) y emite un JWT.
// Credenciales incorrectas devuelven domain.ErrUnauthorized sin distinguir el motivo.
func (uc *AuthUseCase) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.operator.Username)) == 1
	// Siempre se compara el hash para no filtrar por tiempo si el usuario existe.
	passErr := bcrypt.CompareHashAndPassword([]byte(uc.operator.PasswordHash), []byte(in.Password))
	if !userOK || passErr != nil {
		return nil, domain.ErrUnauthorized
	}

	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, username, jwt.RoleOperator, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: exp, Username: username}, nil
}
