package usecase

import (
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/jwt"
)

var ErrNotMaintenanceRole = errs.New("token does not grant maintenance access")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*jwt.Claims, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != jwt.RoleMaintenance {
		return nil, ErrNotMaintenanceRole
	}
	return claims, nil
}
