package commands

import (
	"context"
	"log/slog"
	"time"

	reqdto "vending-machine/internal/handler/dto/request"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/jwt"
	"vending-machine/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

// AdminSubject is the token subject of maintenance sessions; the machine has one operator account.
const AdminSubject = "admin"

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	passwordHash string
	jwtService   *jwt.Service
}

func NewAuthCommands(passwordHash string, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	if err := password.ComparePassword(a.passwordHash, req.Password); err != nil {
		slog.WarnContext(ctx, "maintenance login rejected")
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(AdminSubject, jwt.RoleMaintenance)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.InfoContext(ctx, "maintenance session opened")
	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
