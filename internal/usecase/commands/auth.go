package commands

import (
	"context"

	"booking-system/internal/domain/user"
	reqdto "booking-system/internal/handler/dto/request"
	"booking-system/internal/pkg/errs"
	"booking-system/internal/pkg/jwt"
	"booking-system/internal/pkg/password"
	"booking-system/internal/usecase/queries"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type LoginResult struct {
	AccessToken string
	User        *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	// Lookup failure and password mismatch produce the same error so the
	// endpoint cannot be used to enumerate accounts.
	entity, err := a.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}
	if !entity.IsActive() {
		return nil, errs.ErrInvalidCredentials
	}
	if err := password.ComparePassword(entity.HashedPassword(), req.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	accessToken, err := a.jwtService.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}

	return &LoginResult{
		AccessToken: accessToken,
		User: &queries.UserView{
			ID:       entity.ID(),
			Email:    entity.Email().String(),
			Role:     entity.Role().String(),
			IsActive: entity.IsActive(),
		},
	}, nil
}
