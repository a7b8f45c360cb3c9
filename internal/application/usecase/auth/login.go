package auth

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/domain/user"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/auth"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

// badCredentials is returned for unknown accounts and wrong passwords alike.
const badCredentials = "email or password is incorrect"

// LoginUseCase exchanges the site owner's credentials for a bearer token used by the
// admin API.
type LoginUseCase struct {
	userRepo user.Repository
	tokens   *auth.JWTService
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, tokens *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{userRepo: repo, tokens: tokens, logger: log}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "LoginUseCase.Execute")
	defer span.End()

	owner, err := uc.authenticate(ctx, user.NormalizeEmail(input.Email), input.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.tokens.GenerateToken(owner.ID)
	if err != nil {
		uc.logger.Error("Failed to issue admin token", err, zap.String("user_id", owner.ID.String()))
		return nil, apperror.NewInternal("failed to issue token", err)
	}
	span.SetAttributes(attribute.String("user_id", owner.ID.String()))
	return &LoginOutput{AccessToken: token, ExpiresIn: uc.tokens.TokenLifespan()}, nil
}

func (uc *LoginUseCase) authenticate(ctx context.Context, email, password string) (*user.User, error) {
	if email == "" || password == "" {
		return nil, apperror.NewInvalidInput("email and password are required", nil)
	}
	owner, err := uc.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return nil, apperror.NewUnauthorized(badCredentials, nil)
	case err != nil:
		return nil, err
	}
	if !auth.CheckPasswordHash(password, owner.PasswordHash) {
		return nil, apperror.NewUnauthorized(badCredentials, nil)
	}
	return owner, nil
}
