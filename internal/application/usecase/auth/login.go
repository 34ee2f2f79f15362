package auth

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/auth"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

// Owner is the single account allowed on the admin surface. It comes from
// configuration; there is no user table.
type Owner struct {
	ID           uuid.UUID
	PasswordHash string
}

type LoginUseCase struct {
	owner  Owner
	jwtSvc *auth.JWTService
	logger logger.Logger
}

func NewLoginUseCase(owner Owner, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		owner:  owner,
		jwtSvc: jwtSvc,
		logger: log,
	}
}

type LoginInput struct {
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	_, span := tracer.Start(ctx, "Login")
	defer span.End()

	if input.Password == "" {
		err := apperror.NewInvalidInput("password is required", nil)
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, uc.owner.PasswordHash) {
		err := apperror.NewUnauthorized("incorrect password", nil)
		span.RecordError(err)
		uc.logger.Warn("Rejected admin login")
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(uc.owner.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("owner_id", uc.owner.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("owner_id", uc.owner.ID.String()))
	return &LoginOutput{AccessToken: token}, nil
}
