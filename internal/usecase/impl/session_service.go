package impl

import (
	"context"
	"log/slog"

	deliverycontext "bakehouse/internal/delivery/context"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/service"
	"bakehouse/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	verifier service.CredentialVerifier
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	verifier service.CredentialVerifier,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credential pair and issues an admin session token.
// Failures are reported uniformly so the response does not reveal whether
// the username or the password was wrong.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !srv.verifier.Verify(input.Username, input.Password) {
		srv.log(ctx).Warn("Admin login rejected", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.GenerateToken(input.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to generate admin token", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate token")
	}

	srv.log(ctx).Info("Admin login succeeded", slog.String("username", input.Username))

	return &usecase.LoginOutput{Success: true, Token: token}, nil
}
