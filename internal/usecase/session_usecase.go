package usecase

import "context"

// LoginInput is the admin login request body.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the opaque session token issued on success.
type LoginOutput struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// SessionUsecase turns a credential pair into an admin capability token.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
