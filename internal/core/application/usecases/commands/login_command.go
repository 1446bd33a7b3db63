package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// TokenSigner produces the signed string form of an issued access token.
// Kept as an interface so the core does not depend on the JWT implementation.
type TokenSigner interface {
	Sign(tokenID uuid.UUID, userID uint64, expiresAt time.Time) (string, error)
}

// LoginCommand represents a credential check and token issue request.
type LoginCommand struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command. Email and password are required.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	if email == "" {
		return LoginCommand{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginCommand{}, errs.NewValueIsRequiredError("password")
	}

	return LoginCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// LoginCommandHandler verifies credentials and issues a revocable access token.
// An unknown email and a wrong password produce the same BadCredentialsError,
// so login responses do not reveal which part failed.
type LoginCommandHandler struct {
	uowFactory AuthUoWFactory
	signer     TokenSigner
	tokenTTL   time.Duration
}

// NewLoginCommandHandler creates a handler for login operations.
func NewLoginCommandHandler(uowFactory AuthUoWFactory, signer TokenSigner, tokenTTL time.Duration) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		signer:     signer,
		tokenTTL:   tokenTTL,
	}
}

// Handle processes the login command and returns the signed token string.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().GetByEmail(ctx, cmd.email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", errs.NewBadCredentialsError()
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(cmd.password)) != nil {
		return "", errs.NewBadCredentialsError()
	}

	accessToken, err := account.NewAccessToken(user.ID(), h.tokenTTL)
	if err != nil {
		return "", err
	}

	if err = uow.TokenRepository().Add(ctx, accessToken); err != nil {
		return "", err
	}

	signed, err := h.signer.Sign(accessToken.ID(), user.ID(), accessToken.ExpiresAt())
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return signed, nil
}
