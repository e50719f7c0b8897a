package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"guesthouse-booking/internal/domain/user"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/pkg/password"
	"guesthouse-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, time.Time, error)
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	// EnsureAdmin creates the first admin account when the email is unknown.
	EnsureAdmin(ctx context.Context, email, plainPassword string) error
}

type authCommandsImpl struct {
	users  shared.UserRepository
	tokens TokenIssuer
	clock  clock.Clock
	logger *slog.Logger
}

func NewAuthCommands(users shared.UserRepository, tokens TokenIssuer, clock clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		users:  users,
		tokens: tokens,
		clock:  clock,
		logger: logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.users.UpdateLastLogin(ctx, u.ID(), a.clock.Now()); err != nil {
		// login already succeeded
		a.logger.WarnContext(ctx, "failed to update last login", slog.String("user_id", u.ID().String()), slog.String("error", err.Error()))
	}

	return &LoginResult{
		UserID:      u.ID(),
		Role:        u.Role(),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*user.User, error) {
	u, err := a.users.FindByEmail(ctx, credentials.Email())
	if err != nil {
		err = shared.ToDomainErr(err)
		if errs.Is(err, errs.ErrNotFound) {
			// same answer as a wrong password
			return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, errs.Mark(ErrUserInactive, errs.ErrForbidden)
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}
	return u, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, email, plainPassword string) error {
	if email == "" || plainPassword == "" {
		return nil
	}
	credentials, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	_, err = a.users.FindByEmail(ctx, credentials.Email())
	if err == nil {
		return nil
	}
	if err = shared.ToDomainErr(err); !errs.Is(err, errs.ErrNotFound) {
		return err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return errs.Wrap(err, "hash admin password")
	}
	u := user.NewUser(credentials.Email(), hash, user.RoleAdmin)
	if err := a.users.Create(ctx, u); err != nil {
		return shared.ToDomainErr(err)
	}
	a.logger.InfoContext(ctx, "admin account created", slog.String("email", credentials.Email().Value()))
	return nil
}
