//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/domain/user"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	"guesthouse-booking/internal/infra/memstore"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/pkg/jwt"
	"guesthouse-booking/internal/usecase/commands"
	commandsmock "guesthouse-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))

	setup := func(t *testing.T) (commands.AuthCommands, *memstore.UserRepository) {
		store := memstore.NewStore(room.DefaultCatalog(), logger)
		users := memstore.NewUserRepository(store)
		auth := commands.NewAuthCommands(users, jwt.NewService("test-secret", time.Hour), clk, logger)
		require.NoError(t, auth.EnsureAdmin(ctx, "Owner@Guesthouse.tn", "s3cret-pass"))
		return auth, users
	}

	t.Run("success: seeded admin can log in", func(t *testing.T) {
		auth, users := setup(t)

		res, err := auth.Login(ctx, reqdto.LoginRequest{Email: "owner@guesthouse.tn", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, res.Role)
		assert.NotEmpty(t, res.AccessToken)

		email, _ := user.NewEmail("owner@guesthouse.tn")
		u, err := users.FindByEmail(ctx, email)
		require.NoError(t, err)
		require.NotNil(t, u.LastLogin())
		assert.True(t, u.LastLogin().Equal(clk.Now()))
	})

	t.Run("success: ensure admin is idempotent", func(t *testing.T) {
		auth, _ := setup(t)
		require.NoError(t, auth.EnsureAdmin(ctx, "owner@guesthouse.tn", "another-pass"))

		_, err := auth.Login(ctx, reqdto.LoginRequest{Email: "owner@guesthouse.tn", Password: "s3cret-pass"})
		require.NoError(t, err, "existing password is kept")
	})

	t.Run("error: wrong password and unknown email look the same", func(t *testing.T) {
		auth, _ := setup(t)

		_, err := auth.Login(ctx, reqdto.LoginRequest{Email: "owner@guesthouse.tn", Password: "wrong-pass"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))

		_, err = auth.Login(ctx, reqdto.LoginRequest{Email: "nobody@guesthouse.tn", Password: "s3cret-pass"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("error: token generation failure", func(t *testing.T) {
		store := memstore.NewStore(room.DefaultCatalog(), logger)
		users := memstore.NewUserRepository(store)
		tokens := commandsmock.NewMockTokenIssuer(gomock.NewController(t))
		auth := commands.NewAuthCommands(users, tokens, clk, logger)
		require.NoError(t, auth.EnsureAdmin(ctx, "owner@guesthouse.tn", "s3cret-pass"))

		tokens.EXPECT().GenerateToken(gomock.Any(), user.RoleAdmin).
			Return("", time.Time{}, errors.New("signing failed"))

		_, err := auth.Login(ctx, reqdto.LoginRequest{Email: "owner@guesthouse.tn", Password: "s3cret-pass"})
		assert.True(t, errs.Is(err, commands.ErrTokenGeneration))
	})

	t.Run("no-op: ensure admin without credentials", func(t *testing.T) {
		store := memstore.NewStore(room.DefaultCatalog(), logger)
		auth := commands.NewAuthCommands(memstore.NewUserRepository(store), jwt.NewService("x", time.Hour), clk, logger)
		require.NoError(t, auth.EnsureAdmin(ctx, "", ""))

		_, err := auth.Login(ctx, reqdto.LoginRequest{Email: "owner@guesthouse.tn", Password: "s3cret-pass"})
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})
}
