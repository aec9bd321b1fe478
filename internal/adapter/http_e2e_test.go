package adapter

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/Raphalinho91/user-accounts/internal/config"
	handler "github.com/Raphalinho91/user-accounts/internal/handler/http"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/service"
	"github.com/Raphalinho91/user-accounts/internal/store"
	"github.com/Raphalinho91/user-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer runs the full HTTP stack over an in-memory SQLite store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	cfg := config.Defaults()
	cfg.App.TokenSignKey = "e2e-sign-key"
	cfg.App.PasswordHashing = config.PasswordHashing{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	cfg.Storage.DB = config.DB{DSN: ":memory:", Driver: config.DriverSQLite}

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	storages := store.NewStorages(db, logger.Nop())
	services := service.NewServices(storages, cfg, models.NewAppBuildInfo("e2e", "", ""), logger.Nop())
	h := handler.NewHandler(services, storages.Pinger, cfg, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestAccountsClient_EndToEnd(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	alice := newTestClient(t, srv.URL)

	require.NoError(t, alice.Health(ctx))

	version, err := alice.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VersionResponse{Version: "e2e", Date: "N/A", Commit: "N/A"}, version)

	created, err := alice.SignUp(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)

	_, err = alice.SignUp(ctx, "alice", "other1")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = alice.SignUp(ctx, "al", "secret1")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = alice.LogIn(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = alice.LogIn(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, ErrNotFound)

	login, err := alice.LogIn(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created, login.PublicUser)
	assert.NotEmpty(t, alice.Token())

	newName := "alice2"
	updated, err := alice.UpdateUser(ctx, created.UserID, models.UpdateRequest{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, models.PublicUser{UserID: created.UserID, Username: "alice2"}, updated)

	found, err := alice.GetUser(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", found.Username)
	assert.NotEmpty(t, found.PasswordHash, "lookups return the stored record")

	// a second client with its own token cannot edit alice
	bob := newTestClient(t, srv.URL)
	bobUser, err := bob.SignUp(ctx, "bob", "secret2")
	require.NoError(t, err)
	_, err = bob.LogIn(ctx, "bob", "secret2")
	require.NoError(t, err)

	mallory := "mallory"
	_, err = bob.UpdateUser(ctx, created.UserID, models.UpdateRequest{Username: &mallory})
	assert.ErrorIs(t, err, ErrUnauthorized)

	anonymous := newTestClient(t, srv.URL)
	_, err = anonymous.UpdateUser(ctx, created.UserID, models.UpdateRequest{Username: &mallory})
	assert.ErrorIs(t, err, ErrUnauthorized)

	users, err := anonymous.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, bob.DeleteUser(ctx, bobUser.UserID))
	assert.ErrorIs(t, bob.DeleteUser(ctx, bobUser.UserID), ErrNotFound)

	_, err = anonymous.GetUser(ctx, bobUser.UserID)
	assert.ErrorIs(t, err, ErrNotFound)
}
