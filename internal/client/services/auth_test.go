package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlane/eventlane/internal/client/session"
	"github.com/eventlane/eventlane/internal/client/validate"
)

func TestAuthService_Login_StoresSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	backend := &stubBackend{t: t, post: func(ctx context.Context, path string, body, out any) error {
		require.Equal(t, "/auth/login", path)
		// the api layer has already unwrapped {success:true,data:...}
		decodeInto(t, `{"token":"abc","_id":"1","name":"A","email":"a@b.com"}`, out)
		return nil
	}}

	s := NewAuthService(backend, store, testLogger())
	user, err := s.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	stored, err := store.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "1", stored.ID)
	assert.Equal(t, "a@b.com", stored.Email)
}

func TestAuthService_Login_ValidatesBeforeNetwork(t *testing.T) {
	// no stub methods set: any network call fails the test
	s := NewAuthService(&stubBackend{t: t}, session.NewMemoryStore(), testLogger())

	_, err := s.Login(context.Background(), "not-an-email", "secret1")
	require.Error(t, err)

	_, err = s.Login(context.Background(), "a@b.com", "x")
	require.Error(t, err)
}

func TestAuthService_Login_MissingToken(t *testing.T) {
	backend := &stubBackend{t: t, post: func(ctx context.Context, path string, body, out any) error {
		decodeInto(t, `{"_id":"1"}`, out)
		return nil
	}}
	s := NewAuthService(backend, session.NewMemoryStore(), testLogger())

	_, err := s.Login(context.Background(), "a@b.com", "secret1")
	require.ErrorContains(t, err, "no token")
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.SetToken(ctx, "abc"))

	s := NewAuthService(&stubBackend{t: t}, store, testLogger())
	require.NoError(t, s.Logout(ctx))

	token, _ := store.Token(ctx)
	assert.Empty(t, token)
}

func TestAuthService_UpdateProfile_OverwritesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	backend := &stubBackend{t: t, put: func(ctx context.Context, path string, body, out any) error {
		require.Equal(t, "/users/profile", path)
		decodeInto(t, `{"_id":"1","name":"New Name","email":"a@b.com"}`, out)
		return nil
	}}

	s := NewAuthService(backend, store, testLogger())
	user, err := s.UpdateProfile(ctx, validate.ProfileForm{Name: "New Name", Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)

	stored, _ := store.User(ctx)
	require.NotNil(t, stored)
	assert.Equal(t, "New Name", stored.Name)
}

func TestAuthService_SignupWizard_Validation(t *testing.T) {
	s := NewAuthService(&stubBackend{t: t}, session.NewMemoryStore(), testLogger())

	err := s.SignupInitiate(context.Background(), validate.SignupForm{Name: "", Email: "a@b.com", Password: "secret1"})
	require.Error(t, err)

	err = s.SignupVerify(context.Background(), "a@b.com", "12x456")
	require.Error(t, err)
}

func TestAuthService_TokenExpiry_NotLoggedIn(t *testing.T) {
	s := NewAuthService(&stubBackend{t: t}, session.NewMemoryStore(), testLogger())
	_, err := s.TokenExpiry(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}
