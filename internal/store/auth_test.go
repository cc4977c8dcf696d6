package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	models "github.com/dubaitostars/starclient/internal"
	"github.com/dubaitostars/starclient/internal/store"
	"github.com/dubaitostars/starclient/pkg/token"
)

type mockAuthAPI struct {
	mock.Mock
}

func (m *mockAuthAPI) Login(ctx context.Context, creds models.Credentials) (models.AuthToken, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(models.AuthToken), args.Error(1)
}

func (m *mockAuthAPI) Register(ctx context.Context, req models.UserCreate) (models.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockAuthAPI) CurrentUser(ctx context.Context) (models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockAuthAPI) UpdatePreferences(ctx context.Context, preferences map[string]any) (models.User, error) {
	args := m.Called(ctx, preferences)
	return args.Get(0).(models.User), args.Error(1)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

var traveler = models.User{ID: "user-1", Email: "traveler@example.com", Name: "Ada"}

func TestLoginPersistsTokenAndUser(t *testing.T) {
	api := new(mockAuthAPI)
	tokens := token.NewMemoryStore()
	s := store.NewAuthStore(api, tokens)

	creds := models.Credentials{Email: "traveler@example.com", Password: "Sup3rSecret"}
	valid := signedToken(t, time.Now().Add(time.Hour))
	api.On("Login", mock.Anything, creds).Return(models.AuthToken{AccessToken: valid, TokenType: "bearer"}, nil)
	api.On("CurrentUser", mock.Anything).Return(traveler, nil)

	user, err := s.LoginUser(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, traveler, user)
	assert.True(t, s.IsAuthenticated())

	stored, err := tokens.Token()
	require.NoError(t, err)
	assert.Equal(t, valid, stored)
	api.AssertExpectations(t)
}

func TestCheckAuthReusesStoredToken(t *testing.T) {
	api := new(mockAuthAPI)
	tokens := token.NewMemoryStore()
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(time.Hour))))
	s := store.NewAuthStore(api, tokens)

	api.On("CurrentUser", mock.Anything).Return(traveler, nil)

	require.NoError(t, s.CheckAuth(context.Background()))
	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, traveler.ID, s.User().ID)
	// Credentials were never re-submitted.
	api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestCheckAuthNoToken(t *testing.T) {
	api := new(mockAuthAPI)
	s := store.NewAuthStore(api, token.NewMemoryStore())

	require.NoError(t, s.CheckAuth(context.Background()))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.LastError())
	api.AssertNotCalled(t, "CurrentUser", mock.Anything)
}

func TestCheckAuthExpiredTokenShortCircuits(t *testing.T) {
	api := new(mockAuthAPI)
	tokens := token.NewMemoryStore()
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(-time.Hour))))
	s := store.NewAuthStore(api, tokens)

	err := s.CheckAuth(context.Background())
	assert.ErrorIs(t, err, models.ErrTokenExpired)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, store.ErrMsgSessionExpired, s.LastError())

	_, err = tokens.Token()
	assert.ErrorIs(t, err, models.ErrNoToken, "expired token must be dropped")
	api.AssertNotCalled(t, "CurrentUser", mock.Anything)
}

func TestCheckAuthRejectedTokenClearsSession(t *testing.T) {
	api := new(mockAuthAPI)
	tokens := token.NewMemoryStore()
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(time.Hour))))
	s := store.NewAuthStore(api, tokens)

	api.On("CurrentUser", mock.Anything).Return(models.User{}, models.ErrUnauthorized)

	err := s.CheckAuth(context.Background())
	require.Error(t, err)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Equal(t, store.ErrMsgSessionExpired, s.LastError())

	_, err = tokens.Token()
	assert.ErrorIs(t, err, models.ErrNoToken)
}

func TestRegisterLogsStraightIn(t *testing.T) {
	api := new(mockAuthAPI)
	tokens := token.NewMemoryStore()
	s := store.NewAuthStore(api, tokens)

	req := models.UserCreate{Email: "new@example.com", Password: "Sup3rSecret", Name: "New"}
	newUser := models.User{ID: "user-2", Email: req.Email, Name: req.Name}
	valid := signedToken(t, time.Now().Add(time.Hour))

	api.On("Register", mock.Anything, req).Return(newUser, nil)
	api.On("Login", mock.Anything, models.Credentials{Email: req.Email, Password: req.Password}).
		Return(models.AuthToken{AccessToken: valid}, nil)
	api.On("CurrentUser", mock.Anything).Return(newUser, nil)

	user, err := s.RegisterUser(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "user-2", user.ID)
	assert.True(t, s.IsAuthenticated())
	api.AssertExpectations(t)
}

func TestLoginFailureSetsMessage(t *testing.T) {
	api := new(mockAuthAPI)
	s := store.NewAuthStore(api, token.NewMemoryStore())

	api.On("Login", mock.Anything, mock.Anything).
		Return(models.AuthToken{}, errors.New("bad credentials"))

	_, err := s.LoginUser(context.Background(), models.Credentials{Email: "x@y.com", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, store.ErrMsgLoginFailed, s.LastError())
	assert.False(t, s.IsAuthenticated())
}

func TestLogoutClearsEverything(t *testing.T) {
	api := new(mockAuthAPI)
	tokens := token.NewMemoryStore()
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(time.Hour))))
	s := store.NewAuthStore(api, tokens)

	api.On("CurrentUser", mock.Anything).Return(traveler, nil)
	require.NoError(t, s.CheckAuth(context.Background()))
	require.True(t, s.IsAuthenticated())

	require.NoError(t, s.LogoutUser())
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	_, err := tokens.Token()
	assert.ErrorIs(t, err, models.ErrNoToken)
}

func TestUpdatePreferences(t *testing.T) {
	api := new(mockAuthAPI)
	s := store.NewAuthStore(api, token.NewMemoryStore())

	prefs := map[string]any{"seat": "window"}
	updated := traveler
	updated.Preferences = prefs
	api.On("UpdatePreferences", mock.Anything, prefs).Return(updated, nil)

	user, err := s.UpdatePreferences(context.Background(), prefs)
	require.NoError(t, err)
	assert.Equal(t, "window", user.Preferences["seat"])
	require.NotNil(t, s.User())
	assert.Equal(t, "window", s.User().Preferences["seat"])
}
