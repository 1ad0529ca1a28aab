package service

import (
	"context"
	"testing"

	"warungpos/internal/apierror"
	"warungpos/internal/config"
	"warungpos/internal/dto"
	"warungpos/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:    "access-secret-test",
		JWTRefreshSecret:   "refresh-secret-test",
		AccessTokenMinutes: 15,
		RefreshTokenHours:  168,
	}
}

func seedLoginUser(t *testing.T, users *stubUserRepo) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{Name: "Budi Santoso", Username: "budi", PasswordHash: string(hash), Role: "admin"}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestLoginIssuesAndPersistsTokens(t *testing.T) {
	users := newStubUserRepo()
	user := seedLoginUser(t, users)
	cfg := authTestConfig()
	svc := NewAuthService(users, cfg)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "budi", Password: "rahasia123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "budi", resp.User.Username)

	// Refresh token is persisted verbatim on the user row
	stored, err := users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, resp.RefreshToken, *stored.RefreshToken)

	// Access token carries identity claims signed with the access secret
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTAccessSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["userId"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	users := newStubUserRepo()
	seedLoginUser(t, users)
	svc := NewAuthService(users, authTestConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "budi", Password: "salah"})
	require.Error(t, err)
	assert.Equal(t, 401, apierror.StatusOf(err))
	assert.EqualError(t, err, "Invalid username or password.")
}

func TestLoginUnknownUsernameSameError(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), authTestConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "tidakada", Password: "apapun"})
	require.Error(t, err)
	assert.Equal(t, 401, apierror.StatusOf(err))
	// Same message as a wrong password, no username probing
	assert.EqualError(t, err, "Invalid username or password.")
}

func TestRefreshReturnsNewAccessToken(t *testing.T) {
	users := newStubUserRepo()
	seedLoginUser(t, users)
	svc := NewAuthService(users, authTestConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "budi", Password: "rahasia123"})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshRejectsRotatedToken(t *testing.T) {
	users := newStubUserRepo()
	seedLoginUser(t, users)
	svc := NewAuthService(users, authTestConfig())

	first, err := svc.Login(context.Background(), dto.LoginRequest{Username: "budi", Password: "rahasia123"})
	require.NoError(t, err)

	// A second login rotates the persisted refresh token
	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "budi", Password: "rahasia123"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, 403, apierror.StatusOf(err))
	assert.EqualError(t, err, "Invalid or expired refresh token.")
}

func TestRefreshRejectsForgedToken(t *testing.T) {
	users := newStubUserRepo()
	user := seedLoginUser(t, users)
	svc := NewAuthService(users, authTestConfig())

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID.String(),
		"role":   "superadmin",
	})
	signed, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), signed)
	require.Error(t, err)
	assert.Equal(t, 403, apierror.StatusOf(err))
}

func TestLogoutClearsRefreshToken(t *testing.T) {
	users := newStubUserRepo()
	user := seedLoginUser(t, users)
	svc := NewAuthService(users, authTestConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "budi", Password: "rahasia123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), user.ID))

	stored, err := users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.RefreshToken)

	// The old refresh token no longer works
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, 403, apierror.StatusOf(err))
}
