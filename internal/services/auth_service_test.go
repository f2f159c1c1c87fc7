package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adittooo01/SneakPick/internal/config"
	"github.com/Adittooo01/SneakPick/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := freshDB()
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&RegisterRequest{
		Username: "newuser",
		Email:    "new@test.com",
		Password: "Str0ng!Pass",
		Address:  "1 Main St",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	// Stored hash, not the raw password.
	var user models.User
	db.Where("email = ?", "new@test.com").First(&user)
	assert.NotEqual(t, "Str0ng!Pass", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("Str0ng!Pass"))

	login, err := svc.Login(&LoginRequest{Email: "new@test.com", Password: "Str0ng!Pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotNil(t, login.User.LastLoginAt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := freshDB()
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{Username: "first", Email: "dup@test.com", Password: "Str0ng!Pass"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterRequest{Username: "second", Email: "dup@test.com", Password: "Str0ng!Pass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := freshDB()
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{Username: "taken", Email: "a@test.com", Password: "Str0ng!Pass"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterRequest{Username: "taken", Email: "b@test.com", Password: "Str0ng!Pass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already taken")
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	db := freshDB()
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{Username: "weak", Email: "weak@test.com", Password: "password"})
	require.Error(t, err)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLoginWrongPassword(t *testing.T) {
	db := freshDB()
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{Username: "victim", Email: "victim@test.com", Password: "Str0ng!Pass"})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same message.
	_, err = svc.Login(&LoginRequest{Email: "victim@test.com", Password: "Wr0ng!Pass1"})
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())

	_, err = svc.Login(&LoginRequest{Email: "nobody@test.com", Password: "Str0ng!Pass"})
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	db := freshDB()
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&RegisterRequest{Username: "refresher", Email: "refresh@test.com", Password: "Str0ng!Pass"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	db := freshDB()
	svc := NewAuthService(db, testConfig())

	_, err := svc.RefreshToken("not-a-token")
	require.Error(t, err)
}
