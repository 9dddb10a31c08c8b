package userControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bilalhossainshah/ecommerce-api/auth"
	"github.com/bilalhossainshah/ecommerce-api/models"
	"github.com/bilalhossainshah/ecommerce-api/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupUserRoutes(r, db)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &testEnv{server: server, db: db}
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body
}

func (env *testEnv) register(t *testing.T, email, password string) models.User {
	t.Helper()
	resp := postJSON(t, env.server.URL+"/users/register/", map[string]string{
		"email":     email,
		"full_name": "Test User",
		"password":  password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var user models.User
	require.NoError(t, env.db.Where("email = ?", email).First(&user).Error)
	return user
}

func (env *testEnv) verify(t *testing.T, user models.User) {
	t.Helper()
	require.NotNil(t, user.VerificationToken)
	resp := postJSON(t, env.server.URL+"/users/verify-email/", map[string]string{
		"code": *user.VerificationToken,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "alice@example.com", "secret123")

	resp := postJSON(t, env.server.URL+"/users/register/", map[string]string{
		"email":    "alice@example.com",
		"password": "another-pass",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterStoresVerificationState(t *testing.T) {
	env := setupTestEnv(t)
	user := env.register(t, "alice@example.com", "secret123")

	assert.False(t, user.IsVerified)
	assert.True(t, user.IsActive)
	require.NotNil(t, user.VerificationToken)
	assert.Len(t, *user.VerificationToken, 6)
	assert.NotEqual(t, "secret123", user.HashedPassword)
	assert.True(t, auth.CheckPasswordHash("secret123", user.HashedPassword))
}

func TestLoginUnverifiedAccount(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "alice@example.com", "secret123")

	// correct password, still rejected
	resp := postJSON(t, env.server.URL+"/users/login/", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// wrong password is a credentials failure, not a verification one
	resp = postJSON(t, env.server.URL+"/users/login/", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// unknown email
	resp = postJSON(t, env.server.URL+"/users/login/", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestVerifyEmailThenLogin(t *testing.T) {
	env := setupTestEnv(t)
	user := env.register(t, "alice@example.com", "secret123")
	env.verify(t, user)

	var verified models.User
	require.NoError(t, env.db.First(&verified, user.ID).Error)
	assert.True(t, verified.IsVerified)
	assert.Nil(t, verified.VerificationToken, "code must be nulled after consumption")

	resp := postJSON(t, env.server.URL+"/users/login/", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "bearer", body["token_type"])
	assert.Equal(t, float64(user.ID), body["user_id"])

	tokenData, err := auth.VerifyToken(body["access_token"].(string))
	require.NoError(t, err)
	assert.Equal(t, user.ID, tokenData.UserID)
	assert.Equal(t, user.Email, tokenData.Email)
}

func TestVerifyEmailInvalidCode(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "alice@example.com", "secret123")

	resp := postJSON(t, env.server.URL+"/users/verify-email/", map[string]string{
		"code": "000000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	env := setupTestEnv(t)

	resp := postJSON(t, env.server.URL+"/users/forgot-password/", map[string]string{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestForgotThenResetPassword(t *testing.T) {
	env := setupTestEnv(t)
	user := env.register(t, "alice@example.com", "secret123")
	env.verify(t, user)

	resp := postJSON(t, env.server.URL+"/users/forgot-password/", map[string]string{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var withToken models.User
	require.NoError(t, env.db.First(&withToken, user.ID).Error)
	require.NotNil(t, withToken.ResetToken)
	require.NotNil(t, withToken.ResetTokenExpires)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *withToken.ResetTokenExpires, time.Minute)

	resp = postJSON(t, env.server.URL+"/users/reset-password/", map[string]string{
		"token":        *withToken.ResetToken,
		"new_password": "brand-new-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var afterReset models.User
	require.NoError(t, env.db.First(&afterReset, user.ID).Error)
	assert.Nil(t, afterReset.ResetToken, "reset token must be cleared")
	assert.Nil(t, afterReset.ResetTokenExpires)

	// old password no longer works, new one does
	resp = postJSON(t, env.server.URL+"/users/login/", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, env.server.URL+"/users/login/", map[string]string{
		"email":    "alice@example.com",
		"password": "brand-new-pass",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// token is single-use
	resp = postJSON(t, env.server.URL+"/users/reset-password/", map[string]string{
		"token":        *withToken.ResetToken,
		"new_password": "yet-another-pass",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestResetPasswordExpiredToken(t *testing.T) {
	env := setupTestEnv(t)
	user := env.register(t, "alice@example.com", "secret123")

	token := "expired-token"
	expires := time.Now().Add(-time.Minute)
	require.NoError(t, env.db.Model(&user).Updates(map[string]interface{}{
		"reset_token":         token,
		"reset_token_expires": expires,
	}).Error)

	resp := postJSON(t, env.server.URL+"/users/reset-password/", map[string]string{
		"token":        token,
		"new_password": "brand-new-pass",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGetUserByID(t *testing.T) {
	env := setupTestEnv(t)
	user := env.register(t, "alice@example.com", "secret123")

	resp, err := http.Get(fmt.Sprintf("%s/users/%d", env.server.URL, user.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotContains(t, body, "hashed_password")

	resp, err = http.Get(env.server.URL + "/users/9999")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
