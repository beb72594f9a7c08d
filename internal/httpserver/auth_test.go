package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setAdminPassword(t *testing.T, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
}

func signTestToken(t *testing.T, secret, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	ss, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return ss
}

func TestLoginNotConfigured(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	s := newTestServer(t)

	rr := doReq(s, http.MethodPost, "/api/auth/login", `{"password":"x"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "auth_not_configured")
}

func TestLoginWrongPassword(t *testing.T) {
	setAdminPassword(t, "hunter2")
	s := newTestServer(t)

	rr := doReq(s, http.MethodPost, "/api/auth/login", `{"password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid password")
}

func TestLoginBadJSON(t *testing.T) {
	setAdminPassword(t, "hunter2")
	s := newTestServer(t)

	rr := doReq(s, http.MethodPost, "/api/auth/login", `{"password":`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid_json")
}

func TestLoginIssuesTokenAndCookie(t *testing.T) {
	setAdminPassword(t, "hunter2")
	t.Setenv("JWT_SECRET", "test_secret")
	t.Setenv("COOKIE_NAME", "solver_token")
	s := newTestServer(t)

	rr := doReq(s, http.MethodPost, "/api/auth/login", `{"password":"hunter2"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expiresAt"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Token)
	_, err := time.Parse(time.RFC3339, res.ExpiresAt)
	assert.NoError(t, err)

	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == "solver_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login sets the token cookie")
	assert.Equal(t, res.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// The issued token must satisfy the gate it was issued for.
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "admin", claims["role"])
}

func TestRequireAuthRejections(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	s := newTestServer(t)

	rr := doReq(s, http.MethodPost, "/api/simulate", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Unauthorized")

	rr = doReq(s, http.MethodPost, "/api/simulate", "", map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid token")

	wrongSecret := signTestToken(t, "other_secret", "admin")
	rr = doReq(s, http.MethodPost, "/api/simulate", "", map[string]string{
		"Authorization": "Bearer " + wrongSecret,
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	wrongRole := signTestToken(t, "test_secret", "viewer")
	rr = doReq(s, http.MethodPost, "/api/simulate", "", map[string]string{
		"Authorization": "Bearer " + wrongRole,
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid token")
}
