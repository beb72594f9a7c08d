// apps/solver/internal/httpserver/auth.go
//
// Admin auth for the simulate endpoint. There is a single principal:
// whoever knows the admin password (bcrypt hash in ADMIN_PASSWORD_HASH)
// gets a short-lived HS256 token with an admin role claim.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// loginReq is the payload for POST /api/auth/login.
type loginReq struct {
	Password string `json:"password"`
}

// handleLogin verifies the admin password and issues a token.
// The token is returned in the body and set as a cookie, so both
// script and browser clients work.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		http.Error(w, `{"error":"auth_not_configured"}`, http.StatusServiceUnavailable)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(body.Password)) != nil {
		http.Error(w, `{"error":"Invalid password"}`, http.StatusUnauthorized)
		return
	}
	tok, exp, err := signJWT()
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	setAuthCookie(w, tok, exp)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token":     tok,
		"expiresAt": exp.UTC().Format(time.RFC3339),
	})
}

// signJWT creates an HS256 JWT with an admin role claim and a
// configurable expiry (JWT_TTL_MINUTES; default 60).
func signJWT() (string, time.Time, error) {
	secret := envStr("JWT_SECRET", "dev_secret_change_me")
	mins := 60
	if v := os.Getenv("JWT_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			mins = n
		}
	}
	exp := time.Now().Add(time.Duration(mins) * time.Minute)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// setAuthCookie writes the auth token cookie with appropriate security
// attributes.
func setAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	name := envStr("COOKIE_NAME", "solver_token")
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or
// the auth cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(envStr("COOKIE_NAME", "solver_token")); err == nil {
		return c.Value
	}
	return ""
}

// requireAuth enforces a valid admin JWT.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerOrCookie(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(envStr("JWT_SECRET", "dev_secret_change_me")), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			if role, _ := claims["role"].(string); role != "admin" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
