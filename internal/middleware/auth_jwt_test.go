package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"ecogood/internal/config"
)

func testConfig() config.Config {
	return config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func invoke(cfg config.Config, authz string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	_ = h(c)

	return rec, c
}

func TestAuthJWT_ValidTokenSetsIdentity(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": "USER",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})

	rec, c := invoke(cfg, "Bearer "+token, AuthJWT(cfg))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), c.Get(CtxUserIDKey))
	assert.Equal(t, "USER", c.Get(CtxUserRoleKey))
}

func TestAuthJWT_Rejections(t *testing.T) {
	cfg := testConfig()

	expired := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": "USER",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"sub":  7,
		"role": "USER",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})
	noRole := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": 7,
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	cases := []struct {
		name  string
		authz string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.token"},
		{"expired", "Bearer " + expired},
		{"wrong key", "Bearer " + wrongKey},
		{"missing role claim", "Bearer " + noRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := invoke(cfg, tc.authz, AuthJWT(cfg))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAdminRoleGuard(t *testing.T) {
	cfg := testConfig()

	userToken := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": "USER",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})
	adminToken := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  9,
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})

	rec, _ := invoke(cfg, "Bearer "+userToken, AuthJWT(cfg), AdminRoleGuard())
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = invoke(cfg, "Bearer "+adminToken, AuthJWT(cfg), AdminRoleGuard())
	assert.Equal(t, http.StatusOK, rec.Code)

	// Guard without a prior identity is unauthorized, not forbidden.
	rec, _ = invoke(cfg, "", AdminRoleGuard())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
