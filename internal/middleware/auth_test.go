package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"directory/backend/foundation/web"
	"directory/backend/internal/auth"
)

func newProtectedServer(t *testing.T, a *auth.Auth, roles ...string) *httptest.Server {
	t.Helper()

	app := web.NewApp(zap.NewNop())
	app.Get("/protected", func(c *web.Context) error {
		claims, ok := c.Ctx.Value(auth.Key).(auth.Claims)
		require.True(t, ok)

		return c.Respond(map[string]interface{}{
			"data":   claims.Role,
			"status": true,
		}, http.StatusOK)
	}, Authenticate(a, roles...))

	server := httptest.NewServer(app.Engine)
	t.Cleanup(server.Close)

	return server
}

func get(t *testing.T, url, authorization string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestAuthenticate(t *testing.T) {
	a, err := auth.New("test-key")
	require.NoError(t, err)

	accessToken, _, err := a.GenerateTokens(1, auth.RoleAdmin)
	require.NoError(t, err)

	server := newProtectedServer(t, a, auth.RoleAdmin)

	testCases := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{"valid token", "Bearer " + accessToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, server.URL+"/protected", tc.authorization)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestAuthenticateRoleMismatch(t *testing.T) {
	a, err := auth.New("test-key")
	require.NoError(t, err)

	accessToken, _, err := a.GenerateTokens(1, auth.RoleDashboard)
	require.NoError(t, err)

	server := newProtectedServer(t, a, auth.RoleAdmin)

	resp := get(t, server.URL+"/protected", "Bearer "+accessToken)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateNoRoleRestriction(t *testing.T) {
	a, err := auth.New("test-key")
	require.NoError(t, err)

	accessToken, _, err := a.GenerateTokens(1, auth.RoleDashboard)
	require.NoError(t, err)

	server := newProtectedServer(t, a)

	resp := get(t, server.URL+"/protected", "Bearer "+accessToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
