package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"directory/backend/foundation/web"
	"directory/backend/internal/auth"
	"directory/backend/internal/pkg/config"
)

type tokenResponse struct {
	Status bool `json:"status"`
	Data   struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	} `json:"data"`
	Message string `json:"message"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	authenticator, err := auth.New("test-key")
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	controller := NewController(authenticator, []config.Account{
		{Login: "admin", PasswordHash: string(hash), Role: auth.RoleAdmin},
	})

	app := web.NewApp(zap.NewNop())
	app.Post("/api/v1/sign-in", controller.SignIn)
	app.Post("/api/v1/refresh-token", controller.RefreshToken)

	server := httptest.NewServer(app.Engine)
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, url, body string) (*http.Response, tokenResponse) {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded tokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp, decoded
}

func TestSignIn(t *testing.T) {
	server := newTestServer(t)

	resp, decoded := postJSON(t, server.URL+"/api/v1/sign-in", `{"login":"admin","password":"secret"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decoded.Status)
	assert.NotEmpty(t, decoded.Data.AccessToken)
	assert.NotEmpty(t, decoded.Data.RefreshToken)
}

func TestSignInWrongPassword(t *testing.T) {
	server := newTestServer(t)

	resp, decoded := postJSON(t, server.URL+"/api/v1/sign-in", `{"login":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, decoded.Status)
	assert.Equal(t, "incorrect login or password", decoded.Message)
}

func TestSignInUnknownLogin(t *testing.T) {
	server := newTestServer(t)

	resp, _ := postJSON(t, server.URL+"/api/v1/sign-in", `{"login":"nobody","password":"secret"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignInMissingFields(t *testing.T) {
	server := newTestServer(t)

	resp, _ := postJSON(t, server.URL+"/api/v1/sign-in", `{"login":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRefreshToken(t *testing.T) {
	server := newTestServer(t)

	_, signedIn := postJSON(t, server.URL+"/api/v1/sign-in", `{"login":"admin","password":"secret"}`)

	resp, refreshed := postJSON(t, server.URL+"/api/v1/refresh-token",
		`{"refresh_token":"`+signedIn.Data.RefreshToken+`"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, refreshed.Data.AccessToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	server := newTestServer(t)

	_, signedIn := postJSON(t, server.URL+"/api/v1/sign-in", `{"login":"admin","password":"secret"}`)

	resp, _ := postJSON(t, server.URL+"/api/v1/refresh-token",
		`{"refresh_token":"`+signedIn.Data.AccessToken+`"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
