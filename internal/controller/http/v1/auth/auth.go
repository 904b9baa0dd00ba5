package auth

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"directory/backend/foundation/web"
	"directory/backend/internal/auth"
	"directory/backend/internal/pkg/config"
)

type SignInRequest struct {
	Login    string `json:"login" form:"login"`
	Password string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type Controller struct {
	auth     *auth.Auth
	accounts []config.Account
}

func NewController(a *auth.Auth, accounts []config.Account) *Controller {
	return &Controller{auth: a, accounts: accounts}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data SignInRequest

	if err := c.BindFunc(&data, "Login", "Password"); err != nil {
		return c.RespondError(err)
	}

	userID, account, ok := uc.findAccount(data.Login)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.New("incorrect login or password"), http.StatusUnauthorized))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("incorrect login or password"), http.StatusUnauthorized))
	}

	role := account.Role
	if role == "" {
		role = auth.RoleAdmin
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(userID, role)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data RefreshTokenRequest

	if err := c.BindFunc(&data, "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	accessToken, refreshToken, err := uc.auth.RefreshTokens(data.RefreshToken)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) findAccount(login string) (int, config.Account, bool) {
	for i, account := range uc.accounts {
		if account.Login == login {
			return i + 1, account, true
		}
	}

	return 0, config.Account{}, false
}
