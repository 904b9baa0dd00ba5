package auth

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	RoleAdmin     = "ADMIN"
	RoleDashboard = "DASHBOARD"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

const (
	accessTokenTTL  = 3 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// ctxKey avoids context key collisions with other packages.
type ctxKey int

// Key is how claims are stored and retrieved from a context.Context.
const Key ctxKey = 1

type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
}

// Authorized reports whether the claims carry one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}

	return false
}

type Auth struct {
	key []byte
}

func New(key string) (*Auth, error) {
	if key == "" {
		return nil, errors.New("jwt key is required")
	}

	return &Auth{key: []byte(key)}, nil
}

// GenerateTokens mints an access and a refresh token pair for the user.
func (a *Auth) GenerateTokens(userID int, role string) (string, string, error) {
	accessToken, err := a.generate(userID, role, TypeAccess, accessTokenTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "generating access token")
	}

	refreshToken, err := a.generate(userID, role, TypeRefresh, refreshTokenTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "generating refresh token")
	}

	return accessToken, refreshToken, nil
}

// ValidateToken parses and verifies an access token.
func (a *Auth) ValidateToken(token string) (Claims, error) {
	claims, err := a.parse(token)
	if err != nil {
		return Claims{}, err
	}

	if claims.Type != TypeAccess {
		return Claims{}, errors.New("not an access token")
	}

	return claims, nil
}

// RefreshTokens exchanges a valid refresh token for a fresh pair.
func (a *Auth) RefreshTokens(refreshToken string) (string, string, error) {
	claims, err := a.parse(refreshToken)
	if err != nil {
		return "", "", err
	}

	if claims.Type != TypeRefresh {
		return "", "", errors.New("not a refresh token")
	}

	return a.GenerateTokens(claims.UserId, claims.Role)
}

func (a *Auth) generate(userID int, role, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
		UserId: userID,
		Role:   role,
		Type:   tokenType,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

func (a *Auth) parse(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}
