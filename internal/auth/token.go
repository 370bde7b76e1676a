package auth

import (
	"errors"
	"time"

	"critgo/backend/internal/authz"
	"critgo/backend/internal/models"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 72 * time.Hour

var ErrInvalidToken = errors.New("token invalido o expirado")

// Claims is the validated content of a bearer token.
type Claims struct {
	Caller authz.Caller
	JTI    string
	Expiry time.Time
}

// TokenService issues and validates the HS256 bearer tokens used by the API
// and the websocket endpoint.
type TokenService struct {
	Secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{Secret: []byte(secret)}
}

// Issue signs a token for the account. The jti claim lets logout revoke the
// token for its remaining lifetime.
func (t *TokenService) Issue(u *models.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"username": u.UserName,
		"rol":      u.Rol,
		"jti":      uuid.New().String(),
		"exp":      time.Now().Add(tokenTTL).Unix(),
		"iss":      "crit-backend",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.Secret)
}

// Parse validates the signature and expiry and extracts the caller identity.
func (t *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	username, _ := mapClaims["username"].(string)
	rol, _ := mapClaims["rol"].(string)
	jti, _ := mapClaims["jti"].(string)
	if sub == "" || rol == "" {
		return nil, ErrInvalidToken
	}

	var expiry time.Time
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		expiry = exp.Time
	}

	return &Claims{
		Caller: authz.Caller{ID: sub, UserName: username, Rol: rol},
		JTI:    jti,
		Expiry: expiry,
	}, nil
}
