package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
)

const TokenTTL = time.Hour * 24

func CreateJWTToken(userID string, userName string, role string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["name"] = userName
	claims["role"] = role
	claims["exp"] = time.Now().Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// ExtractTokenUser reads the claims the echo JWT middleware stored under "user".
func ExtractTokenUser(c echo.Context) (userID string, role string, err error) {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return "", "", errs.ErrNotLoggedIn
	}

	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errs.ErrNotLoggedIn
	}

	userID, _ = claims["userID"].(string)
	role, _ = claims["role"].(string)
	if userID == "" {
		return "", "", errs.ErrNotLoggedIn
	}

	return userID, role, nil
}
