package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"schoolhub_backend/internals/configs"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

/* =========================
   Access token
========================= */

const AccessTokenTTL = 24 * time.Hour

// IssueAccessToken signs a JWT carrying the user's identity and the role
// resolved at login. Role changes therefore take effect at the next login.
func IssueAccessToken(user *userModel.UserModel, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      role,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
