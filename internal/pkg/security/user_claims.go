package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	JWTSecret         = "inkwell"
	JWTExpirationTime = time.Hour * 24
)

// Configure 用配置覆盖默认的密钥与过期时间
func Configure(secret string, expirationHours int) {
	if secret != "" {
		JWTSecret = secret
	}
	if expirationHours > 0 {
		JWTExpirationTime = time.Duration(expirationHours) * time.Hour
	}
}

// UserClaims Token 中携带的用户信息
type UserClaims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
