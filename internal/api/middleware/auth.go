package middleware

import (
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/security"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenCookie 页面登录后写入的 cookie 名
const TokenCookie = "token"

var (
	errTokenMissing = errors.New("token missing")
	errTokenRevoked = errors.New("token revoked")
	errInvalidToken = errors.New("token invalid")
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, token, err := authenticate(c)
		if err != nil {
			switch {
			case errors.Is(err, errTokenMissing):
				response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			case errors.Is(err, errTokenRevoked), errors.Is(err, errInvalidToken):
				response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			default:
				response.Error(c, err)
			}
			return
		}

		setIdentity(c, claims, token)
		c.Next()
	}
}

// authenticate 优先读取 Authorization 头，其次读取 cookie，并检查 redis 黑名单
func authenticate(c *gin.Context) (*security.UserClaims, string, error) {
	token := bearerToken(c)
	if token == "" {
		return nil, "", errTokenMissing
	}

	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil, "", errInvalidToken
	}
	revoked, err := redis.Exists(c.Request.Context(), consts.TokenBlacklist+signature)
	if err != nil {
		return nil, "", err
	}
	if revoked {
		return nil, "", errTokenRevoked
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		return nil, "", errInvalidToken
	}
	return claims, token, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

func setIdentity(c *gin.Context, claims *security.UserClaims, token string) {
	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("token", token)
}
