package middleware

import (
	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败或缺失则 UID 为 0
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, token, err := authenticate(c)
		if err != nil {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		setIdentity(c, claims, token)
		c.Next()
	}
}
