package middleware

import (
	"github.com/gin-gonic/gin"
)

type UserActivityRepo interface {
	UpdateLastSeen(userID string) error
}

// ActivityMiddleware 挂在 /api/users/:id 路由组上，记录用户最近活跃时间
func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.Param("id"); id != "" {
			// 异步更新，不阻塞主流程
			go repo.UpdateLastSeen(id)
		}
		c.Next()
	}
}
