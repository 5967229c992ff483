package app

import (
	"educrate/docs"
	"educrate/internal/middleware"
	"educrate/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/motivation", c.motivation.GetCurrent)

		api.POST("/users", c.user.Create)
		api.GET("/learning-assessment-questions", c.assessment.ListQuestions)

		// 学习包：创建走查询串参数，素材上传走 multipart
		api.POST("/learning-kits", c.kit.Create)
		api.GET("/learning-kits/:id", c.kit.Get)
		api.POST("/learning-kits/source-upload", c.kit.UploadSource)

		api.POST("/qa-sessions", c.qa.Ask)
		api.POST("/study-sessions/:id/end", c.studySession.End)

		// 以用户为根的子资源，顺带记录活跃时间
		users := api.Group("/users/:id")
		users.Use(middleware.ActivityMiddleware(repos.user))
		{
			users.GET("", c.user.Get)
			users.POST("/assessment", c.assessment.Submit)
			users.GET("/learning-kits", c.kit.ListByUser)
			users.POST("/study-session", c.studySession.Start)
			users.GET("/analytics", c.analytics.ForUser)
		}
	}
}
