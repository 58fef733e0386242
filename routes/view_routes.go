package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zhaoyk90/estate_crm/controllers"
)

// RegisterViewRoutes 注册视图计数路由
func RegisterViewRoutes(router *gin.Engine) {
	viewRoutes := router.Group("/api/views")

	viewRoutes.GET("/counts", controllers.GetViewCounts)
}
