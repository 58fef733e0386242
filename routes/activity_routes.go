package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zhaoyk90/estate_crm/controllers"
)

// RegisterActivityRoutes 注册活动相关路由
func RegisterActivityRoutes(router *gin.Engine) {
	activityRoutes := router.Group("/api/activities")

	activityRoutes.POST("/", controllers.CreateActivity)
	activityRoutes.PUT("/:id", controllers.UpdateActivity)
	activityRoutes.DELETE("/:id", controllers.DeleteActivity)

	// 跟进记录只能通过父活动读改写
	activityRoutes.POST("/:id/follow-ups", controllers.AddFollowUp)
	activityRoutes.PUT("/:id/follow-ups/:followUpId", controllers.UpdateFollowUp)
	activityRoutes.DELETE("/:id/follow-ups/:followUpId", controllers.DeleteFollowUp)
}
