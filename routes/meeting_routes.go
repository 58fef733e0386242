package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zhaoyk90/estate_crm/controllers"
)

// RegisterMeetingRoutes 注册带看相关路由
func RegisterMeetingRoutes(router *gin.Engine) {
	meetingRoutes := router.Group("/api/meetings")

	meetingRoutes.POST("/", controllers.CreateMeeting)
	meetingRoutes.PUT("/:id", controllers.UpdateMeeting)
	meetingRoutes.DELETE("/:id", controllers.DeleteMeeting)

	// 带看物件只能通过父记录读改写
	meetingRoutes.POST("/:id/properties", controllers.AddPropertyEntry)
	meetingRoutes.PUT("/:id/properties/:propertyId", controllers.UpdatePropertyEntry)
	meetingRoutes.DELETE("/:id/properties/:propertyId", controllers.DeletePropertyEntry)
}
