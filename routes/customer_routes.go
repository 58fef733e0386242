package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zhaoyk90/estate_crm/controllers"
)

// RegisterCustomerRoutes 注册客户相关路由
func RegisterCustomerRoutes(router *gin.Engine) {
	customerRoutes := router.Group("/api/customers")

	customerRoutes.GET("/", controllers.GetCustomerList)
	customerRoutes.POST("/", controllers.CreateCustomer)
	customerRoutes.GET("/export", controllers.ExportCustomersExcel)
	customerRoutes.GET("/:id", controllers.GetCustomerDetail)
	customerRoutes.PUT("/:id", controllers.UpdateCustomer)
	customerRoutes.DELETE("/:id", controllers.DeleteCustomer)
	customerRoutes.GET("/:id/activities", controllers.GetCustomerActivities)
	customerRoutes.GET("/:id/meetings", controllers.GetCustomerMeetings)
}
