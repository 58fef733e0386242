package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zhaoyk90/estate_crm/controllers"
)

// RegisterBackupRoutes 注册备份恢复路由
func RegisterBackupRoutes(router *gin.Engine) {
	backupRoutes := router.Group("/api/backup")

	backupRoutes.GET("/", controllers.ExportBackup)
	backupRoutes.POST("/restore", controllers.RestoreBackup)
}
