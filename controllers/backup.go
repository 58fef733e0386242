package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhaoyk90/estate_crm/models"
	"github.com/zhaoyk90/estate_crm/repository"
	"github.com/zhaoyk90/estate_crm/utils"
)

// ExportBackup 导出三张集合的JSON快照
func ExportBackup(c *gin.Context) {
	ctx := context.Background()
	snapshot, err := repository.LoadSnapshot(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if snapshot.Customers == nil {
		snapshot.Customers = []models.Customer{}
	}
	if snapshot.Activities == nil {
		snapshot.Activities = []models.Activity{}
	}
	if snapshot.Meetings == nil {
		snapshot.Meetings = []models.Meeting{}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("customer-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/json", data)

	utils.LogInfo(map[string]interface{}{
		"customers":  len(snapshot.Customers),
		"activities": len(snapshot.Activities),
		"meetings":   len(snapshot.Meetings),
	}, "导出备份成功")
}

// RestoreBackup 从JSON快照恢复，按原 id 覆盖写入
// 记录往返备份后分类结果不变，这是快照格式唯一要守住的契约
func RestoreBackup(c *gin.Context) {
	var snapshot models.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的备份文件格式"})
		return
	}

	if snapshot.Customers == nil || snapshot.Activities == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的备份文件格式"})
		return
	}

	ctx := context.Background()
	if err := repository.RestoreSnapshot(ctx, &snapshot); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"customers":  len(snapshot.Customers),
		"activities": len(snapshot.Activities),
		"meetings":   len(snapshot.Meetings),
	}, "恢复备份成功")

	c.JSON(http.StatusOK, gin.H{"message": "数据恢复成功"})
}
