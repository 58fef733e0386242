package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhaoyk90/estate_crm/repository"
	"github.com/zhaoyk90/estate_crm/service"
	"github.com/zhaoyk90/estate_crm/utils"
)

// GetViewCounts 获取侧边栏角标数字
// 视图计数永远基于全量客户集合，进展子计数按当前激活的主状态过滤
func GetViewCounts(c *gin.Context) {
	activeStatus := c.DefaultQuery("status", service.ViewAll)

	ctx := context.Background()
	snapshot, err := repository.LoadSnapshot(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	counts := service.ComputeCounts(snapshot.Customers, snapshot.Activities, snapshot.Meetings, now)
	progressCounts := service.ComputeProgressCounts(snapshot.Customers, activeStatus)

	c.JSON(http.StatusOK, gin.H{
		"counts":         counts,
		"progressCounts": progressCounts,
	})
}
