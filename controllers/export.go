package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/zhaoyk90/estate_crm/repository"
	"github.com/zhaoyk90/estate_crm/service"
	"github.com/zhaoyk90/estate_crm/utils"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportCustomersExcel 把当前视图的客户列表导出为Excel
// 过滤和排序参数与列表接口一致，导出内容和表格里看到的行集完全相同
func ExportCustomersExcel(c *gin.Context) {
	view := c.DefaultQuery("view", service.ViewAll)
	progress := c.Query("progress")
	sortKey := c.Query("sortKey")
	sortDir := c.DefaultQuery("sortDir", string(service.SortAsc))

	// 排序参数的校验口径和列表接口保持一致，坏参数在两边都报400
	var dir service.SortDirection
	if sortKey != "" {
		if !service.IsValidSortKey(sortKey) {
			utils.HandleError(c, utils.CreateBadRequestError("无效的排序字段"))
			return
		}
		var ok bool
		dir, ok = service.ParseSortDirection(sortDir)
		if !ok {
			utils.HandleError(c, utils.CreateBadRequestError("无效的排序方向"))
			return
		}
	}

	ctx := context.Background()
	snapshot, err := repository.LoadSnapshot(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	customers := service.ComputeView(view, progress, snapshot.Customers, snapshot.Activities, snapshot.Meetings, now)

	if sortKey != "" {
		customers = service.ApplyColumnSort(customers, service.SortKey(sortKey), dir)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []interface{}{"序号", "物件类型", "客户名", "电话", "希望保证金(万)", "希望月租(万)", "意向区域", "希望入住日", "状态", "进展", "登记时间"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		utils.HandleError(c, err)
		return
	}

	for i, customer := range customers {
		row := []interface{}{
			i + 1,
			customer.PropertyType,
			customer.Name,
			customer.Phone,
			customer.HopefulDeposit,
			customer.HopefulMonthlyRent,
			customer.PreferredArea,
			customer.MoveInDate,
			string(customer.Status),
			customer.Progress,
			customer.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			utils.HandleError(c, err)
			return
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		utils.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("customers-%s-%s.xlsx", view, now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, excelContentType, buf.Bytes())

	utils.LogInfo(map[string]interface{}{
		"view":  view,
		"count": len(customers),
	}, "导出客户列表成功")
}
