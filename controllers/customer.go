package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zhaoyk90/estate_crm/models"
	"github.com/zhaoyk90/estate_crm/repository"
	"github.com/zhaoyk90/estate_crm/service"
	"github.com/zhaoyk90/estate_crm/utils"
)

// GetCustomerList 获取当前视图下的客户列表
// 三张集合整体加载后交给视图引擎，本轮计算只取样一次当前时间
func GetCustomerList(c *gin.Context) {
	view := c.DefaultQuery("view", service.ViewAll)
	progress := c.Query("progress")
	sortKey := c.Query("sortKey")
	sortDir := c.DefaultQuery("sortDir", string(service.SortAsc))

	ctx := context.Background()
	snapshot, err := repository.LoadSnapshot(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	customers := service.ComputeView(view, progress, snapshot.Customers, snapshot.Activities, snapshot.Meetings, now)

	// 用户点过列头时，列排序覆盖视图默认排序
	if sortKey != "" {
		if !service.IsValidSortKey(sortKey) {
			utils.HandleError(c, utils.CreateBadRequestError("无效的排序字段"))
			return
		}
		dir, ok := service.ParseSortDirection(sortDir)
		if !ok {
			utils.HandleError(c, utils.CreateBadRequestError("无效的排序方向"))
			return
		}
		customers = service.ApplyColumnSort(customers, service.SortKey(sortKey), dir)
	}

	if customers == nil {
		customers = []models.Customer{}
	}

	utils.LogInfo(map[string]interface{}{
		"view":     view,
		"progress": progress,
		"count":    len(customers),
	}, "获取客户列表成功")

	c.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"total":     len(customers),
	})
}

// CreateCustomer 创建客户
func CreateCustomer(c *gin.Context) {
	var input models.CustomerUpsertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	customer, err := buildCustomer(&input)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	customer.ID = utils.NewID()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	ctx := context.Background()
	collection := repository.Collection(repository.CustomersCollection)
	if _, err := collection.InsertOne(ctx, customer); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"customerId": customer.ID,
		"name":       customer.Name,
	}, "创建客户成功")

	c.JSON(http.StatusCreated, gin.H{
		"message":  "创建客户成功",
		"customer": customer,
	})
}

// GetCustomerDetail 获取客户详情
func GetCustomerDetail(c *gin.Context) {
	id := c.Param("id")

	ctx := context.Background()
	collection := repository.Collection(repository.CustomersCollection)

	var customer models.Customer
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if err.Error() == "mongo: no documents in result" {
			c.JSON(http.StatusNotFound, gin.H{"error": "客户不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// UpdateCustomer 更新客户，整条记录覆盖写入
func UpdateCustomer(c *gin.Context) {
	id := c.Param("id")

	var input models.CustomerUpsertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()
	collection := repository.Collection(repository.CustomersCollection)

	var existing models.Customer
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if err != nil {
		if err.Error() == "mongo: no documents in result" {
			c.JSON(http.StatusNotFound, gin.H{"error": "客户不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	customer, err := buildCustomer(&input)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	customer.ID = existing.ID
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = time.Now()

	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": id}, customer); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"customerId": id,
	}, "更新客户成功")

	c.JSON(http.StatusOK, gin.H{
		"message":  "更新客户成功",
		"customer": customer,
	})
}

// DeleteCustomer 删除客户及其名下的活动和带看记录
func DeleteCustomer(c *gin.Context) {
	id := c.Param("id")

	ctx := context.Background()
	collection := repository.Collection(repository.CustomersCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "客户不存在或已被删除"})
		return
	}

	// 级联删除失败不影响主流程，残留的孤儿记录不会进入任何客户的派生事实
	if _, err := repository.Collection(repository.ActivitiesCollection).DeleteMany(ctx, bson.M{"customerid": id}); err != nil {
		utils.LogError(err, map[string]interface{}{"customerId": id}, "删除客户活动记录失败")
	}
	if _, err := repository.Collection(repository.MeetingsCollection).DeleteMany(ctx, bson.M{"customerid": id}); err != nil {
		utils.LogError(err, map[string]interface{}{"customerId": id}, "删除客户带看记录失败")
	}

	utils.LogInfo(map[string]interface{}{
		"customerId": id,
	}, "删除客户成功")

	c.JSON(http.StatusOK, gin.H{"message": "删除客户成功"})
}

// GetCustomerActivities 获取某个客户的活动记录，按活动时间倒序
func GetCustomerActivities(c *gin.Context) {
	customerID := c.Param("id")

	ctx := context.Background()
	collection := repository.Collection(repository.ActivitiesCollection)

	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := collection.Find(ctx, bson.M{"customerid": customerID}, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err = cursor.All(ctx, &activities); err != nil {
		utils.HandleError(c, err)
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetCustomerMeetings 获取某个客户的带看安排，按时间正序
func GetCustomerMeetings(c *gin.Context) {
	customerID := c.Param("id")

	ctx := context.Background()
	collection := repository.Collection(repository.MeetingsCollection)

	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := collection.Find(ctx, bson.M{"customerid": customerID}, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err = cursor.All(ctx, &meetings); err != nil {
		utils.HandleError(c, err)
		return
	}
	if meetings == nil {
		meetings = []models.Meeting{}
	}

	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// buildCustomer 校验请求并组装客户记录
// 状态变为 contracted / abandoned 时在写入侧清掉 progress，读取侧不做修复
func buildCustomer(input *models.CustomerUpsertRequest) (*models.Customer, error) {
	status := input.Status
	if status == "" {
		status = string(models.CustomerStatusNEW)
	}
	if !models.IsValidCustomerStatus(status) {
		return nil, utils.CreateBadRequestError("无效的客户状态: " + status)
	}
	if !utils.IsValidPhone(input.Phone) {
		return nil, utils.CreateBadRequestError("联系电话格式应为 010-XXXX-XXXX")
	}
	if !utils.IsValidISODate(input.MoveInDate) {
		return nil, utils.CreateBadRequestError("入住希望日格式应为 YYYY-MM-DD")
	}

	progress := input.Progress
	if progress != "" && !models.IsValidCustomerProgress(progress) {
		return nil, utils.CreateBadRequestError("无效的进展状态: " + progress)
	}
	if !models.StatusAllowsProgress(models.CustomerStatus(status)) {
		progress = ""
	}

	return &models.Customer{
		Name:               input.Name,
		Phone:              input.Phone,
		Source:             input.Source,
		PropertyType:       input.PropertyType,
		PreferredArea:      input.PreferredArea,
		HopefulDeposit:     input.HopefulDeposit,
		HopefulMonthlyRent: input.HopefulMonthlyRent,
		MoveInDate:         input.MoveInDate,
		Memo:               input.Memo,
		Status:             models.CustomerStatus(status),
		Progress:           progress,
	}, nil
}
