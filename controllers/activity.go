package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zhaoyk90/estate_crm/models"
	"github.com/zhaoyk90/estate_crm/repository"
	"github.com/zhaoyk90/estate_crm/utils"
)

// CreateActivity 创建活动记录
func CreateActivity(c *gin.Context) {
	var input models.ActivityUpsertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	if !models.IsValidActivityType(input.Type) {
		utils.HandleError(c, utils.CreateBadRequestError("无效的活动类型: "+input.Type))
		return
	}

	ctx := context.Background()

	// 验证客户是否存在
	if err := ensureCustomerExists(ctx, input.CustomerID); err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	activity := models.Activity{
		ID:         utils.NewID(),
		CustomerID: input.CustomerID,
		Type:       models.ActivityType(input.Type),
		Date:       input.Date,
		Content:    input.Content,
		FollowUps:  []models.FollowUp{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	collection := repository.Collection(repository.ActivitiesCollection)
	if _, err := collection.InsertOne(ctx, activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"activityId": activity.ID,
		"customerId": activity.CustomerID,
	}, "创建活动记录成功")

	c.JSON(http.StatusCreated, gin.H{
		"message":  "创建活动记录成功",
		"activity": activity,
	})
}

// UpdateActivity 更新活动记录，保留已有的跟进列表
func UpdateActivity(c *gin.Context) {
	id := c.Param("id")

	var input models.ActivityUpsertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	if !models.IsValidActivityType(input.Type) {
		utils.HandleError(c, utils.CreateBadRequestError("无效的活动类型: "+input.Type))
		return
	}

	ctx := context.Background()
	activity, err := findActivity(ctx, id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	activity.Type = models.ActivityType(input.Type)
	activity.Date = input.Date
	activity.Content = input.Content
	activity.UpdatedAt = time.Now()

	collection := repository.Collection(repository.ActivitiesCollection)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": id}, activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "更新活动记录成功",
		"activity": activity,
	})
}

// DeleteActivity 删除活动记录，跟进列表随父记录一并删除
func DeleteActivity(c *gin.Context) {
	id := c.Param("id")

	ctx := context.Background()
	collection := repository.Collection(repository.ActivitiesCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "活动记录不存在或已被删除"})
		return
	}

	utils.LogInfo(map[string]interface{}{
		"activityId": id,
	}, "删除活动记录成功")

	c.JSON(http.StatusOK, gin.H{"message": "删除活动记录成功"})
}

// AddFollowUp 追加跟进记录，通过父活动整条读改写完成
func AddFollowUp(c *gin.Context) {
	activityID := c.Param("id")

	var input models.FollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()
	activity, err := findActivity(ctx, activityID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	followUp := models.FollowUp{
		ID:        utils.NewID(),
		Content:   input.Content,
		CreatedAt: time.Now(),
	}
	activity.FollowUps = append(activity.FollowUps, followUp)
	activity.UpdatedAt = followUp.CreatedAt

	collection := repository.Collection(repository.ActivitiesCollection)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": activityID}, activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "追加跟进记录成功",
		"followUp": followUp,
	})
}

// UpdateFollowUp 修改跟进记录内容
func UpdateFollowUp(c *gin.Context) {
	activityID := c.Param("id")
	followUpID := c.Param("followUpId")

	var input models.FollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()
	activity, err := findActivity(ctx, activityID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	found := false
	for i := range activity.FollowUps {
		if activity.FollowUps[i].ID == followUpID {
			activity.FollowUps[i].Content = input.Content
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "跟进记录不存在"})
		return
	}
	activity.UpdatedAt = time.Now()

	collection := repository.Collection(repository.ActivitiesCollection)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": activityID}, activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "更新跟进记录成功"})
}

// DeleteFollowUp 删除跟进记录
func DeleteFollowUp(c *gin.Context) {
	activityID := c.Param("id")
	followUpID := c.Param("followUpId")

	ctx := context.Background()
	activity, err := findActivity(ctx, activityID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	kept := activity.FollowUps[:0]
	found := false
	for _, f := range activity.FollowUps {
		if f.ID == followUpID {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "跟进记录不存在"})
		return
	}
	activity.FollowUps = kept
	activity.UpdatedAt = time.Now()

	collection := repository.Collection(repository.ActivitiesCollection)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": activityID}, activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除跟进记录成功"})
}

// findActivity 按ID查找活动记录
func findActivity(ctx context.Context, id string) (*models.Activity, error) {
	collection := repository.Collection(repository.ActivitiesCollection)

	var activity models.Activity
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&activity)
	if err != nil {
		if err.Error() == "mongo: no documents in result" {
			return nil, utils.CreateNotFoundError("活动记录")
		}
		return nil, err
	}
	return &activity, nil
}

// ensureCustomerExists 验证客户是否存在
func ensureCustomerExists(ctx context.Context, customerID string) error {
	collection := repository.Collection(repository.CustomersCollection)

	var customer bson.M
	err := collection.FindOne(ctx, bson.M{"_id": customerID}).Decode(&customer)
	if err != nil {
		if err.Error() == "mongo: no documents in result" {
			return utils.CreateNotFoundError("客户")
		}
		return err
	}
	return nil
}
