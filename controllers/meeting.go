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

// CreateMeeting 创建带看安排
func CreateMeeting(c *gin.Context) {
	var input models.MeetingUpsertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()

	// 验证客户是否存在
	if err := ensureCustomerExists(ctx, input.CustomerID); err != nil {
		utils.HandleError(c, err)
		return
	}

	properties, err := buildProperties(input.Properties)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	meeting := models.Meeting{
		ID:         utils.NewID(),
		CustomerID: input.CustomerID,
		Date:       input.Date,
		Properties: properties,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	collection := repository.Collection(repository.MeetingsCollection)
	if _, err := collection.InsertOne(ctx, meeting); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"meetingId":  meeting.ID,
		"customerId": meeting.CustomerID,
	}, "创建带看安排成功")

	c.JSON(http.StatusCreated, gin.H{
		"message": "创建带看安排成功",
		"meeting": meeting,
	})
}

// UpdateMeeting 更新带看安排，物件列表整体覆盖
func UpdateMeeting(c *gin.Context) {
	id := c.Param("id")

	var input models.MeetingUpsertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()
	meeting, err := findMeeting(ctx, id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	properties, err := buildProperties(input.Properties)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	meeting.Date = input.Date
	meeting.Properties = properties
	meeting.UpdatedAt = time.Now()

	collection := repository.Collection(repository.MeetingsCollection)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": id}, meeting); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "更新带看安排成功",
		"meeting": meeting,
	})
}

// DeleteMeeting 删除带看安排
func DeleteMeeting(c *gin.Context) {
	id := c.Param("id")

	ctx := context.Background()
	collection := repository.Collection(repository.MeetingsCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "带看安排不存在或已被删除"})
		return
	}

	utils.LogInfo(map[string]interface{}{
		"meetingId": id,
	}, "删除带看安排成功")

	c.JSON(http.StatusOK, gin.H{"message": "删除带看安排成功"})
}

// AddPropertyEntry 向带看安排追加物件
func AddPropertyEntry(c *gin.Context) {
	meetingID := c.Param("id")

	var input models.PropertyEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()
	meeting, err := findMeeting(ctx, meetingID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	entry, err := buildPropertyEntry(input)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	meeting.Properties = append(meeting.Properties, entry)
	meeting.UpdatedAt = time.Now()

	collection := repository.Collection(repository.MeetingsCollection)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": meetingID}, meeting); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "追加物件成功",
		"property": entry,
	})
}

// UpdatePropertyEntry 修改带看物件
func UpdatePropertyEntry(c *gin.Context) {
	meetingID := c.Param("id")
	propertyID := c.Param("propertyId")

	var input models.PropertyEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()
	meeting, err := findMeeting(ctx, meetingID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	entry, err := buildPropertyEntry(input)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	found := false
	for i := range meeting.Properties {
		if meeting.Properties[i].ID == propertyID {
			entry.ID = propertyID
			meeting.Properties[i] = entry
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "带看物件不存在"})
		return
	}
	meeting.UpdatedAt = time.Now()

	collection := repository.Collection(repository.MeetingsCollection)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": meetingID}, meeting); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "更新物件成功"})
}

// DeletePropertyEntry 删除带看物件
func DeletePropertyEntry(c *gin.Context) {
	meetingID := c.Param("id")
	propertyID := c.Param("propertyId")

	ctx := context.Background()
	meeting, err := findMeeting(ctx, meetingID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	kept := meeting.Properties[:0]
	found := false
	for _, p := range meeting.Properties {
		if p.ID == propertyID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "带看物件不存在"})
		return
	}
	meeting.Properties = kept
	meeting.UpdatedAt = time.Now()

	collection := repository.Collection(repository.MeetingsCollection)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": meetingID}, meeting); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除物件成功"})
}

// findMeeting 按ID查找带看安排
func findMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	collection := repository.Collection(repository.MeetingsCollection)

	var meeting models.Meeting
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meeting)
	if err != nil {
		if err.Error() == "mongo: no documents in result" {
			return nil, utils.CreateNotFoundError("带看安排")
		}
		return nil, err
	}
	return &meeting, nil
}

// buildPropertyEntry 校验并组装物件条目，ID由服务端生成
func buildPropertyEntry(input models.PropertyEntryInput) (models.PropertyEntry, error) {
	status := input.Status
	if status == "" {
		status = models.PropertyStatusPENDING
	}
	if !models.IsValidPropertyStatus(status) {
		return models.PropertyEntry{}, utils.CreateBadRequestError("无效的物件准备状态: " + status)
	}
	if !utils.IsValidPhone(input.AgencyPhone) {
		return models.PropertyEntry{}, utils.CreateBadRequestError("中介电话格式应为 010-XXXX-XXXX")
	}

	return models.PropertyEntry{
		ID:          utils.NewID(),
		VisitTime:   input.VisitTime,
		Agency:      input.Agency,
		AgencyPhone: input.AgencyPhone,
		Info:        input.Info,
		Status:      status,
	}, nil
}

// buildProperties 批量组装物件条目
func buildProperties(inputs []models.PropertyEntryInput) ([]models.PropertyEntry, error) {
	properties := []models.PropertyEntry{}
	for _, input := range inputs {
		entry, err := buildPropertyEntry(input)
		if err != nil {
			return nil, err
		}
		properties = append(properties, entry)
	}
	return properties, nil
}
