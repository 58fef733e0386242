package models

import (
	"time"
)

// ActivityType 活动类型枚举
type ActivityType string

const (
	ActivityTypeCALL  ActivityType = "call"  // 电话
	ActivityTypeSMS   ActivityType = "sms"   // 短信
	ActivityTypeVISIT ActivityType = "visit" // 到店/带看
	ActivityTypeOTHER ActivityType = "other" // 其他
)

// IsValidActivityType 验证活动类型是否有效
func IsValidActivityType(t string) bool {
	switch ActivityType(t) {
	case ActivityTypeCALL, ActivityTypeSMS, ActivityTypeVISIT, ActivityTypeOTHER:
		return true
	}
	return false
}

// FollowUp 活动跟进记录，只能通过父活动整条读改写维护
type FollowUp struct {
	ID        string    `json:"id" bson:"id"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdat"`
}

// Activity 客户活动记录
type Activity struct {
	ID         string       `json:"id" bson:"_id"`
	CustomerID string       `json:"customerId" bson:"customerid"`
	Type       ActivityType `json:"type" bson:"type"`
	Date       time.Time    `json:"date" bson:"date"`
	Content    string       `json:"content" bson:"content"`
	FollowUps  []FollowUp   `json:"followUps" bson:"followups"`
	CreatedAt  time.Time    `json:"createdAt" bson:"createdat"`
	UpdatedAt  time.Time    `json:"updatedAt" bson:"updatedat"`
}

// ActivityUpsertRequest 创建/更新活动请求
type ActivityUpsertRequest struct {
	CustomerID string    `json:"customerId" binding:"required"`
	Type       string    `json:"type" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	Content    string    `json:"content"`
}

// FollowUpInput 跟进记录输入
type FollowUpInput struct {
	Content string `json:"content" binding:"required"`
}
