package models

import (
	"time"
)

// 带看物件准备状态常量
const (
	PropertyStatusPENDING   = "pending"   // 待确认
	PropertyStatusCONFIRMED = "confirmed" // 已确认
	PropertyStatusCANCELED  = "canceled"  // 已取消
)

// IsValidPropertyStatus 验证物件准备状态是否有效
func IsValidPropertyStatus(s string) bool {
	switch s {
	case PropertyStatusPENDING, PropertyStatusCONFIRMED, PropertyStatusCANCELED:
		return true
	}
	return false
}

// PropertyEntry 带看物件条目，id 只在所属 meeting 内有意义
type PropertyEntry struct {
	ID          string `json:"id" bson:"id"`
	VisitTime   string `json:"visitTime" bson:"visittime"` // HH:mm
	Agency      string `json:"agency" bson:"agency"`
	AgencyPhone string `json:"agencyPhone" bson:"agencyphone"`
	Info        string `json:"info" bson:"info"`
	Status      string `json:"status" bson:"status"`
}

// Meeting 客户带看安排
type Meeting struct {
	ID         string          `json:"id" bson:"_id"`
	CustomerID string          `json:"customerId" bson:"customerid"`
	Date       time.Time       `json:"date" bson:"date"`
	Properties []PropertyEntry `json:"properties" bson:"properties"`
	CreatedAt  time.Time       `json:"createdAt" bson:"createdat"`
	UpdatedAt  time.Time       `json:"updatedAt" bson:"updatedat"`
}

// MeetingUpsertRequest 创建/更新带看请求
type MeetingUpsertRequest struct {
	CustomerID string               `json:"customerId" binding:"required"`
	Date       time.Time            `json:"date" binding:"required"`
	Properties []PropertyEntryInput `json:"properties"`
}

// PropertyEntryInput 带看物件输入
type PropertyEntryInput struct {
	VisitTime   string `json:"visitTime"`
	Agency      string `json:"agency"`
	AgencyPhone string `json:"agencyPhone"`
	Info        string `json:"info"`
	Status      string `json:"status"`
}
