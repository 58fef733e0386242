package models

import (
	"time"
)

// CustomerStatus 客户状态枚举
type CustomerStatus string

const (
	CustomerStatusNEW         CustomerStatus = "new"         // 新登记
	CustomerStatusNEGOTIATING CustomerStatus = "negotiating" // 洽谈中
	CustomerStatusCONTRACTED  CustomerStatus = "contracted"  // 已签约
	CustomerStatusABANDONED   CustomerStatus = "abandoned"   // 已放弃
)

// AllCustomerStatuses 客户状态全集（顺序即侧边栏展示顺序）
var AllCustomerStatuses = []CustomerStatus{
	CustomerStatusNEW,
	CustomerStatusNEGOTIATING,
	CustomerStatusCONTRACTED,
	CustomerStatusABANDONED,
}

// IsValidCustomerStatus 验证客户状态是否有效
func IsValidCustomerStatus(status string) bool {
	for _, s := range AllCustomerStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// 客户进展子状态常量，仅在 new / negotiating 状态下有意义
const (
	CustomerProgressInitial    = "initial"    // 初次接触
	CustomerProgressConsulting = "consulting" // 沟通确认需求
	CustomerProgressVisiting   = "visiting"   // 安排看房
)

// AllCustomerProgresses 进展子状态全集
var AllCustomerProgresses = []string{
	CustomerProgressInitial,
	CustomerProgressConsulting,
	CustomerProgressVisiting,
}

// IsValidCustomerProgress 验证进展子状态是否有效
func IsValidCustomerProgress(progress string) bool {
	for _, p := range AllCustomerProgresses {
		if p == progress {
			return true
		}
	}
	return false
}

// StatusAllowsProgress 判断该状态下进展子状态是否有意义
func StatusAllowsProgress(status CustomerStatus) bool {
	return status == CustomerStatusNEW || status == CustomerStatusNEGOTIATING
}

// Customer 客户模型
// 保存时整条记录按 _id 覆盖写入，没有字段级补丁协议
type Customer struct {
	ID                 string         `json:"id" bson:"_id"`
	Name               string         `json:"name" bson:"name"`
	Phone              string         `json:"phone" bson:"phone"`
	Source             string         `json:"source" bson:"source"`
	PropertyType       string         `json:"propertyType" bson:"propertytype"`
	PreferredArea      string         `json:"preferredArea" bson:"preferredarea"`
	HopefulDeposit     int            `json:"hopefulDeposit" bson:"hopefuldeposit"`
	HopefulMonthlyRent int            `json:"hopefulMonthlyRent" bson:"hopefulmonthlyrent"`
	MoveInDate         string         `json:"moveInDate" bson:"moveindate"` // YYYY-MM-DD，空串表示未定
	Memo               string         `json:"memo" bson:"memo"`
	Status             CustomerStatus `json:"status" bson:"status"`
	Progress           string         `json:"progress,omitempty" bson:"progress,omitempty"`
	CreatedAt          time.Time      `json:"createdAt" bson:"createdat"`
	UpdatedAt          time.Time      `json:"updatedAt" bson:"updatedat"`
}

// CustomerUpsertRequest 创建/更新客户请求
type CustomerUpsertRequest struct {
	Name               string `json:"name" binding:"required"`
	Phone              string `json:"phone"`
	Source             string `json:"source"`
	PropertyType       string `json:"propertyType"`
	PreferredArea      string `json:"preferredArea"`
	HopefulDeposit     int    `json:"hopefulDeposit"`
	HopefulMonthlyRent int    `json:"hopefulMonthlyRent"`
	MoveInDate         string `json:"moveInDate"`
	Memo               string `json:"memo"`
	Status             string `json:"status"`
	Progress           string `json:"progress"`
}
