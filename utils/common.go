package utils

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^010-\d{4}-\d{4}$`)

// IsValidPhone 验证手机号是否有效，空号码视为未填写
func IsValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}

// IsValidISODate 验证 YYYY-MM-DD 格式日期，空串视为未定
func IsValidISODate(date string) bool {
	if date == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// NewID 生成新的记录ID
func NewID() string {
	return uuid.NewString()
}
