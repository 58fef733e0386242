package service

import (
	"time"

	"github.com/zhaoyk90/estate_crm/models"
)

// DateOnly 把时刻截断到当天零点，"今天"的比较一律不看时分秒
// 截断按 t 自身时区的日历进行，跨时区比较前调用方要先用 In 统一到同一时区
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween 两个时刻之间的整天数，floor(|a-b|/24h)
// 注意这不是日历天差：跨天但相差不足24小时算0天，筛选规则依赖这个口径
func DaysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}

// LastActivityInstant 取该客户时间最大的一条活动的时间
// 时间相同取先遇到的一条，没有活动时第二个返回值为 false
func LastActivityInstant(customerID string, activities []models.Activity) (time.Time, bool) {
	var last time.Time
	found := false
	for _, a := range activities {
		if a.CustomerID != customerID {
			continue
		}
		if !found || a.Date.After(last) {
			last = a.Date
			found = true
		}
	}
	return last, found
}
