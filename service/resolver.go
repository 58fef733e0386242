package service

import (
	"time"

	"github.com/zhaoyk90/estate_crm/models"
)

// Facts 单个客户在一轮重算中的派生事实
// 分类、排序、计数共用同一份，避免日期逻辑在三处各算一遍
type Facts struct {
	TodaysMeetings []models.Meeting
	FutureMeetings []models.Meeting
	LastActivity   time.Time
	HasActivity    bool
	ActivityCount  int
}

// EarliestTodayMeeting 当天最早一场带看的时间
func (f Facts) EarliestTodayMeeting() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, m := range f.TodaysMeetings {
		if !found || m.Date.Before(earliest) {
			earliest = m.Date
			found = true
		}
	}
	return earliest, found
}

// NearestFutureMeeting 最近一场未来带看的时间
func (f Facts) NearestFutureMeeting() (time.Time, bool) {
	var nearest time.Time
	found := false
	for _, m := range f.FutureMeetings {
		if !found || m.Date.Before(nearest) {
			nearest = m.Date
			found = true
		}
	}
	return nearest, found
}

// ResolveFacts 计算单个客户的派生事实
// 数据库里的时间和 now 可能带着不同时区，日界判断统一换算到 now 的时区
func ResolveFacts(customerID string, activities []models.Activity, meetings []models.Meeting, now time.Time) Facts {
	loc := now.Location()
	today := DateOnly(now)

	facts := Facts{}
	for _, a := range activities {
		if a.CustomerID != customerID {
			continue
		}
		facts.ActivityCount++
		if !facts.HasActivity || a.Date.After(facts.LastActivity) {
			facts.LastActivity = a.Date
			facts.HasActivity = true
		}
	}

	for _, m := range meetings {
		if m.CustomerID != customerID {
			continue
		}
		meetingDay := DateOnly(m.Date.In(loc))
		if meetingDay.Equal(today) {
			facts.TodaysMeetings = append(facts.TodaysMeetings, m)
		} else if meetingDay.After(today) {
			facts.FutureMeetings = append(facts.FutureMeetings, m)
		}
	}

	return facts
}

// ResolveAll 一轮重算只算一次：对全部活动和带看各扫一遍，按客户归并
// 不存在的客户ID不会报错，查不到的客户拿到零值事实
func ResolveAll(activities []models.Activity, meetings []models.Meeting, now time.Time) map[string]Facts {
	loc := now.Location()
	today := DateOnly(now)
	result := make(map[string]Facts)

	for _, a := range activities {
		facts := result[a.CustomerID]
		facts.ActivityCount++
		if !facts.HasActivity || a.Date.After(facts.LastActivity) {
			facts.LastActivity = a.Date
			facts.HasActivity = true
		}
		result[a.CustomerID] = facts
	}

	for _, m := range meetings {
		meetingDay := DateOnly(m.Date.In(loc))
		if !meetingDay.Equal(today) && !meetingDay.After(today) {
			continue
		}
		facts := result[m.CustomerID]
		if meetingDay.Equal(today) {
			facts.TodaysMeetings = append(facts.TodaysMeetings, m)
		} else {
			facts.FutureMeetings = append(facts.FutureMeetings, m)
		}
		result[m.CustomerID] = facts
	}

	return result
}
