package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zhaoyk90/estate_crm/models"
)

var resolverNow = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

func TestResolveFacts(t *testing.T) {
	activities := []models.Activity{
		{ID: "a1", CustomerID: "c1", Date: resolverNow.Add(-72 * time.Hour)},
		{ID: "a2", CustomerID: "c1", Date: resolverNow.Add(-24 * time.Hour)},
		{ID: "a3", CustomerID: "c2", Date: resolverNow.Add(-1 * time.Hour)},
	}
	meetings := []models.Meeting{
		// 今天 14:00
		{ID: "m1", CustomerID: "c1", Date: time.Date(2024, 7, 15, 14, 0, 0, 0, time.UTC)},
		// 明天
		{ID: "m2", CustomerID: "c1", Date: time.Date(2024, 7, 16, 10, 0, 0, 0, time.UTC)},
		// 昨天，不进任何桶
		{ID: "m3", CustomerID: "c1", Date: time.Date(2024, 7, 14, 10, 0, 0, 0, time.UTC)},
	}

	facts := ResolveFacts("c1", activities, meetings, resolverNow)

	assert.Equal(t, 2, facts.ActivityCount)
	assert.True(t, facts.HasActivity)
	assert.Equal(t, resolverNow.Add(-24*time.Hour), facts.LastActivity)
	assert.Len(t, facts.TodaysMeetings, 1)
	assert.Equal(t, "m1", facts.TodaysMeetings[0].ID)
	assert.Len(t, facts.FutureMeetings, 1)
	assert.Equal(t, "m2", facts.FutureMeetings[0].ID)
}

func TestResolveFactsEmptyForUnknownCustomer(t *testing.T) {
	activities := []models.Activity{
		{ID: "a1", CustomerID: "c1", Date: resolverNow},
	}
	meetings := []models.Meeting{
		{ID: "m1", CustomerID: "c1", Date: resolverNow},
	}

	// 不存在的客户ID得到零值事实，不报错
	facts := ResolveFacts("ghost", activities, meetings, resolverNow)

	assert.Equal(t, 0, facts.ActivityCount)
	assert.False(t, facts.HasActivity)
	assert.Empty(t, facts.TodaysMeetings)
	assert.Empty(t, facts.FutureMeetings)
}

func TestResolveAllMatchesResolveFacts(t *testing.T) {
	activities := []models.Activity{
		{ID: "a1", CustomerID: "c1", Date: resolverNow.Add(-72 * time.Hour)},
		{ID: "a2", CustomerID: "c2", Date: resolverNow.Add(-30 * time.Hour)},
		{ID: "a3", CustomerID: "c1", Date: resolverNow.Add(-2 * time.Hour)},
	}
	meetings := []models.Meeting{
		{ID: "m1", CustomerID: "c2", Date: time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)},
		{ID: "m2", CustomerID: "c1", Date: time.Date(2024, 7, 20, 9, 0, 0, 0, time.UTC)},
	}

	all := ResolveAll(activities, meetings, resolverNow)

	for _, id := range []string{"c1", "c2"} {
		single := ResolveFacts(id, activities, meetings, resolverNow)
		assert.Equal(t, single, all[id], "客户 %s 的批量结果与单个结果应一致", id)
	}
}

func TestResolveFactsNormalizesMeetingLocations(t *testing.T) {
	// 数据库解码出来的时间是UTC，now 带着服务器本地时区
	kst := time.FixedZone("KST", 9*60*60)
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, kst)

	meetings := []models.Meeting{
		// 01:00 UTC 即 KST 当天 10:00，算今天
		{ID: "m1", CustomerID: "c1", Date: time.Date(2024, 7, 15, 1, 0, 0, 0, time.UTC)},
		// 20:00 UTC 已是 KST 次日凌晨，算未来
		{ID: "m2", CustomerID: "c1", Date: time.Date(2024, 7, 15, 20, 0, 0, 0, time.UTC)},
	}

	facts := ResolveFacts("c1", nil, meetings, now)

	assert.Len(t, facts.TodaysMeetings, 1)
	assert.Equal(t, "m1", facts.TodaysMeetings[0].ID)
	assert.Len(t, facts.FutureMeetings, 1)
	assert.Equal(t, "m2", facts.FutureMeetings[0].ID)

	// 批量归并走同一套时区换算
	all := ResolveAll(nil, meetings, now)
	assert.Equal(t, facts, all["c1"])
}

func TestEarliestTodayMeeting(t *testing.T) {
	facts := Facts{
		TodaysMeetings: []models.Meeting{
			{ID: "m1", Date: time.Date(2024, 7, 15, 16, 0, 0, 0, time.UTC)},
			{ID: "m2", Date: time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)},
			{ID: "m3", Date: time.Date(2024, 7, 15, 13, 0, 0, 0, time.UTC)},
		},
	}

	earliest, ok := facts.EarliestTodayMeeting()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC), earliest)

	_, ok = Facts{}.EarliestTodayMeeting()
	assert.False(t, ok)
}

func TestNearestFutureMeeting(t *testing.T) {
	facts := Facts{
		FutureMeetings: []models.Meeting{
			{ID: "m1", Date: time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC)},
			{ID: "m2", Date: time.Date(2024, 7, 16, 10, 0, 0, 0, time.UTC)},
		},
	}

	nearest, ok := facts.NearestFutureMeeting()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 7, 16, 10, 0, 0, 0, time.UTC), nearest)

	_, ok = Facts{}.NearestFutureMeeting()
	assert.False(t, ok)
}
