package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zhaoyk90/estate_crm/models"
)

func TestDateOnly(t *testing.T) {
	instant := time.Date(2024, 7, 15, 18, 30, 45, 123, time.UTC)
	day := DateOnly(instant)

	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), day)
	// 已经是零点的时刻保持不变
	assert.Equal(t, day, DateOnly(day))
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{"相同时刻", base, base, 0},
		{"整1天", base.Add(24 * time.Hour), base, 1},
		{"整3天", base.Add(72 * time.Hour), base, 3},
		{"参数顺序无关", base, base.Add(72 * time.Hour), 3},
		// 跨日历天但不足24小时算0天，不是日历天差
		{"跨天23小时59分", time.Date(2024, 7, 16, 8, 59, 0, 0, time.UTC), base, 0},
		{"差一分钟不满2天", base.Add(48*time.Hour - time.Minute), base, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestLastActivityInstant(t *testing.T) {
	d1 := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 7, 5, 10, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 7, 3, 10, 0, 0, 0, time.UTC)

	activities := []models.Activity{
		{ID: "a1", CustomerID: "c1", Date: d1},
		{ID: "a2", CustomerID: "c1", Date: d2},
		{ID: "a3", CustomerID: "c1", Date: d3},
		{ID: "a4", CustomerID: "c2", Date: d2.Add(48 * time.Hour)},
	}

	last, ok := LastActivityInstant("c1", activities)
	assert.True(t, ok)
	assert.Equal(t, d2, last)

	// 其他客户的活动不参与
	last, ok = LastActivityInstant("c2", activities)
	assert.True(t, ok)
	assert.Equal(t, d2.Add(48*time.Hour), last)

	// 没有活动
	_, ok = LastActivityInstant("c9", activities)
	assert.False(t, ok)
}

func TestLastActivityInstantTieKeepsFirst(t *testing.T) {
	d := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		{ID: "first", CustomerID: "c1", Date: d},
		{ID: "second", CustomerID: "c1", Date: d},
	}

	last, ok := LastActivityInstant("c1", activities)
	assert.True(t, ok)
	assert.Equal(t, d, last)
}
