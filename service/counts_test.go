package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zhaoyk90/estate_crm/models"
)

func TestComputeCountsCoversAllViews(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	customers := []models.Customer{
		{ID: "c1", Status: models.CustomerStatusNEW},
		{ID: "c2", Status: models.CustomerStatusNEGOTIATING},
		{ID: "c3", Status: models.CustomerStatusCONTRACTED},
	}
	activities := []models.Activity{
		{ID: "a1", CustomerID: "c2", Date: now.AddDate(0, 0, -5)},
	}
	meetings := []models.Meeting{
		{ID: "m1", CustomerID: "c3", Date: now.Add(2 * time.Hour)},
	}

	counts := ComputeCounts(customers, activities, meetings, now)

	// 每个已知视图都要有计数键，即便为 0
	for _, view := range AllViews() {
		_, ok := counts[view]
		assert.True(t, ok, "视图 %s 缺少计数", view)
	}

	// "all" 恒等于客户总数
	assert.Equal(t, len(customers), counts[ViewAll])

	assert.Equal(t, 1, counts[string(models.CustomerStatusNEW)])
	assert.Equal(t, 1, counts[string(models.CustomerStatusNEGOTIATING)])
	assert.Equal(t, 1, counts[string(models.CustomerStatusCONTRACTED)])
	assert.Equal(t, 0, counts[string(models.CustomerStatusABANDONED)])

	assert.Equal(t, 1, counts[ViewTodayMeeting])
	assert.Equal(t, 1, counts[ViewNeedsContact])
	assert.Equal(t, 1, counts[ViewNewUncontacted])
	// c2 有5天前的活动，同时命中洽谈未接触
	assert.Equal(t, 1, counts[ViewNegotiatingUncontacted])
}

func TestComputeCountsIgnoreActiveView(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	customers := []models.Customer{
		{ID: "c1", Status: models.CustomerStatusNEW},
		{ID: "c2", Status: models.CustomerStatusABANDONED},
	}

	// 计数始终对全量集合计算，与当前激活视图或过滤条件无关
	counts := ComputeCounts(customers, nil, nil, now)
	assert.Equal(t, 2, counts[ViewAll])
	assert.Equal(t, 1, counts[string(models.CustomerStatusABANDONED)])
}

func TestComputeProgressCountsScopedByStatus(t *testing.T) {
	customers := []models.Customer{
		{ID: "c1", Status: models.CustomerStatusNEW, Progress: models.CustomerProgressInitial},
		{ID: "c2", Status: models.CustomerStatusNEW, Progress: models.CustomerProgressVisiting},
		{ID: "c3", Status: models.CustomerStatusNEGOTIATING, Progress: models.CustomerProgressInitial},
		{ID: "c4", Status: models.CustomerStatusCONTRACTED},
	}

	scoped := ComputeProgressCounts(customers, string(models.CustomerStatusNEW))
	assert.Equal(t, 1, scoped[models.CustomerProgressInitial])
	assert.Equal(t, 0, scoped[models.CustomerProgressConsulting])
	assert.Equal(t, 1, scoped[models.CustomerProgressVisiting])

	// "all" 或空串表示全局计数
	global := ComputeProgressCounts(customers, ViewAll)
	assert.Equal(t, 2, global[models.CustomerProgressInitial])
	assert.Equal(t, global, ComputeProgressCounts(customers, ""))
}
