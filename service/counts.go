package service

import (
	"time"

	"github.com/zhaoyk90/estate_crm/models"
)

// ComputeCounts 计算每个视图的角标数字
// 永远对全量客户集合计数，和当前激活的视图无关，"all" 恒等于客户总数
func ComputeCounts(customers []models.Customer, activities []models.Activity, meetings []models.Meeting, now time.Time) map[string]int {
	today := DateOnly(now)
	allFacts := ResolveAll(activities, meetings, now)

	views := AllViews()
	counts := make(map[string]int, len(views))
	for _, view := range views {
		counts[view] = 0
	}

	for _, c := range customers {
		facts := allFacts[c.ID]
		for _, view := range views {
			if matchesView(view, c, facts, today) {
				counts[view]++
			}
		}
	}

	return counts
}

// ComputeProgressCounts 进展子状态计数
// activeStatus 为 "all" 或空时全局计数，否则只数该状态下的客户
func ComputeProgressCounts(customers []models.Customer, activeStatus string) map[string]int {
	counts := make(map[string]int, len(models.AllCustomerProgresses))
	for _, p := range models.AllCustomerProgresses {
		counts[p] = 0
	}

	for _, c := range customers {
		if activeStatus != "" && activeStatus != ViewAll && string(c.Status) != activeStatus {
			continue
		}
		if c.Progress == "" {
			continue
		}
		counts[c.Progress]++
	}

	return counts
}
