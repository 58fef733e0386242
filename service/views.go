package service

import (
	"sort"
	"time"

	"github.com/zhaoyk90/estate_crm/models"
)

// 视图名常量，状态视图直接用状态值本身作为视图名
const (
	ViewAll                    = "all"
	ViewTodayMeeting           = "todayMeeting"
	ViewMeetingConfirmed       = "meetingConfirmed"
	ViewContactedToday         = "contactedToday"
	ViewNeedsContact           = "needsContact"
	ViewWeekUncontacted        = "weekUncontacted"
	ViewNewUncontacted         = "newUncontacted"
	ViewNegotiatingUncontacted = "negotiatingUncontacted"
)

// 未接触阈值（天）
const (
	needsContactDays     = 2
	negotiatingStaleDays = 3
	weekUncontactedDays  = 7
)

// AllViews 全部视图名，顺序即侧边栏展示顺序
func AllViews() []string {
	views := []string{ViewAll}
	for _, s := range models.AllCustomerStatuses {
		views = append(views, string(s))
	}
	return append(views,
		ViewTodayMeeting,
		ViewMeetingConfirmed,
		ViewContactedToday,
		ViewNeedsContact,
		ViewWeekUncontacted,
		ViewNewUncontacted,
		ViewNegotiatingUncontacted,
	)
}

// IsStatusView 是否为普通状态视图
func IsStatusView(view string) bool {
	return models.IsValidCustomerStatus(view)
}

// IsKnownView 是否为已知视图名
func IsKnownView(view string) bool {
	switch view {
	case ViewAll, ViewTodayMeeting, ViewMeetingConfirmed, ViewContactedToday,
		ViewNeedsContact, ViewWeekUncontacted, ViewNewUncontacted, ViewNegotiatingUncontacted:
		return true
	}
	return IsStatusView(view)
}

// matchesView 视图成员判定
// 分类器按字面规则执行，不修复 status/progress 不一致的数据，那是写入侧的事
func matchesView(view string, customer models.Customer, facts Facts, today time.Time) bool {
	switch view {
	case ViewAll:
		return true

	case ViewTodayMeeting:
		return len(facts.TodaysMeetings) > 0

	case ViewMeetingConfirmed:
		return len(facts.FutureMeetings) > 0

	case ViewContactedToday:
		// 活动时间可能带着别的时区，按 today 的时区判断是否同一天
		return facts.HasActivity && DateOnly(facts.LastActivity.In(today.Location())).Equal(today)

	case ViewNeedsContact:
		return facts.HasActivity && DaysBetween(today, facts.LastActivity) >= needsContactDays

	case ViewWeekUncontacted:
		return facts.HasActivity && DaysBetween(today, facts.LastActivity) >= weekUncontactedDays

	case ViewNewUncontacted:
		return customer.Status == models.CustomerStatusNEW && facts.ActivityCount == 0

	case ViewNegotiatingUncontacted:
		if customer.Status != models.CustomerStatusNEGOTIATING {
			return false
		}
		return !facts.HasActivity || DaysBetween(today, facts.LastActivity) >= negotiatingStaleDays
	}

	if IsStatusView(view) {
		return string(customer.Status) == view
	}

	// 未知视图名：空结果，不报错
	return false
}

// ComputeView 计算指定视图的成员列表并按视图规则排序
// 纯函数，now 在一轮计算内只取样一次，由调用方传入
func ComputeView(view, progressFilter string, customers []models.Customer, activities []models.Activity, meetings []models.Meeting, now time.Time) []models.Customer {
	today := DateOnly(now)
	allFacts := ResolveAll(activities, meetings, now)

	var members []models.Customer
	for _, c := range customers {
		if !matchesView(view, c, allFacts[c.ID], today) {
			continue
		}
		// 进展子过滤只作用于全部视图和状态视图
		if progressFilter != "" && (view == ViewAll || IsStatusView(view)) && c.Progress != progressFilter {
			continue
		}
		members = append(members, c)
	}

	return sortViewMembers(view, members, allFacts)
}

// sortViewMembers 视图内排序规则
func sortViewMembers(view string, members []models.Customer, allFacts map[string]Facts) []models.Customer {
	switch view {
	case ViewTodayMeeting:
		// 当天最早带看时间升序，没有带看的排最后（过滤后不该出现，防御性处理）
		sortByInstantAsc(members, func(c models.Customer) (time.Time, bool) {
			return allFacts[c.ID].EarliestTodayMeeting()
		})

	case ViewMeetingConfirmed:
		// 最近的未来带看时间升序
		sortByInstantAsc(members, func(c models.Customer) (time.Time, bool) {
			return allFacts[c.ID].NearestFutureMeeting()
		})

	case ViewContactedToday:
		// 最近活动时间降序，最新接触在前
		sortByInstantDesc(members, func(c models.Customer) (time.Time, bool) {
			facts := allFacts[c.ID]
			return facts.LastActivity, facts.HasActivity
		})

	case ViewNeedsContact, ViewWeekUncontacted, ViewNegotiatingUncontacted:
		// 最后活动时间升序，最久未接触在前，没有活动的排最后
		sortByInstantAsc(members, func(c models.Customer) (time.Time, bool) {
			facts := allFacts[c.ID]
			return facts.LastActivity, facts.HasActivity
		})

	case ViewNewUncontacted:
		// 登记时间升序，最早登记在前
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].CreatedAt.Before(members[j].CreatedAt)
		})

	default:
		// 全部视图/状态视图：交给列排序，默认入住希望日升序
		return ApplyColumnSort(members, SortKeyMoveInDate, SortAsc)
	}

	return members
}

// sortByInstantAsc 按时间升序，取不到时间的排最后
func sortByInstantAsc(members []models.Customer, instant func(models.Customer) (time.Time, bool)) {
	sort.SliceStable(members, func(i, j int) bool {
		a, aok := instant(members[i])
		b, bok := instant(members[j])
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		return a.Before(b)
	})
}

// sortByInstantDesc 按时间降序，取不到时间的排最后
func sortByInstantDesc(members []models.Customer, instant func(models.Customer) (time.Time, bool)) {
	sort.SliceStable(members, func(i, j int) bool {
		a, aok := instant(members[i])
		b, bok := instant(members[j])
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		return a.After(b)
	})
}
