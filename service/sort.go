package service

import (
	"sort"
	"strings"

	"github.com/zhaoyk90/estate_crm/models"
)

// SortKey 列排序键
type SortKey string

const (
	SortKeyName       SortKey = "name"
	SortKeyDeposit    SortKey = "deposit"
	SortKeyRent       SortKey = "rent"
	SortKeyMoveInDate SortKey = "moveInDate"
)

// SortDirection 排序方向
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValidSortKey 验证列排序键是否有效
func IsValidSortKey(key string) bool {
	switch SortKey(key) {
	case SortKeyName, SortKeyDeposit, SortKeyRent, SortKeyMoveInDate:
		return true
	}
	return false
}

// ParseSortDirection 解析排序方向参数
func ParseSortDirection(s string) (SortDirection, bool) {
	switch SortDirection(s) {
	case SortAsc, SortDesc:
		return SortDirection(s), true
	}
	return "", false
}

// NextSort 列头点击规则：重复点击同一列翻转方向，切换列重置为升序
// 当前选中状态由调用方持有，引擎不保存
func NextSort(currentKey SortKey, currentDir SortDirection, clicked SortKey) (SortKey, SortDirection) {
	if clicked == currentKey && currentDir == SortAsc {
		return clicked, SortDesc
	}
	return clicked, SortAsc
}

// ApplyColumnSort 与视图无关的列排序
// 稳定排序；姓名不区分大小写，保证金/月租缺省按0，入住希望日按 ISO 字符串比较
// 姓名和入住希望日为空的记录无论方向都排最后
func ApplyColumnSort(customers []models.Customer, key SortKey, dir SortDirection) []models.Customer {
	sorted := make([]models.Customer, len(customers))
	copy(sorted, customers)

	desc := dir == SortDesc

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		switch key {
		case SortKeyName:
			return lessString(strings.ToLower(a.Name), strings.ToLower(b.Name), desc)

		case SortKeyDeposit:
			return lessInt(a.HopefulDeposit, b.HopefulDeposit, desc)

		case SortKeyRent:
			return lessInt(a.HopefulMonthlyRent, b.HopefulMonthlyRent, desc)

		case SortKeyMoveInDate:
			// ISO 日期字符串字典序即时间序
			return lessString(a.MoveInDate, b.MoveInDate, desc)
		}

		return false
	})

	return sorted
}

// lessString 字符串比较，空值排最后（与方向无关）
func lessString(a, b string, desc bool) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	if a == b {
		return false
	}
	if desc {
		return a > b
	}
	return a < b
}

// lessInt 整数比较，缺省值已在上游归零参与排序
func lessInt(a, b int, desc bool) bool {
	if a == b {
		return false
	}
	if desc {
		return a > b
	}
	return a < b
}
