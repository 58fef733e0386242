package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhaoyk90/estate_crm/models"
)

func sortedIDs(customers []models.Customer, key SortKey, dir SortDirection) []string {
	sorted := ApplyColumnSort(customers, key, dir)
	ids := make([]string, 0, len(sorted))
	for _, c := range sorted {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestApplyColumnSortByNameCaseInsensitive(t *testing.T) {
	customers := []models.Customer{
		{ID: "c1", Name: "banana"},
		{ID: "c2", Name: "Apple"},
		{ID: "c3", Name: "cherry"},
	}

	assert.Equal(t, []string{"c2", "c1", "c3"}, sortedIDs(customers, SortKeyName, SortAsc))
	assert.Equal(t, []string{"c3", "c1", "c2"}, sortedIDs(customers, SortKeyName, SortDesc))
}

func TestApplyColumnSortNameReversalIsExact(t *testing.T) {
	// 姓名全部非空且互不相同时，降序是升序的严格反转
	customers := []models.Customer{
		{ID: "c1", Name: "李四"},
		{ID: "c2", Name: "张三"},
		{ID: "c3", Name: "王五"},
		{ID: "c4", Name: "赵六"},
	}

	asc := sortedIDs(customers, SortKeyName, SortAsc)
	desc := sortedIDs(customers, SortKeyName, SortDesc)

	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestApplyColumnSortEmptyNameAlwaysLast(t *testing.T) {
	customers := []models.Customer{
		{ID: "empty", Name: ""},
		{ID: "b", Name: "beta"},
		{ID: "a", Name: "alpha"},
	}

	assert.Equal(t, []string{"a", "b", "empty"}, sortedIDs(customers, SortKeyName, SortAsc))
	// 空姓名无论方向都排最后
	assert.Equal(t, []string{"b", "a", "empty"}, sortedIDs(customers, SortKeyName, SortDesc))
}

func TestApplyColumnSortDepositMissingAsZero(t *testing.T) {
	customers := []models.Customer{
		{ID: "big", HopefulDeposit: 5000},
		{ID: "none"},
		{ID: "small", HopefulDeposit: 1000},
	}

	// 缺省保证金按 0 参与排序
	assert.Equal(t, []string{"none", "small", "big"}, sortedIDs(customers, SortKeyDeposit, SortAsc))
	assert.Equal(t, []string{"big", "small", "none"}, sortedIDs(customers, SortKeyDeposit, SortDesc))
}

func TestApplyColumnSortRent(t *testing.T) {
	customers := []models.Customer{
		{ID: "r70", HopefulMonthlyRent: 70},
		{ID: "r50", HopefulMonthlyRent: 50},
		{ID: "r60", HopefulMonthlyRent: 60},
	}

	assert.Equal(t, []string{"r50", "r60", "r70"}, sortedIDs(customers, SortKeyRent, SortAsc))
}

func TestApplyColumnSortMoveInDateEmptyLast(t *testing.T) {
	customers := []models.Customer{
		{ID: "unset", MoveInDate: ""},
		{ID: "sep", MoveInDate: "2024-09-01"},
		{ID: "aug", MoveInDate: "2024-08-15"},
	}

	assert.Equal(t, []string{"aug", "sep", "unset"}, sortedIDs(customers, SortKeyMoveInDate, SortAsc))
	assert.Equal(t, []string{"sep", "aug", "unset"}, sortedIDs(customers, SortKeyMoveInDate, SortDesc))
}

func TestApplyColumnSortDoesNotMutateInput(t *testing.T) {
	customers := []models.Customer{
		{ID: "c1", Name: "b"},
		{ID: "c2", Name: "a"},
	}

	_ = ApplyColumnSort(customers, SortKeyName, SortAsc)
	assert.Equal(t, "c1", customers[0].ID)
	assert.Equal(t, "c2", customers[1].ID)
}

func TestApplyColumnSortIsStable(t *testing.T) {
	// 相同排序值时保持原有相对顺序
	customers := []models.Customer{
		{ID: "first", HopefulDeposit: 1000},
		{ID: "second", HopefulDeposit: 1000},
		{ID: "third", HopefulDeposit: 1000},
	}

	assert.Equal(t, []string{"first", "second", "third"}, sortedIDs(customers, SortKeyDeposit, SortAsc))
	assert.Equal(t, []string{"first", "second", "third"}, sortedIDs(customers, SortKeyDeposit, SortDesc))
}

func TestIsValidSortKey(t *testing.T) {
	assert.True(t, IsValidSortKey("name"))
	assert.True(t, IsValidSortKey("deposit"))
	assert.True(t, IsValidSortKey("rent"))
	assert.True(t, IsValidSortKey("moveInDate"))
	assert.False(t, IsValidSortKey("phone"))
	assert.False(t, IsValidSortKey(""))
}

func TestParseSortDirection(t *testing.T) {
	dir, ok := ParseSortDirection("asc")
	assert.True(t, ok)
	assert.Equal(t, SortAsc, dir)

	dir, ok = ParseSortDirection("desc")
	assert.True(t, ok)
	assert.Equal(t, SortDesc, dir)

	// 列表和导出接口用同一个口径拒绝坏参数
	for _, bad := range []string{"", "ASC", "ascending", "up"} {
		_, ok := ParseSortDirection(bad)
		assert.False(t, ok, "方向 %q 应被拒绝", bad)
	}
}

func TestNextSort(t *testing.T) {
	// 重复点击同一列翻转方向
	key, dir := NextSort(SortKeyName, SortAsc, SortKeyName)
	assert.Equal(t, SortKeyName, key)
	assert.Equal(t, SortDesc, dir)

	key, dir = NextSort(SortKeyName, SortDesc, SortKeyName)
	assert.Equal(t, SortKeyName, key)
	assert.Equal(t, SortAsc, dir)

	// 切换列重置为升序
	key, dir = NextSort(SortKeyName, SortDesc, SortKeyDeposit)
	assert.Equal(t, SortKeyDeposit, key)
	assert.Equal(t, SortAsc, dir)
}
