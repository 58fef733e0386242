package models

// Snapshot 三张集合的整体备份快照
// 备份/恢复走同一个 JSON 结构，记录按原 id 往返后分类结果不变
type Snapshot struct {
	Customers  []Customer `json:"customers"`
	Activities []Activity `json:"activities"`
	Meetings   []Meeting  `json:"meetings"`
}
