package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrNoShiftSelected 未選擇班別就處理拖放屬前置條件違反，呼叫端需拒絕
	ErrNoShiftSelected = errors.New("no shift selected")
	// ErrWorkerBusy 同一人員已有未完成的遠端寫入
	ErrWorkerBusy = errors.New("a write for this worker is already in flight")
	// ErrSlotConflict 持久層回報 (worker, date, shift) 槽位已被佔用。
	// copy-week 視為 skip，單筆拖放視為錯誤。
	ErrSlotConflict = errors.New("slot already assigned")
	// ErrAssignmentNotFound 指派不存在於目前視圖
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrUnknownShift 班別 id 不在已載入的班別定義中
	ErrUnknownShift = errors.New("unknown shift")
)

// MalformedIdentifierError 拖放識別字串不符合 prefix-component-component 形狀。
// 邊界靜默丟棄：不改狀態、不發網路請求。
type MalformedIdentifierError struct {
	ID     string
	Reason string
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed identifier %q: %s", e.ID, e.Reason)
}

// OutOfScopeDropError 目標日期不在可視週內
type OutOfScopeDropError struct {
	Date   DateKey
	Reason string
}

func (e *OutOfScopeDropError) Error() string {
	return fmt.Sprintf("drop out of scope (%s): %s", e.Date, e.Reason)
}

// ConsistencyError 寫入的指派清單違反唯一性不變量。
// 這是程式缺陷，不做靜默去重，必須中止操作並帶出診斷資訊。
type ConsistencyError struct {
	WorkerID string
	Date     DateKey
	ShiftID  string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("uniqueness invariant violated: worker=%s date=%s shift=%s has more than one assignment",
		e.WorkerID, e.Date, e.ShiftID)
}

// PersistenceError 遠端寫入/刪除失敗，該筆樂觀異動已從本地狀態撤銷。
// Assignment 帶回被回滾的那筆（State 為 RolledBack），供呼叫端記錄。
type PersistenceError struct {
	Op         string
	Assignment Assignment
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
