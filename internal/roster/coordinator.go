package roster

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Persistence 外部排班持久化服務。
// CreateAssignment 以 (worker, date, shift) 為鍵做 create/update，回傳真實 id；
// CreateAssignments 是 copy-week 用的批次新增，逐筆回報結果，槽位衝突
// 必須以 ErrSlotConflict 區別於一般失敗。
type Persistence interface {
	CreateAssignment(ctx context.Context, a Assignment) (string, error)
	DeleteAssignment(ctx context.Context, id string) error
	CreateAssignments(ctx context.Context, batch []Assignment) ([]BatchOutcome, error)
	ListAssignments(ctx context.Context, from, to DateKey) ([]Assignment, error)
}

// BatchOutcome 批次新增的單筆結果。Err 為 nil 表示已建立（ID 為真實 id）、
// ErrSlotConflict 表示槽位已被佔用、其他錯誤表示該筆失敗。
type BatchOutcome struct {
	Assignment Assignment
	Err        error
}

// CopyResult copy-week 的三個明確結果桶，絕不折疊成單一成敗旗標
type CopyResult struct {
	Created []Assignment
	Skipped []Assignment
	Failed  []FailedCopy
}

type FailedCopy struct {
	Assignment Assignment
	Err        error
}

// Coordinator 把 Resolver 算出的異動落地：先樂觀更新 Store，再發遠端寫入，
// 成功則以真實 id 對帳，失敗則以 id 撤銷該筆樂觀異動。
//
// 互斥範圍是單一人員：同一人員的操作序列化（第二筆進行中即拒絕），
// 不同人員可並行，因為唯一性不變量以人員為界，彼此不可能互相違反。
type Coordinator struct {
	store       *Store
	persistence Persistence
	logger      *zap.Logger

	mu       sync.Mutex
	inflight map[string]struct{} // workerID → 有寫入在途
}

func NewCoordinator(store *Store, persistence Persistence, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		store:       store,
		persistence: persistence,
		logger:      logger,
		inflight:    make(map[string]struct{}),
	}
}

// ApplyDrop 處理一次拖放事件：解碼、解析、樂觀寫入、遠端持久化、對帳。
// 回傳落地後的指派；原地拖放回傳既有指派且不發任何網路請求。
func (c *Coordinator) ApplyDrop(ctx context.Context, draggableID, droppableID string) (Assignment, error) {
	shiftID := c.store.SelectedShift()
	if shiftID == "" {
		return Assignment{}, ErrNoShiftSelected
	}

	workerID, err := DecodeSource(draggableID)
	if err != nil {
		return Assignment{}, err
	}
	resourceID, date, err := DecodeTarget(droppableID)
	if err != nil {
		return Assignment{}, err
	}

	if !c.acquire(workerID) {
		return Assignment{}, ErrWorkerBusy
	}
	defer c.release(workerID)

	snapshot := c.store.Assignments()
	next, changed, err := Resolve(snapshot, c.store.Week(), workerID, resourceID, shiftID, date)
	if err != nil {
		return Assignment{}, err
	}
	if !changed {
		existing, _ := findSlot(snapshot, workerID, date, shiftID)
		return existing, nil
	}

	pending := next[len(next)-1]
	vacated, wasVacated := findSlot(snapshot, workerID, date, shiftID)

	// 第一階段：本地同步，UI 在網路往返前就反映異動
	if err := c.store.ReplaceAssignments(next); err != nil {
		return Assignment{}, err
	}

	// 第二階段：遠端非同步，失敗則補償
	realID, err := c.persistence.CreateAssignment(ctx, pending)
	if err != nil {
		c.rollbackDrop(pending, vacated, wasVacated)
		pending.State = StateRolledBack
		return Assignment{}, &PersistenceError{Op: "create", Assignment: pending, Err: err}
	}

	return c.finalize(pending, realID), nil
}

// ApplyRemoval 顯式移除：樂觀刪除、遠端刪除、失敗時回滾
func (c *Coordinator) ApplyRemoval(ctx context.Context, assignmentID string) error {
	target, ok := c.store.FindAssignment(assignmentID)
	if !ok {
		return ErrAssignmentNotFound
	}

	if !c.acquire(target.WorkerID) {
		return ErrWorkerBusy
	}
	defer c.release(target.WorkerID)

	current := c.store.Assignments()
	next := make([]Assignment, 0, len(current))
	for _, a := range current {
		if a.ID != assignmentID {
			next = append(next, a)
		}
	}
	if err := c.store.ReplaceAssignments(next); err != nil {
		return err
	}

	if err := c.persistence.DeleteAssignment(ctx, assignmentID); err != nil {
		c.rollbackRemoval(target)
		target.State = StateRolledBack
		return &PersistenceError{Op: "delete", Assignment: target, Err: err}
	}
	return nil
}

// CopyWeek 把可視週的所有指派複製到下一週（+7 天）。加法且避讓衝突：
// 目標槽位已被佔用的項目進 Skipped，絕不覆寫。批次寫入的部分失敗
// 逐筆落在 Created/Skipped/Failed 三個桶。
func (c *Coordinator) CopyWeek(ctx context.Context) (CopyResult, error) {
	week := c.store.Week()
	source := c.store.Assignments()

	targetExisting, err := c.persistence.ListAssignments(ctx, week[0].AddDays(7), week[6].AddDays(7))
	if err != nil {
		return CopyResult{}, &PersistenceError{Op: "list", Err: err}
	}

	plan := PlanWeekCopy(source, targetExisting)
	result := CopyResult{Skipped: plan.Skipped}
	if len(plan.Create) == 0 {
		return result, nil
	}

	outcomes, err := c.persistence.CreateAssignments(ctx, plan.Create)
	if err != nil {
		return CopyResult{}, &PersistenceError{Op: "batch-create", Err: err}
	}
	for _, o := range outcomes {
		switch {
		case o.Err == nil:
			a := o.Assignment
			a.State = StateCommitted
			result.Created = append(result.Created, a)
		case errors.Is(o.Err, ErrSlotConflict):
			result.Skipped = append(result.Skipped, o.Assignment)
		default:
			result.Failed = append(result.Failed, FailedCopy{Assignment: o.Assignment, Err: o.Err})
		}
	}
	return result, nil
}

// finalize 遠端確認後把暫時 id 換成真實 id。用 id 查找而不是位置索引：
// 寫入在途時切換週視圖的話，暫存項已不在目前清單中，對帳就只回傳
// 最終值而不動 Store，避免污染另一週的視圖。
func (c *Coordinator) finalize(pending Assignment, realID string) Assignment {
	final := pending
	final.ID = realID
	final.State = StateCommitted

	current := c.store.Assignments()
	for i := range current {
		if current[i].ID == pending.ID {
			current[i] = final
			if err := c.store.ReplaceAssignments(current); err != nil {
				c.logger.Error("finalize failed to replace assignments", zap.Error(err))
			}
			return final
		}
	}
	return final
}

// rollbackDrop 撤銷失敗拖放的樂觀寫入。和 finalize 一樣以 id 對目前
// 清單對帳，而不是整份還原快照：快照拍下之後，別的人員的操作可能
// 已經落地，整份還原會把它抹掉。只摘掉暫存項並放回被騰出的舊指派；
// 暫存項不在目前清單表示使用者已切走週視圖，不動 Store。
func (c *Coordinator) rollbackDrop(pending Assignment, vacated Assignment, wasVacated bool) {
	current := c.store.Assignments()
	next := make([]Assignment, 0, len(current))
	found := false
	for _, a := range current {
		if a.ID == pending.ID {
			found = true
			continue
		}
		next = append(next, a)
	}
	if !found {
		return
	}
	if wasVacated {
		next = append(next, vacated)
	}
	if err := c.store.ReplaceAssignments(next); err != nil {
		c.logger.Error("rollback failed", zap.String("op", "create"), zap.Error(err))
		return
	}
	c.logRollback("create", pending)
}

// rollbackRemoval 遠端刪除失敗時放回被移除的指派。目標日期已不在
// 目前週窗（使用者切走了）就不放回，避免污染新視圖。
func (c *Coordinator) rollbackRemoval(target Assignment) {
	if !weekContains(c.store.Week(), target.Date) {
		return
	}
	current := c.store.Assignments()
	for _, a := range current {
		if a.ID == target.ID {
			return
		}
	}
	if err := c.store.ReplaceAssignments(append(current, target)); err != nil {
		c.logger.Error("rollback failed", zap.String("op", "delete"), zap.Error(err))
		return
	}
	c.logRollback("delete", target)
}

func (c *Coordinator) logRollback(op string, a Assignment) {
	c.logger.Warn("remote write failed, reverted local change",
		zap.String("op", op),
		zap.String("workerId", a.WorkerID),
		zap.String("resourceId", a.ResourceID),
		zap.String("shiftId", a.ShiftID),
		zap.String("date", string(a.Date)),
	)
}

func (c *Coordinator) acquire(workerID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[workerID]; busy {
		return false
	}
	c.inflight[workerID] = struct{}{}
	return true
}

func (c *Coordinator) release(workerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, workerID)
}
