package roster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakePersistence 模擬外部排班持久化服務：維護 (worker,date,shift)
// 唯一索引、可注入失敗、可在 CreateAssignment 上阻塞以測互斥。
type fakePersistence struct {
	mu      sync.Mutex
	nextID  int
	slots   map[string]Assignment // slot key → stored assignment
	creates int
	deletes int

	failCreate    error
	failDelete    error
	failList      error
	blockOn       chan struct{} // 若非 nil，CreateAssignment 先在此等待
	blockOnDelete chan struct{} // 同上，DeleteAssignment 用
	arrived       chan struct{} // 若非 nil，進閘門等待前先通知一聲
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{slots: make(map[string]Assignment)}
}

func slotKey(a Assignment) string {
	return a.WorkerID + "|" + string(a.Date) + "|" + a.ShiftID
}

func (f *fakePersistence) CreateAssignment(ctx context.Context, a Assignment) (string, error) {
	f.mu.Lock()
	block, arrived := f.blockOn, f.arrived
	f.mu.Unlock()
	if block != nil {
		if arrived != nil {
			arrived <- struct{}{}
		}
		<-block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.failCreate != nil {
		return "", f.failCreate
	}
	// create/update 以槽位為鍵：同槽位重複寫入是改派
	f.nextID++
	a.ID = fmt.Sprintf("srv-%d", f.nextID)
	a.State = StateCommitted
	f.slots[slotKey(a)] = a
	return a.ID, nil
}

func (f *fakePersistence) DeleteAssignment(ctx context.Context, id string) error {
	f.mu.Lock()
	block, arrived := f.blockOnDelete, f.arrived
	f.mu.Unlock()
	if block != nil {
		if arrived != nil {
			arrived <- struct{}{}
		}
		<-block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	if f.failDelete != nil {
		return f.failDelete
	}
	for k, a := range f.slots {
		if a.ID == id {
			delete(f.slots, k)
			return nil
		}
	}
	return ErrAssignmentNotFound
}

func (f *fakePersistence) CreateAssignments(ctx context.Context, batch []Assignment) ([]BatchOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	outcomes := make([]BatchOutcome, 0, len(batch))
	for _, a := range batch {
		if f.failCreate != nil {
			outcomes = append(outcomes, BatchOutcome{Assignment: a, Err: f.failCreate})
			continue
		}
		if _, taken := f.slots[slotKey(a)]; taken {
			outcomes = append(outcomes, BatchOutcome{Assignment: a, Err: ErrSlotConflict})
			continue
		}
		f.nextID++
		a.ID = fmt.Sprintf("srv-%d", f.nextID)
		f.slots[slotKey(a)] = a
		outcomes = append(outcomes, BatchOutcome{Assignment: a, Err: nil})
	}
	return outcomes, nil
}

func (f *fakePersistence) ListAssignments(ctx context.Context, from, to DateKey) ([]Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList != nil {
		return nil, f.failList
	}
	var out []Assignment
	for _, a := range f.slots {
		if string(a.Date) >= string(from) && string(a.Date) <= string(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func newCoordinator(t *testing.T, assignments ...Assignment) (*Coordinator, *Store, *fakePersistence) {
	t.Helper()
	store := loadedStore(t, assignments...)
	assert.NoError(t, store.SelectShift("s1"))
	persistence := newFakePersistence()
	return NewCoordinator(store, persistence, zap.NewNop()), store, persistence
}

func TestApplyDropCreatesAndFinalizes(t *testing.T) {
	c, store, persistence := newCoordinator(t)

	got, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)
	assert.Equal(t, StateCommitted, got.State)
	assert.False(t, IsTempID(got.ID))

	list := store.Assignments()
	assert.Len(t, list, 1)
	assert.Equal(t, got, list[0])
	assert.Equal(t, 1, persistence.creates)
}

func TestApplyDropSameSlotTriggersNoWrite(t *testing.T) {
	c, store, persistence := newCoordinator(t)

	first, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)

	again, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, persistence.creates, "same-slot drop must not write")
	assert.Equal(t, []Assignment{first}, store.Assignments())
}

func TestApplyDropSupersedesOtherResource(t *testing.T) {
	c, store, _ := newCoordinator(t)

	_, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)
	moved, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m2-2026-08-31")
	assert.NoError(t, err)

	list := store.Assignments()
	assert.Len(t, list, 1)
	assert.Equal(t, "m2", list[0].ResourceID)
	assert.Equal(t, moved, list[0])
}

func TestApplyDropRollsBackOnPersistenceFailure(t *testing.T) {
	committed := Assignment{ID: "srv-9", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-08-31", State: StateCommitted}
	c, store, persistence := newCoordinator(t, committed)
	persistence.failCreate = errors.New("boom")

	before := store.Assignments()
	_, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m2-2026-08-31")

	var persistenceErr *PersistenceError
	assert.True(t, errors.As(err, &persistenceErr))
	assert.Equal(t, StateRolledBack, persistenceErr.Assignment.State)
	// exact pre-drop snapshot: same ids, same fields
	assert.Equal(t, before, store.Assignments())
}

func TestApplyDropRejectsMalformedAndOutOfScope(t *testing.T) {
	c, store, persistence := newCoordinator(t)

	_, err := c.ApplyDrop(context.Background(), "bogus", "cell-m1-2026-08-31")
	var malformed *MalformedIdentifierError
	assert.True(t, errors.As(err, &malformed))

	_, err = c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-09-30")
	var outOfScope *OutOfScopeDropError
	assert.True(t, errors.As(err, &outOfScope))

	// discarded at the boundary: no state, no network
	assert.Empty(t, store.Assignments())
	assert.Equal(t, 0, persistence.creates)
}

func TestApplyDropRequiresSelectedShift(t *testing.T) {
	store := loadedStore(t)
	c := NewCoordinator(store, newFakePersistence(), zap.NewNop())
	_, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.ErrorIs(t, err, ErrNoShiftSelected)
}

func TestApplyDropSerializesPerWorker(t *testing.T) {
	c, _, persistence := newCoordinator(t)
	gate := make(chan struct{})
	persistence.blockOn = gate

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
		done <- err
	}()
	<-started
	// 等第一筆進入遠端寫入（已取得 worker 鎖）
	for {
		c.mu.Lock()
		_, busy := c.inflight["e1"]
		c.mu.Unlock()
		if busy {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// same worker: refused while the first write is outstanding
	_, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m2-2026-09-01")
	assert.ErrorIs(t, err, ErrWorkerBusy)

	// different worker: proceeds concurrently
	persistence.mu.Lock()
	persistence.blockOn = nil
	persistence.mu.Unlock()
	_, err = c.ApplyDrop(context.Background(), "worker-e2", "cell-m2-2026-08-31")
	assert.NoError(t, err)

	close(gate)
	assert.NoError(t, <-done)
}

func TestApplyRemoval(t *testing.T) {
	c, store, persistence := newCoordinator(t)
	created, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)

	assert.NoError(t, c.ApplyRemoval(context.Background(), created.ID))
	assert.Empty(t, store.Assignments())
	assert.Equal(t, 1, persistence.deletes)

	assert.ErrorIs(t, c.ApplyRemoval(context.Background(), created.ID), ErrAssignmentNotFound)
}

func TestApplyRemovalRollsBackOnFailure(t *testing.T) {
	c, store, persistence := newCoordinator(t)
	created, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)

	persistence.failDelete = errors.New("boom")
	before := store.Assignments()

	err = c.ApplyRemoval(context.Background(), created.ID)
	var persistenceErr *PersistenceError
	assert.True(t, errors.As(err, &persistenceErr))
	assert.Equal(t, StateRolledBack, persistenceErr.Assignment.State)
	assert.Equal(t, before, store.Assignments())
}

func loadNextWeek(t *testing.T, s *Store, assignments ...Assignment) {
	t.Helper()
	err := s.Load(WeekDates(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)),
		[]Worker{{ID: "e1", DisplayName: "Ada"}, {ID: "e2", DisplayName: "Lin"}},
		[]Resource{{ID: "m1", Code: "M-001", Operational: true}, {ID: "m2", Code: "M-002", Operational: true}},
		testShifts(),
		assignments,
	)
	assert.NoError(t, err)
}

// 回滾以 id 對帳：e1 的寫入在途時 e2 的拖放已落地，e1 失敗回滾
// 不得抹掉 e2 已確認的指派
func TestRollbackPreservesConcurrentCommit(t *testing.T) {
	c, store, persistence := newCoordinator(t)
	gate := make(chan struct{})
	arrived := make(chan struct{})
	persistence.blockOn = gate
	persistence.arrived = arrived

	done := make(chan error, 1)
	go func() {
		_, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
		done <- err
	}()
	<-arrived // e1 已完成樂觀寫入、停在遠端寫入的閘門前

	// e1 卡在遠端寫入時，e2 的拖放完整落地
	persistence.mu.Lock()
	persistence.blockOn = nil
	persistence.arrived = nil
	persistence.mu.Unlock()
	committed, err := c.ApplyDrop(context.Background(), "worker-e2", "cell-m2-2026-08-31")
	assert.NoError(t, err)
	assert.Equal(t, StateCommitted, committed.State)

	persistence.mu.Lock()
	persistence.failCreate = errors.New("boom")
	persistence.mu.Unlock()
	close(gate)

	var persistenceErr *PersistenceError
	assert.True(t, errors.As(<-done, &persistenceErr))

	list := store.Assignments()
	assert.Equal(t, []Assignment{committed}, list)
}

// 寫入在途時切走週視圖：對帳發現暫存項不在清單，只回傳最終值，
// 不把舊週的資料塞進新視圖
func TestFinalizeAfterWeekChangeLeavesStoreUntouched(t *testing.T) {
	c, store, persistence := newCoordinator(t)
	gate := make(chan struct{})
	arrived := make(chan struct{})
	persistence.blockOn = gate
	persistence.arrived = arrived

	type result struct {
		a   Assignment
		err error
	}
	done := make(chan result, 1)
	go func() {
		a, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
		done <- result{a, err}
	}()
	<-arrived

	loadNextWeek(t, store)
	close(gate)

	got := <-done
	assert.NoError(t, got.err)
	assert.Equal(t, StateCommitted, got.a.State)
	assert.False(t, IsTempID(got.a.ID))
	assert.Empty(t, store.Assignments())
}

func TestRollbackAfterWeekChangeLeavesStoreUntouched(t *testing.T) {
	c, store, persistence := newCoordinator(t)
	gate := make(chan struct{})
	arrived := make(chan struct{})
	persistence.blockOn = gate
	persistence.arrived = arrived
	persistence.failCreate = errors.New("boom")

	done := make(chan error, 1)
	go func() {
		_, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
		done <- err
	}()
	<-arrived

	other := Assignment{ID: "srv-next", WorkerID: "e2", ResourceID: "m1", ShiftID: "s1", Date: "2026-09-08", State: StateCommitted}
	loadNextWeek(t, store, other)
	close(gate)

	var persistenceErr *PersistenceError
	assert.True(t, errors.As(<-done, &persistenceErr))
	assert.Equal(t, []Assignment{other}, store.Assignments())
}

func TestRemovalRollbackAfterWeekChangeLeavesStoreUntouched(t *testing.T) {
	c, store, persistence := newCoordinator(t)
	created, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)

	gate := make(chan struct{})
	arrived := make(chan struct{})
	persistence.blockOnDelete = gate
	persistence.arrived = arrived
	persistence.failDelete = errors.New("boom")

	done := make(chan error, 1)
	go func() {
		done <- c.ApplyRemoval(context.Background(), created.ID)
	}()
	<-arrived

	// 被移除那筆的日期已不在新週窗，失敗也不放回
	loadNextWeek(t, store)
	close(gate)

	var persistenceErr *PersistenceError
	assert.True(t, errors.As(<-done, &persistenceErr))
	assert.Empty(t, store.Assignments())
}

func TestCopyWeekBuckets(t *testing.T) {
	c, _, persistence := newCoordinator(t)

	_, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)
	_, err = c.ApplyDrop(context.Background(), "worker-e2", "cell-m2-2026-09-02")
	assert.NoError(t, err)

	// e1 already holds a slot next week on a different resource: must be
	// skipped, never overwritten
	occupied := Assignment{WorkerID: "e1", ResourceID: "m2", ShiftID: "s1", Date: "2026-09-07", State: StateCommitted}
	persistence.nextID++
	occupied.ID = "srv-pre"
	persistence.slots[slotKey(occupied)] = occupied

	result, err := c.CopyWeek(context.Background())
	assert.NoError(t, err)

	assert.Len(t, result.Created, 1)
	assert.Equal(t, "e2", result.Created[0].WorkerID)
	assert.Equal(t, DateKey("2026-09-09"), result.Created[0].Date)
	assert.Equal(t, StateCommitted, result.Created[0].State)

	assert.Len(t, result.Skipped, 1)
	assert.Equal(t, "e1", result.Skipped[0].WorkerID)
	assert.Equal(t, DateKey("2026-09-07"), result.Skipped[0].Date)
	assert.Empty(t, result.Failed)

	// the occupied slot kept its original resource
	assert.Equal(t, "m2", persistence.slots[slotKey(occupied)].ResourceID)
}

func TestCopyWeekReportsPartialFailure(t *testing.T) {
	c, _, persistence := newCoordinator(t)
	_, err := c.ApplyDrop(context.Background(), "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)

	persistence.failCreate = errors.New("write refused")
	result, err := c.CopyWeek(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Skipped)
	assert.Len(t, result.Failed, 1)
	assert.Error(t, result.Failed[0].Err)
}

// 整合情境：兩名人員、兩台機台、選班 s1、空白週
func TestEndToEndScenario(t *testing.T) {
	c, store, _ := newCoordinator(t)
	ctx := context.Background()

	// E1 → (M1, D1)
	_, err := c.ApplyDrop(ctx, "worker-e1", "cell-m1-2026-08-31")
	assert.NoError(t, err)
	list := store.Assignments()
	assert.Len(t, list, 1)
	assert.Equal(t, "m1", list[0].ResourceID)

	// E1 → (M2, D1)：單筆，M1 的項目消失
	_, err = c.ApplyDrop(ctx, "worker-e1", "cell-m2-2026-08-31")
	assert.NoError(t, err)
	list = store.Assignments()
	assert.Len(t, list, 1)
	assert.Equal(t, "m2", list[0].ResourceID)

	// E2 → (M1, D1)：兩筆，不同人員不衝突
	_, err = c.ApplyDrop(ctx, "worker-e2", "cell-m1-2026-08-31")
	assert.NoError(t, err)
	assert.Len(t, store.Assignments(), 2)

	// copyWeek：下一週收到兩筆，全在 created，無 skipped
	result, err := c.CopyWeek(ctx)
	assert.NoError(t, err)
	assert.Len(t, result.Created, 2)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Failed)
	for _, a := range result.Created {
		assert.Equal(t, DateKey("2026-09-07"), a.Date)
	}
}
