package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanWeekCopyShiftsDatesBySevenDays(t *testing.T) {
	source := []Assignment{
		{ID: "a1", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-08-31", State: StateCommitted},
		{ID: "a2", WorkerID: "e2", ResourceID: "m2", ShiftID: "s2", Date: "2026-09-06", State: StateCommitted},
	}

	plan := PlanWeekCopy(source, nil)
	assert.Empty(t, plan.Skipped)
	assert.Len(t, plan.Create, 2)

	assert.Equal(t, DateKey("2026-09-07"), plan.Create[0].Date)
	assert.Equal(t, DateKey("2026-09-13"), plan.Create[1].Date)
	for i, c := range plan.Create {
		assert.Equal(t, source[i].WorkerID, c.WorkerID)
		assert.Equal(t, source[i].ResourceID, c.ResourceID)
		assert.Equal(t, source[i].ShiftID, c.ShiftID)
		assert.Equal(t, StatePending, c.State)
		assert.True(t, IsTempID(c.ID), "candidates carry fresh temp ids")
	}
}

func TestPlanWeekCopySkipsOccupiedTargetSlots(t *testing.T) {
	source := []Assignment{
		{ID: "a1", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-08-31", State: StateCommitted},
		{ID: "a2", WorkerID: "e2", ResourceID: "m1", ShiftID: "s1", Date: "2026-08-31", State: StateCommitted},
	}
	// e1 下一週同班別已有指派（而且在別台機台）：避讓，不覆寫
	existing := []Assignment{
		{ID: "srv-7", WorkerID: "e1", ResourceID: "m2", ShiftID: "s1", Date: "2026-09-07", State: StateCommitted},
	}

	plan := PlanWeekCopy(source, existing)
	assert.Len(t, plan.Create, 1)
	assert.Equal(t, "e2", plan.Create[0].WorkerID)
	assert.Len(t, plan.Skipped, 1)
	assert.Equal(t, "e1", plan.Skipped[0].WorkerID)
	assert.Equal(t, DateKey("2026-09-07"), plan.Skipped[0].Date)
}

func TestPlanWeekCopyEmptySource(t *testing.T) {
	plan := PlanWeekCopy(nil, nil)
	assert.Empty(t, plan.Create)
	assert.Empty(t, plan.Skipped)
}
