package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAppendsPendingAssignment(t *testing.T) {
	week := testWeek()
	next, changed, err := Resolve(nil, week, "e1", "m1", "s1", "2026-09-01")
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, next, 1)

	a := next[0]
	assert.Equal(t, "e1", a.WorkerID)
	assert.Equal(t, "m1", a.ResourceID)
	assert.Equal(t, "s1", a.ShiftID)
	assert.Equal(t, DateKey("2026-09-01"), a.Date)
	assert.Equal(t, StatePending, a.State)
	assert.True(t, IsTempID(a.ID))
}

func TestResolveSupersedesExistingSlot(t *testing.T) {
	week := testWeek()
	current := []Assignment{
		{ID: "a1", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-09-01", State: StateCommitted},
	}
	next, changed, err := Resolve(current, week, "e1", "m2", "s1", "2026-09-01")
	assert.NoError(t, err)
	assert.True(t, changed)

	// exactly one assignment for the worker on that date/shift, on the new resource
	assert.Len(t, next, 1)
	assert.Equal(t, "m2", next[0].ResourceID)
	for _, a := range next {
		assert.NotEqual(t, "m1", a.ResourceID)
	}
	assert.NoError(t, validateUnique(next))
}

func TestResolveSameSlotIsNoOp(t *testing.T) {
	week := testWeek()
	current := []Assignment{
		{ID: "a1", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-09-01", State: StateCommitted},
	}
	next, changed, err := Resolve(current, week, "e1", "m1", "s1", "2026-09-01")
	assert.NoError(t, err)
	assert.False(t, changed)
	// unchanged: same ids, same content
	assert.Equal(t, current, next)
}

func TestResolveLeavesOtherShiftsAndDatesAlone(t *testing.T) {
	week := testWeek()
	current := []Assignment{
		{ID: "a1", WorkerID: "e1", ResourceID: "m1", ShiftID: "s2", Date: "2026-09-01", State: StateCommitted},
		{ID: "a2", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-09-02", State: StateCommitted},
		{ID: "a3", WorkerID: "e2", ResourceID: "m1", ShiftID: "s1", Date: "2026-09-01", State: StateCommitted},
	}
	next, changed, err := Resolve(current, week, "e1", "m2", "s1", "2026-09-01")
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, next, 4)
	// a different shift, a different date, and a different worker all survive
	ids := map[string]bool{}
	for _, a := range next {
		ids[a.ID] = true
	}
	assert.True(t, ids["a1"] && ids["a2"] && ids["a3"])
}

func TestResolveRejectsDateOutsideWeek(t *testing.T) {
	week := testWeek()
	_, _, err := Resolve(nil, week, "e1", "m1", "s1", "2026-09-08")
	var outOfScope *OutOfScopeDropError
	assert.True(t, errors.As(err, &outOfScope))
	assert.Equal(t, DateKey("2026-09-08"), outOfScope.Date)
}

func TestResolveRequiresShift(t *testing.T) {
	_, _, err := Resolve(nil, testWeek(), "e1", "m1", "", "2026-09-01")
	assert.ErrorIs(t, err, ErrNoShiftSelected)
}

func TestResolveInvariantHoldsAcrossSequences(t *testing.T) {
	week := testWeek()
	var current []Assignment
	moves := []struct {
		worker, resource, shift string
		date                    DateKey
	}{
		{"e1", "m1", "s1", "2026-08-31"},
		{"e1", "m2", "s1", "2026-08-31"},
		{"e2", "m1", "s1", "2026-08-31"},
		{"e1", "m1", "s2", "2026-08-31"},
		{"e2", "m2", "s1", "2026-09-01"},
		{"e1", "m2", "s1", "2026-08-31"}, // same-slot no-op
		{"e2", "m1", "s1", "2026-08-31"},
	}
	for _, m := range moves {
		next, _, err := Resolve(current, week, m.worker, m.resource, m.shift, m.date)
		assert.NoError(t, err)
		assert.NoError(t, validateUnique(next))
		current = next
	}
}
