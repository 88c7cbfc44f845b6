package roster

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testWeek() [7]DateKey {
	return WeekDates(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
}

func testShifts() []ShiftDefinition {
	return []ShiftDefinition{
		{ID: "s1", DisplayName: "Morning", StartTime: "06:00", EndTime: "14:00", Color: "#4caf50"},
		{ID: "s2", DisplayName: "Afternoon", StartTime: "14:00", EndTime: "22:00", Color: "#ff9800"},
		{ID: "s3", DisplayName: "Night", StartTime: "22:00", EndTime: "06:00", Color: "#3f51b5"},
	}
}

func loadedStore(t *testing.T, assignments ...Assignment) *Store {
	t.Helper()
	s := NewStore()
	err := s.Load(testWeek(),
		[]Worker{{ID: "e1", DisplayName: "Ada"}, {ID: "e2", DisplayName: "Lin"}},
		[]Resource{{ID: "m1", Code: "M-001", Operational: true}, {ID: "m2", Code: "M-002", Operational: true}},
		testShifts(),
		assignments,
	)
	assert.NoError(t, err)
	return s
}

func TestStoreSelectShift(t *testing.T) {
	s := loadedStore(t)
	assert.Equal(t, "", s.SelectedShift())
	assert.NoError(t, s.SelectShift("s1"))
	assert.Equal(t, "s1", s.SelectedShift())
	assert.ErrorIs(t, s.SelectShift("nope"), ErrUnknownShift)
	assert.Equal(t, "s1", s.SelectedShift())
}

func TestStoreReloadClearsUnknownShiftSelection(t *testing.T) {
	s := loadedStore(t)
	assert.NoError(t, s.SelectShift("s1"))

	err := s.Load(testWeek(), nil, nil, []ShiftDefinition{{ID: "other"}}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "", s.SelectedShift())
}

func TestStoreAssignmentsFor(t *testing.T) {
	a1 := Assignment{ID: "a1", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-08-31", State: StateCommitted}
	a2 := Assignment{ID: "a2", WorkerID: "e2", ResourceID: "m1", ShiftID: "s1", Date: "2026-08-31", State: StateCommitted}
	a3 := Assignment{ID: "a3", WorkerID: "e1", ResourceID: "m1", ShiftID: "s2", Date: "2026-08-31", State: StateCommitted}
	s := loadedStore(t, a1, a2, a3)

	// 同機台可以有多名人員，唯一性是以人員為界
	got := s.AssignmentsFor("m1", "2026-08-31", "s1")
	assert.Len(t, got, 2)
	assert.Empty(t, s.AssignmentsFor("m2", "2026-08-31", "s1"))
	assert.Len(t, s.AssignmentsFor("m1", "2026-08-31", "s2"), 1)
}

func TestStoreReplaceAssignmentsRejectsDuplicateSlot(t *testing.T) {
	s := loadedStore(t)
	err := s.ReplaceAssignments([]Assignment{
		{ID: "a1", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-08-31"},
		{ID: "a2", WorkerID: "e1", ResourceID: "m2", ShiftID: "s1", Date: "2026-08-31"},
	})
	var consistency *ConsistencyError
	assert.True(t, errors.As(err, &consistency))
	assert.Equal(t, "e1", consistency.WorkerID)
	// the rejected write must not partially land
	assert.Empty(t, s.Assignments())
}

func TestStoreReplaceAssignmentsCopiesInput(t *testing.T) {
	s := loadedStore(t)
	in := []Assignment{{ID: "a1", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-08-31"}}
	assert.NoError(t, s.ReplaceAssignments(in))
	in[0].ResourceID = "mutated"
	assert.Equal(t, "m1", s.Assignments()[0].ResourceID)
}

func TestStoreFindAssignment(t *testing.T) {
	a := Assignment{ID: "a1", WorkerID: "e1", ResourceID: "m1", ShiftID: "s1", Date: "2026-08-31"}
	s := loadedStore(t, a)
	got, ok := s.FindAssignment("a1")
	assert.True(t, ok)
	assert.Equal(t, a, got)
	_, ok = s.FindAssignment("missing")
	assert.False(t, ok)
}
