package roster

import "sync"

// Store 看板目前可視週的共享可變狀態。所有指派異動都經過
// ReplaceAssignments 這個單一入口，整份清單原子替換，讀取端
// 不會觀察到半更新的狀態。
//
// Store 不負責維護唯一性——那是 Resolver 的工作——但寫入時驗證，
// 寧可拒絕寫入也不靜默吞下已損壞的狀態。
type Store struct {
	mu sync.RWMutex

	workers   []Worker
	resources []Resource
	shifts    []ShiftDefinition

	week          [7]DateKey
	selectedShift string
	assignments   []Assignment
}

func NewStore() *Store {
	return &Store{}
}

// Load 替換整個可視週：參考資料、週窗與該週的指派。
// 週切換時呼叫；若原本選擇的班別已不存在於新班別清單則清空選擇。
func (s *Store) Load(week [7]DateKey, workers []Worker, resources []Resource, shifts []ShiftDefinition, assignments []Assignment) error {
	if err := validateUnique(assignments); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.week = week
	s.workers = append([]Worker(nil), workers...)
	s.resources = append([]Resource(nil), resources...)
	s.shifts = append([]ShiftDefinition(nil), shifts...)
	s.assignments = append([]Assignment(nil), assignments...)

	if s.selectedShift != "" && !containsShift(s.shifts, s.selectedShift) {
		s.selectedShift = ""
	}
	return nil
}

func (s *Store) Week() [7]DateKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.week
}


func (s *Store) SelectShift(shiftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !containsShift(s.shifts, shiftID) {
		return ErrUnknownShift
	}
	s.selectedShift = shiftID
	return nil
}

func (s *Store) SelectedShift() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedShift
}

func (s *Store) Workers() []Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Worker(nil), s.workers...)
}

func (s *Store) Resources() []Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Resource(nil), s.resources...)
}

func (s *Store) Shifts() []ShiftDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ShiftDefinition(nil), s.shifts...)
}

// Assignments 回傳目前指派清單的快照
func (s *Store) Assignments() []Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Assignment(nil), s.assignments...)
}

// AssignmentsFor 該機台/日期/班別上的所有人員（通常 0 或 1 筆，
// 但資料模型允許多人共用一台機台）
func (s *Store) AssignmentsFor(resourceID string, date DateKey, shiftID string) []Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Assignment
	for _, a := range s.assignments {
		if a.ResourceID == resourceID && a.Date == date && a.ShiftID == shiftID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) FindAssignment(id string) (Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.assignments {
		if a.ID == id {
			return a, true
		}
	}
	return Assignment{}, false
}

// ReplaceAssignments 原子全量替換。違反唯一性不變量的清單被整筆拒絕。
func (s *Store) ReplaceAssignments(next []Assignment) error {
	if err := validateUnique(next); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = append([]Assignment(nil), next...)
	return nil
}

func validateUnique(list []Assignment) error {
	seen := make(map[string]struct{}, len(list))
	for _, a := range list {
		key := a.WorkerID + "|" + string(a.Date) + "|" + a.ShiftID
		if _, dup := seen[key]; dup {
			return &ConsistencyError{WorkerID: a.WorkerID, Date: a.Date, ShiftID: a.ShiftID}
		}
		seen[key] = struct{}{}
	}
	return nil
}

func containsShift(shifts []ShiftDefinition, id string) bool {
	for _, sh := range shifts {
		if sh.ID == id {
			return true
		}
	}
	return false
}
