package dto

// 拖放事件：前端拖曳層回報的來源與目標識別字串
type DropRequestDto struct {
	DraggableID string `json:"draggableId" binding:"required"` // worker-<id>
	DroppableID string `json:"droppableId" binding:"required"` // cell-<resourceId>-<yyyy-mm-dd>
}

// 選擇作用中班別
type SelectShiftDto struct {
	ShiftID string `json:"shiftId" binding:"required"`
}

// 切換可視週：reference 為該週內任一天（yyyy-mm-dd），省略時用今天
type NavigateWeekDto struct {
	Reference string `json:"reference,omitempty"`
}

type AssignmentDto struct {
	ID         string `json:"id"`
	WorkerID   string `json:"workerId"`
	ResourceID string `json:"resourceId"`
	ShiftID    string `json:"shiftId"`
	Date       string `json:"date"`
	State      string `json:"state"`
}

type WorkerDto struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	OrgUnit     string `json:"orgUnit,omitempty"`
	JobTitle    string `json:"jobTitle,omitempty"`
	Status      string `json:"status,omitempty"` // 看板視圖不帶狀態，僅管理端回填
}

type ResourceDto struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	OrgUnit     string `json:"orgUnit,omitempty"`
	Status      string `json:"status"`
}

type ShiftDto struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Color       string `json:"color,omitempty"`
}

// 看板視圖：一週七天、名錄與該週指派的完整快照
type BoardResponseDto struct {
	Week          []string        `json:"week"` // 週一起算的七個日期
	SelectedShift string          `json:"selectedShift,omitempty"`
	Workers       []WorkerDto     `json:"workers"`
	Resources     []ResourceDto   `json:"resources"`
	Shifts        []ShiftDto      `json:"shifts"`
	Assignments   []AssignmentDto `json:"assignments"`
}

// 週複製結果：三個明確的桶
type CopyWeekResponseDto struct {
	Created []AssignmentDto      `json:"created"`
	Skipped []AssignmentDto      `json:"skipped"`
	Failed  []CopyWeekFailureDto `json:"failed"`
}

type CopyWeekFailureDto struct {
	Assignment AssignmentDto `json:"assignment"`
	Error      string        `json:"error"`
}
