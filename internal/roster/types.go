package roster

// Worker 可被排班的人員，參考資料，會話期間不變
type Worker struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Code        string `json:"code"`
	OrgUnit     string `json:"orgUnit"`
	Role        string `json:"role"`
}

// Resource 機台/工作站
type Resource struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	OrgUnit     string `json:"orgUnit"`
	Operational bool   `json:"operational"`
}

// ShiftDefinition 班別定義（通常固定三班）
type ShiftDefinition struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	StartTime   string `json:"startTime"` // HH:MM
	EndTime     string `json:"endTime"`   // HH:MM
	Color       string `json:"color"`
}

// AssignmentState 顯式兩階段提交狀態：本地樂觀寫入為 Pending，
// 遠端確認換上真實 id 後為 Committed。回滾的項目從清單移除，
// 只在 PersistenceError 裡以 RolledBack 形式回報。
type AssignmentState string

const (
	StatePending    AssignmentState = "pending"
	StateCommitted  AssignmentState = "committed"
	StateRolledBack AssignmentState = "rolled-back"
)

// Assignment 一位人員在某日某班別於某機台的指派。
// 唯一性不變量：固定 (WorkerID, Date, ShiftID) 至多一筆。
type Assignment struct {
	ID         string          `json:"id"`
	WorkerID   string          `json:"workerId"`
	ResourceID string          `json:"resourceId"`
	ShiftID    string          `json:"shiftId"`
	Date       DateKey         `json:"date"`
	State      AssignmentState `json:"state"`
}

// SameSlot 回報兩筆指派是否佔用同一個 (worker, date, shift) 槽位
func (a Assignment) SameSlot(b Assignment) bool {
	return a.WorkerID == b.WorkerID && a.Date == b.Date && a.ShiftID == b.ShiftID
}

func findSlot(list []Assignment, workerID string, date DateKey, shiftID string) (Assignment, bool) {
	probe := Assignment{WorkerID: workerID, Date: date, ShiftID: shiftID}
	for _, a := range list {
		if a.SameSlot(probe) {
			return a, true
		}
	}
	return Assignment{}, false
}
