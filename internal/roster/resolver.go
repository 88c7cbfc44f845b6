package roster

import "github.com/google/uuid"

// Resolve 由一次拖放計算新的指派清單。純函式，不做任何 I/O。
//
//  1. date 必須在可視週內，否則 OutOfScopeDropError
//  2. 移除該人員在同日同班別的既有指派（衝突解決：改派即騰出舊槽位）
//  3. 放回原槽位（同機台）是 no-op，回傳原清單且 changed=false，
//     避免原地拖放產生多餘的寫入
//  4. 附加一筆帶暫時 id 的新指派（Pending）
//
// 唯一性不變量由構造保證：步驟 2 已移除唯一可能衝突的項目。
func Resolve(current []Assignment, week [7]DateKey, workerID, resourceID, shiftID string, date DateKey) ([]Assignment, bool, error) {
	if shiftID == "" {
		return nil, false, ErrNoShiftSelected
	}
	if !weekContains(week, date) {
		return nil, false, &OutOfScopeDropError{Date: date, Reason: "date not in visible week"}
	}

	if existing, ok := findSlot(current, workerID, date, shiftID); ok && existing.ResourceID == resourceID {
		return current, false, nil
	}

	probe := Assignment{WorkerID: workerID, Date: date, ShiftID: shiftID}
	next := make([]Assignment, 0, len(current)+1)
	for _, a := range current {
		if a.SameSlot(probe) {
			continue
		}
		next = append(next, a)
	}
	next = append(next, Assignment{
		ID:         tempID(),
		WorkerID:   workerID,
		ResourceID: resourceID,
		ShiftID:    shiftID,
		Date:       date,
		State:      StatePending,
	})
	return next, true, nil
}

// tempID 本地樂觀項的暫時 id，遠端確認後由真實 id 取代
func tempID() string {
	return "tmp-" + uuid.NewString()
}

// IsTempID 回報 id 是否為尚未對帳的本地暫時 id
func IsTempID(id string) bool {
	return len(id) > 4 && id[:4] == "tmp-"
}
