package roster

// CopyPlan 週複製的純計算結果：要新增的候選項與因目標槽位已被
// 佔用而跳過的項目
type CopyPlan struct {
	Create  []Assignment
	Skipped []Assignment
}

// PlanWeekCopy 為來源週的每筆指派計算 +7 天的對應項。
// 目標週已存在 (worker, date+7, shift) 的槽位時該項進 Skipped；
// 複製是加法且避讓衝突的，絕不破壞既有資料。純函式。
func PlanWeekCopy(source, targetExisting []Assignment) CopyPlan {
	var plan CopyPlan
	for _, a := range source {
		candidate := Assignment{
			ID:         tempID(),
			WorkerID:   a.WorkerID,
			ResourceID: a.ResourceID,
			ShiftID:    a.ShiftID,
			Date:       a.Date.AddDays(7),
			State:      StatePending,
		}
		if _, taken := findSlot(targetExisting, candidate.WorkerID, candidate.Date, candidate.ShiftID); taken {
			plan.Skipped = append(plan.Skipped, candidate)
			continue
		}
		plan.Create = append(plan.Create, candidate)
	}
	return plan
}
