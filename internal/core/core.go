package core

type Role string

const (
	RoleAdmin    Role = "admin"    // 管理員：可維護參考資料
	RolePlanner  Role = "planner"  // 排班員：可操作看板
	RoleReadOnly Role = "readonly" // 只能查詢，不能改資料
)

// ResourceStatus 機台運轉狀態
type ResourceStatus string

const (
	ResourceOperational    ResourceStatus = "operational"
	ResourceNonOperational ResourceStatus = "non-operational"
)

type WorkerStatus string

const (
	WorkerActive   WorkerStatus = "active"
	WorkerInactive WorkerStatus = "inactive"
)
