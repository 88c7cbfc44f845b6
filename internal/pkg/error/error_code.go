package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY    = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS  = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS = 40002 // 400 - 無效的請求標頭

	// 40010 ~ 40099: 拖放事件錯誤
	MALFORMED_IDENTIFIER = 40010 // 400 - 拖放識別字串無法解析
	OUT_OF_SCOPE_DROP    = 40011 // 400 - 目標日期不在可視週或未選擇班別
	NO_SHIFT_SELECTED    = 40012 // 400 - 尚未選擇班別

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED    = 40100 // 401 - 未授權
	INVALID_SESSION = 40101 // 401 - 會話失效
	FORBIDDEN       = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 40900 ~ 40999: 衝突錯誤 (409 系列)
	SLOT_CONFLICT = 40900 // 409 - 同一人員/日期/班別已有指派
	WORKER_BUSY   = 40901 // 409 - 同一人員尚有未完成的寫入

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR        = 50000 // 500 - 內部錯誤
	DATABASE_ERROR        = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE   = 50002 // 503 - 服務暫停 (維護模式)
	CONSISTENCY_VIOLATION = 50003 // 500 - 唯一性不變量被破壞（程式缺陷）

	// 50200 ~ 50499: 外部請求錯誤 (502 504 系列)
	PERSISTENCE_FAILURE = 50200 // 502 - 遠端寫入/刪除失敗（已回滾）
	GATEWAY_TIMEOUT     = 50400 // 504 - 外部服務超時
)
