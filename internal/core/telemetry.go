package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanAuthMiddleware     TraceSpanName = "auth_middleware"
	SpanBoardDrop          TraceSpanName = "board_drop"
	SpanBoardRemoval       TraceSpanName = "board_removal"
	SpanBoardCopyWeek      TraceSpanName = "board_copy_week"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricDropsAppliedTotal   MetricName = "drops_applied_total"
	MetricDropsRejectedTotal  MetricName = "drops_rejected_total"
	MetricRollbacksTotal      MetricName = "rollbacks_total"
	MetricCopyWeekEntries     MetricName = "copy_week_entries_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelOutcome  MetricLabelName = "outcome"
	MetricLabelShift    MetricLabelName = "shift"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
	UrlPath           string `trace:"url.path"`
	UrlScheme         string `trace:"url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"response.path"`
	Method     string  `trace:"response.method"`
	Status     int     `trace:"response.status"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.duration_ms"`
	Data       string  `trace:"response.data"`
}

type TracePanicMeta struct {
	Path       string  `trace:"panic.path"`
	Method     string  `trace:"panic.method"`
	ClientIP   string  `trace:"panic.client_ip"`
	UserAgent  string  `trace:"panic.user_agent"`
	DurationMs float64 `trace:"panic.duration_ms"`
	Message    string  `trace:"panic.message"`
	Stack      string  `trace:"panic.stack"`
	Status     int     `trace:"panic.status"`
}

type TraceDropMeta struct {
	WorkerID     string `trace:"roster.worker_id"`
	ResourceID   string `trace:"roster.resource_id"`
	ShiftID      string `trace:"roster.shift_id"`
	Date         string `trace:"roster.date"`
	AssignmentID string `trace:"roster.assignment_id"`
	Outcome      string `trace:"roster.outcome"`
}

type TraceAuthMiddlewareMeta struct {
	Account  string `trace:"auth.account"`
	Role     string `trace:"auth.role"`
	ClientIP string `trace:"auth.client_ip"`
	Status   string `trace:"auth.status"`
}

type TraceCacheMeta struct {
	Key       string `trace:"cache.key"`
	Op        string `trace:"cache.op"`
	Hit       bool   `trace:"cache.hit"`
	SizeBytes int    `trace:"cache.size_bytes"`
	TTLSec    int64  `trace:"cache.ttl_sec"`
}

type TraceCopyWeekMeta struct {
	SourceWeek string `trace:"roster.source_week"`
	Created    int    `trace:"roster.copy.created"`
	Skipped    int    `trace:"roster.copy.skipped"`
	Failed     int    `trace:"roster.copy.failed"`
}
