package core

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	Mongo DatabaseType = "mongo"
	Redis DatabaseType = "redis"
)

// Databases contains all supported database types
var Databases = []DatabaseType{Mongo, Redis}

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBShiftboard MongoDatabaseName = "shiftboard"
)

// MongoDB collections
const (
	MongoCollectionWorkers     MongoCollection = "workers"
	MongoCollectionResources   MongoCollection = "resources"
	MongoCollectionShifts      MongoCollection = "shifts"
	MongoCollectionAssignments MongoCollection = "assignments"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyDirectory  RedisKey = "directory"  // 參考資料快取（workers/resources/shifts）
	RedisKeyServerName RedisKey = "shiftboard" // 伺服器名稱
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
)
