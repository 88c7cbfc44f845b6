package config

type Roster struct {
	// 參考資料（人員/機台/班別）快取秒數，0 表示不快取
	DirectoryCacheTTL int `mapstructure:"DIRECTORY_CACHE_TTL" json:"directory_cache_ttl" yaml:"directory_cache_ttl"`
	// 快取預熱排程（cron spec，含秒）
	WarmupCron string `mapstructure:"WARMUP_CRON" json:"warmup_cron" yaml:"warmup_cron"`
}
