package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	directoryCacheRepo *DirectoryCacheRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	directoryCacheRepo *DirectoryCacheRepository,
) *RedisRepository {
	return &RedisRepository{
		directoryCacheRepo: directoryCacheRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewDirectoryCacheRepository,
	NewRedisRepository)
