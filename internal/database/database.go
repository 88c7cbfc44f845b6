package database

import (
	client "shiftboard/internal/database/client"
	fluentdRepo "shiftboard/internal/database/fluentd/repository"
	mongoRepo "shiftboard/internal/database/mongodb/repository"
	redisRepo "shiftboard/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
