package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shiftboard/config"
	"shiftboard/internal/core"
	client "shiftboard/internal/database/client"
	"shiftboard/internal/telemetry"

	"github.com/klauspost/compress/zstd"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// DirectoryCacheRepository 參考資料（workers/resources/shifts）的 Redis 快取。
// 值以 JSON 序列化後用 zstd 壓縮，名錄一大 payload 可觀，壓縮後省不少頻寬。
type DirectoryCacheRepository struct {
	trace      *telemetry.Trace
	client     *redis.Client
	timeToLive time.Duration
	encoder    *zstd.Encoder
	decoder    *zstd.Decoder
}

func NewDirectoryCacheRepository(trace *telemetry.Trace, redisClient *client.RedisClient, configuration *config.Configuration) (*DirectoryCacheRepository, error) {
	encoder, encoderError := zstd.NewWriter(nil)
	if encoderError != nil {
		return nil, encoderError
	}
	decoder, decoderError := zstd.NewReader(nil)
	if decoderError != nil {
		return nil, decoderError
	}

	timeToLive := time.Duration(configuration.Roster.DirectoryCacheTTL) * time.Second
	return &DirectoryCacheRepository{
		trace:      trace,
		client:     redisClient.Client(),
		timeToLive: timeToLive,
		encoder:    encoder,
		decoder:    decoder,
	}, nil
}

// Get 讀取快取並解壓、反序列化到 value。未命中回傳 ErrCacheMiss。
func (repository *DirectoryCacheRepository) Get(contextValue context.Context, suffix string, value any) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(suffix)
	traceMetadata := core.TraceCacheMeta{Key: redisKey, Op: "get"}

	compressed, getError := repository.client.Get(contextValue, redisKey).Bytes()
	if getError == redis.Nil {
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		returnedError = ErrCacheMiss
		return returnedError
	}
	if getError != nil {
		returnedError = getError
		return returnedError
	}

	payload, decodeError := repository.decoder.DecodeAll(compressed, nil)
	if decodeError != nil {
		returnedError = decodeError
		return returnedError
	}

	traceMetadata.Hit = true
	traceMetadata.SizeBytes = len(compressed)
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	returnedError = json.Unmarshal(payload, value)
	return returnedError
}

// Set 序列化、壓縮後寫入快取，帶設定的 TTL
func (repository *DirectoryCacheRepository) Set(contextValue context.Context, suffix string, value any) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	payload, marshalError := json.Marshal(value)
	if marshalError != nil {
		returnedError = marshalError
		return returnedError
	}
	compressed := repository.encoder.EncodeAll(payload, nil)

	redisKey := repository.buildKey(suffix)
	traceMetadata := core.TraceCacheMeta{
		Key:       redisKey,
		Op:        "set",
		SizeBytes: len(compressed),
		TTLSec:    int64(repository.timeToLive.Seconds()),
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	returnedError = repository.client.Set(contextValue, redisKey, compressed, repository.timeToLive).Err()
	return returnedError
}

// Invalidate 名錄異動（管理端 CRUD）後清掉快取
func (repository *DirectoryCacheRepository) Invalidate(contextValue context.Context, suffix string) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(suffix)
	repository.trace.ApplyTraceAttributes(span, core.TraceCacheMeta{Key: redisKey, Op: "invalidate"})

	returnedError = repository.client.Del(contextValue, redisKey).Err()
	return returnedError
}

// buildKey 建構名錄快取用的 Redis key
func (r *DirectoryCacheRepository) buildKey(suffix string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyDirectory, suffix)
}
