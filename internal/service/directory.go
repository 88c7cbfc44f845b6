package service

import (
	"context"
	"errors"
	"fmt"

	"shiftboard/internal/core"
	"shiftboard/internal/database/mongodb/model"
	"shiftboard/internal/database/mongodb/repository"
	redisRepo "shiftboard/internal/database/redis/repository"
	"shiftboard/internal/dto"
	cErr "shiftboard/internal/pkg/error"
	"shiftboard/internal/roster"
	"shiftboard/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const directoryCacheKey = "all"

// directorySnapshot 快取的名錄快照，引擎型別可直接 JSON 序列化
type directorySnapshot struct {
	Workers   []roster.Worker          `json:"workers"`
	Resources []roster.Resource        `json:"resources"`
	Shifts    []roster.ShiftDefinition `json:"shifts"`
}

// DirectoryService 名錄（人員/機台/班別）的讀取與管理。
// 讀取先走 Redis 快取，未命中才查 MongoDB 並回填；
// 管理端任何異動都使快取失效。
type DirectoryService struct {
	trace        *telemetry.Trace
	logger       *zap.Logger
	workerRepo   *repository.WorkerRepository
	resourceRepo *repository.ResourceRepository
	shiftRepo    *repository.ShiftRepository
	cacheRepo    *redisRepo.DirectoryCacheRepository
}

func NewDirectoryService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	workerRepo *repository.WorkerRepository,
	resourceRepo *repository.ResourceRepository,
	shiftRepo *repository.ShiftRepository,
	cacheRepo *redisRepo.DirectoryCacheRepository,
) *DirectoryService {
	return &DirectoryService{
		trace:        trace,
		logger:       logger,
		workerRepo:   workerRepo,
		resourceRepo: resourceRepo,
		shiftRepo:    shiftRepo,
		cacheRepo:    cacheRepo,
	}
}

// Directory 取得完整名錄快照（快取優先）
func (s *DirectoryService) Directory(ctx context.Context) (*directorySnapshot, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	var snapshot directorySnapshot
	cacheErr := s.cacheRepo.Get(ctx, directoryCacheKey, &snapshot)
	if cacheErr == nil {
		return &snapshot, nil
	}
	if !errors.Is(cacheErr, redisRepo.ErrCacheMiss) {
		// 快取故障不擋讀取，降級直接查庫
		s.logger.Warn("directory cache read failed, falling back to mongodb", zap.Error(cacheErr))
	}

	loaded, loadErr := s.loadFromMongo(ctx)
	if loadErr != nil {
		return nil, loadErr
	}
	if setErr := s.cacheRepo.Set(ctx, directoryCacheKey, loaded); setErr != nil {
		s.logger.Warn("directory cache write failed", zap.Error(setErr))
	}
	return loaded, nil
}

// WarmCache 排程預熱：強制重讀 MongoDB 並覆寫快取
func (s *DirectoryService) WarmCache(ctx context.Context) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	loaded, loadErr := s.loadFromMongo(ctx)
	if loadErr != nil {
		err = loadErr
		return err
	}
	err = s.cacheRepo.Set(ctx, directoryCacheKey, loaded)
	return err
}

func (s *DirectoryService) loadFromMongo(ctx context.Context) (*directorySnapshot, error) {
	workers, err := s.workerRepo.List(ctx, bson.M{})
	if err != nil {
		return nil, cErr.DatabaseError("database ListWorkers error")
	}
	resources, err := s.resourceRepo.List(ctx, bson.M{})
	if err != nil {
		return nil, cErr.DatabaseError("database ListResources error")
	}
	shifts, err := s.shiftRepo.List(ctx, bson.M{})
	if err != nil {
		return nil, cErr.DatabaseError("database ListShifts error")
	}

	snapshot := &directorySnapshot{
		Workers:   make([]roster.Worker, 0, len(workers)),
		Resources: make([]roster.Resource, 0, len(resources)),
		Shifts:    make([]roster.ShiftDefinition, 0, len(shifts)),
	}
	for _, w := range workers {
		snapshot.Workers = append(snapshot.Workers, roster.Worker{
			ID:          w.ID.Hex(),
			DisplayName: w.DisplayName,
			Code:        w.Code,
			OrgUnit:     w.OrgUnit,
			Role:        w.JobTitle,
		})
	}
	for _, r := range resources {
		snapshot.Resources = append(snapshot.Resources, roster.Resource{
			ID:          r.ID.Hex(),
			Code:        r.Code,
			DisplayName: r.DisplayName,
			OrgUnit:     r.OrgUnit,
			Operational: r.Status == string(core.ResourceOperational),
		})
	}
	for _, sh := range shifts {
		snapshot.Shifts = append(snapshot.Shifts, roster.ShiftDefinition{
			ID:          sh.ID.Hex(),
			DisplayName: sh.DisplayName,
			StartTime:   sh.StartTime,
			EndTime:     sh.EndTime,
			Color:       sh.Color,
		})
	}
	return snapshot, nil
}

func (s *DirectoryService) invalidate(ctx context.Context) {
	if err := s.cacheRepo.Invalidate(ctx, directoryCacheKey); err != nil {
		s.logger.Warn("directory cache invalidation failed", zap.Error(err))
	}
}

// ─── Workers ───────────────────────────────────────────────────────────────────

func (s *DirectoryService) CreateWorker(ctx context.Context, input *dto.CreateWorkerDto) (*dto.WorkerDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	worker := &model.Worker{
		Code:        input.Code,
		DisplayName: input.DisplayName,
		OrgUnit:     input.OrgUnit,
		JobTitle:    input.JobTitle,
		Status:      string(input.Status),
	}
	created, err := s.workerRepo.Create(ctx, worker)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.BadRequest(fmt.Sprintf("worker code %q already exists", input.Code))
		}
		return nil, cErr.DatabaseError("database CreateWorker error")
	}
	s.invalidate(ctx)
	return modelToWorkerDto(created), nil
}

func (s *DirectoryService) ListWorkers(ctx context.Context) ([]*dto.WorkerDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	workers, err := s.workerRepo.List(ctx, bson.M{})
	if err != nil {
		return nil, cErr.DatabaseError("database ListWorkers error")
	}
	resp := make([]*dto.WorkerDto, len(workers))
	for i, w := range workers {
		resp[i] = modelToWorkerDto(w)
	}
	return resp, nil
}

func (s *DirectoryService) GetWorkerByID(ctx context.Context, id primitive.ObjectID) (*dto.WorkerDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound(fmt.Sprintf("worker with id %s not found", id.Hex()))
		}
		return nil, cErr.DatabaseError("database GetWorkerByID error")
	}
	return modelToWorkerDto(worker), nil
}

func (s *DirectoryService) UpdateWorkerByID(ctx context.Context, id primitive.ObjectID, input *dto.UpdateWorkerDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update := bson.M{}
	if input.Code != nil {
		update["code"] = *input.Code
	}
	if input.DisplayName != nil {
		update["displayName"] = *input.DisplayName
	}
	if input.OrgUnit != nil {
		update["orgUnit"] = *input.OrgUnit
	}
	if input.JobTitle != nil {
		update["jobTitle"] = *input.JobTitle
	}
	if input.Status != nil {
		update["status"] = *input.Status
	}

	matchedCount, err := s.workerRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound(fmt.Sprintf("worker with id %s not found", id.Hex()))
		}
		return cErr.DatabaseError("database UpdateWorkerByID error")
	}
	if matchedCount == 0 {
		return cErr.NotFound(fmt.Sprintf("worker with id %s not found", id.Hex()))
	}
	s.invalidate(ctx)
	return nil
}

func (s *DirectoryService) DeleteWorkerByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.workerRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteWorkerByID error")
	}
	s.invalidate(ctx)
	return nil
}

// ─── Resources ─────────────────────────────────────────────────────────────────

func (s *DirectoryService) CreateResource(ctx context.Context, input *dto.CreateResourceDto) (*dto.ResourceDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	resource := &model.Resource{
		Code:        input.Code,
		DisplayName: input.DisplayName,
		OrgUnit:     input.OrgUnit,
		Status:      string(input.Status),
	}
	created, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.BadRequest(fmt.Sprintf("resource code %q already exists", input.Code))
		}
		return nil, cErr.DatabaseError("database CreateResource error")
	}
	s.invalidate(ctx)
	return modelToResourceDto(created), nil
}

func (s *DirectoryService) ListResources(ctx context.Context) ([]*dto.ResourceDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	resources, err := s.resourceRepo.List(ctx, bson.M{})
	if err != nil {
		return nil, cErr.DatabaseError("database ListResources error")
	}
	resp := make([]*dto.ResourceDto, len(resources))
	for i, r := range resources {
		resp[i] = modelToResourceDto(r)
	}
	return resp, nil
}

func (s *DirectoryService) GetResourceByID(ctx context.Context, id primitive.ObjectID) (*dto.ResourceDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound(fmt.Sprintf("resource with id %s not found", id.Hex()))
		}
		return nil, cErr.DatabaseError("database GetResourceByID error")
	}
	return modelToResourceDto(resource), nil
}

func (s *DirectoryService) UpdateResourceByID(ctx context.Context, id primitive.ObjectID, input *dto.UpdateResourceDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update := bson.M{}
	if input.Code != nil {
		update["code"] = *input.Code
	}
	if input.DisplayName != nil {
		update["displayName"] = *input.DisplayName
	}
	if input.OrgUnit != nil {
		update["orgUnit"] = *input.OrgUnit
	}
	if input.Status != nil {
		update["status"] = *input.Status
	}

	matchedCount, err := s.resourceRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound(fmt.Sprintf("resource with id %s not found", id.Hex()))
		}
		return cErr.DatabaseError("database UpdateResourceByID error")
	}
	if matchedCount == 0 {
		return cErr.NotFound(fmt.Sprintf("resource with id %s not found", id.Hex()))
	}
	s.invalidate(ctx)
	return nil
}

func (s *DirectoryService) DeleteResourceByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.resourceRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteResourceByID error")
	}
	s.invalidate(ctx)
	return nil
}

// ─── Shifts ────────────────────────────────────────────────────────────────────

func (s *DirectoryService) CreateShift(ctx context.Context, input *dto.CreateShiftDto) (*dto.ShiftDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shift := &model.Shift{
		DisplayName: input.DisplayName,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Color:       input.Color,
	}
	created, err := s.shiftRepo.Create(ctx, shift)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.BadRequest(fmt.Sprintf("shift %q already exists", input.DisplayName))
		}
		return nil, cErr.DatabaseError("database CreateShift error")
	}
	s.invalidate(ctx)
	return modelToShiftDto(created), nil
}

func (s *DirectoryService) ListShifts(ctx context.Context) ([]*dto.ShiftDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shifts, err := s.shiftRepo.List(ctx, bson.M{})
	if err != nil {
		return nil, cErr.DatabaseError("database ListShifts error")
	}
	resp := make([]*dto.ShiftDto, len(shifts))
	for i, sh := range shifts {
		resp[i] = modelToShiftDto(sh)
	}
	return resp, nil
}

func (s *DirectoryService) GetShiftByID(ctx context.Context, id primitive.ObjectID) (*dto.ShiftDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound(fmt.Sprintf("shift with id %s not found", id.Hex()))
		}
		return nil, cErr.DatabaseError("database GetShiftByID error")
	}
	return modelToShiftDto(shift), nil
}

func (s *DirectoryService) UpdateShiftByID(ctx context.Context, id primitive.ObjectID, input *dto.UpdateShiftDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update := bson.M{}
	if input.DisplayName != nil {
		update["displayName"] = *input.DisplayName
	}
	if input.StartTime != nil {
		update["startTime"] = *input.StartTime
	}
	if input.EndTime != nil {
		update["endTime"] = *input.EndTime
	}
	if input.Color != nil {
		update["color"] = *input.Color
	}

	matchedCount, err := s.shiftRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound(fmt.Sprintf("shift with id %s not found", id.Hex()))
		}
		return cErr.DatabaseError("database UpdateShiftByID error")
	}
	if matchedCount == 0 {
		return cErr.NotFound(fmt.Sprintf("shift with id %s not found", id.Hex()))
	}
	s.invalidate(ctx)
	return nil
}

func (s *DirectoryService) DeleteShiftByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.shiftRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteShiftByID error")
	}
	s.invalidate(ctx)
	return nil
}

// ─── Model → DTO ──────────────────────────────────────────────────────────────

func modelToWorkerDto(w *model.Worker) *dto.WorkerDto {
	return &dto.WorkerDto{
		ID:          w.ID.Hex(),
		Code:        w.Code,
		DisplayName: w.DisplayName,
		OrgUnit:     w.OrgUnit,
		JobTitle:    w.JobTitle,
		Status:      w.Status,
	}
}

func modelToResourceDto(r *model.Resource) *dto.ResourceDto {
	return &dto.ResourceDto{
		ID:          r.ID.Hex(),
		Code:        r.Code,
		DisplayName: r.DisplayName,
		OrgUnit:     r.OrgUnit,
		Status:      r.Status,
	}
}

func modelToShiftDto(sh *model.Shift) *dto.ShiftDto {
	return &dto.ShiftDto{
		ID:          sh.ID.Hex(),
		DisplayName: sh.DisplayName,
		StartTime:   sh.StartTime,
		EndTime:     sh.EndTime,
		Color:       sh.Color,
	}
}
