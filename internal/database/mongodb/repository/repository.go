package repository

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	workerRepo     *WorkerRepository
	resourceRepo   *ResourceRepository
	shiftRepo      *ShiftRepository
	assignmentRepo *AssignmentRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	workerRepo *WorkerRepository,
	resourceRepo *ResourceRepository,
	shiftRepo *ShiftRepository,
	assignmentRepo *AssignmentRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		workerRepo:     workerRepo,
		resourceRepo:   resourceRepo,
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewWorkerRepository,
	NewResourceRepository,
	NewShiftRepository,
	NewAssignmentRepository,
	NewMongoDBRepository)

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}
