package repository

import (
	"context"
	"time"

	"shiftboard/internal/core"
	client "shiftboard/internal/database/client"
	"shiftboard/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssignmentRepository struct {
	collection *mongo.Collection
}

func NewAssignmentRepository(mongoClient *client.MongoClient) *AssignmentRepository {
	repository := &AssignmentRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftboard)).Collection(string(core.MongoCollectionAssignments)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *AssignmentRepository) ensureIndexes(contextValue context.Context) error {
	ctx := contextValue

	_, _ = repository.collection.Indexes().CreateMany(ctx, model.AssignmentIndexes)
	return nil
}

// Upsert 以槽位 (workerId, date, shiftId) 為鍵寫入：槽位已存在就改派機台，
// 不存在就新增。單筆拖放走這裡，所以改派不會觸發唯一索引衝突。
func (repository *AssignmentRepository) Upsert(contextValue context.Context, assignment *model.Assignment) (_ *model.Assignment, returnedError error) {
	nowUTC := time.Now().UTC()
	filter := bson.M{
		"workerId": assignment.WorkerID,
		"date":     assignment.Date,
		"shiftId":  assignment.ShiftID,
	}
	update := bson.M{
		"$set":         bson.M{"resourceId": assignment.ResourceID, "updatedAt": nowUTC},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "createdAt": nowUTC},
	}
	findOptions := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored model.Assignment
	if returnedError = repository.collection.FindOneAndUpdate(contextValue, filter, update, findOptions).Decode(&stored); returnedError != nil {
		return nil, returnedError
	}
	return &stored, nil
}

// InsertMany 批次新增（無序），部分失敗時回傳與輸入對齊的逐筆錯誤。
// 週複製走這裡：衝突要逐筆浮現而不是整批中止。
func (repository *AssignmentRepository) InsertMany(contextValue context.Context, assignments []*model.Assignment) (returnedErrors []error, returnedError error) {
	if len(assignments) == 0 {
		return nil, nil
	}

	nowUTC := time.Now().UTC()
	documents := make([]interface{}, 0, len(assignments))
	for _, assignment := range assignments {
		if assignment.ID.IsZero() {
			assignment.ID = primitive.NewObjectID()
		}
		assignment.CreatedAt = nowUTC
		assignment.UpdatedAt = nowUTC
		documents = append(documents, assignment)
	}

	perEntry := make([]error, len(assignments))
	_, insertError := repository.collection.InsertMany(contextValue, documents, options.InsertMany().SetOrdered(false))
	if insertError == nil {
		return perEntry, nil
	}

	bulkException, ok := insertError.(mongo.BulkWriteException)
	if !ok {
		return nil, insertError
	}
	for _, writeError := range bulkException.WriteErrors {
		if writeError.Index < 0 || writeError.Index >= len(perEntry) {
			continue
		}
		perEntry[writeError.Index] = writeError
	}
	return perEntry, nil
}

// ListByDateRange 取閉區間 [fromDate, toDate] 內的所有指派
func (repository *AssignmentRepository) ListByDateRange(contextValue context.Context, fromDate, toDate string) (_ []*model.Assignment, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{"date": bson.M{"$gte": fromDate, "$lte": toDate}})
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Assignment
	for cursor.Next(contextValue) {
		var assignment model.Assignment
		if decodeError := cursor.Decode(&assignment); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &assignment)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *AssignmentRepository) DeleteByID(contextValue context.Context, assignmentIdentifier primitive.ObjectID) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"_id": assignmentIdentifier})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
