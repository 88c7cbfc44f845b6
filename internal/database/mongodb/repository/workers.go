package repository

import (
	"context"
	"fmt"
	"time"

	"shiftboard/internal/core"
	client "shiftboard/internal/database/client"
	"shiftboard/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type WorkerRepository struct {
	collection *mongo.Collection
}

func NewWorkerRepository(mongoClient *client.MongoClient) *WorkerRepository {
	repository := &WorkerRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftboard)).Collection(string(core.MongoCollectionWorkers)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *WorkerRepository) ensureIndexes(contextValue context.Context) error {
	ctx := contextValue

	_, _ = repository.collection.Indexes().CreateMany(ctx, model.WorkerIndexes)
	return nil
}

func (repository *WorkerRepository) Create(contextValue context.Context, worker *model.Worker) (_ *model.Worker, returnedError error) {
	nowUTC := time.Now().UTC()
	if worker.ID.IsZero() {
		worker.ID = primitive.NewObjectID()
	}
	worker.CreatedAt = nowUTC
	worker.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, worker)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	worker.ID = objectID
	return worker, nil
}

func (repository *WorkerRepository) GetByID(contextValue context.Context, workerIdentifier primitive.ObjectID) (_ *model.Worker, returnedError error) {
	var worker model.Worker
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": workerIdentifier}).Decode(&worker); returnedError != nil {
		return nil, returnedError
	}
	return &worker, nil
}

func (repository *WorkerRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Worker, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Worker
	for cursor.Next(contextValue) {
		var worker model.Worker
		if decodeError := cursor.Decode(&worker); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &worker)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *WorkerRepository) UpdateByID(contextValue context.Context, workerIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": workerIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *WorkerRepository) DeleteByID(contextValue context.Context, workerIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": workerIdentifier})
	return returnedError
}
