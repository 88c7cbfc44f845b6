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

type ShiftRepository struct {
	collection *mongo.Collection
}

func NewShiftRepository(mongoClient *client.MongoClient) *ShiftRepository {
	repository := &ShiftRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftboard)).Collection(string(core.MongoCollectionShifts)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ShiftRepository) ensureIndexes(contextValue context.Context) error {
	ctx := contextValue

	_, _ = repository.collection.Indexes().CreateMany(ctx, model.ShiftIndexes)
	return nil
}

func (repository *ShiftRepository) Create(contextValue context.Context, shift *model.Shift) (_ *model.Shift, returnedError error) {
	nowUTC := time.Now().UTC()
	if shift.ID.IsZero() {
		shift.ID = primitive.NewObjectID()
	}
	shift.CreatedAt = nowUTC
	shift.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, shift)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	shift.ID = objectID
	return shift, nil
}

func (repository *ShiftRepository) GetByID(contextValue context.Context, shiftIdentifier primitive.ObjectID) (_ *model.Shift, returnedError error) {
	var shift model.Shift
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": shiftIdentifier}).Decode(&shift); returnedError != nil {
		return nil, returnedError
	}
	return &shift, nil
}

func (repository *ShiftRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Shift, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Shift
	for cursor.Next(contextValue) {
		var shift model.Shift
		if decodeError := cursor.Decode(&shift); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &shift)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *ShiftRepository) UpdateByID(contextValue context.Context, shiftIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": shiftIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *ShiftRepository) DeleteByID(contextValue context.Context, shiftIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": shiftIdentifier})
	return returnedError
}
