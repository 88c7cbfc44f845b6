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

type ResourceRepository struct {
	collection *mongo.Collection
}

func NewResourceRepository(mongoClient *client.MongoClient) *ResourceRepository {
	repository := &ResourceRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftboard)).Collection(string(core.MongoCollectionResources)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ResourceRepository) ensureIndexes(contextValue context.Context) error {
	ctx := contextValue

	_, _ = repository.collection.Indexes().CreateMany(ctx, model.ResourceIndexes)
	return nil
}

func (repository *ResourceRepository) Create(contextValue context.Context, resource *model.Resource) (_ *model.Resource, returnedError error) {
	nowUTC := time.Now().UTC()
	if resource.ID.IsZero() {
		resource.ID = primitive.NewObjectID()
	}
	resource.CreatedAt = nowUTC
	resource.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, resource)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	resource.ID = objectID
	return resource, nil
}

func (repository *ResourceRepository) GetByID(contextValue context.Context, resourceIdentifier primitive.ObjectID) (_ *model.Resource, returnedError error) {
	var resource model.Resource
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": resourceIdentifier}).Decode(&resource); returnedError != nil {
		return nil, returnedError
	}
	return &resource, nil
}

func (repository *ResourceRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Resource, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Resource
	for cursor.Next(contextValue) {
		var resource model.Resource
		if decodeError := cursor.Decode(&resource); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &resource)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *ResourceRepository) UpdateByID(contextValue context.Context, resourceIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": resourceIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *ResourceRepository) DeleteByID(contextValue context.Context, resourceIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": resourceIdentifier})
	return returnedError
}
