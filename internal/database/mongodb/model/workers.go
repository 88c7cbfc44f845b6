package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Worker struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Code        string             `json:"code" bson:"code"`
	DisplayName string             `json:"displayName" bson:"displayName"`
	OrgUnit     string             `json:"orgUnit,omitempty" bson:"orgUnit,omitempty"`
	JobTitle    string             `json:"jobTitle,omitempty" bson:"jobTitle,omitempty"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var WorkerIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetName("uniq_code").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "orgUnit", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_orgUnit_status"),
	},
}
