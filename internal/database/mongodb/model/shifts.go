package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Shift struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	DisplayName string             `json:"displayName" bson:"displayName"`
	StartTime   string             `json:"startTime" bson:"startTime"` // HH:mm
	EndTime     string             `json:"endTime" bson:"endTime"`     // HH:mm
	Color       string             `json:"color,omitempty" bson:"color,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var ShiftIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "displayName", Value: 1}},
		Options: options.Index().SetName("uniq_displayName").SetUnique(true),
	},
}
