package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Assignment 排班指派。Date 存 ISO 字串（yyyy-mm-dd），字典序即日期序，
// 區間查詢直接用 $gte/$lte。
type Assignment struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	WorkerID   primitive.ObjectID `json:"workerId" bson:"workerId"`
	ResourceID primitive.ObjectID `json:"resourceId" bson:"resourceId"`
	ShiftID    primitive.ObjectID `json:"shiftId" bson:"shiftId"`
	Date       string             `json:"date" bson:"date"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// 唯一索引是唯一性不變量的伺服器端防線：同一人員同日同班別至多一筆
var AssignmentIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "workerId", Value: 1}, {Key: "date", Value: 1}, {Key: "shiftId", Value: 1}},
		Options: options.Index().SetName("uniq_workerId_date_shiftId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetName("idx_date"),
	},
	{
		Keys:    bson.D{{Key: "resourceId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("idx_resourceId_date"),
	},
}
