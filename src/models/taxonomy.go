package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chapter is the top level of the RODO questionnaire taxonomy.
type Chapter struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	OrderNumber int                `bson:"orderNumber" json:"orderNumber"`
}

// Area belongs to a chapter and groups requirements.
type Area struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	OrderNumber int                `bson:"orderNumber" json:"orderNumber"`
	ChapterID   primitive.ObjectID `bson:"chapterId" json:"chapterId"`
}

// Requirement is a single yes/no/partial question inside an area.
type Requirement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Text        string             `bson:"text" json:"text"`
	OrderNumber int                `bson:"orderNumber" json:"orderNumber"`
	AreaID      primitive.ObjectID `bson:"areaId" json:"areaId"`
}
