package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assessment is one user's run through the questionnaire.
type Assessment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	UserID      primitive.ObjectID `bson:"userId" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Response stores one answer. At most one per (assessmentId, requirementId);
// the merge logic keeps that invariant, the collection does not.
type Response struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AssessmentID  primitive.ObjectID `bson:"assessmentId" json:"assessmentId"`
	RequirementID primitive.ObjectID `bson:"requirementId" json:"requirementId"`
	Value         string             `bson:"value" json:"value"`
	Comment       string             `bson:"comment" json:"comment"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AreaScore stores one area-level score. Same soft uniqueness rule on
// (assessmentId, areaId) as Response.
type AreaScore struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AssessmentID primitive.ObjectID `bson:"assessmentId" json:"assessmentId"`
	AreaID       primitive.ObjectID `bson:"areaId" json:"areaId"`
	Score        string             `bson:"score" json:"score"`
	Comment      string             `bson:"comment" json:"comment"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
