package assessments

import (
	"Backend-RODO-Panel/src/models"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface the composition and merge logic runs
// against. The Mongo implementation lives in mongo_store.go; tests swap in
// an in-memory one. Finders that can miss return (nil, nil) — "not found"
// is a normal answer here, not an error.
type Store interface {
	// Taxonomy (read-only, ordered by orderNumber ascending).
	ListChapters(ctx context.Context) ([]models.Chapter, error)
	ListAreasByChapter(ctx context.Context, chapterID primitive.ObjectID) ([]models.Area, error)
	ListRequirementsByArea(ctx context.Context, areaID primitive.ObjectID) ([]models.Requirement, error)
	AreaExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	RequirementExists(ctx context.Context, id primitive.ObjectID) (bool, error)

	// Assessments. Ids and timestamps are assigned on insert; UpdatedAt is
	// refreshed on every update.
	InsertAssessment(ctx context.Context, a *models.Assessment) error
	FindAssessment(ctx context.Context, id primitive.ObjectID) (*models.Assessment, error)
	ListAssessmentsByOwner(ctx context.Context, userID primitive.ObjectID, params models.PaginationParams) ([]models.Assessment, int64, error)
	UpdateAssessment(ctx context.Context, a *models.Assessment) error
	DeleteAssessment(ctx context.Context, id primitive.ObjectID) error

	// Child records. List* fetch everything for one assessment so the
	// composer can index in memory instead of point-reading per node.
	ListResponses(ctx context.Context, assessmentID primitive.ObjectID) ([]models.Response, error)
	ListAreaScores(ctx context.Context, assessmentID primitive.ObjectID) ([]models.AreaScore, error)
	FindResponse(ctx context.Context, assessmentID, requirementID primitive.ObjectID) (*models.Response, error)
	FindAreaScore(ctx context.Context, assessmentID, areaID primitive.ObjectID) (*models.AreaScore, error)
	InsertResponse(ctx context.Context, r *models.Response) error
	UpdateResponse(ctx context.Context, r *models.Response) error
	InsertAreaScore(ctx context.Context, s *models.AreaScore) error
	UpdateAreaScore(ctx context.Context, s *models.AreaScore) error
}
