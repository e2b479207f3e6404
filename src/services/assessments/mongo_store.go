package assessments

import (
	DB "Backend-RODO-Panel/src/database"
	"Backend-RODO-Panel/src/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoStore backs Store with the shared collections from the database
// package. There is no uniqueness index on the (assessmentId, areaId) or
// (assessmentId, requirementId) pairs — the merge logic alone keeps
// one-row-per-key, so concurrent updates to the same assessment can race
// into duplicates.
type mongoStore struct{}

func (m *mongoStore) ListChapters(ctx context.Context) ([]models.Chapter, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderNumber", Value: 1}})
	cursor, err := DB.ChapterCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var chapters []models.Chapter
	if err = cursor.All(ctx, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

func (m *mongoStore) ListAreasByChapter(ctx context.Context, chapterID primitive.ObjectID) ([]models.Area, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderNumber", Value: 1}})
	cursor, err := DB.AreaCollection.Find(ctx, bson.M{"chapterId": chapterID}, opts)
	if err != nil {
		return nil, err
	}
	var areas []models.Area
	if err = cursor.All(ctx, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (m *mongoStore) ListRequirementsByArea(ctx context.Context, areaID primitive.ObjectID) ([]models.Requirement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderNumber", Value: 1}})
	cursor, err := DB.RequirementCollection.Find(ctx, bson.M{"areaId": areaID}, opts)
	if err != nil {
		return nil, err
	}
	var requirements []models.Requirement
	if err = cursor.All(ctx, &requirements); err != nil {
		return nil, err
	}
	return requirements, nil
}

func (m *mongoStore) AreaExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := DB.AreaCollection.CountDocuments(ctx, bson.M{"_id": id})
	return count > 0, err
}

func (m *mongoStore) RequirementExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := DB.RequirementCollection.CountDocuments(ctx, bson.M{"_id": id})
	return count > 0, err
}

func (m *mongoStore) InsertAssessment(ctx context.Context, a *models.Assessment) error {
	a.ID = primitive.NewObjectID()
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := DB.AssessmentCollection.InsertOne(ctx, a)
	return err
}

func (m *mongoStore) FindAssessment(ctx context.Context, id primitive.ObjectID) (*models.Assessment, error) {
	var a models.Assessment
	err := DB.AssessmentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (m *mongoStore) ListAssessmentsByOwner(ctx context.Context, userID primitive.ObjectID, params models.PaginationParams) ([]models.Assessment, int64, error) {
	filter := bson.M{"userId": userID}

	total, err := DB.AssessmentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.AssessmentCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var assessments []models.Assessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, 0, err
	}
	return assessments, total, nil
}

func (m *mongoStore) UpdateAssessment(ctx context.Context, a *models.Assessment) error {
	a.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":        a.Name,
		"description": a.Description,
		"status":      a.Status,
		"updatedAt":   a.UpdatedAt,
	}}
	_, err := DB.AssessmentCollection.UpdateOne(ctx, bson.M{"_id": a.ID}, update)
	return err
}

// DeleteAssessment removes the assessment and cascades to its responses
// and area scores.
func (m *mongoStore) DeleteAssessment(ctx context.Context, id primitive.ObjectID) error {
	if _, err := DB.ResponseCollection.DeleteMany(ctx, bson.M{"assessmentId": id}); err != nil {
		return err
	}
	if _, err := DB.AreaScoreCollection.DeleteMany(ctx, bson.M{"assessmentId": id}); err != nil {
		return err
	}
	_, err := DB.AssessmentCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (m *mongoStore) ListResponses(ctx context.Context, assessmentID primitive.ObjectID) ([]models.Response, error) {
	cursor, err := DB.ResponseCollection.Find(ctx, bson.M{"assessmentId": assessmentID})
	if err != nil {
		return nil, err
	}
	var responses []models.Response
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (m *mongoStore) ListAreaScores(ctx context.Context, assessmentID primitive.ObjectID) ([]models.AreaScore, error) {
	cursor, err := DB.AreaScoreCollection.Find(ctx, bson.M{"assessmentId": assessmentID})
	if err != nil {
		return nil, err
	}
	var scores []models.AreaScore
	if err = cursor.All(ctx, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (m *mongoStore) FindResponse(ctx context.Context, assessmentID, requirementID primitive.ObjectID) (*models.Response, error) {
	var r models.Response
	err := DB.ResponseCollection.FindOne(ctx, bson.M{"assessmentId": assessmentID, "requirementId": requirementID}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (m *mongoStore) FindAreaScore(ctx context.Context, assessmentID, areaID primitive.ObjectID) (*models.AreaScore, error) {
	var s models.AreaScore
	err := DB.AreaScoreCollection.FindOne(ctx, bson.M{"assessmentId": assessmentID, "areaId": areaID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *mongoStore) InsertResponse(ctx context.Context, r *models.Response) error {
	r.ID = primitive.NewObjectID()
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	_, err := DB.ResponseCollection.InsertOne(ctx, r)
	return err
}

func (m *mongoStore) UpdateResponse(ctx context.Context, r *models.Response) error {
	r.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"value":     r.Value,
		"comment":   r.Comment,
		"updatedAt": r.UpdatedAt,
	}}
	_, err := DB.ResponseCollection.UpdateOne(ctx, bson.M{"_id": r.ID}, update)
	return err
}

func (m *mongoStore) InsertAreaScore(ctx context.Context, s *models.AreaScore) error {
	s.ID = primitive.NewObjectID()
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	_, err := DB.AreaScoreCollection.InsertOne(ctx, s)
	return err
}

func (m *mongoStore) UpdateAreaScore(ctx context.Context, s *models.AreaScore) error {
	s.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"score":     s.Score,
		"comment":   s.Comment,
		"updatedAt": s.UpdatedAt,
	}}
	_, err := DB.AreaScoreCollection.UpdateOne(ctx, bson.M{"_id": s.ID}, update)
	return err
}
