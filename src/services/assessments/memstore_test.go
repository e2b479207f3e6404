package assessments

import (
	"Backend-RODO-Panel/src/models"
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory Store used by the engine tests. It mirrors the
// Mongo store's contract: ordered taxonomy reads, (nil, nil) on missed
// finds, ids and timestamps assigned on insert.
type memStore struct {
	chapters     []models.Chapter
	areas        []models.Area
	requirements []models.Requirement
	assessments  []*models.Assessment
	responses    []*models.Response
	areaScores   []*models.AreaScore

	now time.Time
}

func newMemStore() *memStore {
	return &memStore{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *memStore) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *memStore) addChapter(name, description string, orderNumber int) models.Chapter {
	c := models.Chapter{ID: primitive.NewObjectID(), Name: name, Description: description, OrderNumber: orderNumber}
	m.chapters = append(m.chapters, c)
	return c
}

func (m *memStore) addArea(chapter models.Chapter, name, description string, orderNumber int) models.Area {
	a := models.Area{ID: primitive.NewObjectID(), Name: name, Description: description, OrderNumber: orderNumber, ChapterID: chapter.ID}
	m.areas = append(m.areas, a)
	return a
}

func (m *memStore) addRequirement(area models.Area, text string, orderNumber int) models.Requirement {
	r := models.Requirement{ID: primitive.NewObjectID(), Text: text, OrderNumber: orderNumber, AreaID: area.ID}
	m.requirements = append(m.requirements, r)
	return r
}

func (m *memStore) ListChapters(ctx context.Context) ([]models.Chapter, error) {
	out := append([]models.Chapter(nil), m.chapters...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, nil
}

func (m *memStore) ListAreasByChapter(ctx context.Context, chapterID primitive.ObjectID) ([]models.Area, error) {
	var out []models.Area
	for _, a := range m.areas {
		if a.ChapterID == chapterID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, nil
}

func (m *memStore) ListRequirementsByArea(ctx context.Context, areaID primitive.ObjectID) ([]models.Requirement, error) {
	var out []models.Requirement
	for _, r := range m.requirements {
		if r.AreaID == areaID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, nil
}

func (m *memStore) AreaExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	for _, a := range m.areas {
		if a.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) RequirementExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	for _, r := range m.requirements {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) InsertAssessment(ctx context.Context, a *models.Assessment) error {
	a.ID = primitive.NewObjectID()
	now := m.tick()
	a.CreatedAt = now
	a.UpdatedAt = now
	stored := *a
	m.assessments = append(m.assessments, &stored)
	return nil
}

func (m *memStore) FindAssessment(ctx context.Context, id primitive.ObjectID) (*models.Assessment, error) {
	for _, a := range m.assessments {
		if a.ID == id {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListAssessmentsByOwner(ctx context.Context, userID primitive.ObjectID, params models.PaginationParams) ([]models.Assessment, int64, error) {
	var owned []models.Assessment
	for _, a := range m.assessments {
		if a.UserID == userID {
			owned = append(owned, *a)
		}
	}
	desc := params.Order == "desc"
	sort.SliceStable(owned, func(i, j int) bool {
		if desc {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})

	total := int64(len(owned))
	start := int(params.GetSkip())
	if start > len(owned) {
		start = len(owned)
	}
	end := start + params.Limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], total, nil
}

func (m *memStore) UpdateAssessment(ctx context.Context, a *models.Assessment) error {
	for _, stored := range m.assessments {
		if stored.ID == a.ID {
			stored.Name = a.Name
			stored.Description = a.Description
			stored.Status = a.Status
			stored.UpdatedAt = m.tick()
			a.UpdatedAt = stored.UpdatedAt
			return nil
		}
	}
	return nil
}

func (m *memStore) DeleteAssessment(ctx context.Context, id primitive.ObjectID) error {
	var responses []*models.Response
	for _, r := range m.responses {
		if r.AssessmentID != id {
			responses = append(responses, r)
		}
	}
	m.responses = responses

	var scores []*models.AreaScore
	for _, s := range m.areaScores {
		if s.AssessmentID != id {
			scores = append(scores, s)
		}
	}
	m.areaScores = scores

	var assessments []*models.Assessment
	for _, a := range m.assessments {
		if a.ID != id {
			assessments = append(assessments, a)
		}
	}
	m.assessments = assessments
	return nil
}

func (m *memStore) ListResponses(ctx context.Context, assessmentID primitive.ObjectID) ([]models.Response, error) {
	var out []models.Response
	for _, r := range m.responses {
		if r.AssessmentID == assessmentID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memStore) ListAreaScores(ctx context.Context, assessmentID primitive.ObjectID) ([]models.AreaScore, error) {
	var out []models.AreaScore
	for _, s := range m.areaScores {
		if s.AssessmentID == assessmentID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) FindResponse(ctx context.Context, assessmentID, requirementID primitive.ObjectID) (*models.Response, error) {
	for _, r := range m.responses {
		if r.AssessmentID == assessmentID && r.RequirementID == requirementID {
			found := *r
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindAreaScore(ctx context.Context, assessmentID, areaID primitive.ObjectID) (*models.AreaScore, error) {
	for _, s := range m.areaScores {
		if s.AssessmentID == assessmentID && s.AreaID == areaID {
			found := *s
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) InsertResponse(ctx context.Context, r *models.Response) error {
	r.ID = primitive.NewObjectID()
	now := m.tick()
	r.CreatedAt = now
	r.UpdatedAt = now
	stored := *r
	m.responses = append(m.responses, &stored)
	return nil
}

func (m *memStore) UpdateResponse(ctx context.Context, r *models.Response) error {
	for _, stored := range m.responses {
		if stored.ID == r.ID {
			stored.Value = r.Value
			stored.Comment = r.Comment
			stored.UpdatedAt = m.tick()
			return nil
		}
	}
	return nil
}

func (m *memStore) InsertAreaScore(ctx context.Context, s *models.AreaScore) error {
	s.ID = primitive.NewObjectID()
	now := m.tick()
	s.CreatedAt = now
	s.UpdatedAt = now
	stored := *s
	m.areaScores = append(m.areaScores, &stored)
	return nil
}

func (m *memStore) UpdateAreaScore(ctx context.Context, s *models.AreaScore) error {
	for _, stored := range m.areaScores {
		if stored.ID == s.ID {
			stored.Score = s.Score
			stored.Comment = s.Comment
			stored.UpdatedAt = m.tick()
			return nil
		}
	}
	return nil
}
