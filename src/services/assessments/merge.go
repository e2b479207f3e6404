package assessments

import (
	"Backend-RODO-Panel/src/models"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Merger applies an incoming template-shaped payload onto an assessment's
// responses and area scores. Entries whose ids don't resolve in the
// taxonomy are skipped, not failed, and each skipped/applied entry is
// reported in the MergeResult.
//
// The create and update paths differ on purpose, matching the panel's
// historical behavior: ApplyCreate always inserts (submitting the same
// payload twice duplicates rows), ApplyUpdate finds-or-creates by natural
// key and is idempotent. See DESIGN.md before "fixing" the create path.
type Merger struct {
	store Store
}

func NewMerger(store Store) *Merger {
	return &Merger{store: store}
}

// ApplyCreate persists area scores and responses from the payload for a
// freshly created assessment. Only entries with a non-empty score/value
// are taken; everything else is reported as skippedEmpty.
func (m *Merger) ApplyCreate(ctx context.Context, assessmentID primitive.ObjectID, chapters []models.ChapterNode) (*models.MergeResult, error) {
	result := &models.MergeResult{}

	for _, chapter := range chapters {
		for _, area := range chapter.Areas {
			if area.Score != nil && *area.Score != "" {
				areaID, ok := m.resolveArea(ctx, area.ID)
				if !ok {
					result.Add("areaScore", area.ID, models.MergeSkippedUnknownID)
				} else {
					score := models.AreaScore{
						AssessmentID: assessmentID,
						AreaID:       areaID,
						Score:        *area.Score,
						Comment:      area.Comment,
					}
					if err := m.store.InsertAreaScore(ctx, &score); err != nil {
						return result, err
					}
					result.Add("areaScore", area.ID, models.MergeApplied)
				}
			} else {
				result.Add("areaScore", area.ID, models.MergeSkippedEmpty)
			}

			for _, req := range area.Requirements {
				if req.Value == nil || *req.Value == "" {
					result.Add("response", req.ID, models.MergeSkippedEmpty)
					continue
				}
				reqID, ok := m.resolveRequirement(ctx, req.ID)
				if !ok {
					result.Add("response", req.ID, models.MergeSkippedUnknownID)
					continue
				}
				response := models.Response{
					AssessmentID:  assessmentID,
					RequirementID: reqID,
					Value:         *req.Value,
					Comment:       req.Comment,
				}
				if err := m.store.InsertResponse(ctx, &response); err != nil {
					return result, err
				}
				result.Add("response", req.ID, models.MergeApplied)
			}
		}
	}

	return result, nil
}

// ApplyUpdate upserts by natural key: (assessment, area) for scores,
// (assessment, requirement) for responses. Unlike the create path an empty
// score/value is written through — only a nil one is ignored — so the
// frontend can clear an answer. Re-submitting the same payload converges
// to one row per key.
func (m *Merger) ApplyUpdate(ctx context.Context, assessmentID primitive.ObjectID, chapters []models.ChapterNode) (*models.MergeResult, error) {
	result := &models.MergeResult{}

	for _, chapter := range chapters {
		for _, area := range chapter.Areas {
			if area.Score != nil {
				areaID, ok := m.resolveArea(ctx, area.ID)
				if !ok {
					result.Add("areaScore", area.ID, models.MergeSkippedUnknownID)
				} else {
					existing, err := m.store.FindAreaScore(ctx, assessmentID, areaID)
					if err != nil {
						return result, err
					}
					if existing == nil {
						existing = &models.AreaScore{
							AssessmentID: assessmentID,
							AreaID:       areaID,
						}
						existing.Score = *area.Score
						existing.Comment = area.Comment
						if err := m.store.InsertAreaScore(ctx, existing); err != nil {
							return result, err
						}
					} else {
						existing.Score = *area.Score
						existing.Comment = area.Comment
						if err := m.store.UpdateAreaScore(ctx, existing); err != nil {
							return result, err
						}
					}
					result.Add("areaScore", area.ID, models.MergeApplied)
				}
			} else {
				result.Add("areaScore", area.ID, models.MergeSkippedEmpty)
			}

			for _, req := range area.Requirements {
				if req.Value == nil {
					result.Add("response", req.ID, models.MergeSkippedEmpty)
					continue
				}
				reqID, ok := m.resolveRequirement(ctx, req.ID)
				if !ok {
					result.Add("response", req.ID, models.MergeSkippedUnknownID)
					continue
				}
				existing, err := m.store.FindResponse(ctx, assessmentID, reqID)
				if err != nil {
					return result, err
				}
				if existing == nil {
					existing = &models.Response{
						AssessmentID:  assessmentID,
						RequirementID: reqID,
					}
					existing.Value = *req.Value
					existing.Comment = req.Comment
					if err := m.store.InsertResponse(ctx, existing); err != nil {
						return result, err
					}
				} else {
					existing.Value = *req.Value
					existing.Comment = req.Comment
					if err := m.store.UpdateResponse(ctx, existing); err != nil {
						return result, err
					}
				}
				result.Add("response", req.ID, models.MergeApplied)
			}
		}
	}

	return result, nil
}

// resolveArea parses the payload id and checks it against the taxonomy.
// Malformed and unknown ids are treated the same way: skip.
func (m *Merger) resolveArea(ctx context.Context, hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	exists, err := m.store.AreaExists(ctx, id)
	if err != nil || !exists {
		return primitive.NilObjectID, false
	}
	return id, true
}

func (m *Merger) resolveRequirement(ctx context.Context, hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	exists, err := m.store.RequirementExists(ctx, id)
	if err != nil || !exists {
		return primitive.NilObjectID, false
	}
	return id, true
}
