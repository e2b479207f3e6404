package assessments

import (
	"Backend-RODO-Panel/src/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDraft(t *testing.T, ms *memStore) *models.Assessment {
	t.Helper()
	a := &models.Assessment{Name: "Audyt", Status: "DRAFT"}
	require.NoError(t, ms.InsertAssessment(context.Background(), a))
	return a
}

func singleAreaPayload(area models.Area, score *string, req models.Requirement, value *string) []models.ChapterNode {
	return []models.ChapterNode{{
		ID: area.ChapterID.Hex(),
		Areas: []models.AreaNode{{
			ID:    area.ID.Hex(),
			Score: score,
			Requirements: []models.RequirementNode{{
				ID:    req.ID.Hex(),
				Value: value,
			}},
		}},
	}}
}

func TestApplyCreateInsertsAnswers(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	a := newDraft(t, ms)
	merger := NewMerger(ms)
	ctx := context.Background()

	payload := singleAreaPayload(a1, models.StrPtr("3"), r1, models.StrPtr("Yes"))
	result, err := merger.ApplyCreate(ctx, a.ID, payload)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 0, result.Skipped)

	scores, _ := ms.ListAreaScores(ctx, a.ID)
	require.Len(t, scores, 1)
	assert.Equal(t, "3", scores[0].Score)

	responses, _ := ms.ListResponses(ctx, a.ID)
	require.Len(t, responses, 1)
	assert.Equal(t, "Yes", responses[0].Value)
}

// The create path has no existence check: replaying the same payload
// duplicates rows. That matches the panel's historical behavior and is
// covered here so nobody "fixes" it by accident.
func TestApplyCreateIsNotIdempotent(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	a := newDraft(t, ms)
	merger := NewMerger(ms)
	ctx := context.Background()

	payload := singleAreaPayload(a1, models.StrPtr("3"), r1, models.StrPtr("Yes"))
	_, err := merger.ApplyCreate(ctx, a.ID, payload)
	require.NoError(t, err)
	_, err = merger.ApplyCreate(ctx, a.ID, payload)
	require.NoError(t, err)

	scores, _ := ms.ListAreaScores(ctx, a.ID)
	assert.Len(t, scores, 2)
	responses, _ := ms.ListResponses(ctx, a.ID)
	assert.Len(t, responses, 2)
}

func TestApplyCreateSkipsEmptyAndUnknown(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	a := newDraft(t, ms)
	merger := NewMerger(ms)
	ctx := context.Background()

	payload := []models.ChapterNode{{
		ID: a1.ChapterID.Hex(),
		Areas: []models.AreaNode{
			{
				// Empty score — not stored on create.
				ID:    a1.ID.Hex(),
				Score: models.StrPtr(""),
				Requirements: []models.RequirementNode{
					{ID: r1.ID.Hex(), Value: models.StrPtr("Yes")},
					// Unknown requirement id — silently skipped, sibling above still lands.
					{ID: primitive.NewObjectID().Hex(), Value: models.StrPtr("No")},
					// Malformed id behaves like an unknown one.
					{ID: "not-a-hex-id", Value: models.StrPtr("No")},
				},
			},
		},
	}}

	result, err := merger.ApplyCreate(ctx, a.ID, payload)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 3, result.Skipped)

	statuses := map[string]string{}
	for _, e := range result.Entries {
		statuses[e.ID] = e.Status
	}
	assert.Equal(t, models.MergeSkippedEmpty, statuses[a1.ID.Hex()])
	assert.Equal(t, models.MergeApplied, statuses[r1.ID.Hex()])
	assert.Equal(t, models.MergeSkippedUnknownID, statuses["not-a-hex-id"])

	scores, _ := ms.ListAreaScores(ctx, a.ID)
	assert.Empty(t, scores)
	responses, _ := ms.ListResponses(ctx, a.ID)
	assert.Len(t, responses, 1)
}

func TestApplyUpdateIsIdempotent(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	a := newDraft(t, ms)
	merger := NewMerger(ms)
	ctx := context.Background()

	payload := singleAreaPayload(a1, models.StrPtr("5"), r1, models.StrPtr("No"))
	_, err := merger.ApplyUpdate(ctx, a.ID, payload)
	require.NoError(t, err)
	_, err = merger.ApplyUpdate(ctx, a.ID, payload)
	require.NoError(t, err)

	scores, _ := ms.ListAreaScores(ctx, a.ID)
	require.Len(t, scores, 1)
	assert.Equal(t, "5", scores[0].Score)

	responses, _ := ms.ListResponses(ctx, a.ID)
	require.Len(t, responses, 1)
	assert.Equal(t, "No", responses[0].Value)
}

func TestApplyUpdateMutatesExistingRow(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	a := newDraft(t, ms)
	merger := NewMerger(ms)
	ctx := context.Background()

	_, err := merger.ApplyCreate(ctx, a.ID, singleAreaPayload(a1, models.StrPtr("2"), r1, models.StrPtr("Yes")))
	require.NoError(t, err)

	_, err = merger.ApplyUpdate(ctx, a.ID, singleAreaPayload(a1, models.StrPtr("4"), r1, models.StrPtr("No")))
	require.NoError(t, err)

	responses, _ := ms.ListResponses(ctx, a.ID)
	require.Len(t, responses, 1)
	assert.Equal(t, "No", responses[0].Value)
	assert.True(t, responses[0].UpdatedAt.After(responses[0].CreatedAt))

	scores, _ := ms.ListAreaScores(ctx, a.ID)
	require.Len(t, scores, 1)
	assert.Equal(t, "4", scores[0].Score)
}

// On update an empty string is a real answer — the frontend clears a field
// with it. Only nil means "leave this one alone".
func TestApplyUpdateEmptyVersusNil(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	a := newDraft(t, ms)
	merger := NewMerger(ms)
	ctx := context.Background()

	_, err := merger.ApplyUpdate(ctx, a.ID, singleAreaPayload(a1, models.StrPtr("3"), r1, models.StrPtr("Yes")))
	require.NoError(t, err)

	// Clear the response, leave the score untouched.
	result, err := merger.ApplyUpdate(ctx, a.ID, singleAreaPayload(a1, nil, r1, models.StrPtr("")))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 1, result.Skipped)

	responses, _ := ms.ListResponses(ctx, a.ID)
	require.Len(t, responses, 1)
	assert.Equal(t, "", responses[0].Value)

	scores, _ := ms.ListAreaScores(ctx, a.ID)
	require.Len(t, scores, 1)
	assert.Equal(t, "3", scores[0].Score)
}

func TestApplyUpdateSkipsUnknownArea(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	a := newDraft(t, ms)
	merger := NewMerger(ms)
	ctx := context.Background()

	payload := []models.ChapterNode{{
		ID: a1.ChapterID.Hex(),
		Areas: []models.AreaNode{
			{ID: primitive.NewObjectID().Hex(), Score: models.StrPtr("1")},
			{
				ID:    a1.ID.Hex(),
				Score: models.StrPtr("2"),
				Requirements: []models.RequirementNode{
					{ID: r1.ID.Hex(), Value: models.StrPtr("Yes")},
				},
			},
		},
	}}

	result, err := merger.ApplyUpdate(ctx, a.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 1, result.Skipped)

	scores, _ := ms.ListAreaScores(ctx, a.ID)
	require.Len(t, scores, 1)
	assert.Equal(t, a1.ID, scores[0].AreaID)
}
