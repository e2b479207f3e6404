package assessments

import (
	"Backend-RODO-Panel/src/models"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func withStore(t *testing.T, ms *memStore) {
	t.Helper()
	prev := store
	store = ms
	t.Cleanup(func() { store = prev })
}

func TestCreateUpdateScenario(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	withStore(t, ms)
	owner := primitive.NewObjectID().Hex()

	detail, merge, err := CreateAssessment(owner, &models.AssessmentDetail{
		Name:        "Audyt RODO 2025",
		Description: "coroczny przegląd",
		Chapters:    singleAreaPayload(a1, nil, r1, models.StrPtr("Yes")),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, merge.Applied)
	assert.Equal(t, "DRAFT", detail.Status)
	assert.Equal(t, "Yes", *detail.Chapters[0].Areas[0].Requirements[0].Value)

	// Flip the answer through the update path.
	updated, _, err := UpdateAssessment(detail.ID, owner, &models.AssessmentDetail{
		Name:        "Audyt RODO 2025",
		Description: "coroczny przegląd",
		Status:      "IN_PROGRESS",
		Chapters:    singleAreaPayload(a1, nil, r1, models.StrPtr("No")),
	})
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", updated.Status)
	assert.Equal(t, "No", *updated.Chapters[0].Areas[0].Requirements[0].Value)

	// Exactly one stored row for the requirement, not two.
	id, _ := primitive.ObjectIDFromHex(detail.ID)
	responses, _ := ms.ListResponses(context.Background(), id)
	require.Len(t, responses, 1)
	assert.Equal(t, "No", responses[0].Value)
}

func TestOwnershipGuard(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	withStore(t, ms)
	owner := primitive.NewObjectID().Hex()
	stranger := primitive.NewObjectID().Hex()

	detail, _, err := CreateAssessment(owner, &models.AssessmentDetail{
		Name:     "Audyt",
		Chapters: singleAreaPayload(a1, models.StrPtr("3"), r1, models.StrPtr("Yes")),
	})
	require.NoError(t, err)

	_, err = GetAssessment(detail.ID, stranger)
	assert.ErrorIs(t, err, ErrForbidden)

	_, _, err = UpdateAssessment(detail.ID, stranger, &models.AssessmentDetail{
		Name:     "hijacked",
		Chapters: singleAreaPayload(a1, models.StrPtr("1"), r1, models.StrPtr("No")),
	})
	assert.ErrorIs(t, err, ErrForbidden)

	err = DeleteAssessment(detail.ID, stranger)
	assert.ErrorIs(t, err, ErrForbidden)

	// Nothing was touched: still readable by the owner, same values.
	got, err := GetAssessment(detail.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Audyt", got.Name)
	assert.Equal(t, "3", *got.Chapters[0].Areas[0].Score)
	assert.Equal(t, "Yes", *got.Chapters[0].Areas[0].Requirements[0].Value)
}

func TestGetAssessmentNotFound(t *testing.T) {
	ms, _, _, _ := dpoFixture()
	withStore(t, ms)
	principal := primitive.NewObjectID().Hex()

	_, err := GetAssessment(primitive.NewObjectID().Hex(), principal)
	assert.ErrorIs(t, err, ErrNotFound)

	// A malformed id is just as gone as a missing one.
	_, err = GetAssessment("zzz", principal)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCascades(t *testing.T) {
	ms, _, a1, r1 := dpoFixture()
	withStore(t, ms)
	owner := primitive.NewObjectID().Hex()

	detail, _, err := CreateAssessment(owner, &models.AssessmentDetail{
		Name:     "Audyt",
		Chapters: singleAreaPayload(a1, models.StrPtr("3"), r1, models.StrPtr("Yes")),
	})
	require.NoError(t, err)

	require.NoError(t, DeleteAssessment(detail.ID, owner))

	id, _ := primitive.ObjectIDFromHex(detail.ID)
	a, _ := ms.FindAssessment(context.Background(), id)
	assert.Nil(t, a)
	responses, _ := ms.ListResponses(context.Background(), id)
	assert.Empty(t, responses)
	scores, _ := ms.ListAreaScores(context.Background(), id)
	assert.Empty(t, scores)
}

func TestListOwnAssessmentsNewestFirst(t *testing.T) {
	ms, _, _, _ := dpoFixture()
	withStore(t, ms)
	owner := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()

	for i := 1; i <= 3; i++ {
		_, _, err := CreateAssessment(owner, &models.AssessmentDetail{Name: fmt.Sprintf("Audyt %d", i)})
		require.NoError(t, err)
	}
	_, _, err := CreateAssessment(other, &models.AssessmentDetail{Name: "cudzy"})
	require.NoError(t, err)

	page, err := GetAssessmentsForUser(owner, models.DefaultPagination())
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	details, ok := page.Data.([]*models.AssessmentDetail)
	require.True(t, ok)
	require.Len(t, details, 3)
	assert.Equal(t, "Audyt 3", details[0].Name)
	assert.Equal(t, "Audyt 1", details[2].Name)

	// Second page of one.
	page, err = GetAssessmentsForUser(owner, models.PaginationParams{Page: 2, Limit: 2, SortBy: "createdAt", Order: "desc"})
	require.NoError(t, err)
	details = page.Data.([]*models.AssessmentDetail)
	require.Len(t, details, 1)
	assert.Equal(t, "Audyt 1", details[0].Name)
	assert.True(t, page.HasPrevious)
	assert.False(t, page.HasNext)
}
