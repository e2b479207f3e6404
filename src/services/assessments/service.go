package assessments

import (
	"Backend-RODO-Panel/src/jobs"
	"Backend-RODO-Panel/src/models"
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound — assessment id doesn't exist (or is malformed).
	ErrNotFound = errors.New("assessment not found")
	// ErrForbidden — the principal is not the owner. The controller maps
	// this to a 400 + message body, which is what the frontend expects.
	ErrForbidden = errors.New("you don't have permission to access this assessment")
)

var store Store = &mongoStore{}

func composer() *Composer { return NewComposer(store) }
func merger() *Merger     { return NewMerger(store) }

// assertOwner is checked before every read, update or delete by id.
// Creation and template rendering don't go through it.
func assertOwner(a *models.Assessment, principalID string) error {
	if a.UserID.Hex() != principalID {
		return ErrForbidden
	}
	return nil
}

// GetTemplate returns the blank questionnaire in canonical order.
func GetTemplate() (*models.AssessmentDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return composer().Template(ctx)
}

// GetAssessmentsForUser lists the principal's own assessments, newest
// first, each rendered as a full snapshot like the reference panel does.
func GetAssessmentsForUser(principalID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	userID, err := primitive.ObjectIDFromHex(principalID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	assessments, total, err := store.ListAssessmentsByOwner(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	details := make([]*models.AssessmentDetail, 0, len(assessments))
	for i := range assessments {
		detail, err := composer().Snapshot(ctx, &assessments[i])
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return models.NewPaginatedResponse(details, total, params), nil
}

// GetAssessment returns one assessment's snapshot, owner only.
func GetAssessment(id, principalID string) (*models.AssessmentDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a, err := findByHex(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := assertOwner(a, principalID); err != nil {
		return nil, err
	}

	return composer().Snapshot(ctx, a)
}

// CreateAssessment makes a new DRAFT assessment owned by the principal and
// feeds any pre-filled answers through the create-path merge.
func CreateAssessment(principalID string, payload *models.AssessmentDetail) (*models.AssessmentDetail, *models.MergeResult, error) {
	userID, err := primitive.ObjectIDFromHex(principalID)
	if err != nil {
		return nil, nil, errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	a := &models.Assessment{
		Name:        payload.Name,
		Description: payload.Description,
		Status:      "DRAFT",
		UserID:      userID,
	}
	if err := store.InsertAssessment(ctx, a); err != nil {
		return nil, nil, err
	}

	mergeResult, err := merger().ApplyCreate(ctx, a.ID, payload.Chapters)
	if err != nil {
		return nil, mergeResult, err
	}

	if err := jobs.ScheduleDraftReminder(a.ID.Hex()); err != nil {
		// The reminder is best effort; the assessment itself is saved.
		log.Println("⚠️ Failed to schedule draft reminder:", err)
	}

	detail, err := composer().Snapshot(ctx, a)
	if err != nil {
		return nil, mergeResult, err
	}
	return detail, mergeResult, nil
}

// UpdateAssessment overwrites name/description/status and upserts the
// payload's answers. Owner only. Safe to replay: the merge converges to
// one row per area/requirement.
func UpdateAssessment(id, principalID string, payload *models.AssessmentDetail) (*models.AssessmentDetail, *models.MergeResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	a, err := findByHex(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if err := assertOwner(a, principalID); err != nil {
		return nil, nil, err
	}

	a.Name = payload.Name
	a.Description = payload.Description
	a.Status = payload.Status
	if err := store.UpdateAssessment(ctx, a); err != nil {
		return nil, nil, err
	}

	mergeResult, err := merger().ApplyUpdate(ctx, a.ID, payload.Chapters)
	if err != nil {
		return nil, mergeResult, err
	}

	detail, err := composer().Snapshot(ctx, a)
	if err != nil {
		return nil, mergeResult, err
	}
	return detail, mergeResult, nil
}

// DeleteAssessment removes the assessment and all of its responses and
// area scores. Owner only.
func DeleteAssessment(id, principalID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a, err := findByHex(ctx, id)
	if err != nil {
		return err
	}
	if err := assertOwner(a, principalID); err != nil {
		return err
	}

	return store.DeleteAssessment(ctx, a.ID)
}

func findByHex(ctx context.Context, id string) (*models.Assessment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	a, err := store.FindAssessment(ctx, objID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}
