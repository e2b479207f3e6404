package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeDraftReminder = "assessment:draft_reminder"

type AssessmentPayload struct {
	AssessmentID string `json:"assessment_id"`
}

func NewDraftReminderTask(assessmentID string) (*asynq.Task, error) {
	payload, err := json.Marshal(AssessmentPayload{AssessmentID: assessmentID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDraftReminder, payload), nil
}
