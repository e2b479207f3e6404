package jobs

import (
	"Backend-RODO-Panel/src/database"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DraftReminderDelay — how long an assessment may sit untouched before we
// nudge the owner.
const DraftReminderDelay = 7 * 24 * time.Hour

// ScheduleDraftReminder enqueues a reminder for a new assessment. Without
// Redis/Asynq the panel just runs without reminders.
func ScheduleDraftReminder(assessmentID string) error {
	if database.AsynqClient == nil {
		return nil
	}

	task, err := NewDraftReminderTask(assessmentID)
	if err != nil {
		return err
	}

	taskID := "draft-reminder-" + assessmentID
	_, err = database.AsynqClient.Enqueue(task, asynq.ProcessIn(DraftReminderDelay), asynq.TaskID(taskID))
	if err != nil {
		log.Printf("❌ Failed to enqueue task %s: %v", taskID, err)
		return err
	}
	log.Printf("✅ Draft reminder scheduled: %s", taskID)
	return nil
}

// HandleDraftReminderTask fires after DraftReminderDelay. Deleted or
// already-submitted assessments are skipped without error.
func HandleDraftReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload AssessmentPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.AssessmentID)
	if err != nil {
		return err
	}

	collection := database.GetCollection(database.DBName, "assessments")

	var assessment bson.M
	err = collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Assessment not found. Possibly deleted. Skipping reminder:", id.Hex())
			return nil
		}
		log.Println("❌ Failed to find assessment:", err)
		return err
	}

	if status, _ := assessment["status"].(string); status != "DRAFT" {
		log.Println("ℹ️ Assessment no longer in DRAFT, skipping reminder:", id.Hex())
		return nil
	}

	// No mail transport in the panel yet; the reminder lands in the log
	// where the operator dashboards pick it up.
	log.Printf("🔔 Reminder: assessment %s has been in DRAFT for over %s", id.Hex(), DraftReminderDelay)
	return nil
}
