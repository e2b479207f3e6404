package jobs

import (
	"Backend-RODO-Panel/src/database"
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker runs the Asynq server in a goroutine. Call after InitRedis;
// no Redis means no worker.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDraftReminder, HandleDraftReminderTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Background worker started")
}
