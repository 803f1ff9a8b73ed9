package ws

import (
	"encoding/json"
	"time"

	"job-portal/internal/domain/job"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobsUpdatedEvent struct {
	Type      string    `json:"type"`
	JobID     uuid.UUID `json:"jobId"`
	Title     string    `json:"title"`
	Timestamp string    `json:"timestamp"`
}

// JobCreated tells every connected client that the job listing changed.
func (h *Hub) JobCreated(j job.Job) {
	if h == nil {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      MessageTypeJobsUpdated,
		JobID:     j.ID,
		Title:     j.Title,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("ws marshal failed", zap.Error(err))
		return
	}
	h.Broadcast(b)
}
