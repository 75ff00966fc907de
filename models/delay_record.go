package models

import "time"

// DelayRecord exists for each task sitting in Delayed Completion. It is
// purged when the task is later closed with a verified "Completed on Time"
// outcome.
type DelayRecord struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	TaskID           uint      `json:"task_id"`
	DelayedReason    string    `json:"delayed_reason"`
	ActualFinishDate time.Time `json:"actual_finish_date"`
	CreatedAt        time.Time `json:"created_at"`
}
