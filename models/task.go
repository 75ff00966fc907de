package models

import (
	"time"

	"github.com/EGC-hub/Website-repo-dev/constants"
)

type Task struct {
	ID                    uint                 `gorm:"primaryKey" json:"id"`
	Name                  string               `json:"name"`
	Status                constants.TaskStatus `gorm:"default:'Assigned'" json:"status"`
	AssignedByID          uint                 `json:"assigned_by_id"`
	AssignedUserID        uint                 `json:"assigned_user_id"`
	PredecessorTaskID     *uint                `json:"predecessor_task_id"`
	StartDescription      string               `json:"start_description"`
	CompletionDescription string               `json:"completion_description"`
	DelayedReason         string               `json:"delayed_reason"`
	ActualStartDate       *time.Time           `json:"actual_start_date"`
	ActualFinishDate      *time.Time           `json:"actual_finish_date"`
	CreatedAt             time.Time            `json:"created_at"`
	Timeline              []TimelineEvent      `json:"timeline,omitempty"`
}
