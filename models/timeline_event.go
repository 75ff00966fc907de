package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/EGC-hub/Website-repo-dev/constants"
)

// TimelineEvent is an append-only audit row; rows are never updated or
// deleted once written.
type TimelineEvent struct {
	ID              uint                 `gorm:"primaryKey" json:"id"`
	TaskID          uint                 `json:"task_id"`
	Action          string               `json:"action"`
	PreviousStatus  constants.TaskStatus `json:"previous_status"`
	NewStatus       constants.TaskStatus `json:"new_status"`
	ChangedByUserID uint                 `json:"changed_by_user_id"`
	Details         datatypes.JSON       `json:"details,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}
