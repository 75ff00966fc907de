package models

import (
	"time"

	"github.com/EGC-hub/Website-repo-dev/constants"
)

type TaskAttachment struct {
	ID               uint                 `gorm:"primaryKey" json:"id"`
	TaskID           uint                 `json:"task_id"`
	Filename         string               `json:"filename"`
	Filepath         string               `json:"filepath"`
	UploadedAt       time.Time            `json:"uploaded_at"`
	StatusAtUpload   constants.TaskStatus `json:"status_at_upload"`
	UploadedByUserID uint                 `json:"uploaded_by_user_id"`
}
