package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/EGC-hub/Website-repo-dev/constants"
	"github.com/EGC-hub/Website-repo-dev/models"
	"github.com/EGC-hub/Website-repo-dev/utils"
)

const finishDateLayout = "2006-01-02 15:04:05"

// StatusController owns the status-transition flow: it checks what the actor
// may do, applies per-status side effects, and persists task mutation, delay
// bookkeeping, attachment record and timeline event in one transaction.
type StatusController struct {
	DB    *gorm.DB
	Blobs utils.BlobStore
	Now   func() time.Time
}

func (sc *StatusController) now() time.Time {
	if sc.Now != nil {
		return sc.Now()
	}
	return time.Now()
}

// transitionEffects carries the request inputs that feed per-status side
// effects inside the transaction.
type transitionEffects struct {
	ReassignUserID        *uint
	StartDescription      string
	CompletionDescription string
	DelayedReason         string
	VerifiedStatus        constants.TaskStatus
	EffectiveStart        time.Time
	Finish                time.Time
}

func (sc *StatusController) UpdateStatus(c *gin.Context) {
	userID, role, ok := currentActor(c)
	if !ok {
		fail(c, ErrUnauthorized)
		return
	}

	now := sc.now().In(requestLocation(c))

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	newStatus := constants.TaskStatus(c.PostForm("status"))
	if err != nil || newStatus == "" || !constants.IsValidStatus(newStatus) {
		fail(c, ErrBadRequest)
		return
	}

	var task models.Task
	if err := sc.DB.First(&task, taskID).Error; err != nil {
		fail(c, ErrTaskNotFound)
		return
	}

	actor := utils.ActorContext{
		UserID:    userID,
		HasMain:   utils.HasCapability(role, constants.CapabilityStatusChangeMain),
		HasNormal: utils.HasCapability(role, constants.CapabilityStatusChangeNormal),
	}
	legal := utils.LegalTargets(actor, task.AssignedByID, task.AssignedUserID, task.Status)

	// A reassigned task must go back to Assigned before it can be started.
	if task.Status == constants.StatusReassigned && newStatus == constants.StatusInProgress {
		fail(c, ErrReassignedStart)
		return
	}
	if newStatus != task.Status && !statusIn(legal, newStatus) {
		fail(c, ErrInvalidTransition)
		return
	}

	effectiveStart := now
	if task.PredecessorTaskID != nil && newStatus == constants.StatusInProgress && newStatus != task.Status {
		var pred models.Task
		err := sc.DB.First(&pred, *task.PredecessorTaskID).Error
		if err != nil || !constants.IsCompleted(pred.Status) || pred.ActualFinishDate == nil {
			fail(c, ErrPredecessorNotComplete)
			return
		}
		// Sequence off the predecessor's finish, not off "now".
		effectiveStart = pred.ActualFinishDate.AddDate(0, 0, 1)
	} else if task.ActualStartDate != nil {
		effectiveStart = *task.ActualStartDate
	}

	finish := now
	if v := c.PostForm("actual_finish_date"); v != "" {
		if t, perr := time.ParseInLocation(finishDateLayout, v, now.Location()); perr == nil {
			finish = t
		}
	}

	completionDescription := c.PostForm("completion_description")
	if constants.IsCompleted(newStatus) && newStatus != task.Status {
		if task.ActualStartDate == nil {
			fail(c, ErrMissingStartDate)
			return
		}
		if completionDescription == "" {
			fail(c, ErrMissingCompletionDescription)
			return
		}
		duration := utils.WeekdayHours(*task.ActualStartDate, now)
		if duration < 1 && c.PostForm("force_proceed") != "true" {
			// Soft stop, not an error: ask the caller to confirm and retry
			// with force_proceed.
			c.JSON(http.StatusOK, gin.H{
				"success":          false,
				"confirm_duration": true,
				"message":          fmt.Sprintf("The actual duration is less than 1 hour (%.2f hours). Are you sure you want to proceed?", duration),
				"task_name":        task.Name,
			})
			return
		}
		finish = now
	}

	// The blob hits disk before the transaction opens; a later rollback
	// leaves the file behind.
	var attachment *models.TaskAttachment
	if file, ferr := c.FormFile("attachment"); ferr == nil && file != nil {
		attachment, err = sc.storeAttachment(file, task.ID, newStatus, userID, now)
		if err != nil {
			fail(c, err)
			return
		}
	}

	if attachment == nil && newStatus == task.Status {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated successfully.", "task_name": task.Name})
		return
	}

	fx := transitionEffects{
		ReassignUserID:        parseOptionalUserID(c.PostForm("reassign_user_id")),
		StartDescription:      completionDescription,
		CompletionDescription: completionDescription,
		DelayedReason:         c.PostForm("delayed_reason"),
		VerifiedStatus:        constants.TaskStatus(c.PostForm("verified_status")),
		EffectiveStart:        effectiveStart,
		Finish:                finish,
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if attachment != nil {
			if err := tx.Create(attachment).Error; err != nil {
				return err
			}
		}

		details, action, err := sc.applyTransition(tx, task, newStatus, fx)
		if err != nil {
			return err
		}

		if newStatus != task.Status {
			event := models.TimelineEvent{
				TaskID:          task.ID,
				Action:          action,
				PreviousStatus:  task.Status,
				NewStatus:       newStatus,
				ChangedByUserID: userID,
				Details:         details,
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated successfully.", "task_name": task.Name})
}

// applyTransition runs the per-target side effects inside tx. task still
// holds the pre-transition state; the returned details and action feed the
// timeline event.
func (sc *StatusController) applyTransition(tx *gorm.DB, task models.Task, newStatus constants.TaskStatus, fx transitionEffects) (datatypes.JSON, string, error) {
	switch {
	case newStatus == constants.StatusReassigned && fx.ReassignUserID != nil:
		name := "Unknown"
		var assignee models.User
		if err := tx.First(&assignee, *fx.ReassignUserID).Error; err == nil {
			name = assignee.Name
		}

		err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
			"status":           newStatus,
			"assigned_user_id": *fx.ReassignUserID,
		}).Error
		if err != nil {
			return nil, "", err
		}

		payload, err := json.Marshal(map[string]interface{}{
			"reassigned_to_user_id":  *fx.ReassignUserID,
			"reassigned_to_username": name,
		})
		if err != nil {
			return nil, "", err
		}
		return datatypes.JSON(payload), constants.TimelineActionTaskReassigned, nil

	case newStatus == task.Status:
		// Attachment-only request, nothing to mutate on the task.
		return nil, constants.TimelineActionStatusChanged, nil

	case newStatus == constants.StatusInProgress:
		err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
			"status":            newStatus,
			"actual_start_date": gorm.Expr("COALESCE(actual_start_date, ?)", fx.EffectiveStart),
			"start_description": fx.StartDescription,
		}).Error
		return nil, constants.TimelineActionStatusChanged, err

	case constants.IsCompleted(newStatus):
		err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
			"status":                 newStatus,
			"completion_description": fx.CompletionDescription,
			"actual_finish_date":     fx.Finish,
		}).Error
		if err != nil {
			return nil, "", err
		}
		if newStatus == constants.StatusDelayed {
			if fx.DelayedReason == "" {
				return nil, "", ErrMissingDelayReason
			}
			record := models.DelayRecord{
				TaskID:           task.ID,
				DelayedReason:    fx.DelayedReason,
				ActualFinishDate: fx.Finish,
			}
			if err := tx.Create(&record).Error; err != nil {
				return nil, "", err
			}
			if err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Update("delayed_reason", fx.DelayedReason).Error; err != nil {
				return nil, "", err
			}
		}
		return nil, constants.TimelineActionStatusChanged, nil

	case newStatus == constants.StatusClosed:
		err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Update("status", newStatus).Error
		if err != nil {
			return nil, "", err
		}
		// A verified on-time outcome voids the delay retroactively; any
		// other combination keeps the record.
		if fx.VerifiedStatus == constants.StatusCompletedOnTime && task.Status == constants.StatusDelayed {
			if err := tx.Where("task_id = ?", task.ID).Delete(&models.DelayRecord{}).Error; err != nil {
				return nil, "", err
			}
		}
		return nil, constants.TimelineActionStatusChanged, nil

	default:
		err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Update("status", newStatus).Error
		return nil, constants.TimelineActionStatusChanged, err
	}
}

func (sc *StatusController) storeAttachment(file *multipart.FileHeader, taskID uint, status constants.TaskStatus, userID uint, now time.Time) (*models.TaskAttachment, error) {
	if !utils.AllowedAttachmentTypes[file.Header.Get("Content-Type")] {
		return nil, ErrInvalidAttachment
	}
	if file.Size > utils.MaxAttachmentSize {
		return nil, ErrAttachmentTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAttachmentStorageFailure, err)
	}
	defer src.Close()

	name := utils.AttachmentFilename(taskID, status, now, file.Filename)
	path, err := sc.Blobs.Store(name, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAttachmentStorageFailure, err)
	}

	return &models.TaskAttachment{
		TaskID:           taskID,
		Filename:         name,
		Filepath:         path,
		UploadedAt:       now,
		StatusAtUpload:   status,
		UploadedByUserID: userID,
	}, nil
}

func currentActor(c *gin.Context) (uint, string, bool) {
	rawID, ok := c.Get("user_id")
	if !ok {
		return 0, "", false
	}
	// JWT claims decode numbers as float64.
	id, ok := rawID.(float64)
	if !ok {
		return 0, "", false
	}
	rawRole, _ := c.Get("role")
	role, _ := rawRole.(string)
	return uint(id), role, true
}

// requestLocation resolves the actor's timezone from the user_timezone
// cookie, defaulting to UTC.
func requestLocation(c *gin.Context) *time.Location {
	if tz, err := c.Cookie("user_timezone"); err == nil && tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

func parseOptionalUserID(v string) *uint {
	if v == "" {
		return nil
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(id)
	return &u
}

func statusIn(set []constants.TaskStatus, s constants.TaskStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func fail(c *gin.Context, err error) {
	c.JSON(failureCode(err), gin.H{"success": false, "message": err.Error()})
}

func failureCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAttachmentStorageFailure):
		return http.StatusInternalServerError
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrReassignedStart),
		errors.Is(err, ErrPredecessorNotComplete),
		errors.Is(err, ErrMissingStartDate),
		errors.Is(err, ErrMissingCompletionDescription),
		errors.Is(err, ErrMissingDelayReason),
		errors.Is(err, ErrInvalidAttachment),
		errors.Is(err, ErrAttachmentTooLarge):
		return http.StatusBadRequest
	default:
		// Store failure: connection or commit errors.
		return http.StatusInternalServerError
	}
}
