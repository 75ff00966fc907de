package utils

import (
	"github.com/EGC-hub/Website-repo-dev/constants"
)

// ActorContext is what the transition authority knows about the requester.
type ActorContext struct {
	UserID    uint
	HasMain   bool // status_change_main capability
	HasNormal bool // status_change_normal capability
}

// LegalTargets computes the set of statuses the actor may move the task into
// from its current status. Rules are evaluated in order and a later matching
// rule replaces the earlier result rather than adding to it:
//
//  1. An actor with the main capability, or the task's assigner acting on
//     someone else's task, may move within the assigner set, and may close a
//     completed task.
//  2. A self-assigned actor (assigner and sole assignee) with the normal
//     capability starts from the assigner set, widened by the normal
//     progression for the current status; with no progression entry the
//     whole allowed set opens up, provided the current status is in it.
//  3. Otherwise an assignee with the normal capability gets exactly the
//     normal progression for the current status.
//
// A same-status no-op and the Reassigned -> In Progress lockout are handled
// by the caller, not here.
func LegalTargets(actor ActorContext, assignedByID, assignedUserID uint, current constants.TaskStatus) []constants.TaskStatus {
	isSelfAssigned := assignedByID == actor.UserID && assignedUserID == actor.UserID

	var statuses []constants.TaskStatus
	if actor.HasMain || (assignedByID == actor.UserID && !isSelfAssigned) {
		if containsStatus(constants.AssignerStatuses, current) {
			statuses = append([]constants.TaskStatus{}, constants.AssignerStatuses...)
		} else if constants.IsCompleted(current) {
			statuses = []constants.TaskStatus{constants.StatusClosed}
		}
	}

	if isSelfAssigned && actor.HasNormal {
		statuses = append([]constants.TaskStatus{}, constants.AssignerStatuses...)
		if next, ok := constants.NormalProgression[current]; ok {
			statuses = append(statuses, next...)
		} else if containsStatus(constants.AllowedStatuses, current) {
			statuses = append([]constants.TaskStatus{}, constants.AllowedStatuses...)
		}
	} else if actor.HasNormal && actor.UserID == assignedUserID {
		if next, ok := constants.NormalProgression[current]; ok {
			statuses = append([]constants.TaskStatus{}, next...)
		} else if current == constants.StatusInProgress {
			statuses = []constants.TaskStatus{constants.StatusCompletedOnTime, constants.StatusDelayed}
		}
	}

	return statuses
}

func containsStatus(set []constants.TaskStatus, s constants.TaskStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
