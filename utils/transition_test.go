package utils

import (
	"sort"
	"testing"

	"github.com/EGC-hub/Website-repo-dev/constants"
)

const (
	assignerID = 1
	assigneeID = 2
	selfID     = 3
	adminID    = 99
	strangerID = 7
)

var assignerSet = []constants.TaskStatus{
	constants.StatusAssigned,
	constants.StatusHold,
	constants.StatusCancelled,
	constants.StatusReinstated,
	constants.StatusReassigned,
}

func union(sets ...[]constants.TaskStatus) []constants.TaskStatus {
	var out []constants.TaskStatus
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

func sortedNames(set []constants.TaskStatus) []string {
	names := make([]string, 0, len(set))
	for _, s := range set {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return names
}

func equalSets(a, b []constants.TaskStatus) bool {
	an, bn := sortedNames(a), sortedNames(b)
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return true
}

// Enumerates all statuses against each actor profile and checks the computed
// legal-target set rule by rule.
func TestLegalTargets(t *testing.T) {
	profiles := []struct {
		name           string
		actor          ActorContext
		assignedByID   uint
		assignedUserID uint
		want           map[constants.TaskStatus][]constants.TaskStatus
	}{
		{
			name:           "main capability",
			actor:          ActorContext{UserID: adminID, HasMain: true, HasNormal: true},
			assignedByID:   assignerID,
			assignedUserID: assigneeID,
			want: map[constants.TaskStatus][]constants.TaskStatus{
				constants.StatusAssigned:        assignerSet,
				constants.StatusHold:            assignerSet,
				constants.StatusCancelled:       assignerSet,
				constants.StatusReinstated:      assignerSet,
				constants.StatusReassigned:      assignerSet,
				constants.StatusInProgress:      nil,
				constants.StatusCompletedOnTime: {constants.StatusClosed},
				constants.StatusDelayed:         {constants.StatusClosed},
				constants.StatusClosed:          nil,
			},
		},
		{
			name:           "assigner acting on another's task",
			actor:          ActorContext{UserID: assignerID, HasNormal: true},
			assignedByID:   assignerID,
			assignedUserID: assigneeID,
			want: map[constants.TaskStatus][]constants.TaskStatus{
				constants.StatusAssigned:        assignerSet,
				constants.StatusHold:            assignerSet,
				constants.StatusCancelled:       assignerSet,
				constants.StatusReinstated:      assignerSet,
				constants.StatusReassigned:      assignerSet,
				constants.StatusInProgress:      nil,
				constants.StatusCompletedOnTime: {constants.StatusClosed},
				constants.StatusDelayed:         {constants.StatusClosed},
				constants.StatusClosed:          nil,
			},
		},
		{
			name:           "self-assigned",
			actor:          ActorContext{UserID: selfID, HasNormal: true},
			assignedByID:   selfID,
			assignedUserID: selfID,
			want: map[constants.TaskStatus][]constants.TaskStatus{
				constants.StatusAssigned:        union(assignerSet, []constants.TaskStatus{constants.StatusInProgress}),
				constants.StatusHold:            constants.AllowedStatuses,
				constants.StatusCancelled:       constants.AllowedStatuses,
				constants.StatusReinstated:      constants.AllowedStatuses,
				constants.StatusReassigned:      union(assignerSet, []constants.TaskStatus{constants.StatusInProgress}),
				constants.StatusInProgress:      union(assignerSet, []constants.TaskStatus{constants.StatusCompletedOnTime, constants.StatusDelayed}),
				constants.StatusCompletedOnTime: constants.AllowedStatuses,
				constants.StatusDelayed:         constants.AllowedStatuses,
				constants.StatusClosed:          constants.AllowedStatuses,
			},
		},
		{
			name:           "assignee",
			actor:          ActorContext{UserID: assigneeID, HasNormal: true},
			assignedByID:   assignerID,
			assignedUserID: assigneeID,
			want: map[constants.TaskStatus][]constants.TaskStatus{
				constants.StatusAssigned:        {constants.StatusInProgress},
				constants.StatusHold:            nil,
				constants.StatusCancelled:       nil,
				constants.StatusReinstated:      nil,
				constants.StatusReassigned:      {constants.StatusInProgress},
				constants.StatusInProgress:      {constants.StatusCompletedOnTime, constants.StatusDelayed},
				constants.StatusCompletedOnTime: nil,
				constants.StatusDelayed:         nil,
				constants.StatusClosed:          nil,
			},
		},
		{
			name:           "unrelated actor",
			actor:          ActorContext{UserID: strangerID, HasNormal: true},
			assignedByID:   assignerID,
			assignedUserID: assigneeID,
			want: map[constants.TaskStatus][]constants.TaskStatus{
				constants.StatusAssigned:        nil,
				constants.StatusHold:            nil,
				constants.StatusCancelled:       nil,
				constants.StatusReinstated:      nil,
				constants.StatusReassigned:      nil,
				constants.StatusInProgress:      nil,
				constants.StatusCompletedOnTime: nil,
				constants.StatusDelayed:         nil,
				constants.StatusClosed:          nil,
			},
		},
	}

	for _, p := range profiles {
		t.Run(p.name, func(t *testing.T) {
			for _, current := range constants.AllowedStatuses {
				got := LegalTargets(p.actor, p.assignedByID, p.assignedUserID, current)
				if !equalSets(got, p.want[current]) {
					t.Errorf("from %q: got %v, want %v", current, sortedNames(got), sortedNames(p.want[current]))
				}
			}
		})
	}
}

func TestLegalTargetsDeterministic(t *testing.T) {
	actor := ActorContext{UserID: selfID, HasNormal: true}
	first := LegalTargets(actor, selfID, selfID, constants.StatusInProgress)
	for i := 0; i < 10; i++ {
		again := LegalTargets(actor, selfID, selfID, constants.StatusInProgress)
		if !equalSets(first, again) {
			t.Fatalf("run %d differed: %v vs %v", i, sortedNames(first), sortedNames(again))
		}
	}
}
