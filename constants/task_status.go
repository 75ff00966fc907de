package constants

// TaskStatus is the closed set of lifecycle states a task can be in.
type TaskStatus string

const (
	StatusAssigned        TaskStatus = "Assigned"
	StatusHold            TaskStatus = "Hold"
	StatusCancelled       TaskStatus = "Cancelled"
	StatusReinstated      TaskStatus = "Reinstated"
	StatusReassigned      TaskStatus = "Reassigned"
	StatusInProgress      TaskStatus = "In Progress"
	StatusCompletedOnTime TaskStatus = "Completed on Time"
	StatusDelayed         TaskStatus = "Delayed Completion"
	StatusClosed          TaskStatus = "Closed"
)

// AssignerStatuses are the states an assigner may move a task between freely.
var AssignerStatuses = []TaskStatus{
	StatusAssigned,
	StatusHold,
	StatusCancelled,
	StatusReinstated,
	StatusReassigned,
}

// NormalProgression maps a current status to the targets a plain assignee may
// move the task into.
var NormalProgression = map[TaskStatus][]TaskStatus{
	StatusAssigned:   {StatusInProgress},
	StatusInProgress: {StatusCompletedOnTime, StatusDelayed},
	StatusReassigned: {StatusInProgress},
}

// AllowedStatuses is the full set of states reachable through any rule.
var AllowedStatuses = []TaskStatus{
	StatusAssigned,
	StatusHold,
	StatusCancelled,
	StatusReinstated,
	StatusReassigned,
	StatusInProgress,
	StatusCompletedOnTime,
	StatusDelayed,
	StatusClosed,
}

// IsCompleted reports whether s is one of the two completion states.
func IsCompleted(s TaskStatus) bool {
	return s == StatusCompletedOnTime || s == StatusDelayed
}

// IsValidStatus reports whether s belongs to the closed status set.
func IsValidStatus(s TaskStatus) bool {
	for _, v := range AllowedStatuses {
		if v == s {
			return true
		}
	}
	return false
}

const (
	TimelineActionStatusChanged  = "status_changed"
	TimelineActionTaskReassigned = "task_reassigned"
)
