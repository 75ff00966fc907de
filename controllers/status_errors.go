package controllers

import "errors"

// Every failure of the status-transition flow maps onto one of these
// sentinels; messages are the ones surfaced to the caller.
var (
	ErrUnauthorized                 = errors.New("Unauthorized access.")
	ErrBadRequest                   = errors.New("Invalid request parameters.")
	ErrTaskNotFound                 = errors.New("Task not found.")
	ErrInvalidTransition            = errors.New("Invalid status change.")
	ErrReassignedStart              = errors.New("The task has just been reassigned. It has to be changed back to Assigned in order to start the task.")
	ErrPredecessorNotComplete       = errors.New("Cannot start this task until the predecessor task is completed.")
	ErrMissingStartDate             = errors.New("Task must have an actual start date before completion.")
	ErrMissingCompletionDescription = errors.New("Completion description is required for completed statuses.")
	ErrMissingDelayReason           = errors.New("Delayed reason is required for Delayed Completion.")
	ErrInvalidAttachment            = errors.New("Invalid file type. Allowed types are PDF, JPG, PNG, PPT, PPTX, TXT, XLS, XLSX, DOC, DOCX.")
	ErrAttachmentTooLarge           = errors.New("File size exceeds 5MB limit.")
	ErrAttachmentStorageFailure     = errors.New("Failed to store uploaded file.")
)
