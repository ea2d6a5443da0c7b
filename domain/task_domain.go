package domain

import (
	"errors"
)

var (
	MessageSuccessGetTasks   = "tasks retrieved successfully"
	MessageSuccessAddTask    = "task added successfully"
	MessageSuccessUpdateTask = "task updated successfully"
	MessageSuccessDeleteTask = "task deleted successfully"

	MessageFailedGetTasks   = "failed to retrieve tasks"
	MessageFailedAddTask    = "failed to add task"
	MessageFailedUpdateTask = "failed to update task"
	MessageFailedDeleteTask = "failed to delete task"

	ErrTaskNotFound   = errors.New("task not found")
	ErrTaskIDRequired = errors.New("task id required")
)

type (
	AddTaskRequest struct {
		Title         string `json:"title" validate:"required"`
		Date          string `json:"date" validate:"required,datetime=2006-01-02"`
		ScheduledTime string `json:"scheduled_time" validate:"omitempty,datetime=15:04"`
		Category      string `json:"category" validate:"omitempty,oneof=training household work social other"`
		Priority      string `json:"priority" validate:"omitempty,oneof=high medium low"`
	}

	UpdateTaskRequest struct {
		ID            uint    `json:"id" validate:"required"`
		Title         *string `json:"title" validate:"omitempty"`
		Date          *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		ScheduledTime *string `json:"scheduled_time" validate:"omitempty"`
		Category      *string `json:"category" validate:"omitempty,oneof=training household work social other"`
		Priority      *string `json:"priority" validate:"omitempty,oneof=high medium low"`
		Done          *bool   `json:"done"`
	}
)
