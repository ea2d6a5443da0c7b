package task

import (
	"context"
	"time"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"
)

type (
	TaskService interface {
		GetTasks(ctx context.Context, date string) ([]entities.Task, error)
		AddTask(ctx context.Context, req domain.AddTaskRequest, userID string) (*entities.Task, error)
		UpdateTask(ctx context.Context, req domain.UpdateTaskRequest, userID string) (*entities.Task, error)
		DeleteTask(ctx context.Context, id uint, userID string) error
	}

	taskService struct {
		taskRepository TaskRepository
		now            func() time.Time
	}
)

func NewTaskService(taskRepository TaskRepository) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		now:            time.Now,
	}
}

func (s *taskService) GetTasks(ctx context.Context, date string) ([]entities.Task, error) {
	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	return s.taskRepository.GetTasksByDate(ctx, date)
}

func (s *taskService) AddTask(ctx context.Context, req domain.AddTaskRequest, userID string) (*entities.Task, error) {
	if req.Category == "" {
		req.Category = "other"
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	task := &entities.Task{
		UserID:        userID,
		Title:         req.Title,
		ScheduledTime: req.ScheduledTime,
		Date:          req.Date,
		Category:      req.Category,
		Priority:      req.Priority,
	}

	if err := s.taskRepository.AddTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, req domain.UpdateTaskRequest, userID string) (*entities.Task, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, req.ID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Date != nil {
		task.Date = *req.Date
	}
	if req.ScheduledTime != nil {
		task.ScheduledTime = *req.ScheduledTime
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Done != nil {
		task.Done = *req.Done
	}

	if err := s.taskRepository.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id uint, userID string) error {
	return s.taskRepository.DeleteTask(ctx, id, userID)
}
