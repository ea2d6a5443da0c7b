package task

import (
	"context"
	"errors"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"

	"gorm.io/gorm"
)

type (
	TaskRepository interface {
		AddTask(ctx context.Context, task *entities.Task) error
		GetTasksByDate(ctx context.Context, date string) ([]entities.Task, error)
		GetTaskByID(ctx context.Context, id uint, userID string) (*entities.Task, error)
		UpdateTask(ctx context.Context, task *entities.Task) error
		DeleteTask(ctx context.Context, id uint, userID string) error
	}

	taskRepository struct {
		db *gorm.DB
	}
)

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) AddTask(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetTasksByDate returns one day's tasks ordered by scheduled time;
// unscheduled tasks (empty time) sort first.
func (r *taskRepository) GetTasksByDate(ctx context.Context, date string) ([]entities.Task, error) {
	var tasks []entities.Task
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("scheduled_time asc").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTaskByID is owner-scoped: a task belonging to another owner is
// reported as not found.
func (r *taskRepository) GetTaskByID(ctx context.Context, id uint, userID string) (*entities.Task, error) {
	var task entities.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) UpdateTask(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) DeleteTask(ctx context.Context, id uint, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
