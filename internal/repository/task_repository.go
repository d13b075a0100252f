package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mindspace/internal/model"
)

// TaskRepository handles CRUD and range queries for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, taskID).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListCreatedBetween returns tasks whose creation falls in [start, end).
func (r *TaskRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks by range: %w", err)
	}
	return tasks, nil
}

// ListRecurrent returns every stored recurring task template.
func (r *TaskRepository) ListRecurrent(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("is_recurrent = ?", true).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list recurrent tasks: %w", err)
	}
	return tasks, nil
}

// ListCompleted returns every completed task regardless of age.
func (r *TaskRepository) ListCompleted(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("completed = ?", true).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list completed tasks: %w", err)
	}
	return tasks, nil
}

// ListPending returns every task not yet completed.
func (r *TaskRepository) ListPending(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("completed = ?", false).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list pending tasks: %w", err)
	}
	return tasks, nil
}

// TitleExistsOn reports whether a concrete task with the given title was
// created on the given calendar day. Used to avoid duplicating recurring
// templates that were already materialized.
func (r *TaskRepository) TitleExistsOn(ctx context.Context, title string, day time.Time) (bool, error) {
	start := model.StartOfDay(day)
	end := start.AddDate(0, 0, 1)
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("title = ? AND created_at >= ? AND created_at < ?", title, start, end).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count tasks by title: %w", err)
	}
	return count > 0, nil
}
