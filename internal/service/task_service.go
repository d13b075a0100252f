package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mindspace/internal/model"
	"mindspace/internal/repository"
	"mindspace/internal/validation"
)

// TaskInput represents data required to create or edit a task.
type TaskInput struct {
	Title             string         `validate:"required"`
	Description       string         `validate:"max=2000"`
	Priority          model.Priority `validate:"priority"`
	DueDate           *time.Time
	IsRecurrent       bool
	RecurrenceDays    []int `validate:"dive,gte=0,lte=6"`
	RecurrenceEndDate *time.Time
}

// TaskService wraps task business logic, including the recurrence
// resolver that decides which tasks belong to a given day.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) validate(input TaskInput, createdAt time.Time) error {
	if err := validation.Validate.Struct(input); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}
	if input.IsRecurrent && input.RecurrenceEndDate != nil {
		if model.StartOfDay(*input.RecurrenceEndDate).Before(model.StartOfDay(createdAt)) {
			return fmt.Errorf("recurrence end date is before the task's creation date")
		}
	}
	return nil
}

// CreateTask stores a new task. Recurring tasks always carry a weekday
// set, possibly empty.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput, now time.Time) (*model.Task, error) {
	if err := s.validate(input, now); err != nil {
		return nil, err
	}

	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
	}
	if input.IsRecurrent {
		task.IsRecurrent = true
		task.RecurrenceDays = model.WeekdaySet(input.RecurrenceDays)
		if task.RecurrenceDays == nil {
			task.RecurrenceDays = model.WeekdaySet{}
		}
		task.RecurrenceEndDate = input.RecurrenceEndDate
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies the edited fields onto an existing task.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint, input TaskInput) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(input, task.CreatedAt); err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Priority = input.Priority
	task.DueDate = input.DueDate
	task.IsRecurrent = input.IsRecurrent
	if input.IsRecurrent {
		task.RecurrenceDays = model.WeekdaySet(input.RecurrenceDays)
		if task.RecurrenceDays == nil {
			task.RecurrenceDays = model.WeekdaySet{}
		}
		task.RecurrenceEndDate = input.RecurrenceEndDate
	} else {
		task.RecurrenceDays = nil
		task.RecurrenceEndDate = nil
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID uint) error {
	return s.taskRepo.Delete(ctx, taskID)
}

func (s *TaskService) GetTask(ctx context.Context, taskID uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, taskID)
}

// TasksForDay resolves the effective task set for a calendar day: every
// concrete task created that day, plus one virtual instance per recurring
// template due that day whose title is not already present.
func (s *TaskService) TasksForDay(ctx context.Context, day time.Time) ([]model.Task, error) {
	start := model.StartOfDay(day)
	end := start.AddDate(0, 0, 1)

	tasks, err := s.taskRepo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	templates, err := s.taskRepo.ListRecurrent(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		seen[t.Title] = true
	}

	for _, template := range templates {
		if !template.RecursOn(day) || seen[template.Title] {
			continue
		}
		tasks = append(tasks, template.VirtualInstance(day))
		seen[template.Title] = true
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks, nil
}

// ToggleComplete flips a task's completion. A virtual instance has no
// row to update, so completing one materializes a new concrete completed
// task for today carrying the template's recurrence metadata.
func (s *TaskService) ToggleComplete(ctx context.Context, task *model.Task, now time.Time) (*model.Task, error) {
	if task.IsVirtual() {
		materialized := *task
		materialized.CreatedAt = model.StartOfDay(now)
		materialized.Completed = true
		materialized.CompletedAt = &now
		if err := s.taskRepo.Create(ctx, &materialized); err != nil {
			return nil, err
		}
		return &materialized, nil
	}

	task.Completed = !task.Completed
	if task.Completed {
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
