package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"mindspace/internal/model"
	"mindspace/internal/service"
)

// NewTaskCmd creates the task command tree.
func NewTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage today's tasks",
	}
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskDoneCmd())
	cmd.AddCommand(newTaskEditCmd())
	cmd.AddCommand(newTaskRmCmd())
	return cmd
}

type taskFlags struct {
	description string
	priority    string
	due         string
	recurrent   bool
	days        []int
	endDate     string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.description, "desc", "d", "", "optional description")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "medium", "low, medium or high")
	cmd.Flags().StringVar(&f.due, "due", "", "due date (yyyy-mm-dd)")
	cmd.Flags().BoolVarP(&f.recurrent, "recurrent", "r", false, "repeat on given weekdays")
	cmd.Flags().IntSliceVar(&f.days, "days", nil, "recurrence weekdays, 0=Sunday..6=Saturday")
	cmd.Flags().StringVar(&f.endDate, "until", "", "recurrence end date (yyyy-mm-dd)")
}

func (f *taskFlags) input() (service.TaskInput, error) {
	input := service.TaskInput{
		Title:       "",
		Description: f.description,
		Priority:    model.Priority(f.priority),
		IsRecurrent: f.recurrent,
	}
	if f.recurrent {
		input.RecurrenceDays = f.days
		if input.RecurrenceDays == nil {
			input.RecurrenceDays = []int{}
		}
	}
	if f.due != "" {
		due, err := time.ParseInLocation("2006-01-02", f.due, time.Local)
		if err != nil {
			return input, fmt.Errorf("invalid due date: %w", err)
		}
		input.DueDate = &due
	}
	if f.endDate != "" {
		end, err := time.ParseInLocation("2006-01-02", f.endDate, time.Local)
		if err != nil {
			return input, fmt.Errorf("invalid recurrence end date: %w", err)
		}
		input.RecurrenceEndDate = &end
	}
	return input, nil
}

func newTaskAddCmd() *cobra.Command {
	flags := &taskFlags{}
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task for today",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			ctx := context.Background()
			a.checkReset(ctx)

			input, err := flags.input()
			if err != nil {
				return err
			}
			input.Title = args[0]

			task, err := a.tasks.CreateTask(ctx, input, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Tarefa adicionada: %s (#%d)\n", task.Title, task.ID)

			if task.Priority == model.PriorityHigh {
				a.notify.ScheduleTaskReminder(ctx, task.Title, service.DefaultReminderDelay)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newTaskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show today's tasks, including due recurring ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			ctx := context.Background()
			a.checkReset(ctx)

			tasks, err := a.tasks.TasksForDay(ctx, time.Now())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("Nenhuma tarefa para hoje.")
				return nil
			}
			printTasks(tasks)
			return nil
		},
	}
}

func printTasks(tasks []model.Task) {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	fmt.Printf("Tarefas de hoje (%d de %d completadas)\n", completed, len(tasks))
	for i, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		idStr := "-"
		if !t.IsVirtual() {
			idStr = fmt.Sprintf("#%d", t.ID)
		}
		line := fmt.Sprintf("%2d. %s %s (%s, %s)", i+1, mark, t.Title, idStr, t.Priority)
		if t.IsRecurrent {
			line += " ↻"
		}
		fmt.Println(line)
		if t.Description != "" {
			fmt.Printf("       %s\n", t.Description)
		}
	}
}

// resolveTask picks a task from today's list by its 1-based position.
func resolveTask(ctx context.Context, a *app, arg string) (*model.Task, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid task number %q", arg)
	}
	tasks, err := a.tasks.TasksForDay(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	if n > len(tasks) {
		return nil, fmt.Errorf("no task %d, today has %d", n, len(tasks))
	}
	return &tasks[n-1], nil
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <n>",
		Short: "Toggle completion of the nth task on today's list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			ctx := context.Background()
			a.checkReset(ctx)

			task, err := resolveTask(ctx, a, args[0])
			if err != nil {
				return err
			}
			updated, err := a.tasks.ToggleComplete(ctx, task, time.Now())
			if err != nil {
				return err
			}
			if updated.Completed {
				fmt.Printf("Muito bem! Você completou %q\n", updated.Title)
			} else {
				fmt.Printf("Reaberta: %q\n", updated.Title)
			}
			return nil
		},
	}
}

func newTaskEditCmd() *cobra.Command {
	flags := &taskFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Edit a stored task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			ctx := context.Background()

			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			input, err := flags.input()
			if err != nil {
				return err
			}
			input.Title = args[1]

			task, err := a.tasks.UpdateTask(ctx, uint(id), input)
			if err != nil {
				return err
			}
			fmt.Printf("Tarefa atualizada: %s (#%d)\n", task.Title, task.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a stored task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			if err := a.tasks.DeleteTask(context.Background(), uint(id)); err != nil {
				return err
			}
			fmt.Println("Tarefa excluída.")
			return nil
		},
	}
}
