package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"mindspace/internal/export"
	"mindspace/internal/model"
	"mindspace/internal/service"
)

// NewReportCmd creates the report export command.
func NewReportCmd() *cobra.Command {
	var period string
	var format string
	var outDir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a weekly or monthly report",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := service.ReportPeriod(period)
			if p != service.PeriodWeek && p != service.PeriodMonth {
				return fmt.Errorf("period must be week or month")
			}
			if format != "csv" && format != "pdf" {
				return fmt.Errorf("format must be csv or pdf")
			}

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			report, err := a.reports.Generate(context.Background(), p, now)
			if err != nil {
				return err
			}

			var name string
			if format == "csv" {
				name = export.CSVFileName(p, now)
			} else {
				name = export.PDFFileName(p, now)
			}
			path := filepath.Join(outDir, name)

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create report file: %w", err)
			}
			defer file.Close()

			if format == "csv" {
				err = export.WriteCSV(file, report)
			} else {
				err = export.WritePDF(file, report)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Relatório exportado: %s\n", path)
			fmt.Printf("  Tarefas: %d (%d completadas, %.1f%%)\n",
				report.TotalTasks(), report.CompletedTasks(), report.CompletionRate())
			if len(report.MoodEntries) > 0 {
				avg := report.AverageMood()
				fmt.Printf("  Humor: %d registros, média %.1f/5 (%s)\n",
					len(report.MoodEntries), avg, model.MoodLabel(int(avg+0.5)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "week", "week or month")
	cmd.Flags().StringVar(&format, "format", "csv", "csv or pdf")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}

// NewBackupCmd creates the JSON backup command.
func NewBackupCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export a JSON snapshot of all tasks and mood entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			path := filepath.Join(outDir, export.BackupFileName(now))
			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create backup file: %w", err)
			}
			defer file.Close()

			if err := export.WriteBackup(context.Background(), file, a.taskRepo, a.moodRepo, now); err != nil {
				return err
			}
			fmt.Printf("Backup exportado: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}
