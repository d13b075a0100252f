package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"mindspace/internal/model"
	"mindspace/internal/service"
)

// WritePDF renders a report: title, date range, task and mood summaries,
// and a per-task listing with a status glyph.
func WritePDF(w io.Writer, report *service.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	periodName := "Weekly"
	if report.Period == service.PeriodMonth {
		periodName = "Monthly"
	}

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 30, fmt.Sprintf("MindSpace %s Report", periodName))

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 45, fmt.Sprintf("%s - %s",
		report.StartDate.Format("Jan 02"),
		report.EndDate.Format("Jan 02, 2006")))

	y := 65.0

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, y, "Task Summary")
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, y, fmt.Sprintf("Total Tasks: %d", report.TotalTasks()))
	y += 8
	pdf.Text(20, y, fmt.Sprintf("Completed: %d", report.CompletedTasks()))
	y += 8
	pdf.Text(20, y, fmt.Sprintf("Completion Rate: %.1f%%", report.CompletionRate()))
	y += 20

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, y, "Mood Summary")
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	if len(report.MoodEntries) > 0 {
		avg := report.AverageMood()
		label := model.MoodLabel(int(avg + 0.5))
		pdf.Text(20, y, fmt.Sprintf("Mood Entries: %d", len(report.MoodEntries)))
		y += 8
		pdf.Text(20, y, tr(fmt.Sprintf("Average Mood: %.1f/5 (%s)", avg, label)))
		y += 20
	} else {
		pdf.Text(20, y, "No mood entries recorded this period")
		y += 20
	}

	if len(report.Tasks) > 0 {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Text(20, y, "Task Details")
		y += 15

		for _, task := range report.Tasks {
			if y > 280 {
				pdf.AddPage()
				y = 20
			}

			glyph := "[ ]"
			if task.Completed {
				glyph = "[x]"
			}
			pdf.SetFont("Helvetica", "", 10)
			pdf.Text(20, y, tr(fmt.Sprintf("%s %s (%s)", glyph, task.Title, task.CreatedAt.Format("Jan 02"))))
			y += 6

			if task.Description != "" {
				pdf.SetFont("Helvetica", "", 8)
				pdf.Text(25, y, tr(task.Description))
				y += 6
			}
			y += 2
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// PDFFileName names the exported report file for the given day.
func PDFFileName(period service.ReportPeriod, now time.Time) string {
	return fmt.Sprintf("mindspace-%s-report-%s.pdf", period, now.Format(dateLayout))
}
