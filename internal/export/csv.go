package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"mindspace/internal/service"
)

const dateLayout = "2006-01-02"

// WriteCSV renders a report as two sections, TASKS then MOOD ENTRIES,
// separated by a blank line. Free-text fields are double-quoted; dates
// use yyyy-mm-dd. The format is human-facing and not meant for
// round-trip re-import.
func WriteCSV(w io.Writer, report *service.Report) error {
	var b strings.Builder

	b.WriteString("TASKS\n")
	b.WriteString("Title,Description,Status,Created Date,Completed Date,Priority\n")
	for _, task := range report.Tasks {
		status := "Pending"
		if task.Completed {
			status = "Completed"
		}
		completedAt := ""
		if task.CompletedAt != nil {
			completedAt = task.CompletedAt.Format(dateLayout)
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s\n",
			quote(task.Title),
			quote(task.Description),
			status,
			task.CreatedAt.Format(dateLayout),
			completedAt,
			task.Priority,
		)
	}

	b.WriteString("\n")
	b.WriteString("MOOD ENTRIES\n")
	b.WriteString("Date,Mood (1-5),Note,Emotions\n")
	for _, entry := range report.MoodEntries {
		fmt.Fprintf(&b, "%s,%d,%s,%s\n",
			entry.Date.Format(dateLayout),
			entry.Mood,
			quote(entry.Note),
			quote(strings.Join(entry.Emotions, ", ")),
		)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// quote wraps a free-text field in double quotes, escaping embedded ones.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSVFileName names the exported report file for the given day.
func CSVFileName(period service.ReportPeriod, now time.Time) string {
	return fmt.Sprintf("mindspace-%s-report-%s.csv", period, now.Format(dateLayout))
}
