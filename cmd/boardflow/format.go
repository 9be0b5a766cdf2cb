package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/boardflow/pkg/core"
)

const reminderLayout = "2006-01-02 15:04"

// formatNote renders one note as a single line.
func formatNote(n core.Note) string {
	var meta []string
	if n.ClassTag != "" {
		meta = append(meta, n.ClassTag)
	}
	meta = append(meta, string(n.Priority))
	if weeks := n.Weeks(); len(weeks) > 0 {
		ws := make([]string, len(weeks))
		for i, w := range weeks {
			ws[i] = fmt.Sprintf("v%d", w)
		}
		meta = append(meta, strings.Join(ws, ","))
	}
	if n.ReminderAt != nil {
		meta = append(meta, "⏰ "+n.ReminderAt.Local().Format(reminderLayout))
	}
	return fmt.Sprintf("%s  %-8s %s (%s)", n.ID, n.Status, n.Title, strings.Join(meta, ", "))
}

func printNotes(w io.Writer, notes []core.Note) {
	for _, n := range notes {
		fmt.Fprintln(w, formatNote(n))
	}
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// parseReminder accepts RFC 3339 or a local "YYYY-MM-DD HH:MM".
func parseReminder(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(reminderLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder %q (want RFC 3339 or %q)", s, reminderLayout)
	}
	return t, nil
}
