package budget

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Renderer renders a Report in a particular output format.
type Renderer interface {
	Render(w io.Writer, report *Report) error
}

// TextRenderer renders a Report as human-readable text.
type TextRenderer struct {
	Verbose bool
}

func (r *TextRenderer) Render(w io.Writer, report *Report) error {
	_, _ = fmt.Fprintf(w, "Delivery Budget Analysis\n")
	_, _ = fmt.Fprintf(w, "════════════════════════════════════════\n\n")

	if report.Passed {
		_, _ = fmt.Fprintf(w, "all budgets passed\n\n")
	} else {
		_, _ = fmt.Fprintf(w, "budget violations detected\n\n")
	}

	for _, res := range report.Results {
		name := res.Budget.Name
		if name == "" {
			name = fmt.Sprintf("max %d concurrent deliveries per minute over %s", res.Budget.MaxConcurrent, formatDuration(res.Budget.TimeWindow))
		}
		_, _ = fmt.Fprintf(w, "Budget: %s\n", name)
		_, _ = fmt.Fprintf(w, "  Limit: %d concurrent deliveries\n", res.Budget.MaxConcurrent)
		_, _ = fmt.Fprintf(w, "  Found: %d concurrent deliveries (max)\n", res.MaxFound)

		if res.Passed {
			_, _ = fmt.Fprintf(w, "  Status: PASSED\n\n")
			continue
		}

		_, _ = fmt.Fprintf(w, "  Status: FAILED\n")
		_, _ = fmt.Fprintf(w, "  Violations: %d\n", len(res.Violations))

		if r.Verbose {
			maxShow := 10
			if len(res.Violations) < maxShow {
				maxShow = len(res.Violations)
			}
			for i := 0; i < maxShow; i++ {
				v := res.Violations[i]
				_, _ = fmt.Fprintf(w, "    - %s: %d reminders firing together\n",
					v.Time.Format("2006-01-02 15:04:05"), v.Count)
				_, _ = fmt.Fprintf(w, "      reminder IDs: %v\n", v.ReminderIDs)
			}
			if len(res.Violations) > maxShow {
				_, _ = fmt.Fprintf(w, "    ... and %d more violations\n", len(res.Violations)-maxShow)
			}
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	if total := len(report.Violations); total > 0 {
		_, _ = fmt.Fprintf(w, "Summary: %d violation(s) across %d budget(s)\n", total, len(report.Results))
	}
	return nil
}

// JSONRenderer renders a Report as JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, report *Report) error {
	type resultJSON struct {
		Name          string      `json:"name"`
		MaxConcurrent int         `json:"maxConcurrent"`
		TimeWindow    string      `json:"timeWindow"`
		MaxFound      int         `json:"maxFound"`
		Passed        bool        `json:"passed"`
		Violations    []Violation `json:"violations"`
	}
	type reportJSON struct {
		Passed      bool         `json:"passed"`
		Results     []resultJSON `json:"results"`
		GeneratedAt string       `json:"generatedAt"`
	}

	out := reportJSON{Passed: report.Passed, GeneratedAt: time.Now().UTC().Format(time.RFC3339)}
	for _, res := range report.Results {
		out.Results = append(out.Results, resultJSON{
			Name:          res.Budget.Name,
			MaxConcurrent: res.Budget.MaxConcurrent,
			TimeWindow:    formatDuration(res.Budget.TimeWindow),
			MaxFound:      res.MaxFound,
			Passed:        res.Passed,
			Violations:    res.Violations,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// NewRenderer creates a Renderer for the given format name ("text" or "json").
func NewRenderer(format string, verbose bool) (Renderer, error) {
	switch format {
	case "text", "":
		return &TextRenderer{Verbose: verbose}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("budget: unknown format %q (supported: text, json)", format)
	}
}
