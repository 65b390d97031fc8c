// Package markers extracts inline task-creation directives from free-form
// assistant text.
//
// A directive looks like [TASK:title], [TASK_HIGH:title] or [TASK_LOW:title]
// and may appear at most once per line. Extraction strips the directive from
// the display text; a line that carried nothing else disappears entirely.
package markers

import (
	"regexp"
	"strings"

	"github.com/mochihq/mochi/pkg/types"
)

// markerRegex matches everything from the start of a line through the
// directive, so that lead-in text ("Note: ") is consumed with the marker
// and only what follows the directive survives on the line.
var markerRegex = regexp.MustCompile(`^.*?\[TASK(?:_(HIGH|LOW))?:([^\]\n]+)\]`)

// TaskDraft is a task candidate extracted from a directive. Only title and
// priority are expressible in the directive syntax; description and
// deadline are left for the caller to fill in.
type TaskDraft struct {
	Title    string
	Priority types.Priority
}

// Extract scans text line by line for task directives. It returns the
// directive-free display text (joined with newlines and trimmed) together
// with the drafts in the order they were encountered. Text without any
// directive comes back unchanged with no drafts; Extract never fails.
func Extract(text string) (string, []TaskDraft) {
	var drafts []TaskDraft
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	matched := false

	for _, line := range lines {
		m := markerRegex.FindStringSubmatchIndex(line)
		if m == nil {
			kept = append(kept, line)
			continue
		}
		matched = true

		title := strings.TrimSpace(line[m[4]:m[5]])
		if title != "" {
			drafts = append(drafts, TaskDraft{Title: title, Priority: suffixPriority(line, m)})
		}

		rest := strings.TrimSpace(line[m[1]:])
		if rest != "" {
			kept = append(kept, rest)
		}
	}

	if !matched {
		return text, nil
	}
	return strings.TrimSpace(strings.Join(kept, "\n")), drafts
}

// suffixPriority maps the optional directive suffix to a priority.
func suffixPriority(line string, m []int) types.Priority {
	if m[2] < 0 {
		return types.PriorityNormal
	}
	switch line[m[2]:m[3]] {
	case "HIGH":
		return types.PriorityHigh
	case "LOW":
		return types.PriorityLow
	default:
		return types.PriorityNormal
	}
}
