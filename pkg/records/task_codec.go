package records

import (
	"strings"

	"github.com/mochihq/mochi/pkg/types"
)

const tasksTitle = "Tâches"

// Task file keys.
const (
	keyTaskID          = "id"
	keyTaskDescription = "description"
	keyTaskPriority    = "priorite"
	keyTaskDeadline    = "deadline"
	keyTaskInProgress  = "en_cours"
	keyTaskTracked     = "suivi"
	keyTaskCompleted   = "complete"
	keyTaskCompletedAt = "complete_le"
	keyTaskCreatedAt   = "cree_le"
	keyTaskNotionID    = "notion_id"
)

const (
	checkedPrefix   = "[x] "
	uncheckedPrefix = "[ ] "
)

// splitCheckbox strips the cosmetic checkbox prefix from a task heading.
// The prefix also carries completion for records written without a
// `complete` property.
func splitCheckbox(heading string) (title string, checked bool) {
	switch {
	case strings.HasPrefix(heading, checkedPrefix):
		return strings.TrimSpace(heading[len(checkedPrefix):]), true
	case strings.HasPrefix(heading, uncheckedPrefix):
		return strings.TrimSpace(heading[len(uncheckedPrefix):]), false
	default:
		return heading, false
	}
}

// DecodeTasks decodes one task per top-level record, in source order.
func DecodeTasks(text string) []types.Task {
	recs := Parse(text)
	tasks := make([]types.Task, 0, len(recs))
	for _, r := range recs {
		title, checked := splitCheckbox(r.Heading)
		t := types.Task{
			ID:          idOrFresh(r.String(keyTaskID, "")),
			Title:       title,
			Description: r.String(keyTaskDescription, ""),
			Priority:    types.ParsePriority(r.String(keyTaskPriority, "")),
			Deadline:    r.Instant(keyTaskDeadline),
			InProgress:  r.Bool(keyTaskInProgress),
			Tracked:     r.Bool(keyTaskTracked),
			Completed:   checked || r.Bool(keyTaskCompleted),
			NotionID:    r.String(keyTaskNotionID, ""),
		}
		if t.Completed {
			t.CompletedAt = r.Instant(keyTaskCompletedAt)
		}
		if created := r.Instant(keyTaskCreatedAt); created != nil {
			t.CreatedAt = *created
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// EncodeTasks renders the task list. The heading carries the display
// checkbox recomputed from Completed; the id is always emitted so identity
// survives title edits.
func EncodeTasks(tasks []types.Task) string {
	b := newBuilder(tasksTitle)
	for _, t := range tasks {
		prefix := uncheckedPrefix
		if t.Completed {
			prefix = checkedPrefix
		}
		b.record(prefix + t.Title)
		b.prop(keyTaskID, t.ID)
		b.optStrProp(keyTaskDescription, t.Description)
		b.prop(keyTaskPriority, string(types.ParsePriority(string(t.Priority))))
		b.optInstantProp(keyTaskDeadline, t.Deadline)
		b.boolProp(keyTaskInProgress, t.InProgress)
		b.boolProp(keyTaskTracked, t.Tracked)
		b.boolProp(keyTaskCompleted, t.Completed)
		if t.Completed {
			b.optInstantProp(keyTaskCompletedAt, t.CompletedAt)
		}
		if !t.CreatedAt.IsZero() {
			b.instantProp(keyTaskCreatedAt, t.CreatedAt)
		}
		b.optStrProp(keyTaskNotionID, t.NotionID)
		b.endRecord()
	}
	return b.text()
}
