package domain

// Task statuses. The set is server-defined; clients treat the value as opaque
// text and render it verbatim.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Task is a single schedulable work item inside a project.
type Task struct {
	ID         int64  `json:"id"`
	ProjectID  int64  `json:"project_id"`
	Name       string `json:"name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	AssigneeID *int64 `json:"assignee_id,omitempty"`
}

func (t *Task) IsDone() bool {
	return t != nil && t.Status == StatusDone
}

// HasSchedule reports whether the task carries both bounds and can appear on
// the gantt chart.
func (t *Task) HasSchedule() bool {
	return t != nil && t.StartDate != "" && t.EndDate != ""
}
