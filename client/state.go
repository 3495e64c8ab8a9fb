package client

import (
	"strings"

	"github.com/KwonOil/easyplanner/api/transport"
	"github.com/KwonOil/easyplanner/domain"
)

// Viewer is the identity the page was rendered for, read once at load time.
type Viewer struct {
	UserID   int64
	Username string
	Role     string
}

// CommentRow is one rendered comment. CanModify is recomputed on every list
// load, never carried over from a previous render.
type CommentRow struct {
	ID        int64
	Username  string
	Content   string
	CreatedAt string
	Editing   bool
	CanModify bool
}

// TaskRow is one rendered task item. Every field renders from the last
// server-confirmed value; nothing is parsed back out of display text.
type TaskRow struct {
	ID           int64
	Name         string
	Status       string
	StartDate    string
	EndDate      string
	AssigneeName string

	Expanded bool
	Editing  bool

	Comments            []CommentRow
	CommentsLoaded      bool
	CommentsPlaceholder bool
}

// StatusText is the collapsed-summary status line.
func (t *TaskRow) StatusText() string {
	return "상태: " + t.Status
}

// DateRangeText renders the schedule as "start ~ end" with the
// datetime-local T separator flattened to a space.
func (t *TaskRow) DateRangeText() string {
	return DateRangeText(t.StartDate, t.EndDate)
}

func DateRangeText(startDate, endDate string) string {
	return strings.ReplaceAll(startDate, "T", " ") + " ~ " + strings.ReplaceAll(endDate, "T", " ")
}

// PageState is the project page's view model. The server is authoritative;
// this state is replaced from responses, never trusted across mutations.
type PageState struct {
	ProjectID    int64
	ProjectName  string
	ProjectStart string
	ProjectEnd   string
	Viewer       Viewer

	Tasks []*TaskRow

	// NoTasksPlaceholder starts true on an empty list and is dropped
	// permanently the first time a task is added.
	NoTasksPlaceholder bool

	EditModalOpen bool

	Progress      int
	ProgressLabel string
}

// TaskByID returns the row for id, or nil when it is no longer rendered.
// Late responses racing a delete resolve to nil and their handlers no-op.
func (s *PageState) TaskByID(id int64) *TaskRow {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RemoveTask drops the row for id. Removing an absent id is a no-op.
func (s *PageState) RemoveTask(id int64) {
	for i, t := range s.Tasks {
		if t.ID == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			return
		}
	}
}

// AppendTask renders a confirmed creation. The empty-list placeholder is
// removed the first time and never re-inserted.
func (s *PageState) AppendTask(payload *transport.TaskPayload) *TaskRow {
	s.NoTasksPlaceholder = false
	row := &TaskRow{
		ID:        payload.ID,
		Name:      payload.Name,
		Status:    payload.Status,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
	}
	s.Tasks = append(s.Tasks, row)
	return row
}

// canModifyComment applies the comment permission rule: the author may, and
// so may a project team lead.
func (s *PageState) canModifyComment(author string) bool {
	return author == s.Viewer.Username || s.Viewer.Role == domain.RoleTeamLead
}
