package domain

import "time"

// Comment belongs to a task. CreatedAt is stored in UTC; the API layer shifts
// it to KST for display, matching what the original service always did.
type Comment struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Username is the author's name, joined in on reads.
	Username string `json:"username,omitempty"`
}

// CanModify reports whether the viewer may edit or delete this comment:
// the author always can, and so can a project team lead.
func (c *Comment) CanModify(viewerID int64, projectRole string) bool {
	if c == nil {
		return false
	}
	return c.UserID == viewerID || projectRole == RoleTeamLead
}
