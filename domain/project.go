package domain

// Project is the top-level planning unit. Start and end travel as
// datetime-local strings ("2006-01-02T15:04") end to end; the server stores
// them verbatim and never reformats what the client submitted.
type Project struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedBy int64  `json:"created_by"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Membership ties a user to a project with a per-project role.
type Membership struct {
	ProjectID int64  `json:"project_id"`
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
}

// Invite is a pending member-invitation notification, queued for delivery
// after the membership row has been written.
type Invite struct {
	ProjectID   int64  `json:"project_id"`
	ProjectName string `json:"project_name"`
	InviterName string `json:"inviter_name"`
	InviteeID   int64  `json:"invitee_id"`
	InviteeName string `json:"invitee_name"`
}
