package transport

// Form field names shared by the server handlers and the client. Every
// mutating endpoint accepts a form-encoded body.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldProjectName = "project_name"
	FieldTaskName    = "task_name"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldStatus      = "status"
	FieldAssigneeID  = "assignee_id"
	FieldContent     = "content"
)
