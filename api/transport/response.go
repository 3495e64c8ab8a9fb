package transport

import "time"

// Failure is the wire shape every unsuccessful operation returns. Message is
// user-facing and shown verbatim.
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewFailure builds a failure payload.
func NewFailure(message string) Failure {
	return Failure{Success: false, Message: message}
}

// TaskPayload is the task shape echoed by mutating endpoints. Clients must
// render these server-confirmed values, never their own submitted ones.
type TaskPayload struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Status    string `json:"status,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// CommentPayload is one comment row. CreatedAt is already shifted to KST.
type CommentPayload struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ProjectPayload is the project shape echoed by the edit endpoint.
type ProjectPayload struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type SimpleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type CreateTaskResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Task    TaskPayload `json:"task"`
}

type EditTaskResponse struct {
	Success bool        `json:"success"`
	Task    TaskPayload `json:"task"`
}

type StatusResponse struct {
	Success   bool   `json:"success"`
	NewStatus string `json:"new_status"`
}

type AssignResponse struct {
	Success      bool   `json:"success"`
	AssigneeName string `json:"assignee_name"`
	Message      string `json:"message"`
}

type AddCommentResponse struct {
	Success bool           `json:"success"`
	Comment CommentPayload `json:"comment"`
}

type EditCommentResponse struct {
	Success    bool   `json:"success"`
	NewContent string `json:"new_content"`
}

type EditProjectResponse struct {
	Success bool           `json:"success"`
	Project ProjectPayload `json:"project"`
}

type StatsResponse struct {
	TaskProgress int `json:"task_progress"`
}

type ChartError struct {
	Error string `json:"error"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// KSTTimestamp renders a stored UTC instant in Korea Standard Time, the
// display timezone every comment timestamp has always used.
func KSTTimestamp(t time.Time) string {
	return t.UTC().Add(9 * time.Hour).Format("2006-01-02 15:04:05")
}
