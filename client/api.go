package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/api/transport"
	"github.com/KwonOil/easyplanner/domain"
)

// BusinessError is a response the server delivered but refused: the request
// reached it, the operation was denied, and Message is what the user must see.
// Transport failures stay ordinary errors and are never surfaced to the user.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// IsBusinessError reports whether err carries a user-facing refusal message.
func IsBusinessError(err error) bool {
	_, ok := err.(*BusinessError)
	return ok
}

// Backend is everything the page controllers need from the server.
type Backend interface {
	CreateTask(projectID int64, name, startDate, endDate string) (*transport.TaskPayload, error)
	EditTask(taskID int64, name, startDate, endDate string) (*transport.TaskPayload, error)
	DeleteTask(taskID int64) error
	UpdateTaskStatus(taskID int64, status string) (string, error)
	AssignTask(taskID, assigneeID int64) (assigneeName, message string, err error)

	ListComments(taskID int64) ([]transport.CommentPayload, error)
	AddComment(taskID int64, content string) error
	EditComment(commentID int64, content string) (string, error)
	DeleteComment(commentID int64) error

	EditProject(projectID int64, name, startDate, endDate string) (*transport.ProjectPayload, error)
	InviteMember(projectID int64, username string) (string, error)
	ProjectStats(projectID int64) (int, error)
	ChartData(projectID int64) (*domain.ChartData, error)
}

// HTTPBackend talks to the planner server over fasthttp. The bearer token is
// attached to every request.
type HTTPBackend struct {
	baseURL string
	token   string
	client  *fasthttp.Client
	timeout time.Duration
	logger  *zap.Logger
}

func NewHTTPBackend(baseURL, token string, logger *zap.Logger) *HTTPBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPBackend{
		baseURL: baseURL,
		token:   token,
		client:  &fasthttp.Client{},
		timeout: 10 * time.Second,
		logger:  logger,
	}
}

// responseProbe sniffs the refusal shape shared by every mutating endpoint.
type responseProbe struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func (b *HTTPBackend) do(method, path string, form *fasthttp.Args, out interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(b.baseURL + path)
	req.Header.SetMethod(method)
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
	if form != nil {
		req.Header.SetContentType("application/x-www-form-urlencoded")
		req.SetBody(form.QueryString())
	}

	if err := b.client.DoTimeout(req, resp, b.timeout); err != nil {
		return err
	}

	body := resp.Body()

	var probe responseProbe
	if err := json.Unmarshal(body, &probe); err == nil {
		if probe.Success != nil && !*probe.Success {
			return &BusinessError{Message: probe.Message}
		}
	}
	if resp.StatusCode() >= fasthttp.StatusBadRequest {
		return fmt.Errorf("unexpected status %d for %s %s", resp.StatusCode(), method, path)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (b *HTTPBackend) CreateTask(projectID int64, name, startDate, endDate string) (*transport.TaskPayload, error) {
	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	form.Set(transport.FieldTaskName, name)
	form.Set(transport.FieldStartDate, startDate)
	form.Set(transport.FieldEndDate, endDate)

	var res transport.CreateTaskResponse
	if err := b.do(fasthttp.MethodPost, fmt.Sprintf("/project/%d/tasks/create", projectID), form, &res); err != nil {
		return nil, err
	}
	return &res.Task, nil
}

func (b *HTTPBackend) EditTask(taskID int64, name, startDate, endDate string) (*transport.TaskPayload, error) {
	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	form.Set(transport.FieldTaskName, name)
	form.Set(transport.FieldStartDate, startDate)
	form.Set(transport.FieldEndDate, endDate)

	var res transport.EditTaskResponse
	if err := b.do(fasthttp.MethodPost, fmt.Sprintf("/api/task/%d/edit", taskID), form, &res); err != nil {
		return nil, err
	}
	return &res.Task, nil
}

func (b *HTTPBackend) DeleteTask(taskID int64) error {
	return b.do(fasthttp.MethodPost, fmt.Sprintf("/tasks/%d/delete", taskID), nil, nil)
}

func (b *HTTPBackend) UpdateTaskStatus(taskID int64, status string) (string, error) {
	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	form.Set(transport.FieldStatus, status)

	var res transport.StatusResponse
	if err := b.do(fasthttp.MethodPost, fmt.Sprintf("/tasks/%d/update-status", taskID), form, &res); err != nil {
		return "", err
	}
	return res.NewStatus, nil
}

func (b *HTTPBackend) AssignTask(taskID, assigneeID int64) (string, string, error) {
	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	form.Set(transport.FieldAssigneeID, fmt.Sprintf("%d", assigneeID))

	var res transport.AssignResponse
	if err := b.do(fasthttp.MethodPost, fmt.Sprintf("/api/task/%d/assign", taskID), form, &res); err != nil {
		return "", "", err
	}
	return res.AssigneeName, res.Message, nil
}

func (b *HTTPBackend) ListComments(taskID int64) ([]transport.CommentPayload, error) {
	var comments []transport.CommentPayload
	if err := b.do(fasthttp.MethodGet, fmt.Sprintf("/api/task/%d/comments", taskID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (b *HTTPBackend) AddComment(taskID int64, content string) error {
	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	form.Set(transport.FieldContent, content)
	return b.do(fasthttp.MethodPost, fmt.Sprintf("/api/task/%d/comments/add", taskID), form, nil)
}

func (b *HTTPBackend) EditComment(commentID int64, content string) (string, error) {
	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	form.Set(transport.FieldContent, content)

	var res transport.EditCommentResponse
	if err := b.do(fasthttp.MethodPost, fmt.Sprintf("/api/comment/%d/edit", commentID), form, &res); err != nil {
		return "", err
	}
	return res.NewContent, nil
}

func (b *HTTPBackend) DeleteComment(commentID int64) error {
	return b.do(fasthttp.MethodPost, fmt.Sprintf("/api/comments/%d/delete", commentID), nil, nil)
}

func (b *HTTPBackend) EditProject(projectID int64, name, startDate, endDate string) (*transport.ProjectPayload, error) {
	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	form.Set(transport.FieldProjectName, name)
	form.Set(transport.FieldStartDate, startDate)
	form.Set(transport.FieldEndDate, endDate)

	var res transport.EditProjectResponse
	if err := b.do(fasthttp.MethodPost, fmt.Sprintf("/api/project/%d/edit", projectID), form, &res); err != nil {
		return nil, err
	}
	return &res.Project, nil
}

func (b *HTTPBackend) InviteMember(projectID int64, username string) (string, error) {
	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	form.Set(transport.FieldUsername, username)

	var res transport.SimpleResponse
	if err := b.do(fasthttp.MethodPost, fmt.Sprintf("/api/project/%d/invite", projectID), form, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (b *HTTPBackend) ProjectStats(projectID int64) (int, error) {
	var res transport.StatsResponse
	if err := b.do(fasthttp.MethodGet, fmt.Sprintf("/api/project/%d/stats", projectID), nil, &res); err != nil {
		return 0, err
	}
	return res.TaskProgress, nil
}

func (b *HTTPBackend) ChartData(projectID int64) (*domain.ChartData, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(b.baseURL + fmt.Sprintf("/api/project/%d/chartjs-data", projectID))
	req.Header.SetMethod(fasthttp.MethodGet)
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}

	if err := b.client.DoTimeout(req, resp, b.timeout); err != nil {
		return nil, err
	}

	body := resp.Body()

	// The chart endpoint signals refusal with {"error": "..."} instead of
	// the usual {"success": false} shape.
	var probe transport.ChartError
	if err := json.Unmarshal(body, &probe); err == nil && probe.Error != "" {
		return nil, &BusinessError{Message: probe.Error}
	}

	var data domain.ChartData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
