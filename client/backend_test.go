package client

import (
	"github.com/KwonOil/easyplanner/api/transport"
	"github.com/KwonOil/easyplanner/domain"
)

// fakeBackend records calls and serves canned responses so controller
// behavior can be asserted without a server.
type fakeBackend struct {
	createTaskResp *transport.TaskPayload
	createTaskErr  error

	editTaskResp *transport.TaskPayload
	editTaskErr  error

	deleteTaskErr error

	statusResp string
	statusErr  error

	assignName    string
	assignMessage string
	assignErr     error

	comments    []transport.CommentPayload
	commentsErr error

	addCommentErr   error
	editCommentResp string
	editCommentErr  error
	deleteCommentErr error

	editProjectResp *transport.ProjectPayload
	editProjectErr  error

	inviteMessage string
	inviteErr     error

	statsResp int
	statsErr  error

	chartResp *domain.ChartData
	chartErr  error

	statsCalls  int
	chartCalls  int
	deleteCalls int
	listCalls   int
}

func (f *fakeBackend) CreateTask(projectID int64, name, startDate, endDate string) (*transport.TaskPayload, error) {
	if f.createTaskErr != nil {
		return nil, f.createTaskErr
	}
	return f.createTaskResp, nil
}

func (f *fakeBackend) EditTask(taskID int64, name, startDate, endDate string) (*transport.TaskPayload, error) {
	if f.editTaskErr != nil {
		return nil, f.editTaskErr
	}
	return f.editTaskResp, nil
}

func (f *fakeBackend) DeleteTask(taskID int64) error {
	f.deleteCalls++
	return f.deleteTaskErr
}

func (f *fakeBackend) UpdateTaskStatus(taskID int64, status string) (string, error) {
	if f.statusErr != nil {
		return "", f.statusErr
	}
	return f.statusResp, nil
}

func (f *fakeBackend) AssignTask(taskID, assigneeID int64) (string, string, error) {
	if f.assignErr != nil {
		return "", "", f.assignErr
	}
	return f.assignName, f.assignMessage, nil
}

func (f *fakeBackend) ListComments(taskID int64) ([]transport.CommentPayload, error) {
	f.listCalls++
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return f.comments, nil
}

func (f *fakeBackend) AddComment(taskID int64, content string) error {
	return f.addCommentErr
}

func (f *fakeBackend) EditComment(commentID int64, content string) (string, error) {
	if f.editCommentErr != nil {
		return "", f.editCommentErr
	}
	return f.editCommentResp, nil
}

func (f *fakeBackend) DeleteComment(commentID int64) error {
	return f.deleteCommentErr
}

func (f *fakeBackend) EditProject(projectID int64, name, startDate, endDate string) (*transport.ProjectPayload, error) {
	if f.editProjectErr != nil {
		return nil, f.editProjectErr
	}
	return f.editProjectResp, nil
}

func (f *fakeBackend) InviteMember(projectID int64, username string) (string, error) {
	if f.inviteErr != nil {
		return "", f.inviteErr
	}
	return f.inviteMessage, nil
}

func (f *fakeBackend) ProjectStats(projectID int64) (int, error) {
	f.statsCalls++
	if f.statsErr != nil {
		return 0, f.statsErr
	}
	return f.statsResp, nil
}

func (f *fakeBackend) ChartData(projectID int64) (*domain.ChartData, error) {
	f.chartCalls++
	if f.chartErr != nil {
		return nil, f.chartErr
	}
	return f.chartResp, nil
}

type fakeAlerter struct {
	messages []string
}

func (f *fakeAlerter) Alert(message string) {
	f.messages = append(f.messages, message)
}

type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (f *fakeConfirmer) Confirm(prompt string) bool {
	f.asked = append(f.asked, prompt)
	return f.answer
}

func newTestApp(backend *fakeBackend) (*App, *fakeAlerter, *fakeConfirmer) {
	alerter := &fakeAlerter{}
	confirmer := &fakeConfirmer{answer: true}
	state := &PageState{
		ProjectID:          1,
		ProjectName:        "출시 준비",
		ProjectStart:       "2024-01-01T00:00",
		ProjectEnd:         "2024-02-01T00:00",
		Viewer:             Viewer{UserID: 7, Username: "jihye", Role: domain.RoleMember},
		NoTasksPlaceholder: true,
	}
	return NewApp(backend, state, alerter, confirmer, nil), alerter, confirmer
}
