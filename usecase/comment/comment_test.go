package comment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KwonOil/easyplanner/domain"
)

type fakeCommentRepo struct {
	comments map[int64]*domain.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*domain.Comment), nextID: 1}
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id int64) (*domain.Comment, error) {
	if c, ok := f.comments[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCommentNotFound
}

func (f *fakeCommentRepo) ListForTask(_ context.Context, taskID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range f.comments {
		if c.TaskID == taskID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment
	return comment, nil
}

func (f *fakeCommentRepo) UpdateContent(_ context.Context, id int64, content string) error {
	c, ok := f.comments[id]
	if !ok {
		return domain.ErrCommentNotFound
	}
	c.Content = content
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	delete(f.comments, id)
	return nil
}

type fakeTaskRepo struct {
	tasks map[int64]*domain.Task
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	if t, ok := f.tasks[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (f *fakeTaskRepo) ListForProject(context.Context, int64) ([]domain.Task, error)  { return nil, nil }
func (f *fakeTaskRepo) ListForAssignee(context.Context, int64) ([]domain.Task, error) { return nil, nil }
func (f *fakeTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	return t, nil
}
func (f *fakeTaskRepo) Update(context.Context, int64, string, string, string) error { return nil }
func (f *fakeTaskRepo) UpdateStatus(context.Context, int64, string) error           { return nil }
func (f *fakeTaskRepo) Assign(context.Context, int64, int64) error                  { return nil }
func (f *fakeTaskRepo) Delete(context.Context, int64) error                         { return nil }

type fakeProjectRepo struct {
	roles map[int64]string
}

func (f *fakeProjectRepo) GetByID(context.Context, int64) (*domain.Project, error) {
	return nil, domain.ErrProjectNotFound
}
func (f *fakeProjectRepo) ListForUser(context.Context, int64) ([]domain.Project, error) {
	return nil, nil
}
func (f *fakeProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	return p, nil
}
func (f *fakeProjectRepo) Update(context.Context, int64, string, string, string) error { return nil }
func (f *fakeProjectRepo) Delete(context.Context, int64) error                         { return nil }
func (f *fakeProjectRepo) IsMember(_ context.Context, _, userID int64) (bool, error) {
	_, ok := f.roles[userID]
	return ok, nil
}
func (f *fakeProjectRepo) MemberRole(_ context.Context, _, userID int64) (string, error) {
	return f.roles[userID], nil
}
func (f *fakeProjectRepo) AddMember(context.Context, int64, int64, string) error { return nil }

func session(userID int64, name string) *domain.Session {
	return &domain.Session{UserID: userID, Username: name, Role: domain.RoleMember}
}

func newFixture() (*UseCase, *fakeCommentRepo, *fakeTaskRepo) {
	comments := newFakeCommentRepo()
	tasks := &fakeTaskRepo{tasks: map[int64]*domain.Task{
		10: {ID: 10, ProjectID: 1},
	}}
	projects := &fakeProjectRepo{roles: map[int64]string{
		7: domain.RoleMember,
		3: domain.RoleTeamLead,
	}}
	return New(comments, tasks, projects, nil), comments, tasks
}

func TestAddStampsAuthor(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	c, err := uc.Add(ctx, session(7, "jihye"), 10, "첫 댓글")
	if err != nil {
		t.Fatal(err)
	}
	if c.UserID != 7 || c.Username != "jihye" || c.TaskID != 10 {
		t.Errorf("comment = %+v", c)
	}
	if c.CreatedAt.IsZero() || c.CreatedAt.Location() != time.UTC {
		t.Errorf("created at = %v, want UTC stamp", c.CreatedAt)
	}
}

func TestAddRejections(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	if _, err := uc.Add(ctx, session(7, "jihye"), 10, ""); !errors.Is(err, domain.ErrNoCommentContent) {
		t.Errorf("empty content: err = %v", err)
	}
	if _, err := uc.Add(ctx, session(7, "jihye"), 999, "x"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("missing task: err = %v", err)
	}
}

func TestEditPermissions(t *testing.T) {
	uc, comments, _ := newFixture()
	ctx := context.Background()

	created, _ := uc.Add(ctx, session(7, "jihye"), 10, "원래 내용")

	tests := []struct {
		name    string
		viewer  *domain.Session
		wantErr error
	}{
		{"author may edit", session(7, "jihye"), nil},
		{"team lead may edit", session(3, "boss"), nil},
		{"other member may not", session(8, "minsu"), domain.ErrNoEditRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Edit(ctx, tt.viewer, created.ID, "고친 내용")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != "고친 내용" {
				t.Errorf("new content = %q", got)
			}
			if comments.comments[created.ID].Content != "고친 내용" {
				t.Error("content not persisted")
			}
		})
	}
}

func TestEditRejectsEmptyContent(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()
	created, _ := uc.Add(ctx, session(7, "jihye"), 10, "원래 내용")

	if _, err := uc.Edit(ctx, session(7, "jihye"), created.ID, ""); !errors.Is(err, domain.ErrNoCommentContent) {
		t.Errorf("err = %v, want ErrNoCommentContent", err)
	}
}

func TestDeletePermissions(t *testing.T) {
	uc, comments, _ := newFixture()
	ctx := context.Background()

	created, _ := uc.Add(ctx, session(7, "jihye"), 10, "댓글")

	if err := uc.Delete(ctx, session(8, "minsu"), created.ID); !errors.Is(err, domain.ErrNoDeleteRight) {
		t.Errorf("other member delete: err = %v", err)
	}
	if err := uc.Delete(ctx, session(3, "boss"), created.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := comments.comments[created.ID]; ok {
		t.Error("comment survived delete")
	}
	if err := uc.Delete(ctx, session(3, "boss"), created.ID); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Errorf("repeat delete: err = %v", err)
	}
}

func TestModifyOnOrphanedComment(t *testing.T) {
	uc, comments, tasks := newFixture()
	ctx := context.Background()

	created, _ := uc.Add(ctx, session(7, "jihye"), 10, "댓글")
	delete(tasks.tasks, 10)
	_ = comments

	if _, err := uc.Edit(ctx, session(7, "jihye"), created.ID, "x"); !errors.Is(err, domain.ErrCommentTaskGone) {
		t.Errorf("err = %v, want ErrCommentTaskGone", err)
	}
}
