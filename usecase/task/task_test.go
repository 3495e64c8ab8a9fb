package task

import (
	"context"
	"errors"
	"testing"

	"github.com/KwonOil/easyplanner/domain"
)

type fakeTaskRepo struct {
	tasks  map[int64]*domain.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	if t, ok := f.tasks[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (f *fakeTaskRepo) ListForProject(_ context.Context, projectID int64) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range f.tasks {
		if t.ProjectID == projectID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListForAssignee(context.Context, int64) ([]domain.Task, error) { return nil, nil }

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	task.ID = f.nextID
	f.nextID++
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, id int64, name, startDate, endDate string) error {
	t, ok := f.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.Name, t.StartDate, t.EndDate = name, startDate, endDate
	return nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	t, ok := f.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.Status = status
	return nil
}

func (f *fakeTaskRepo) Assign(_ context.Context, id int64, assigneeID int64) error {
	t, ok := f.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.AssigneeID = &assigneeID
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	delete(f.tasks, id)
	return nil
}

type fakeProjectRepo struct {
	members map[int64]map[int64]string
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

func (f *fakeProjectRepo) IsMember(_ context.Context, projectID, userID int64) (bool, error) {
	_, ok := f.members[projectID][userID]
	return ok, nil
}

func (f *fakeProjectRepo) MemberRole(_ context.Context, projectID, userID int64) (string, error) {
	return f.members[projectID][userID], nil
}

func (f *fakeProjectRepo) AddMember(_ context.Context, projectID, userID int64, role string) error {
	if f.members[projectID] == nil {
		f.members[projectID] = make(map[int64]string)
	}
	f.members[projectID][userID] = role
	return nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }
func (f *fakeUserRepo) Count(context.Context) (int, error)                             { return 0, nil }

func viewer(userID int64) *domain.Session {
	return &domain.Session{UserID: userID, Username: "jihye", Role: domain.RoleMember}
}

func newFixture() (*UseCase, *fakeTaskRepo, *fakeProjectRepo) {
	tasks := newFakeTaskRepo()
	projects := &fakeProjectRepo{members: map[int64]map[int64]string{
		1: {7: domain.RoleTeamLead, 8: domain.RoleMember},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		8: {ID: 8, Username: "minsu"},
		9: {ID: 9, Username: "guest"},
	}}
	return New(tasks, projects, users, nil), tasks, projects
}

func TestCreateDefaultsToTodo(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	task, err := uc.Create(ctx, viewer(7), 1, "설계", "2024-01-01T00:00", "2024-01-05T00:00")
	if err != nil {
		t.Fatal(err)
	}
	if task.ID == 0 {
		t.Error("id not assigned")
	}
	if task.Status != domain.StatusTodo {
		t.Errorf("status = %q, want %q", task.Status, domain.StatusTodo)
	}
}

func TestCreateRejections(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	if _, err := uc.Create(ctx, viewer(99), 1, "설계", "a", "b"); !errors.Is(err, domain.ErrNotMember) {
		t.Errorf("non-member: err = %v", err)
	}
	if _, err := uc.Create(ctx, viewer(7), 1, "", "a", "b"); !errors.Is(err, domain.ErrFieldsRequired) {
		t.Errorf("missing name: err = %v", err)
	}
	if _, err := uc.Create(ctx, viewer(7), 1, "설계", "", "b"); !errors.Is(err, domain.ErrFieldsRequired) {
		t.Errorf("missing start: err = %v", err)
	}
}

func TestEditEchoesNewValues(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	created, _ := uc.Create(ctx, viewer(7), 1, "설계", "2024-01-01T00:00", "2024-01-05T00:00")

	edited, err := uc.Edit(ctx, viewer(8), created.ID, "설계 v2", "2024-01-02T00:00", "2024-01-06T00:00")
	if err != nil {
		t.Fatal(err)
	}
	if edited.Name != "설계 v2" || edited.StartDate != "2024-01-02T00:00" {
		t.Errorf("task = %+v", edited)
	}

	if _, err := uc.Edit(ctx, viewer(99), created.ID, "x", "a", "b"); !errors.Is(err, domain.ErrNoEditRight) {
		t.Errorf("non-member edit: err = %v", err)
	}
	if _, err := uc.Edit(ctx, viewer(7), 999, "x", "a", "b"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("missing task: err = %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	uc, tasks, _ := newFixture()
	ctx := context.Background()

	created, _ := uc.Create(ctx, viewer(7), 1, "설계", "a", "b")

	got, err := uc.UpdateStatus(ctx, viewer(8), created.ID, domain.StatusDone)
	if err != nil {
		t.Fatal(err)
	}
	if got != domain.StatusDone {
		t.Errorf("new status = %q", got)
	}
	if tasks.tasks[created.ID].Status != domain.StatusDone {
		t.Error("status not persisted")
	}

	if _, err := uc.UpdateStatus(ctx, viewer(8), created.ID, ""); !errors.Is(err, domain.ErrNoStatusValue) {
		t.Errorf("empty status: err = %v", err)
	}
}

func TestAssignRequiresMemberAssignee(t *testing.T) {
	uc, tasks, _ := newFixture()
	ctx := context.Background()

	created, _ := uc.Create(ctx, viewer(7), 1, "설계", "a", "b")

	name, err := uc.Assign(ctx, viewer(7), created.ID, 8)
	if err != nil {
		t.Fatal(err)
	}
	if name != "minsu" {
		t.Errorf("assignee name = %q, want minsu", name)
	}
	if got := tasks.tasks[created.ID].AssigneeID; got == nil || *got != 8 {
		t.Error("assignee not persisted")
	}

	// User 9 exists but is not on the project.
	if _, err := uc.Assign(ctx, viewer(7), created.ID, 9); !errors.Is(err, domain.ErrNotMember) {
		t.Errorf("outsider assignee: err = %v", err)
	}
}

func TestDelete(t *testing.T) {
	uc, tasks, _ := newFixture()
	ctx := context.Background()

	created, _ := uc.Create(ctx, viewer(7), 1, "설계", "a", "b")

	if err := uc.Delete(ctx, viewer(99), created.ID); !errors.Is(err, domain.ErrNoDeleteRight) {
		t.Errorf("non-member delete: err = %v", err)
	}
	if err := uc.Delete(ctx, viewer(8), created.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := tasks.tasks[created.ID]; ok {
		t.Error("task survived delete")
	}
	if err := uc.Delete(ctx, viewer(8), created.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("repeat delete: err = %v", err)
	}
}
