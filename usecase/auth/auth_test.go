package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KwonOil/easyplanner/domain"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return nil, domain.ErrUsernameTaken
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return user, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(f.users), nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (f *fakeSessionRepo) Save(_ context.Context, session *domain.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func newTestUseCase() (*UseCase, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	return New(users, sessions, "test-secret", time.Hour, nil), users, sessions
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	first, err := uc.Register(ctx, "jihye", "pw1234")
	if err != nil {
		t.Fatal(err)
	}
	if first.Role != domain.RoleAdmin {
		t.Errorf("first user role = %q, want %q", first.Role, domain.RoleAdmin)
	}

	second, err := uc.Register(ctx, "minsu", "pw1234")
	if err != nil {
		t.Fatal(err)
	}
	if second.Role != domain.RoleMember {
		t.Errorf("second user role = %q, want %q", second.Role, domain.RoleMember)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	uc, _, _ := newTestUseCase()
	if _, err := uc.Register(context.Background(), "", "pw"); !errors.Is(err, domain.ErrFieldsRequired) {
		t.Errorf("err = %v, want ErrFieldsRequired", err)
	}
	if _, err := uc.Register(context.Background(), "jihye", ""); !errors.Is(err, domain.ErrFieldsRequired) {
		t.Errorf("err = %v, want ErrFieldsRequired", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()
	if _, err := uc.Register(ctx, "jihye", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Register(ctx, "jihye", "other"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestLoginAndAuthenticateRoundTrip(t *testing.T) {
	uc, _, sessions := newTestUseCase()
	ctx := context.Background()

	if _, err := uc.Register(ctx, "jihye", "pw1234"); err != nil {
		t.Fatal(err)
	}

	token, session, err := uc.Login(ctx, "jihye", "pw1234")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" || session.ID == "" {
		t.Fatal("empty token or session id")
	}
	if _, ok := sessions.sessions[session.ID]; !ok {
		t.Fatal("session not persisted")
	}

	got, err := uc.Authenticate(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if got.UserID != session.UserID || got.Username != "jihye" || got.Role != domain.RoleAdmin {
		t.Errorf("session = %+v", got)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()
	if _, err := uc.Register(ctx, "jihye", "pw1234"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := uc.Login(ctx, "jihye", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, _, err := uc.Login(ctx, "nobody", "pw1234"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v", err)
	}
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	uc, _, _ := newTestUseCase()
	if _, err := uc.Authenticate(context.Background(), "not-a-jwt"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestAuthenticateExpiredSessionIsRevoked(t *testing.T) {
	uc, _, sessions := newTestUseCase()
	ctx := context.Background()

	if _, err := uc.Register(ctx, "jihye", "pw1234"); err != nil {
		t.Fatal(err)
	}
	token, session, err := uc.Login(ctx, "jihye", "pw1234")
	if err != nil {
		t.Fatal(err)
	}

	sessions.sessions[session.ID].ExpiresAt = time.Now().Add(-time.Minute)

	if _, err := uc.Authenticate(ctx, token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
	if _, ok := sessions.sessions[session.ID]; ok {
		t.Error("expired session left in store")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	uc, _, sessions := newTestUseCase()
	ctx := context.Background()

	if _, err := uc.Register(ctx, "jihye", "pw1234"); err != nil {
		t.Fatal(err)
	}
	token, session, err := uc.Login(ctx, "jihye", "pw1234")
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.Logout(ctx, token); err != nil {
		t.Fatal(err)
	}
	if _, ok := sessions.sessions[session.ID]; ok {
		t.Error("session survived logout")
	}
	if err := uc.Logout(ctx, token); err != nil {
		t.Errorf("second logout errored: %v", err)
	}
	if err := uc.Logout(ctx, "dead-token"); err != nil {
		t.Errorf("logout with dead token errored: %v", err)
	}
}
