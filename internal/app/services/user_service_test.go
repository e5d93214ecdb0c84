package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/app/repositories"
	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
)

// fakeUserRepo is an in-memory role store.
type fakeUserRepo struct {
	nextID  int64
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byEmail: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return 0, repositories.ErrUserAlreadyExists
	}
	stored := *user
	stored.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = &stored
	return stored.ID, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) ListUsers(_ context.Context, _ uint64, _ int) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.byEmail {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.byEmail)), nil
}

func (f *fakeUserRepo) UpdateUserRole(_ context.Context, id int64, role models.Role) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func TestRegisterCreatesStudent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Register(context.Background(), testIdentity(), nil)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !created {
		t.Fatalf("expected a new user to be created")
	}

	user, err := svc.GetUserByEmail(context.Background(), "student@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Fatalf("expected student role, got %s", user.Role)
	}
	if user.DisplayName != "Test Student" {
		t.Fatalf("expected display name from identity, got %q", user.DisplayName)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), testIdentity(), nil); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	created, err := svc.Register(context.Background(), testIdentity(), nil)
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if created {
		t.Fatalf("expected second register to be a no-op")
	}
}

func TestRegisterDoesNotEscalateExistingRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), testIdentity(), nil); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := svc.UpdateUserRole(context.Background(), 1, "admin"); err != nil {
		t.Fatalf("role update failed: %v", err)
	}

	// Re-registering must not reset the promoted role.
	if _, err := svc.Register(context.Background(), testIdentity(), nil); err != nil {
		t.Fatalf("re-register failed: %v", err)
	}

	user, err := svc.GetUserByEmail(context.Background(), "student@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("expected role to stay admin, got %s", user.Role)
	}
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zerolog.Nop())

	err := svc.UpdateUserRole(context.Background(), 1, "superuser")
	if !errors.Is(err, apperrors.ErrInvalidRole) {
		t.Fatalf("expected invalid role error, got %v", err)
	}
}

func TestUpdateUserRoleUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zerolog.Nop())

	err := svc.UpdateUserRole(context.Background(), 99, "moderator")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestGetUserByEmailRequiresEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zerolog.Nop())

	_, err := svc.GetUserByEmail(context.Background(), " ")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
