package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

type stubFileRepo struct {
	files  map[string]*domain.StoredFile
	nextID int
}

func newStubFileRepo() *stubFileRepo {
	return &stubFileRepo{files: make(map[string]*domain.StoredFile)}
}

func (r *stubFileRepo) Create(_ context.Context, f *domain.StoredFile) (*domain.StoredFile, error) {
	r.nextID++
	cp := *f
	cp.ID = fmt.Sprintf("f%d", r.nextID)
	r.files[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *stubFileRepo) FindByID(_ context.Context, id string) (*domain.StoredFile, error) {
	f, ok := r.files[id]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *stubFileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.files[id]; !ok {
		return domain.ErrFileNotFound
	}
	delete(r.files, id)
	return nil
}

type stubFileStore struct {
	saved   map[string][]byte
	nextNum int
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{saved: make(map[string][]byte)}
}

func (s *stubFileStore) Save(_ context.Context, original string, r io.Reader) (string, int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	s.nextNum++
	name := fmt.Sprintf("stored-%d", s.nextNum)
	s.saved[name] = data
	return name, int64(len(data)), nil
}

func (s *stubFileStore) Remove(_ context.Context, name string) error {
	delete(s.saved, name)
	return nil
}

type stubRevoker struct {
	revoked map[string]time.Time
	err     error
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Time)}
}

func (r *stubRevoker) Revoke(_ context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	r.revoked[userID] = time.Now().UTC()
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	at, ok := r.revoked[userID]
	if !ok {
		return false, nil
	}
	return !issuedAt.After(at), nil
}

func seedUser(repo *stubUserRepo, username string, userType int) *domain.User {
	created, _ := repo.Create(context.Background(), &domain.User{
		Username:  username,
		FirstName: "First",
		LastName:  "Last",
		Email:     username + "@example.com",
		Type:      userType,
		Status:    domain.StatusActive,
	})
	return created
}

func newUserService(repo *stubUserRepo, files *stubFileRepo, store *stubFileStore, revoker *stubRevoker) *UserService {
	return NewUserService(repo, files, store, revoker, zerolog.Nop())
}

func TestUserListDefaultsLimit(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alpha", domain.TypeUser)
	svc := newUserService(repo, newStubFileRepo(), newStubFileStore(), newStubRevoker())

	result, err := svc.List(context.Background(), ports.ListUsersFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Limit != 10 {
		t.Errorf("limit = %d, want default 10", result.Limit)
	}
	if result.Count != 1 || len(result.Users) != 1 {
		t.Errorf("count = %d, users = %d, want 1", result.Count, len(result.Users))
	}
}

func TestUserUpdateRequiresAllFields(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, "alpha", domain.TypeUser)
	svc := newUserService(repo, newStubFileRepo(), newStubFileStore(), newStubRevoker())

	_, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{Username: "alpha"})
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestUserUpdateChangesRoleType(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, "alpha", domain.TypeUser)
	svc := newUserService(repo, newStubFileRepo(), newStubFileStore(), newStubRevoker())

	updated, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{
		Username: "alpha", FirstName: "First", LastName: "Last",
		Email: "alpha@example.com", Type: domain.TypeManager,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Type != domain.TypeManager {
		t.Errorf("type = %d, want %d", updated.Type, domain.TypeManager)
	}
	if updated.Role != domain.RoleManager {
		t.Errorf("role = %q, want Manager", updated.Role)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.Type != domain.TypeManager {
		t.Errorf("stored type = %d, want %d", stored.Type, domain.TypeManager)
	}
}

func TestUserUpdateRejectsUnknownType(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, "alpha", domain.TypeUser)
	svc := newUserService(repo, newStubFileRepo(), newStubFileStore(), newStubRevoker())

	_, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{
		Username: "alpha", FirstName: "First", LastName: "Last",
		Email: "alpha@example.com", Type: 42,
	})
	if !errors.Is(err, domain.ErrUnknownRole) {
		t.Errorf("expected ErrUnknownRole, got %v", err)
	}
}

func TestSuperAdminIsImmutable(t *testing.T) {
	repo := newStubUserRepo()
	boss := seedUser(repo, "boss", domain.TypeSuperAdmin)
	svc := newUserService(repo, newStubFileRepo(), newStubFileStore(), newStubRevoker())

	_, err := svc.Update(context.Background(), boss.ID, ports.UserUpdate{
		Username: "boss", FirstName: "B", LastName: "Oss", Email: "boss@example.com", Type: domain.TypeSuperAdmin,
	})
	if !errors.Is(err, domain.ErrSuperAdminImmutable) {
		t.Errorf("update: expected ErrSuperAdminImmutable, got %v", err)
	}

	if err := svc.Delete(context.Background(), boss.ID); !errors.Is(err, domain.ErrSuperAdminImmutable) {
		t.Errorf("delete: expected ErrSuperAdminImmutable, got %v", err)
	}
}

func TestDeleteRevokesTokens(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, "alpha", domain.TypeUser)
	revoker := newStubRevoker()
	svc := newUserService(repo, newStubFileRepo(), newStubFileStore(), revoker)

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := revoker.revoked[user.ID]; !ok {
		t.Error("deleting an account should revoke its tokens")
	}
	if _, err := repo.FindByID(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestDeleteSurvivesRevokerFailure(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, "alpha", domain.TypeUser)
	revoker := newStubRevoker()
	revoker.err = errors.New("redis down")
	svc := newUserService(repo, newStubFileRepo(), newStubFileStore(), revoker)

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete should not fail on revocation: %v", err)
	}
}

func TestSetAvatarReplacesPrevious(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, "alpha", domain.TypeUser)
	files := newStubFileRepo()
	store := newStubFileStore()
	svc := newUserService(repo, files, store, newStubRevoker())

	first, err := svc.SetAvatar(context.Background(), user.ID, "me.png", "image/png", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("first SetAvatar: %v", err)
	}
	if first.AvatarFileID == "" {
		t.Fatal("avatar file id not set")
	}

	second, err := svc.SetAvatar(context.Background(), user.ID, "me2.png", "image/png", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("second SetAvatar: %v", err)
	}
	if second.AvatarFileID == first.AvatarFileID {
		t.Error("avatar file id should change")
	}

	// The first upload's record and payload are gone.
	if _, err := files.FindByID(context.Background(), first.AvatarFileID); !errors.Is(err, domain.ErrFileNotFound) {
		t.Errorf("previous avatar record should be deleted, got %v", err)
	}
	if len(store.saved) != 1 {
		t.Errorf("store holds %d payloads, want 1", len(store.saved))
	}
}

func TestDeleteCleansUpAvatar(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, "alpha", domain.TypeUser)
	files := newStubFileRepo()
	store := newStubFileStore()
	svc := newUserService(repo, files, store, newStubRevoker())

	if _, err := svc.SetAvatar(context.Background(), user.ID, "me.png", "image/png", strings.NewReader("one")); err != nil {
		t.Fatalf("SetAvatar: %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("store holds %d payloads after delete, want 0", len(store.saved))
	}
}
