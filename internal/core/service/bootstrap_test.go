package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
)

func superAdminSeed() SuperAdminSeed {
	return SuperAdminSeed{
		Username:  "root",
		Email:     "root@example.com",
		Password:  "s3cret",
		FirstName: "Super",
		LastName:  "Admin",
	}
}

func TestEnsureSuperAdminCreatesAccount(t *testing.T) {
	repo := newStubUserRepo()
	hasher := NewPasswordHasher(4)

	if err := EnsureSuperAdmin(context.Background(), repo, hasher, zerolog.Nop(), superAdminSeed()); err != nil {
		t.Fatalf("EnsureSuperAdmin: %v", err)
	}

	user, err := repo.FindByUsername(context.Background(), "root")
	if err != nil {
		t.Fatalf("account not created: %v", err)
	}
	if user.Type != domain.TypeSuperAdmin {
		t.Errorf("type = %d, want %d", user.Type, domain.TypeSuperAdmin)
	}
	if user.Status != domain.StatusActive {
		t.Errorf("status = %q, want active", user.Status)
	}
	if !hasher.Verify("s3cret", user.PasswordHash) {
		t.Error("seeded password does not verify")
	}
	if user.ActivationCode != "" {
		t.Error("seeded account should need no activation")
	}
}

func TestEnsureSuperAdminIsIdempotent(t *testing.T) {
	repo := newStubUserRepo()
	hasher := NewPasswordHasher(4)

	if err := EnsureSuperAdmin(context.Background(), repo, hasher, zerolog.Nop(), superAdminSeed()); err != nil {
		t.Fatalf("first call: %v", err)
	}
	before, _ := repo.FindByUsername(context.Background(), "root")

	// A restart with a rotated password must not touch the account.
	seed := superAdminSeed()
	seed.Password = "different"
	if err := EnsureSuperAdmin(context.Background(), repo, hasher, zerolog.Nop(), seed); err != nil {
		t.Fatalf("second call: %v", err)
	}

	after, _ := repo.FindByUsername(context.Background(), "root")
	if after.PasswordHash != before.PasswordHash {
		t.Error("existing account was modified on restart")
	}
	if len(repo.users) != 1 {
		t.Errorf("repo holds %d accounts, want 1", len(repo.users))
	}
}

func TestEnsureSuperAdminSkipsWhenUnconfigured(t *testing.T) {
	repo := newStubUserRepo()

	for _, seed := range []SuperAdminSeed{
		{},
		{Username: "root"},
		{Password: "s3cret"},
	} {
		if err := EnsureSuperAdmin(context.Background(), repo, NewPasswordHasher(4), zerolog.Nop(), seed); err != nil {
			t.Fatalf("EnsureSuperAdmin(%+v): %v", seed, err)
		}
	}
	if len(repo.users) != 0 {
		t.Errorf("repo holds %d accounts, want 0", len(repo.users))
	}
}

func TestSeededSuperAdminCanSignin(t *testing.T) {
	repo := newStubUserRepo()
	hasher := NewPasswordHasher(4)

	if err := EnsureSuperAdmin(context.Background(), repo, hasher, zerolog.Nop(), superAdminSeed()); err != nil {
		t.Fatalf("EnsureSuperAdmin: %v", err)
	}

	svc := newAuthService(repo, newStubMailer())
	result, err := svc.Signin(context.Background(), "root", "s3cret")
	if err != nil {
		t.Fatalf("Signin: %v", err)
	}
	if result.UserData.Role != domain.RoleSuperAdmin {
		t.Errorf("role = %q, want SuperAdmin", result.UserData.Role)
	}
}
