package domain

import "testing"

func TestRoleForType(t *testing.T) {
	cases := []struct {
		userType int
		want     Role
		wantErr  bool
	}{
		{TypeUser, RoleUser, false},
		{TypeManager, RoleManager, false},
		{TypeAdmin, RoleAdmin, false},
		{TypeSuperAdmin, RoleSuperAdmin, false},
		{0, "", true},
		{5, "", true},
		{-1, "", true},
	}

	for _, tc := range cases {
		got, err := RoleForType(tc.userType)
		if tc.wantErr {
			if err == nil {
				t.Errorf("RoleForType(%d): expected error, got %q", tc.userType, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("RoleForType(%d): unexpected error: %v", tc.userType, err)
			continue
		}
		if got != tc.want {
			t.Errorf("RoleForType(%d) = %q, want %q", tc.userType, got, tc.want)
		}
	}
}

func TestAccessForUserRole(t *testing.T) {
	// Plain users read everything and change nothing.
	for _, m := range []Module{ModuleUsers, ModuleCategories, ModuleBooks, ModuleAuthors} {
		if !AccessFor(RoleUser, m, ActionRead) {
			t.Errorf("user should read %s", m)
		}
		for _, a := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
			if AccessFor(RoleUser, m, a) {
				t.Errorf("user should not %s %s", a, m)
			}
		}
	}
}

func TestAccessForManagerRole(t *testing.T) {
	// Managers read users but cannot modify them.
	if !AccessFor(RoleManager, ModuleUsers, ActionRead) {
		t.Error("manager should read users")
	}
	if AccessFor(RoleManager, ModuleUsers, ActionDelete) {
		t.Error("manager should not delete users")
	}

	// Full control over the catalog modules.
	for _, m := range []Module{ModuleCategories, ModuleBooks, ModuleAuthors} {
		for _, a := range []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
			if !AccessFor(RoleManager, m, a) {
				t.Errorf("manager should %s %s", a, m)
			}
		}
	}
}

func TestAccessForAdminRole(t *testing.T) {
	for _, m := range []Module{ModuleUsers, ModuleCategories, ModuleBooks, ModuleAuthors} {
		for _, a := range []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
			if !AccessFor(RoleAdmin, m, a) {
				t.Errorf("admin should %s %s", a, m)
			}
		}
	}
}

func TestAccessForSuperAdminRole(t *testing.T) {
	// The catalog resolves super admins to the admin table; the unconditional
	// override lives in the permission middleware.
	for _, m := range []Module{ModuleUsers, ModuleCategories, ModuleBooks, ModuleAuthors} {
		for _, a := range []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
			if !AccessFor(RoleSuperAdmin, m, a) {
				t.Errorf("super admin should %s %s", a, m)
			}
		}
	}
}

func TestAccessForUnknown(t *testing.T) {
	if AccessFor(Role("ghost"), ModuleUsers, ActionRead) {
		t.Error("unknown role should be denied")
	}
	if AccessFor(RoleAdmin, Module("payments"), ActionRead) {
		t.Error("unknown module should be denied")
	}
}

func TestPermissionViewsStableOrder(t *testing.T) {
	views := PermissionViews(RoleManager)
	want := []Module{ModuleUsers, ModuleCategories, ModuleBooks, ModuleAuthors}
	if len(views) != len(want) {
		t.Fatalf("got %d permission views, want %d", len(views), len(want))
	}
	for i, v := range views {
		if v.Module != want[i] {
			t.Errorf("view %d module = %q, want %q", i, v.Module, want[i])
		}
	}
}
