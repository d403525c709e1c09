package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/weblibrary/library-system/internal/core/domain"
)

func invokePermission(t *testing.T, userType any, module domain.Module, action domain.Action) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userType != nil {
		c.Set(ContextKeyUserType, userType)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return Permission(module, action)(next)(c)
}

func TestPermissionAllowsByCatalog(t *testing.T) {
	if err := invokePermission(t, domain.TypeUser, domain.ModuleBooks, domain.ActionRead); err != nil {
		t.Errorf("user read books should pass: %v", err)
	}
	if err := invokePermission(t, domain.TypeManager, domain.ModuleCategories, domain.ActionDelete); err != nil {
		t.Errorf("manager delete categories should pass: %v", err)
	}
	if err := invokePermission(t, domain.TypeAdmin, domain.ModuleUsers, domain.ActionDelete); err != nil {
		t.Errorf("admin delete users should pass: %v", err)
	}
}

func TestPermissionDeniesByCatalog(t *testing.T) {
	if err := invokePermission(t, domain.TypeUser, domain.ModuleUsers, domain.ActionUpdate); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("user update users: expected ErrForbidden, got %v", err)
	}
	if err := invokePermission(t, domain.TypeManager, domain.ModuleUsers, domain.ActionCreate); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("manager create users: expected ErrForbidden, got %v", err)
	}
}

func TestPermissionTypeaheadRequiresCreate(t *testing.T) {
	// Autocomplete endpoints are gated on create: read-only accounts have no
	// form to feed.
	for _, m := range []domain.Module{domain.ModuleCategories, domain.ModuleAuthors} {
		if err := invokePermission(t, domain.TypeUser, m, domain.ActionCreate); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("user create %s: expected ErrForbidden, got %v", m, err)
		}
		if err := invokePermission(t, domain.TypeManager, m, domain.ActionCreate); err != nil {
			t.Errorf("manager create %s should pass: %v", m, err)
		}
	}
}

func TestPermissionSuperAdminOverride(t *testing.T) {
	for _, action := range []domain.Action{domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete} {
		if err := invokePermission(t, domain.TypeSuperAdmin, domain.ModuleUsers, action); err != nil {
			t.Errorf("super admin %s users should pass: %v", action, err)
		}
	}
}

func TestPermissionUnknownType(t *testing.T) {
	if err := invokePermission(t, 42, domain.ModuleBooks, domain.ActionRead); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("unknown type: expected ErrForbidden, got %v", err)
	}
}

func TestPermissionMissingIdentity(t *testing.T) {
	if err := invokePermission(t, nil, domain.ModuleBooks, domain.ActionRead); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("missing identity: expected ErrUnauthenticated, got %v", err)
	}
}
