package domain

import "errors"

// Role is a named authorization tier derived from the account's numeric type.
type Role string

const (
	RoleUser       Role = "User"
	RoleManager    Role = "Manager"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

// Numeric type values stored on user records.
const (
	TypeUser       = 1
	TypeManager    = 2
	TypeAdmin      = 3
	TypeSuperAdmin = 4
)

// Module is a protected resource category with independent permission flags.
type Module string

const (
	ModuleUsers      Module = "users"
	ModuleCategories Module = "categories"
	ModuleBooks      Module = "books"
	ModuleAuthors    Module = "authors"
)

// Action is one of the four CRUD permission flags.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var ErrUnknownRole = errors.New("unknown role type")

// Permission holds the four per-module flags for one role.
type Permission struct {
	Read   bool
	Create bool
	Update bool
	Delete bool
}

// Allows returns the flag named by action; unknown actions are denied.
func (p Permission) Allows(action Action) bool {
	switch action {
	case ActionRead:
		return p.Read
	case ActionCreate:
		return p.Create
	case ActionUpdate:
		return p.Update
	case ActionDelete:
		return p.Delete
	}
	return false
}

var roleTypes = map[int]Role{
	TypeUser:       RoleUser,
	TypeManager:    RoleManager,
	TypeAdmin:      RoleAdmin,
	TypeSuperAdmin: RoleSuperAdmin,
}

var readOnly = Permission{Read: true}
var fullAccess = Permission{Read: true, Create: true, Update: true, Delete: true}

// rolePermissions is the static permission catalog, resolved at process start
// and immutable thereafter. SuperAdmin has no entry of its own: lookups
// normalize it to Admin before the unconditional override in the gate.
var rolePermissions = map[Role]map[Module]Permission{
	RoleUser: {
		ModuleUsers:      readOnly,
		ModuleCategories: readOnly,
		ModuleBooks:      readOnly,
		ModuleAuthors:    readOnly,
	},
	RoleManager: {
		ModuleUsers:      readOnly,
		ModuleCategories: fullAccess,
		ModuleBooks:      fullAccess,
		ModuleAuthors:    fullAccess,
	},
	RoleAdmin: {
		ModuleUsers:      fullAccess,
		ModuleCategories: fullAccess,
		ModuleBooks:      fullAccess,
		ModuleAuthors:    fullAccess,
	},
}

// moduleOrder fixes the order permissions are listed in sanitized user views.
var moduleOrder = []Module{ModuleUsers, ModuleCategories, ModuleBooks, ModuleAuthors}

// RoleForType resolves the role name for a stored numeric type. There is no
// silent default: an unknown type is an error the caller must handle.
func RoleForType(t int) (Role, error) {
	role, ok := roleTypes[t]
	if !ok {
		return "", ErrUnknownRole
	}
	return role, nil
}

// PermissionsForRole returns the permission table for a role. SuperAdmin
// falls back to Admin's table; the gate grants its unconditional override
// separately.
func PermissionsForRole(role Role) map[Module]Permission {
	if role == RoleSuperAdmin {
		role = RoleAdmin
	}
	return rolePermissions[role]
}

// AccessFor reports whether role may perform action on module. A module
// absent from the role's table is a deny, not an error.
func AccessFor(role Role, module Module, action Action) bool {
	perms := PermissionsForRole(role)
	if perms == nil {
		return false
	}
	p, ok := perms[module]
	if !ok {
		return false
	}
	return p.Allows(action)
}

// PermissionView is the JSON shape of one catalog entry in user responses.
type PermissionView struct {
	Module Module `json:"module"`
	Read   bool   `json:"read"`
	Create bool   `json:"create"`
	Update bool   `json:"update"`
	Delete bool   `json:"delete"`
}

// PermissionViews lists a role's permissions in catalog order.
func PermissionViews(role Role) []PermissionView {
	perms := PermissionsForRole(role)
	if perms == nil {
		return nil
	}
	views := make([]PermissionView, 0, len(moduleOrder))
	for _, m := range moduleOrder {
		p, ok := perms[m]
		if !ok {
			continue
		}
		views = append(views, PermissionView{
			Module: m,
			Read:   p.Read,
			Create: p.Create,
			Update: p.Update,
			Delete: p.Delete,
		})
	}
	return views
}
