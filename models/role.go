package models

import "strings"

// Role names seeded at initialization.
const (
	RoleAdmin       = "Admin"
	RoleGeneralUser = "GeneralUser"
)

// Role is a named group of users. Roles are seeded once by migrations and
// never modified by the auth workflow.
type Role struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// NormalizeRoleName returns the canonical form used to look up roles.
func NormalizeRoleName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
