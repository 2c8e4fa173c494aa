package domain

// Role is a closed enumeration of account roles. Values match the
// user_role enum persisted in the database.
type Role string

const (
	RoleAdmin      Role = "system_administrator"
	RoleNormalUser Role = "normal_user"
	RoleStoreOwner Role = "store_owner"
)

var allRoles = []Role{RoleAdmin, RoleNormalUser, RoleStoreOwner}

func ParseRole(s string) (Role, bool) {
	for _, r := range allRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

func (r Role) String() string { return string(r) }
