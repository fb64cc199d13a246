package enums

import "fmt"

// AccountRole is the permissions role carried by a staff account.
type AccountRole string

const (
	AccountRoleAdmin AccountRole = "admin"
	AccountRoleStaff AccountRole = "staff"
)

var validAccountRoles = []AccountRole{
	AccountRoleAdmin,
	AccountRoleStaff,
}

func (a AccountRole) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AccountRole.
func (a AccountRole) IsValid() bool {
	for _, candidate := range validAccountRoles {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAccountRole converts raw input into an AccountRole.
func ParseAccountRole(value string) (AccountRole, error) {
	for _, candidate := range validAccountRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid account role %q", value)
}
