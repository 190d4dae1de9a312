package authorization

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCitizen UserRole = "citizen"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleCitizen
}
