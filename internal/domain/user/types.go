package user

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleBrand Role = "brand"
	RoleDJ    Role = "dj"
)

// Capability is a permission a role carries when deciding on a record.
type Capability string

const (
	// Decide any pending record regardless of who owns it.
	CapDecideAny Capability = "decide:any"
	// Decide only records whose owning resource is organized by the actor.
	CapDecideOwned Capability = "decide:owned"
)

// Only brands are restricted to owned resources. Staff, admin and DJ paths
// predate per-brand restriction and keep unrestricted access.
var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {CapDecideAny},
	RoleStaff: {CapDecideAny},
	RoleDJ:    {CapDecideAny},
	RoleBrand: {CapDecideOwned},
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

func (r Role) Can(c Capability) bool {
	for _, have := range roleCapabilities[r] {
		if have == c {
			return true
		}
	}
	return false
}

func (r Role) Capabilities() []Capability {
	caps := roleCapabilities[r]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
